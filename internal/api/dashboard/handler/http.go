package dashboardHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	dashboardService "github.com/Thyago-vibe/axxy-financeiro/internal/api/dashboard/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
)

type DashboardHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	dashboard := srv.Group("/dashboard")

	dashboard.Get("/summary", h.GetSummary)
	dashboard.Get("/categories", h.GetCategoryDistribution)
	dashboard.Get("/debts", h.GetDebtComposition)
	dashboard.Get("/budgets", h.GetBudgetsProgress)
	dashboard.Get("/paycheck", h.GetPaycheckPlan)
	dashboard.Post("/paycheck/preview", h.PreviewAllocation)
}
