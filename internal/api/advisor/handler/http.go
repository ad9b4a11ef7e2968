package advisorHandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	advisorService "github.com/Thyago-vibe/axxy-financeiro/internal/api/advisor/service"
	"github.com/Thyago-vibe/axxy-financeiro/internal/middleware"
)

type AdvisorHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	advisorService advisorService.IAdvisorService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	advisorService advisorService.IAdvisorService,
) *AdvisorHandler {
	return &AdvisorHandler{
		log:            log,
		middleware:     middleware,
		advisorService: advisorService,
	}
}

func (h *AdvisorHandler) Start(srv fiber.Router) {
	advisor := srv.Group("/advisor")

	advisor.Post("/leakage", h.GetLeakageSuggestions)
	advisor.Post("/goals", h.GetGoalAdvice)
	advisor.Post("/debts", h.GetDebtStrategy)
}
