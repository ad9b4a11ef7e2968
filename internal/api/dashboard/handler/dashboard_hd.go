package dashboardHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/dashboard"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/currency"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/handlerUtil"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/log"
)

func (h *DashboardHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing dashboard summary request")

	summary := h.dashboardService.Summary(c, time.Now())
	response := toSummaryResponse(summary)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *DashboardHandler) GetCategoryDistribution(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing category distribution request")

	groups := h.dashboardService.CategoryDistribution(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toDistributionResponse(groups))
	}
}

func (h *DashboardHandler) GetDebtComposition(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing debt composition request")

	groups := h.dashboardService.DebtComposition(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toDistributionResponse(groups))
	}
}

func (h *DashboardHandler) GetBudgetsProgress(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing budgets progress request")

	progress := h.dashboardService.BudgetsProgress(c)

	budgets := make([]dashboard.BudgetProgressResponse, 0, len(progress))
	for _, p := range progress {
		budgets = append(budgets, dashboard.BudgetProgressResponse{
			Category:   p.Category,
			Spent:      p.Spent,
			Limit:      p.Limit,
			Percentage: p.Percentage,
			Display:    p.Display,
			Icon:       p.Icon,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard.BudgetListResponse{Budgets: budgets})
	}
}

func (h *DashboardHandler) GetPaycheckPlan(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing paycheck plan request")

	total, allocations, percent := h.dashboardService.PaycheckPlan(c)

	response := dashboard.PaycheckPlanResponse{
		Total:            total,
		AllocatedPercent: percent,
		Allocations:      toAllocationResponses(allocations),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

// PreviewAllocation recomputes the allocated share for an in-progress
// paycheck split without touching the stored plan, so the form can show
// live feedback while the user edits amounts.
func (h *DashboardHandler) PreviewAllocation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req dashboard.AllocationPreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	allocations := make([]entity.PaycheckAllocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		allocations = append(allocations, entity.PaycheckAllocation{
			Name:   a.Name,
			Amount: a.Amount,
		})
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard.AllocationPreviewResponse{
		AllocatedPercent: finance.AllocationPercent(req.Total, allocations),
	})
}

func toSummaryResponse(s finance.Summary) dashboard.SummaryResponse {
	return dashboard.SummaryResponse{
		Balance:               s.Balance,
		BalanceFormatted:      currency.Format(s.Balance),
		TotalIncome:           s.TotalIncome,
		TotalIncomeFormatted:  currency.Format(s.TotalIncome),
		TotalExpense:          s.TotalExpense,
		TotalExpenseFormatted: currency.Format(s.TotalExpense),
		IncomeMonth:           s.IncomeMonth,
		IncomeMonthFormatted:  currency.Format(s.IncomeMonth),
		ExpenseMonth:          s.ExpenseMonth,
		ExpenseMonthFormatted: currency.Format(s.ExpenseMonth),
	}
}

func toDistributionResponse(groups []finance.CategoryAmount) dashboard.DistributionResponse {
	var total float64
	categories := make([]dashboard.CategorySliceResponse, 0, len(groups))

	for _, g := range groups {
		total += g.Value
		categories = append(categories, dashboard.CategorySliceResponse{
			Name:  g.Name,
			Value: g.Value,
			Color: g.Color,
		})
	}

	return dashboard.DistributionResponse{
		Categories: categories,
		Total:      total,
	}
}

func toAllocationResponses(allocations []entity.PaycheckAllocation) []dashboard.AllocationResponse {
	responses := make([]dashboard.AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		responses = append(responses, dashboard.AllocationResponse{
			Name:       a.Name,
			Amount:     a.Amount,
			Percentage: a.Percentage,
		})
	}
	return responses
}
