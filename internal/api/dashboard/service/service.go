package dashboardService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

type IDashboardService interface {
	Summary(ctx context.Context, now time.Time) finance.Summary
	CategoryDistribution(ctx context.Context) []finance.CategoryAmount
	DebtComposition(ctx context.Context) []finance.CategoryAmount
	BudgetsProgress(ctx context.Context) []finance.BudgetProgress
	PaycheckPlan(ctx context.Context) (float64, []entity.PaycheckAllocation, int)
}

type dashboardService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
}

func NewDashboardService(log *logrus.Logger, api financeapi.IFinanceAPI) IDashboardService {
	return &dashboardService{
		log:        log,
		financeAPI: api,
	}
}
