package dashboardService

import (
	"time"

	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
)

// The read paths below never fail: the gateway degrades every list
// fetch to an empty slice, and the aggregates are total functions over
// whatever arrives.

func (s *dashboardService) Summary(ctx context.Context, now time.Time) finance.Summary {
	transactions := s.financeAPI.ListTransactions(ctx)
	return finance.Summarize(transactions, now)
}

func (s *dashboardService) CategoryDistribution(ctx context.Context) []finance.CategoryAmount {
	transactions := s.financeAPI.ListTransactions(ctx)
	return finance.CategoryDistribution(transactions)
}

func (s *dashboardService) DebtComposition(ctx context.Context) []finance.CategoryAmount {
	debts := s.financeAPI.ListDebts(ctx)
	return finance.DebtComposition(debts)
}

func (s *dashboardService) BudgetsProgress(ctx context.Context) []finance.BudgetProgress {
	budgets := s.financeAPI.ListBudgets(ctx)
	return finance.BudgetsProgress(budgets)
}

func (s *dashboardService) PaycheckPlan(ctx context.Context) (float64, []entity.PaycheckAllocation, int) {
	total, allocations := s.financeAPI.GetPaycheckPlan(ctx)
	return total, allocations, finance.AllocationPercent(total, allocations)
}
