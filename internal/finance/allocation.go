package finance

import (
	"math"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

// AllocationPercent is the share of a paycheck already assigned across
// allocation categories, rounded to the nearest integer for display.
// Category-level percentages come from the backend and are rendered
// untouched; only this overall figure is recomputed.
func AllocationPercent(total float64, allocations []entity.PaycheckAllocation) int {
	if total <= 0 {
		return 0
	}

	var allocated float64
	for _, a := range allocations {
		allocated += a.Amount
	}

	return int(math.Round(allocated / total * 100))
}

// BudgetProgress pairs the raw spend percentage (allowed past 100 to
// signal overspend) with a display value clamped to [0,100].
type BudgetProgress struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Percentage float64 `json:"percentage"`
	Display    float64 `json:"display_percentage"`
	Icon       string  `json:"icon,omitempty"`
}

func BudgetsProgress(budgets []entity.Budget) []BudgetProgress {
	progress := make([]BudgetProgress, 0, len(budgets))

	for _, b := range budgets {
		var pct float64
		if b.Limit > 0 {
			pct = b.Spent / b.Limit * 100
		}

		progress = append(progress, BudgetProgress{
			Category:   b.Category,
			Spent:      b.Spent,
			Limit:      b.Limit,
			Percentage: pct,
			Display:    math.Min(math.Max(pct, 0), 100),
			Icon:       b.Icon,
		})
	}

	return progress
}
