package finance

import (
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

// chartPalette is cycled in first-seen group order, matching the chart
// colors the dashboard always used.
var chartPalette = []string{
	"#8B5CF6", "#EC4899", "#F59E0B", "#10B981",
	"#3B82F6", "#EF4444", "#14B8A6", "#F97316",
}

// CategoryAmount is one slice of a pie/donut chart.
type CategoryAmount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// CategoryDistribution groups expense transactions by category label.
// Labels match exactly, case-sensitive, with no normalization; groups
// keep the insertion order of their first occurrence.
func CategoryDistribution(transactions []entity.Transaction) []CategoryAmount {
	groups := make([]CategoryAmount, 0)
	index := make(map[string]int)

	for _, t := range transactions {
		if entity.TransactionType(t.Type) != entity.TransactionTypeExpense {
			continue
		}

		i, seen := index[t.Category]
		if !seen {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryAmount{
				Name:  t.Category,
				Color: chartPalette[i%len(chartPalette)],
			})
		}
		groups[i].Value += t.Amount
	}

	return groups
}

// DebtComposition groups remaining debt balances by debt category, the
// same shape and palette rule as CategoryDistribution.
func DebtComposition(debts []entity.Debt) []CategoryAmount {
	groups := make([]CategoryAmount, 0)
	index := make(map[string]int)

	for _, d := range debts {
		i, seen := index[d.Category]
		if !seen {
			i = len(groups)
			index[d.Category] = i
			groups = append(groups, CategoryAmount{
				Name:  d.Category,
				Color: chartPalette[i%len(chartPalette)],
			})
		}
		groups[i].Value += d.Remaining
	}

	return groups
}
