package finance

import (
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

// NetWorthBreakdown carries the solvency headline plus the donut slices
// for the composition chart.
type NetWorthBreakdown struct {
	NetWorth         float64            `json:"net_worth"`
	TotalAssets      float64            `json:"total_assets"`
	TotalLiabilities float64            `json:"total_liabilities"`
	Assets           []CompositionGroup `json:"assets"`
	Liabilities      []CompositionGroup `json:"liabilities"`
}

type CompositionGroup struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Icon       string  `json:"icon,omitempty"`
}

// ComposeNetWorth derives the composition view from the server-supplied
// totals and the raw asset/liability lists. Shares are relative to total
// assets; when total assets are zero every share is 0%, never NaN.
func ComposeNetWorth(assets []entity.Asset, liabilities []entity.Liability, totals entity.NetWorth) NetWorthBreakdown {
	b := NetWorthBreakdown{
		NetWorth:         totals.TotalAssets - totals.TotalLiabilities,
		TotalAssets:      totals.TotalAssets,
		TotalLiabilities: totals.TotalLiabilities,
		Assets:           make([]CompositionGroup, 0, len(assets)),
		Liabilities:      make([]CompositionGroup, 0, len(liabilities)),
	}

	for _, a := range assets {
		b.Assets = append(b.Assets, CompositionGroup{
			Name:       a.Name,
			Value:      a.Value,
			Percentage: shareOf(a.Value, totals.TotalAssets),
			Icon:       a.Icon,
		})
	}

	for _, l := range liabilities {
		b.Liabilities = append(b.Liabilities, CompositionGroup{
			Name:       l.Name,
			Value:      l.Value,
			Percentage: shareOf(l.Value, totals.TotalAssets),
			Icon:       l.Icon,
		})
	}

	return b
}

func shareOf(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
