package networthHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/networth"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/currency"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/handlerUtil"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/log"
)

func (h *NetWorthHandler) GetBreakdown(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing net worth request")

	breakdown := h.netWorthService.Breakdown(c)

	response := networth.NetWorthResponse{
		NetWorth:                  breakdown.NetWorth,
		NetWorthFormatted:         currency.Format(breakdown.NetWorth),
		TotalAssets:               breakdown.TotalAssets,
		TotalAssetsFormatted:      currency.Format(breakdown.TotalAssets),
		TotalLiabilities:          breakdown.TotalLiabilities,
		TotalLiabilitiesFormatted: currency.Format(breakdown.TotalLiabilities),
		Assets:                    toGroupResponses(breakdown.Assets),
		Liabilities:               toGroupResponses(breakdown.Liabilities),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func toGroupResponses(groups []finance.CompositionGroup) []networth.CompositionGroupResponse {
	responses := make([]networth.CompositionGroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, networth.CompositionGroupResponse{
			Name:           g.Name,
			Value:          g.Value,
			ValueFormatted: currency.Format(g.Value),
			Percentage:     g.Percentage,
			Icon:           g.Icon,
		})
	}
	return responses
}
