package networthService

import (
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
)

func (s *netWorthService) Breakdown(ctx context.Context) finance.NetWorthBreakdown {
	var (
		assets      []entity.Asset
		liabilities []entity.Liability
		totals      entity.NetWorth
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		assets = s.financeAPI.ListAssets(gctx)
		return nil
	})
	g.Go(func() error {
		liabilities = s.financeAPI.ListLiabilities(gctx)
		return nil
	})
	g.Go(func() error {
		totals = s.financeAPI.GetNetWorth(gctx)
		return nil
	})
	_ = g.Wait()

	return finance.ComposeNetWorth(assets, liabilities, totals)
}
