package calendarService

import (
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
)

// Events fetches the three source collections concurrently and joins
// them into the calendar projection. A failed branch degrades to an
// empty slice inside the gateway, so one bad upstream read never blanks
// the whole calendar.
func (s *calendarService) Events(ctx context.Context, now time.Time) []entity.CalendarEvent {
	var (
		transactions []entity.Transaction
		debts        []entity.Debt
		goals        []entity.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions = s.financeAPI.ListTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		debts = s.financeAPI.ListDebts(gctx)
		return nil
	})
	g.Go(func() error {
		goals = s.financeAPI.ListGoals(gctx)
		return nil
	})
	_ = g.Wait()

	return finance.ProjectEvents(transactions, debts, goals, now)
}
