package finance

import (
	"fmt"
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

const (
	debtPendingWindowDays = 3
	goalPendingWindowDays = 7
)

// ProjectEvents synthesizes the calendar view from the three raw
// collections. Nothing is persisted: the projection is recomputed on
// every request against the supplied evaluation time.
//
// Each debt yields up to two events, its due day re-anchored onto the
// current and the next month. Each transaction yields one event at its
// own date. Each goal with a deadline yields one event carrying the
// remaining shortfall.
func ProjectEvents(transactions []entity.Transaction, debts []entity.Debt, goals []entity.Goal, now time.Time) []entity.CalendarEvent {
	events := make([]entity.CalendarEvent, 0)
	today := startOfDay(now)

	for _, d := range debts {
		day := d.DueDay()
		if day == 0 {
			continue
		}

		for offset := 0; offset < 2; offset++ {
			first := time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, now.Location())

			// A due day past the target month's end lands on its last day,
			// never rolling over into the month after.
			dueDay := day
			if last := first.AddDate(0, 1, -1).Day(); dueDay > last {
				dueDay = last
			}

			due := time.Date(first.Year(), first.Month(), dueDay, 0, 0, 0, 0, now.Location())
			events = append(events, entity.CalendarEvent{
				ID:     fmt.Sprintf("debt-%s-%d-%d", d.ID, due.Year(), int(due.Month())),
				Title:  d.Name,
				Amount: d.Installment,
				Date:   due,
				Status: debtStatusAt(daysBetween(today, due), entity.DebtStatus(d.Status)),
				Source: entity.EventSourceDebt,
			})
		}
	}

	for _, t := range transactions {
		events = append(events, entity.CalendarEvent{
			ID:     "transaction-" + t.ID,
			Title:  t.Description,
			Amount: t.Amount,
			Date:   t.Date,
			Status: transactionStatusAt(daysBetween(today, startOfDay(t.Date)), entity.TransactionStatus(t.Status)),
			Source: entity.EventSourceTransaction,
		})
	}

	for _, g := range goals {
		if g.Deadline == nil {
			continue
		}

		events = append(events, entity.CalendarEvent{
			ID:     "goal-" + g.ID,
			Title:  g.Name,
			Amount: g.Shortfall(),
			Date:   *g.Deadline,
			Status: goalStatusAt(daysBetween(today, startOfDay(*g.Deadline))),
			Source: entity.EventSourceGoal,
		})
	}

	return events
}

// debtStatusAt buckets a debt due date by its distance from today. A past
// due date only counts as overdue when the backend already flags the debt
// late; otherwise the installment is assumed settled.
func debtStatusAt(daysUntil int, status entity.DebtStatus) entity.EventStatus {
	switch {
	case daysUntil < 0 && status == entity.DebtStatusLate:
		return entity.EventStatusOverdue
	case daysUntil < 0:
		return entity.EventStatusPaid
	case daysUntil <= debtPendingWindowDays:
		return entity.EventStatusPending
	default:
		return entity.EventStatusUpcoming
	}
}

func transactionStatusAt(daysUntil int, status entity.TransactionStatus) entity.EventStatus {
	switch {
	case status == entity.TransactionStatusCompleted:
		return entity.EventStatusPaid
	case daysUntil < 0:
		return entity.EventStatusOverdue
	default:
		return entity.EventStatusPending
	}
}

func goalStatusAt(daysUntil int) entity.EventStatus {
	switch {
	case daysUntil < 0:
		return entity.EventStatusOverdue
	case daysUntil <= goalPendingWindowDays:
		return entity.EventStatusPending
	default:
		return entity.EventStatusUpcoming
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween is a plain calendar delta, not business-day aware. Both
// dates are re-anchored onto UTC midnights so a DST shift in the local
// zone never shortens a day below the 24h the division assumes.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
