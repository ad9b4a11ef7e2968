package finance

import (
	"testing"
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func TestProjectEventsDebt(t *testing.T) {
	// Evaluated on March 20th so the day-15 installment already passed.
	now := date(2025, time.March, 20)
	debts := []entity.Debt{
		{ID: "d1", Name: "Cartão", Installment: 250, DueDate: "2025-01-15", Status: "Atrasado"},
	}

	events := ProjectEvents(nil, debts, nil, now)

	if len(events) != 2 {
		t.Fatalf("expected current and next month events, got %+v", events)
	}

	current, next := events[0], events[1]

	if current.ID != "debt-d1-2025-3" {
		t.Fatalf("current event ID = %q", current.ID)
	}
	if !current.Date.Equal(date(2025, time.March, 15)) {
		t.Fatalf("current event date = %v", current.Date)
	}
	if current.Status != entity.EventStatusOverdue {
		t.Fatalf("past due date on a late debt must be overdue, got %q", current.Status)
	}
	if current.Source != entity.EventSourceDebt || current.Amount != 250 {
		t.Fatalf("current event = %+v", current)
	}

	if next.ID != "debt-d1-2025-4" {
		t.Fatalf("next event ID = %q", next.ID)
	}
	if !next.Date.Equal(date(2025, time.April, 15)) {
		t.Fatalf("next event date = %v", next.Date)
	}
	if next.Status != entity.EventStatusUpcoming {
		t.Fatalf("next month installment must be upcoming, got %q", next.Status)
	}
}

func TestDebtStatusAt(t *testing.T) {
	cases := []struct {
		name      string
		daysUntil int
		status    entity.DebtStatus
		want      entity.EventStatus
	}{
		{"past and late", -5, entity.DebtStatusLate, entity.EventStatusOverdue},
		{"past and on time", -5, entity.DebtStatusOnTime, entity.EventStatusPaid},
		{"due today", 0, entity.DebtStatusOnTime, entity.EventStatusPending},
		{"due in two days", 2, entity.DebtStatusOnTime, entity.EventStatusPending},
		{"edge of window", 3, entity.DebtStatusOnTime, entity.EventStatusPending},
		{"beyond window", 4, entity.DebtStatusOnTime, entity.EventStatusUpcoming},
	}

	for _, tc := range cases {
		if got := debtStatusAt(tc.daysUntil, tc.status); got != tc.want {
			t.Errorf("%s: debtStatusAt(%d, %q) = %q, want %q", tc.name, tc.daysUntil, tc.status, got, tc.want)
		}
	}
}

func TestProjectEventsTransactions(t *testing.T) {
	now := date(2025, time.March, 20)
	transactions := []entity.Transaction{
		{ID: "t1", Description: "Mercado", Amount: 80, Type: "expense", Status: "completed", Date: date(2025, time.March, 10)},
		{ID: "t2", Description: "Internet", Amount: 120, Type: "expense", Status: "pending", Date: date(2025, time.March, 12)},
		{ID: "t3", Description: "Aluguel", Amount: 1500, Type: "expense", Status: "pending", Date: date(2025, time.March, 25)},
	}

	events := ProjectEvents(transactions, nil, nil, now)

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %+v", events)
	}

	want := map[string]entity.EventStatus{
		"transaction-t1": entity.EventStatusPaid,
		"transaction-t2": entity.EventStatusOverdue,
		"transaction-t3": entity.EventStatusPending,
	}
	for _, e := range events {
		if e.Status != want[e.ID] {
			t.Errorf("%s: status = %q, want %q", e.ID, e.Status, want[e.ID])
		}
	}
}

func TestProjectEventsGoals(t *testing.T) {
	now := date(2025, time.March, 20)
	near := date(2025, time.March, 25)
	far := date(2025, time.June, 1)
	past := date(2025, time.February, 1)

	goals := []entity.Goal{
		{ID: "g1", Name: "Viagem", CurrentAmount: 600, TargetAmount: 1000, Deadline: &near},
		{ID: "g2", Name: "Reserva", CurrentAmount: 0, TargetAmount: 5000, Deadline: &far},
		{ID: "g3", Name: "Curso", CurrentAmount: 200, TargetAmount: 400, Deadline: &past},
		{ID: "g4", Name: "Sem prazo", CurrentAmount: 0, TargetAmount: 100},
	}

	events := ProjectEvents(nil, nil, goals, now)

	if len(events) != 3 {
		t.Fatalf("goals without deadline must not produce events, got %+v", events)
	}

	if events[0].ID != "goal-g1" || events[0].Status != entity.EventStatusPending {
		t.Fatalf("deadline within a week must be pending, got %+v", events[0])
	}
	if events[0].Amount != 400 {
		t.Fatalf("event must carry the remaining shortfall, got %v", events[0].Amount)
	}
	if events[1].Status != entity.EventStatusUpcoming {
		t.Fatalf("distant deadline must be upcoming, got %+v", events[1])
	}
	if events[2].Status != entity.EventStatusOverdue {
		t.Fatalf("missed deadline must be overdue, got %+v", events[2])
	}
}

func TestProjectEventsDebtClampsShortMonths(t *testing.T) {
	// A day-31 installment evaluated in April must land on April 30th
	// and May 31st, never roll both events into May.
	now := date(2025, time.April, 10)
	debts := []entity.Debt{
		{ID: "d1", Name: "Fatura", Installment: 300, DueDate: "2025-01-31", Status: "Em dia"},
	}

	events := ProjectEvents(nil, debts, nil, now)

	if len(events) != 2 {
		t.Fatalf("expected current and next month events, got %+v", events)
	}
	if !events[0].Date.Equal(date(2025, time.April, 30)) {
		t.Fatalf("current event date = %v, want April 30th", events[0].Date)
	}
	if !events[1].Date.Equal(date(2025, time.May, 31)) {
		t.Fatalf("next event date = %v, want May 31st", events[1].Date)
	}
	if events[0].ID != "debt-d1-2025-4" || events[1].ID != "debt-d1-2025-5" {
		t.Fatalf("event IDs must stay distinct per month, got %q and %q", events[0].ID, events[1].ID)
	}
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// March 9th 2025 is only 23 wall-clock hours after March 8th in New
	// York; the calendar delta is still one day.
	from := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	to := time.Date(2025, time.March, 9, 0, 0, 0, 0, loc)

	if got := daysBetween(from, to); got != 1 {
		t.Fatalf("daysBetween = %d, want 1", got)
	}
}

func TestProjectEventsSkipsUnparsableDueDate(t *testing.T) {
	now := date(2025, time.March, 20)
	debts := []entity.Debt{
		{ID: "d1", Name: "Ruim", Installment: 10, DueDate: "15", Status: "Em dia"},
	}

	if events := ProjectEvents(nil, debts, nil, now); len(events) != 0 {
		t.Fatalf("debts without a parsable due date must be skipped, got %+v", events)
	}
}
