package finance

import (
	"testing"
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	now := date(2025, time.March, 15)

	transactions := []entity.Transaction{
		{Amount: 1000, Type: "income", Date: date(2025, time.March, 5)},
		{Amount: 300, Type: "expense", Date: date(2025, time.March, 10)},
		{Amount: 200, Type: "expense", Date: date(2025, time.February, 20)},
		{Amount: 50, Type: "income", Date: date(2024, time.March, 1)},
	}

	s := Summarize(transactions, now)

	if s.Balance != 550 {
		t.Fatalf("balance = %v, expected 550", s.Balance)
	}
	if s.TotalIncome != 1050 || s.TotalExpense != 500 {
		t.Fatalf("totals = %v/%v, expected 1050/500", s.TotalIncome, s.TotalExpense)
	}
	// The month buckets only see March 2025; March 2024 must not leak in.
	if s.IncomeMonth != 1000 || s.ExpenseMonth != 300 {
		t.Fatalf("month buckets = %v/%v, expected 1000/300", s.IncomeMonth, s.ExpenseMonth)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	now := date(2025, time.March, 15)
	transactions := []entity.Transaction{
		{Amount: 100, Type: "income", Date: date(2025, time.March, 1)},
		{Amount: 40, Type: "expense", Date: date(2025, time.March, 2)},
		{Amount: 60, Type: "expense", Date: date(2025, time.January, 2)},
	}

	forward := Summarize(transactions, now)
	reversed := Summarize([]entity.Transaction{transactions[2], transactions[1], transactions[0]}, now)

	if forward != reversed {
		t.Fatalf("summary depends on input order: %+v vs %+v", forward, reversed)
	}
	if forward.Balance != forward.TotalIncome-forward.TotalExpense {
		t.Fatalf("balance %v does not match income-expense %v", forward.Balance, forward.TotalIncome-forward.TotalExpense)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, date(2025, time.March, 15))
	if s != (Summary{}) {
		t.Fatalf("empty input produced %+v", s)
	}
}

// The canonical dashboard scenario: one paycheck and one groceries run
// in the current month.
func TestSummaryAndDistributionScenario(t *testing.T) {
	now := date(2025, time.June, 20)
	transactions := []entity.Transaction{
		{Amount: 1000, Type: "income", Date: date(2025, time.June, 5)},
		{Amount: 300, Type: "expense", Category: "Alimentação", Date: date(2025, time.June, 12)},
	}

	s := Summarize(transactions, now)
	if s.Balance != 700 || s.IncomeMonth != 1000 || s.ExpenseMonth != 300 {
		t.Fatalf("scenario summary = %+v", s)
	}

	groups := CategoryDistribution(transactions)
	if len(groups) != 1 || groups[0].Name != "Alimentação" || groups[0].Value != 300 {
		t.Fatalf("scenario distribution = %+v", groups)
	}
}
