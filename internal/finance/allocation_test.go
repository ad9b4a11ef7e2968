package finance

import (
	"testing"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func TestAllocationPercent(t *testing.T) {
	cases := []struct {
		name        string
		total       float64
		allocations []entity.PaycheckAllocation
		want        int
	}{
		{
			name:  "partial allocation",
			total: 5000,
			allocations: []entity.PaycheckAllocation{
				{Name: "Essenciais", Amount: 2500},
				{Name: "Lazer", Amount: 500},
			},
			want: 60,
		},
		{
			name:  "rounded to nearest",
			total: 3000,
			allocations: []entity.PaycheckAllocation{
				{Name: "Essenciais", Amount: 1000},
			},
			want: 33,
		},
		{
			name:  "over allocated",
			total: 1000,
			allocations: []entity.PaycheckAllocation{
				{Name: "Tudo", Amount: 1500},
			},
			want: 150,
		},
		{
			name:  "zero total",
			total: 0,
			allocations: []entity.PaycheckAllocation{
				{Name: "Qualquer", Amount: 100},
			},
			want: 0,
		},
		{
			name:  "negative total",
			total: -100,
			want:  0,
		},
		{
			name:  "no allocations",
			total: 4000,
			want:  0,
		},
	}

	for _, tc := range cases {
		if got := AllocationPercent(tc.total, tc.allocations); got != tc.want {
			t.Errorf("%s: AllocationPercent(%v, ...) = %d, want %d", tc.name, tc.total, got, tc.want)
		}
	}
}

func TestBudgetsProgress(t *testing.T) {
	budgets := []entity.Budget{
		{Category: "Alimentação", Spent: 450, Limit: 600, Icon: "food"},
		{Category: "Lazer", Spent: 300, Limit: 200},
		{Category: "Sem limite", Spent: 50, Limit: 0},
	}

	progress := BudgetsProgress(budgets)

	if len(progress) != 3 {
		t.Fatalf("expected 3 entries, got %+v", progress)
	}

	if progress[0].Percentage != 75 || progress[0].Display != 75 {
		t.Fatalf("within budget: %+v", progress[0])
	}
	if progress[0].Icon != "food" {
		t.Fatalf("icon dropped: %+v", progress[0])
	}

	// Overspend keeps the raw figure but the display bar saturates.
	if progress[1].Percentage != 150 {
		t.Fatalf("overspend raw percentage = %v, want 150", progress[1].Percentage)
	}
	if progress[1].Display != 100 {
		t.Fatalf("overspend display = %v, want 100", progress[1].Display)
	}

	if progress[2].Percentage != 0 || progress[2].Display != 0 {
		t.Fatalf("zero limit: %+v", progress[2])
	}
}

func TestBudgetsProgressEmpty(t *testing.T) {
	if progress := BudgetsProgress(nil); progress == nil || len(progress) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", progress)
	}
}
