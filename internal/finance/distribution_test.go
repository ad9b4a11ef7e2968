package finance

import (
	"testing"
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func TestCategoryDistribution(t *testing.T) {
	transactions := []entity.Transaction{
		{Amount: 100, Type: "expense", Category: "Alimentação", Date: date(2025, time.March, 1)},
		{Amount: 50, Type: "expense", Category: "Transporte", Date: date(2025, time.March, 2)},
		{Amount: 30, Type: "expense", Category: "Alimentação", Date: date(2025, time.March, 3)},
		{Amount: 999, Type: "income", Category: "Salário", Date: date(2025, time.March, 5)},
	}

	groups := CategoryDistribution(transactions)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(groups), groups)
	}

	// First-seen order, exact labels.
	if groups[0].Name != "Alimentação" || groups[0].Value != 130 {
		t.Fatalf("group 0 = %+v", groups[0])
	}
	if groups[1].Name != "Transporte" || groups[1].Value != 50 {
		t.Fatalf("group 1 = %+v", groups[1])
	}

	if groups[0].Color != chartPalette[0] || groups[1].Color != chartPalette[1] {
		t.Fatalf("palette not cycled in first-seen order: %+v", groups)
	}
}

func TestCategoryDistributionCaseSensitive(t *testing.T) {
	transactions := []entity.Transaction{
		{Amount: 10, Type: "expense", Category: "lazer"},
		{Amount: 20, Type: "expense", Category: "Lazer"},
	}

	groups := CategoryDistribution(transactions)
	if len(groups) != 2 {
		t.Fatalf("labels must not be normalized, got %+v", groups)
	}
}

// No expense may be dropped or double counted: group values must add up
// to the expense total.
func TestCategoryDistributionConservation(t *testing.T) {
	transactions := []entity.Transaction{
		{Amount: 12.5, Type: "expense", Category: "A"},
		{Amount: 7.25, Type: "expense", Category: "B"},
		{Amount: 3.25, Type: "expense", Category: "A"},
		{Amount: 40, Type: "income", Category: "C"},
	}

	var expenseTotal, groupTotal float64
	for _, tx := range transactions {
		if tx.Type == "expense" {
			expenseTotal += tx.Amount
		}
	}
	for _, g := range CategoryDistribution(transactions) {
		groupTotal += g.Value
	}

	if groupTotal != expenseTotal {
		t.Fatalf("group total %v != expense total %v", groupTotal, expenseTotal)
	}
}

func TestDebtComposition(t *testing.T) {
	debts := []entity.Debt{
		{Name: "Cartão", Remaining: 1200, Category: "Cartão de crédito"},
		{Name: "Financiamento", Remaining: 80000, Category: "Imóvel"},
		{Name: "Cartão loja", Remaining: 300, Category: "Cartão de crédito"},
	}

	groups := DebtComposition(debts)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}
	if groups[0].Name != "Cartão de crédito" || groups[0].Value != 1500 {
		t.Fatalf("group 0 = %+v", groups[0])
	}
	if groups[1].Name != "Imóvel" || groups[1].Value != 80000 {
		t.Fatalf("group 1 = %+v", groups[1])
	}
}

func TestDistributionEmpty(t *testing.T) {
	if groups := CategoryDistribution(nil); len(groups) != 0 {
		t.Fatalf("expected empty result, got %+v", groups)
	}
	if groups := DebtComposition(nil); len(groups) != 0 {
		t.Fatalf("expected empty result, got %+v", groups)
	}
}
