package dashboardHandler

import (
	"testing"

	"github.com/Thyago-vibe/axxy-financeiro/internal/finance"
)

func TestToSummaryResponse(t *testing.T) {
	summary := finance.Summary{
		Balance:      1234.56,
		TotalIncome:  2000,
		TotalExpense: 765.44,
		IncomeMonth:  1000,
		ExpenseMonth: 300,
	}

	response := toSummaryResponse(summary)

	if response.Balance != 1234.56 {
		t.Fatalf("balance = %v, want raw value preserved", response.Balance)
	}
	if response.BalanceFormatted != "R$ 1.234,56" {
		t.Fatalf("balance formatted = %q", response.BalanceFormatted)
	}
	if response.TotalIncomeFormatted != "R$ 2.000,00" {
		t.Fatalf("total income formatted = %q", response.TotalIncomeFormatted)
	}
	if response.ExpenseMonthFormatted != "R$ 300,00" {
		t.Fatalf("expense month formatted = %q", response.ExpenseMonthFormatted)
	}
}

func TestToSummaryResponseNegativeBalance(t *testing.T) {
	response := toSummaryResponse(finance.Summary{Balance: -500})

	if response.BalanceFormatted != "-R$ 500,00" {
		t.Fatalf("negative balance formatted = %q", response.BalanceFormatted)
	}
}
