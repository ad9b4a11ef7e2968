package transactionHandler

import (
	"testing"
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func TestToResponse(t *testing.T) {
	tx := entity.Transaction{
		ID:          "t1",
		Description: "Mercado",
		Amount:      1234.5,
		Type:        "expense",
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Category:    "Alimentação",
		Status:      "completed",
		AccountID:   "a1",
	}

	response := toResponse(tx, map[string]string{"a1": "Conta Principal"})

	if response.Date != "2025-03-10" {
		t.Fatalf("date = %q", response.Date)
	}
	if response.Amount != 1234.5 {
		t.Fatalf("amount = %v, want raw value preserved", response.Amount)
	}
	if response.AmountFormatted != "R$ 1.234,50" {
		t.Fatalf("amount formatted = %q", response.AmountFormatted)
	}
	if response.AccountName != "Conta Principal" {
		t.Fatalf("account name = %q", response.AccountName)
	}
}

func TestToResponseUnknownAccount(t *testing.T) {
	tx := entity.Transaction{ID: "t1", Amount: 10, AccountID: "ghost"}

	if response := toResponse(tx, nil); response.AccountName != "" {
		t.Fatalf("unknown account must stay unnamed, got %q", response.AccountName)
	}
}
