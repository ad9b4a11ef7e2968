package entity

import (
	"time"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

func IsValidTransactionStatus(status string) bool {
	switch TransactionStatus(status) {
	case TransactionStatusCompleted, TransactionStatusPending:
		return true
	default:
		return false
	}
}

// Transaction is a single income or expense record. Amount is always
// non-negative; the sign is implied by Type.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	AccountID   string    `json:"account_id,omitempty"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return transaction.ErrInvalidTransactionStatus
	}

	if t.Amount < 0 {
		return transaction.ErrInvalidAmount
	}

	return nil
}
