package transaction

import "github.com/Thyago-vibe/axxy-financeiro/pkg/response"

var (
	ErrTransactionNotFound      = response.NewError(404, "transaction not found")
	ErrInvalidTransactionType   = response.NewError(400, "invalid transaction type")
	ErrInvalidTransactionStatus = response.NewError(400, "invalid transaction status")
	ErrInvalidAmount            = response.NewError(400, "invalid transaction amount")
	ErrInvalidDate              = response.NewError(400, "invalid transaction date")
	ErrCreateTransaction        = response.NewError(502, "failed to create transaction")
	ErrUpdateTransaction        = response.NewError(502, "failed to update transaction")
	ErrDeleteTransaction        = response.NewError(502, "failed to delete transaction")
)
