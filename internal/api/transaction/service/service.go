package transactionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

type ITransactionService interface {
	ListTransactions(ctx context.Context) ([]entity.Transaction, map[string]string)
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)
}

type transactionService struct {
	log        *logrus.Logger
	financeAPI financeapi.IFinanceAPI
}

func NewTransactionService(log *logrus.Logger, api financeapi.IFinanceAPI) ITransactionService {
	return &transactionService{
		log:        log,
		financeAPI: api,
	}
}
