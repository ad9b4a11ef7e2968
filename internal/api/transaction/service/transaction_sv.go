package transactionService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction"
	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/financeapi"
)

const dateLayout = "2006-01-02"

// ListTransactions fetches transactions and accounts in parallel and
// returns the account id -> name map alongside, the only join this
// side ever resolves.
func (s *transactionService) ListTransactions(ctx context.Context) ([]entity.Transaction, map[string]string) {
	var (
		transactions []entity.Transaction
		accounts     []entity.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions = s.financeAPI.ListTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		accounts = s.financeAPI.ListAccounts(gctx)
		return nil
	})
	// List fetches degrade to empty slices, never errors.
	_ = g.Wait()

	accountNames := make(map[string]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}

	return transactions, accountNames
}

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return entity.Transaction{}, transaction.ErrInvalidDate
	}

	tx := entity.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		Category:    req.Category,
		Status:      req.Status,
		AccountID:   req.AccountID,
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	created, err := s.financeAPI.CreateTransaction(ctx, tx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid transaction date")
		return entity.Transaction{}, transaction.ErrInvalidDate
	}

	tx := entity.Transaction{
		ID:          req.ID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		Category:    req.Category,
		Status:      req.Status,
		AccountID:   req.AccountID,
	}

	if err := tx.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	updated, err := s.financeAPI.UpdateTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, financeapi.ErrNotFound) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	deleted, err := s.financeAPI.DeleteTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, financeapi.ErrNotFound) {
			return false, transaction.ErrTransactionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return false, transaction.ErrDeleteTransaction
	}

	return deleted, nil
}
