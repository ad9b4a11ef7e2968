package financeapi

import (
	"context"
	"net/http"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

// CreateTransaction returns the canonical server record, including the
// generated id, so the caller can splice it into its own state without a
// follow-up fetch.
func (c *client) CreateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	data, err := c.send(ctx, http.MethodPost, "/api/transactions", tx)
	if err != nil {
		return entity.Transaction{}, err
	}

	var created entity.Transaction
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Transaction{}, err
	}

	return created, nil
}

func (c *client) UpdateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	data, err := c.send(ctx, http.MethodPut, "/api/transactions/"+tx.ID, tx)
	if err != nil {
		return entity.Transaction{}, err
	}

	var updated entity.Transaction
	if err := json.Unmarshal(data, &updated); err != nil {
		return entity.Transaction{}, err
	}

	return updated, nil
}

// DeleteTransaction reports success as a flag; filtering the deleted id
// out of local state is the caller's job.
func (c *client) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/transactions/"+id, nil)
	if err != nil {
		return false, err
	}

	if _, err := c.do(req); err != nil {
		return false, err
	}

	return true, nil
}
