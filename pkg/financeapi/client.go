// Package financeapi is the typed gateway to the remote finance
// backend. Every list fetch degrades to an empty collection on failure
// so the aggregates above it always receive a well-typed slice; writes
// return the canonical server-assigned record.
package financeapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
	contextPkg "github.com/Thyago-vibe/axxy-financeiro/pkg/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound marks a 404 from the backend so callers can distinguish a
// missing record from a transport failure.
var ErrNotFound = errors.New("resource not found")

const defaultTimeout = 10 * time.Second

type IFinanceAPI interface {
	ListTransactions(ctx context.Context) []entity.Transaction
	ListAccounts(ctx context.Context) []entity.Account
	ListCategories(ctx context.Context) []entity.Category
	ListBudgets(ctx context.Context) []entity.Budget
	ListDebts(ctx context.Context) []entity.Debt
	ListGoals(ctx context.Context) []entity.Goal
	ListAssets(ctx context.Context) []entity.Asset
	ListLiabilities(ctx context.Context) []entity.Liability
	GetNetWorth(ctx context.Context) entity.NetWorth
	GetProfile(ctx context.Context) entity.Profile
	GetPaycheckPlan(ctx context.Context) (float64, []entity.PaycheckAllocation)
	CreateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, tx entity.Transaction) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)
	ExportBackup(ctx context.Context) (entity.Backup, error)
	ImportBackup(ctx context.Context, backup entity.Backup) error
}

type client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// New reads FINANCE_API_BASE_URL and FINANCE_API_TIMEOUT (seconds) from
// the environment. The timeout lives here at the gateway boundary; the
// aggregates never see it.
func New(log *logrus.Logger) (IFinanceAPI, error) {
	baseURL := os.Getenv("FINANCE_API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("FINANCE_API_BASE_URL is required")
	}

	timeout := defaultTimeout
	if raw := os.Getenv("FINANCE_API_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// NewWithBaseURL is used by tests to point the gateway at a local server.
func NewWithBaseURL(log *logrus.Logger, baseURL string) IFinanceAPI {
	return &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log,
	}
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *client) send(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *client) do(req *http.Request) ([]byte, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrNotFound)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, res.StatusCode)
	}

	return data, nil
}

// warnFetch logs a degraded read; the caller substitutes its empty
// default and the request keeps going.
func (c *client) warnFetch(ctx context.Context, resource string, err error) {
	c.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"resource":   resource,
		"error":      err.Error(),
	}).Warn("Finance API fetch failed, substituting empty default")
}
