package financeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thyago-vibe/axxy-financeiro/internal/entity"
)

func entityTransaction(description string) entity.Transaction {
	return entity.Transaction{
		Description: description,
		Amount:      80,
		Type:        "expense",
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Category:    "Alimentação",
		Status:      "completed",
	}
}

func testClient(t *testing.T, handler http.Handler) IFinanceAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewWithBaseURL(log, server.URL)
}

func TestListTransactionsDegradesOnServerError(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	transactions := api.ListTransactions(context.Background())

	if transactions == nil {
		t.Fatal("degraded fetch must return an empty slice, not nil")
	}
	if len(transactions) != 0 {
		t.Fatalf("expected no transactions, got %+v", transactions)
	}
}

func TestListTransactionsDegradesOnBadJSON(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json at all")
	}))

	if transactions := api.ListTransactions(context.Background()); len(transactions) != 0 {
		t.Fatalf("expected no transactions, got %+v", transactions)
	}
}

func TestListTransactionsDropsInvalidRecords(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":"t1","description":"Mercado","amount":80,"type":"expense","date":"2025-03-10T00:00:00Z","category":"Alimentação","status":"completed"},
			{"id":"t2","description":"Misterioso","amount":10,"type":"transfer","date":"2025-03-11T00:00:00Z","category":"Outros","status":"completed"},
			{"id":"t3","description":"Negativo","amount":-5,"type":"expense","date":"2025-03-12T00:00:00Z","category":"Outros","status":"pending"}
		]`)
	}))

	transactions := api.ListTransactions(context.Background())

	if len(transactions) != 1 {
		t.Fatalf("expected only the valid record, got %+v", transactions)
	}
	if transactions[0].ID != "t1" {
		t.Fatalf("kept the wrong record: %+v", transactions[0])
	}
}

func TestListDebtsDropsBareDayDueDate(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":"d1","name":"Cartão","remaining":1200,"installment":250,"due_date":"2025-04-15","status":"Em dia","category":"Cartão de crédito"},
			{"id":"d2","name":"Legado","remaining":500,"installment":100,"due_date":"15","status":"Em dia","category":"Outros"},
			{"id":"d3","name":"Estranho","remaining":50,"installment":10,"due_date":"2025-04-20","status":"Quitado","category":"Outros"}
		]`)
	}))

	debts := api.ListDebts(context.Background())

	if len(debts) != 1 {
		t.Fatalf("expected only the canonical record, got %+v", debts)
	}
	if debts[0].ID != "d1" {
		t.Fatalf("kept the wrong record: %+v", debts[0])
	}
}

func TestCreateTransactionReturnsCanonicalRecord(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/transactions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"srv-42","description":"Mercado","amount":80,"type":"expense","date":"2025-03-10T00:00:00Z","category":"Alimentação","status":"completed"}`)
	}))

	created, err := api.CreateTransaction(context.Background(), entityTransaction("Mercado"))
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if created.ID != "srv-42" {
		t.Fatalf("expected server-assigned id, got %+v", created)
	}
}

func TestCreateTransactionSurfacesFailure(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	if _, err := api.CreateTransaction(context.Background(), entityTransaction("Mercado")); err == nil {
		t.Fatal("writes must surface failures, not degrade")
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	tx := entityTransaction("Mercado")
	tx.ID = "missing"

	_, err := api.UpdateTransaction(context.Background(), tx)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/transactions/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	ok, err := api.DeleteTransaction(context.Background(), "t1")
	if err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if !ok {
		t.Fatal("expected deletion to be reported as successful")
	}
}

func TestGetPaycheckPlan(t *testing.T) {
	api := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"total":5000,"allocations":[{"name":"Essenciais","amount":2500,"percentage":50,"items":[]}]}`)
	}))

	total, allocations := api.GetPaycheckPlan(context.Background())

	if total != 5000 {
		t.Fatalf("total = %v, want 5000", total)
	}
	if len(allocations) != 1 || allocations[0].Name != "Essenciais" {
		t.Fatalf("allocations = %+v", allocations)
	}
}
