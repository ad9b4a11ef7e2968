package handlerUtil

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Thyago-vibe/axxy-financeiro/internal/api/transaction"
	"github.com/Thyago-vibe/axxy-financeiro/pkg/log"
)

func testApp(t *testing.T, err error) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	h := New(log.NewLogger())
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, "/boom", "test_operation")
	})

	return app
}

func TestHandleUnexpectedErrorCarriesTraceID(t *testing.T) {
	app := testApp(t, errors.New("connection reset"))

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.StatusCode)
	}

	var body struct {
		Error   string `json:"error"`
		TraceID string `json:"trace_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	// The request id doubles as the trace id when one is present.
	if body.TraceID != "req-1" {
		t.Fatalf("trace_id = %q, want the request id", body.TraceID)
	}
}

func TestHandleTransactionNotFound(t *testing.T) {
	app := testApp(t, transaction.ErrTransactionNotFound)

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}
