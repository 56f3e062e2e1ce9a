package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/analysis"
	"github.com/ecm-digital/bankingapp-sub000/internal/app"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

func newTestRouter(t *testing.T) (http.Handler, *app.State) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := mockapi.New(logger, mockapi.Config{Seed: 1})
	state := app.New(logger, api)
	t.Cleanup(state.Close)

	analyzer := analysis.NewClient("", "", "", time.Second)
	handlers := NewHandlers(logger, state, analyzer)
	router := NewRouter(logger, RouterDependencies{Handlers: handlers})
	return router, state
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "jkaczmarek",
		"password": "portal-demo",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "jkaczmarek", body["username"])

	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "jkaczmarek",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	errPayload, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "AUTHORIZATION", errPayload["type"])
	require.Equal(t, false, errPayload["recoverable"])
}

func TestListCustomers(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 5)
}

func TestGetCustomerNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/customers/cust_missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	errPayload := body["error"].(map[string]any)
	require.Equal(t, "BUSINESS", errPayload["type"])
	require.Equal(t, "NOT_FOUND", errPayload["code"])
}

func TestCreateTransaction(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/transactions", map[string]any{
		"type":          "TRANSFER",
		"amount":        500.0,
		"fromAccountId": "acc_001",
		"toAccountId":   "acc_004",
		"customerId":    "cust_001",
		"employeeId":    "emp_001",
		"title":         "Rent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "PENDING", body["status"])
	require.Contains(t, body["id"], "tx_")
}

func TestCreateTransactionOverLimit(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/transactions", map[string]any{
		"type":          "TRANSFER",
		"amount":        100000.01,
		"fromAccountId": "acc_001",
		"customerId":    "cust_001",
		"employeeId":    "emp_001",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	errPayload := body["error"].(map[string]any)
	require.Equal(t, "VALIDATION", errPayload["type"])
	require.Equal(t, "AMOUNT_LIMIT_EXCEEDED", errPayload["code"])
}

func TestQueueCallNext(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/queue", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/queue/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "IN_SERVICE", body["status"])
}

func TestCardStatusTransitionRejected(t *testing.T) {
	router, state := newTestRouter(t)

	require.NoError(t, state.Cards.Fetch(context.Background(), ""))
	var expiredID string
	for _, card := range state.Cards.Cards() {
		if card.Status == "EXPIRED" {
			expiredID = card.ID
		}
	}
	require.NotEmpty(t, expiredID)

	rec := doJSON(t, router, http.MethodPatch, "/api/cards/"+expiredID+"/status", map[string]string{
		"status": "ACTIVE",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	errPayload := body["error"].(map[string]any)
	require.Equal(t, "INVALID_CARD_STATUS", errPayload["code"])
}

func TestLoanCalculator(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/loans/calculator", map[string]any{
		"principal":     100000.0,
		"annualRatePct": 5.5,
		"termMonths":    120,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.InDelta(t, 1085.26, body["monthlyPayment"], 0.001)
}

func TestCustomerAnalysisFallsBack(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/customers/cust_001/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "fallback", body["source"])
	require.NotEmpty(t, body["summary"])
}

func TestHealthz(t *testing.T) {
	router, state := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, state.Initialize(context.Background()))

	rec = doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, true, body["healthy"])
}
