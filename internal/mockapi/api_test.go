package mockapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// newTestAPI builds an API with zero latency and no injected faults so tests
// run deterministically.
func newTestAPI(t *testing.T) *API {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, Config{Seed: 1})
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.Status)
	require.Equal(t, code, apiErr.Code)
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	employee, err := api.Login(ctx, "jkaczmarek", fixtures.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, "emp_001", employee.ID)

	_, err = api.Login(ctx, "jkaczmarek", "nope")
	requireAPIError(t, err, http.StatusUnauthorized, CodeInvalidCredentials)

	_, err = api.Login(ctx, "", fixtures.DemoPassword)
	requireAPIError(t, err, http.StatusBadRequest, CodeMissingID)
}

func TestListCustomersSearch(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	all, err := api.ListCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)

	filtered, err := api.ListCustomers(ctx, strings.ToUpper(all[0].LastName))
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	for _, c := range filtered {
		require.Contains(t, strings.ToLower(c.FullName()), strings.ToLower(all[0].LastName))
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	api := newTestAPI(t)

	_, err := api.GetCustomer(context.Background(), "cust_999")
	requireAPIError(t, err, http.StatusNotFound, CodeNotFound)
}

func TestAddCustomerNote(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	note, err := api.AddCustomerNote(ctx, "cust_001", "emp_002", "  called about mortgage  ")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(note.ID, "note_"))
	require.Equal(t, "called about mortgage", note.Text)

	_, err = api.AddCustomerNote(ctx, "cust_001", "emp_002", "   ")
	requireAPIError(t, err, http.StatusBadRequest, CodeMissingID)
}

func TestCreateTransaction(t *testing.T) {
	api := newTestAPI(t)

	tx, err := api.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:          domain.TransactionTransfer,
		Amount:        500,
		FromAccountID: "acc_001",
		ToAccountID:   "acc_004",
		CustomerID:    "cust_001",
		EmployeeID:    "emp_001",
		Title:         "Rent",
	})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(tx.ID, "tx_"))
	require.Equal(t, domain.TransactionPending, tx.Status)
	require.Equal(t, "PLN", tx.Currency)

	wantPrefix := fmt.Sprintf("TXN%d", time.Now().UTC().Year())
	require.True(t, strings.HasPrefix(tx.ReferenceNumber, wantPrefix), tx.ReferenceNumber)
}

func TestCreateTransactionValidation(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	base := CreateTransactionInput{
		Type:          domain.TransactionTransfer,
		Amount:        100,
		FromAccountID: "acc_001",
		CustomerID:    "cust_001",
		EmployeeID:    "emp_001",
	}

	missing := base
	missing.FromAccountID = ""
	_, err := api.CreateTransaction(ctx, missing)
	requireAPIError(t, err, http.StatusBadRequest, CodeMissingID)

	negative := base
	negative.Amount = -5
	_, err = api.CreateTransaction(ctx, negative)
	requireAPIError(t, err, http.StatusBadRequest, CodeInvalidAmount)

	overLimit := base
	overLimit.Amount = TransferLimit + 0.01
	_, err = api.CreateTransaction(ctx, overLimit)
	requireAPIError(t, err, http.StatusUnprocessableEntity, CodeAmountLimitExceeded)
}

func TestCreateTransactionInsufficientFunds(t *testing.T) {
	api := newTestAPI(t)

	// acc_003 carries a negative seed balance, so any positive amount fails.
	_, err := api.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:          domain.TransactionTransfer,
		Amount:        50,
		FromAccountID: "acc_003",
		CustomerID:    "cust_002",
		EmployeeID:    "emp_001",
	})
	requireAPIError(t, err, http.StatusConflict, CodeInsufficientFunds)
}

func TestDepositWithoutSourceAccount(t *testing.T) {
	api := newTestAPI(t)

	tx, err := api.CreateTransaction(context.Background(), CreateTransactionInput{
		Type:        domain.TransactionDeposit,
		Amount:      200,
		ToAccountID: "acc_001",
		CustomerID:  "cust_001",
		EmployeeID:  "emp_001",
	})
	require.NoError(t, err)
	require.Equal(t, domain.TransactionDeposit, tx.Type)
}

func TestAddQueueItemNumbersIncrease(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	first, err := api.AddQueueItem(ctx, AddQueueItemInput{CustomerName: "Walk-in A"})
	require.NoError(t, err)
	require.Equal(t, fixtures.MaxSeedQueueNumber+1, first.QueueNumber)
	require.Equal(t, domain.QueueWaiting, first.Status)
	require.Equal(t, domain.PriorityNormal, first.Priority)

	second, err := api.AddQueueItem(ctx, AddQueueItemInput{CustomerName: "Walk-in B"})
	require.NoError(t, err)
	require.Equal(t, first.QueueNumber+1, second.QueueNumber)
}

func TestSetCardStatusEnforcesTransitions(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	card, err := api.SetCardStatus(ctx, "card_001", domain.CardBlocked)
	require.NoError(t, err)
	require.Equal(t, domain.CardBlocked, card.Status)

	// card_005 is expired; expired is terminal.
	_, err = api.SetCardStatus(ctx, "card_005", domain.CardActive)
	requireAPIError(t, err, http.StatusConflict, CodeInvalidCardStatus)

	_, err = api.SetCardStatus(ctx, "card_999", domain.CardBlocked)
	requireAPIError(t, err, http.StatusNotFound, CodeNotFound)
}

func TestCalculateLoanRejectsBadInput(t *testing.T) {
	api := newTestAPI(t)

	_, err := api.CalculateLoan(context.Background(), -1, 5, 12)
	requireAPIError(t, err, http.StatusBadRequest, CodeInvalidAmount)
}

func TestSimulateHonoursCancellation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := New(logger, Config{
		Latency: Latency{List: 5 * time.Second},
		Seed:    1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := api.ListCustomers(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}

func TestRandomFaults(t *testing.T) {
	always := NewRandomFaults(42, 1, 1, 1)
	for _, class := range []OpClass{OpRead, OpMutation, OpMoneyMovement} {
		apiErr := always.Check(class)
		require.NotNil(t, apiErr)
		require.Contains(t, []string{CodeTimeout, CodeServiceUnavailable, CodeRateLimited}, apiErr.Code)
		require.True(t, apiErr.Status >= 400)
	}

	never := NewRandomFaults(42, 0, 0, 0)
	for i := 0; i < 100; i++ {
		require.Nil(t, never.Check(OpMoneyMovement))
	}

	require.Nil(t, NoFaults{}.Check(OpMoneyMovement))
}

func TestInjectedFaultSurfacesAsError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := New(logger, Config{
		Faults: NewRandomFaults(7, 1, 1, 1),
		Seed:   7,
	})

	_, err := api.ListCustomers(context.Background(), "")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.GreaterOrEqual(t, apiErr.Status, 400)
}
