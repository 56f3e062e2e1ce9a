package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

func newTestState(t *testing.T, faults mockapi.FaultInjector) *State {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := mockapi.New(logger, mockapi.Config{Faults: faults, Seed: 1})
	state := New(logger, api)
	t.Cleanup(state.Close)
	return state
}

func TestInitializeLoadsEveryDomain(t *testing.T) {
	state := newTestState(t, nil)

	require.NoError(t, state.Initialize(context.Background()))

	health := state.Health()
	require.True(t, health.Initialized)
	require.True(t, health.Healthy)
	require.Empty(t, health.Errors)
	for name, ready := range health.Data {
		require.True(t, ready, name)
	}
	require.False(t, state.IsAnyLoading())
	require.False(t, state.HasAnyError())
}

func TestRefreshAllReportsFaults(t *testing.T) {
	state := newTestState(t, mockapi.NewRandomFaults(3, 1, 1, 1))

	err := state.RefreshAll(context.Background())
	require.Error(t, err)

	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	require.NotEmpty(t, refreshErr.Failures)
	require.True(t, state.HasAnyError())

	health := state.Health()
	require.False(t, health.Healthy)
}

func TestCustomerDetailUsesCache(t *testing.T) {
	state := newTestState(t, nil)
	ctx := context.Background()

	first, err := state.CustomerDetail(ctx, "cust_001")
	require.NoError(t, err)
	require.Equal(t, "cust_001", first.ID)

	// A second lookup is served from the cache and matches the first.
	second, err := state.CustomerDetail(ctx, "cust_001")
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = state.CustomerDetail(ctx, "cust_missing")
	require.Error(t, err)
}

func TestSubmitTransactionUpdatesHistory(t *testing.T) {
	state := newTestState(t, nil)
	ctx := context.Background()

	require.NoError(t, state.Initialize(ctx))
	before := len(state.Transactions.Transactions())

	tx, err := state.SubmitTransaction(ctx, mockapi.CreateTransactionInput{
		Type:          domain.TransactionTransfer,
		Amount:        250,
		FromAccountID: "acc_001",
		ToAccountID:   "acc_004",
		CustomerID:    "cust_001",
		EmployeeID:    "emp_001",
	})
	require.NoError(t, err)
	require.Equal(t, domain.TransactionPending, tx.Status)
	require.Len(t, state.Transactions.Transactions(), before+1)
}

func TestCallNextCustomerServesQueue(t *testing.T) {
	state := newTestState(t, nil)
	ctx := context.Background()

	require.NoError(t, state.Initialize(ctx))

	item, err := state.CallNextCustomer(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.QueueInService, item.Status)

	serving, ok := state.Queue.CurrentlyServing()
	require.True(t, ok)
	require.Equal(t, item.ID, serving.ID)
}

func TestLoadScenarioBusyBranch(t *testing.T) {
	state := newTestState(t, nil)
	ctx := context.Background()

	require.NoError(t, state.Initialize(ctx))
	baseWaiting := state.Queue.WaitingCount()

	require.NoError(t, state.LoadScenario(ctx, ScenarioBusyBranch))
	// The refresh reloads the seed queue, then three walk-ins join it.
	require.Equal(t, baseWaiting+3, state.Queue.WaitingCount())
}

func TestLoadScenarioQuietDay(t *testing.T) {
	state := newTestState(t, nil)
	ctx := context.Background()

	require.NoError(t, state.Initialize(ctx))
	require.NoError(t, state.LoadScenario(ctx, ScenarioQuietDay))

	require.Equal(t, 0, state.Queue.WaitingCount())
	_, serving := state.Queue.CurrentlyServing()
	require.False(t, serving)
}
