// Package app aggregates the per-domain stores into one portal-wide state
// container with fan-out refresh, health aggregation, a TTL detail cache and
// a sequenced operation queue for mutations.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
	"github.com/ecm-digital/bankingapp-sub000/internal/store"
)

// Scenario selects a scripted branch situation for demos.
type Scenario string

const (
	ScenarioStandard   Scenario = "STANDARD"
	ScenarioBusyBranch Scenario = "BUSY_BRANCH"
	ScenarioQuietDay   Scenario = "QUIET_DAY"
)

const (
	detailCacheSize = 32
	detailCacheAge  = 5 * time.Minute
)

// State is the composite application state. Construct with New and release
// with Close; there are no package-level singletons.
type State struct {
	logger *slog.Logger

	Auth         *store.AuthStore
	Customers    *store.CustomerStore
	Transactions *store.TransactionStore
	Queue        *store.QueueStore
	Products     *store.ProductStore
	Cards        *store.CardStore
	Loans        *store.LoanStore

	cache       *Cache
	ops         *OpQueue
	initialized atomic.Bool
}

// New wires all stores against the provided mock API.
func New(logger *slog.Logger, api *mockapi.API) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		logger:       logger,
		Auth:         store.NewAuthStore(api),
		Customers:    store.NewCustomerStore(api),
		Transactions: store.NewTransactionStore(api),
		Queue:        store.NewQueueStore(api),
		Products:     store.NewProductStore(api),
		Cards:        store.NewCardStore(api),
		Loans:        store.NewLoanStore(api),
		cache:        NewCache(detailCacheSize, detailCacheAge),
		ops:          NewOpQueue(16),
	}
}

// Close tears down the operation queue, draining queued mutations.
func (s *State) Close() {
	s.ops.Close()
}

func (s *State) stores() map[string]store.State {
	return map[string]store.State{
		"auth":         s.Auth,
		"customers":    s.Customers,
		"transactions": s.Transactions,
		"queue":        s.Queue,
		"products":     s.Products,
		"cards":        s.Cards,
		"loans":        s.Loans,
	}
}

// IsAnyLoading reports whether any store has an action in flight.
func (s *State) IsAnyLoading() bool {
	for _, st := range s.stores() {
		if st.Loading() {
			return true
		}
	}
	return false
}

// HasAnyError reports whether any store carries an error.
func (s *State) HasAnyError() bool {
	return len(s.Errors()) > 0
}

// Errors collects the current error messages across all stores.
func (s *State) Errors() []string {
	var msgs []string
	for name, st := range s.stores() {
		if msg := st.Err(); msg != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", name, msg))
		}
	}
	return msgs
}

// Initialize performs the first full data load and marks the state ready.
func (s *State) Initialize(ctx context.Context) error {
	err := s.RefreshAll(ctx)
	s.initialized.Store(true)
	return err
}

// RefreshAll fans the list fetches out concurrently and joins the outcome.
// Stores record their own failures; the returned error summarises them.
func (s *State) RefreshAll(ctx context.Context) error {
	tasks := []func(){
		func() { s.Customers.Fetch(ctx, "") },
		func() { s.Transactions.Fetch(ctx, "") },
		func() { s.Queue.Fetch(ctx) },
		func() { s.Products.Fetch(ctx, "") },
		func() { s.Cards.Fetch(ctx, "") },
		func() { s.Loans.Fetch(ctx, "") },
	}
	runParallel(ctx, tasks, 4)

	if err := ctx.Err(); err != nil {
		return err
	}
	if errs := s.Errors(); len(errs) > 0 {
		return &RefreshError{Failures: errs}
	}
	return nil
}

// RefreshError reports which stores failed during a fan-out refresh.
type RefreshError struct {
	Failures []string
}

func (e *RefreshError) Error() string {
	if len(e.Failures) == 1 {
		return e.Failures[0]
	}
	msg := "refresh failures:"
	for _, f := range e.Failures {
		msg += " " + f + ";"
	}
	return msg
}

// runParallel drains the task list with a bounded worker pool.
func runParallel(ctx context.Context, tasks []func(), workers int) {
	if workers <= 0 {
		workers = 4
	}
	indexCh := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				tasks[idx]()
			}
		}()
	}

Loop:
	for i := range tasks {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
}

// CustomerDetail resolves one customer profile through the TTL cache, falling
// back to the store on a miss.
func (s *State) CustomerDetail(ctx context.Context, id string) (domain.Customer, error) {
	key := "customer:" + id
	if cached, ok := s.cache.Get(key); ok {
		if customer, ok := cached.(domain.Customer); ok {
			return customer, nil
		}
	}

	customer, err := s.Customers.Select(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	s.cache.Set(key, customer)
	return customer, nil
}

// SubmitTransaction runs the transfer wizard submission through the operation
// queue so money-moving writes are strictly sequenced.
func (s *State) SubmitTransaction(ctx context.Context, in mockapi.CreateTransactionInput) (domain.Transaction, error) {
	var tx domain.Transaction
	err := s.ops.Do(ctx, func(ctx context.Context) error {
		created, err := s.Transactions.Create(ctx, in)
		if err != nil {
			return err
		}
		tx = created
		return nil
	})
	return tx, err
}

// CallNextCustomer promotes the next waiting ticket, sequenced with the other
// mutations.
func (s *State) CallNextCustomer(ctx context.Context) (domain.QueueItem, error) {
	var item domain.QueueItem
	err := s.ops.Do(ctx, func(context.Context) error {
		next, err := s.Queue.CallNext()
		if err != nil {
			return err
		}
		item = next
		return nil
	})
	return item, err
}

// AddWalkIn registers a walk-in ticket, sequenced with the other mutations.
func (s *State) AddWalkIn(ctx context.Context, in mockapi.AddQueueItemInput) (domain.QueueItem, error) {
	var item domain.QueueItem
	err := s.ops.Do(ctx, func(ctx context.Context) error {
		added, err := s.Queue.AddWalkIn(ctx, in)
		if err != nil {
			return err
		}
		item = added
		return nil
	})
	return item, err
}

// ChangeCardStatus applies a card status change, sequenced with the other
// mutations.
func (s *State) ChangeCardStatus(ctx context.Context, cardID string, status domain.CardStatus) (domain.Card, error) {
	var card domain.Card
	err := s.ops.Do(ctx, func(ctx context.Context) error {
		updated, err := s.Cards.SetStatus(ctx, cardID, status)
		if err != nil {
			return err
		}
		card = updated
		return nil
	})
	return card, err
}

// LoadScenario refreshes the data and applies a scripted branch situation.
func (s *State) LoadScenario(ctx context.Context, scenario Scenario) error {
	if err := s.RefreshAll(ctx); err != nil {
		return err
	}
	s.cache.Clear()

	switch scenario {
	case ScenarioBusyBranch:
		walkIns := []mockapi.AddQueueItemInput{
			{CustomerName: "Walk-in: Krzysztof Mazur", ServiceType: domain.ServiceCashier, Priority: domain.PriorityUrgent},
			{CustomerName: "Walk-in: Barbara Dąbrowska", ServiceType: domain.ServiceAdvisory, Priority: domain.PriorityHigh},
			{CustomerName: "Walk-in: Andrzej Pawlak", ServiceType: domain.ServiceCashier, Priority: domain.PriorityNormal},
		}
		for _, in := range walkIns {
			if _, err := s.AddWalkIn(ctx, in); err != nil {
				return fmt.Errorf("seed busy branch: %w", err)
			}
		}
	case ScenarioQuietDay:
		// Serve the backlog down so only the seeded in-service ticket remains.
		for s.Queue.WaitingCount() > 0 {
			if _, err := s.CallNextCustomer(ctx); err != nil {
				break
			}
		}
		s.Queue.CompleteCurrent()
	}

	s.logger.Info("scenario loaded", "scenario", string(scenario))
	return nil
}
