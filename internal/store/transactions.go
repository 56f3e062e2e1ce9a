package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

// TransactionAPI is the slice of the mock API the transaction store uses.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, customerID string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, in mockapi.CreateTransactionInput) (domain.Transaction, error)
}

// TransactionStore holds the transaction history and the last created entry.
type TransactionStore struct {
	tracker
	api TransactionAPI

	transactions []domain.Transaction
	lastCreated  *domain.Transaction
}

// NewTransactionStore constructs an empty transaction store.
func NewTransactionStore(api TransactionAPI) *TransactionStore {
	return &TransactionStore{api: api}
}

// Fetch loads the transaction list, optionally scoped to one customer. The
// failure is recorded on the store and also returned.
func (s *TransactionStore) Fetch(ctx context.Context, customerID string) error {
	gen := s.begin()
	txs, err := s.api.ListTransactions(ctx, customerID)
	s.complete(gen, err, func() {
		s.transactions = txs
	})
	return err
}

// Create submits a new transaction. On success it is prepended to the local
// history; on failure the error is recorded and returned for inline display,
// and prior state stays untouched.
func (s *TransactionStore) Create(ctx context.Context, in mockapi.CreateTransactionInput) (domain.Transaction, error) {
	gen := s.begin()
	tx, err := s.api.CreateTransaction(ctx, in)
	if err != nil {
		s.fail(gen, err)
		return domain.Transaction{}, err
	}
	s.complete(gen, nil, func() {
		s.transactions = append([]domain.Transaction{tx}, s.transactions...)
		created := tx
		s.lastCreated = &created
	})
	return tx, nil
}

// Transactions returns a copy of the held history.
func (s *TransactionStore) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Transaction(nil), s.transactions...)
}

// LastCreated returns the most recently created transaction, if any.
func (s *TransactionStore) LastCreated() (domain.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCreated == nil {
		return domain.Transaction{}, false
	}
	return *s.lastCreated, true
}
