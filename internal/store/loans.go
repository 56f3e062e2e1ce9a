package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/loancalc"
)

// LoanAPI is the slice of the mock API the loan store uses.
type LoanAPI interface {
	ListLoans(ctx context.Context, customerID string) ([]domain.Loan, error)
	CalculateLoan(ctx context.Context, principal, annualRatePct float64, termMonths int) (loancalc.Result, error)
}

// LoanStore holds the loan book and the last calculator result.
type LoanStore struct {
	tracker
	api LoanAPI

	loans           []domain.Loan
	lastCalculation *loancalc.Result
}

// NewLoanStore constructs an empty loan store.
func NewLoanStore(api LoanAPI) *LoanStore {
	return &LoanStore{api: api}
}

// Fetch loads the loan book, optionally scoped to one customer. The failure
// is recorded on the store and also returned.
func (s *LoanStore) Fetch(ctx context.Context, customerID string) error {
	gen := s.begin()
	loans, err := s.api.ListLoans(ctx, customerID)
	s.complete(gen, err, func() {
		s.loans = loans
	})
	return err
}

// Calculate runs the loan simulator and keeps the result as the derived item.
// The error is stored and returned so the calculator form can show it inline.
func (s *LoanStore) Calculate(ctx context.Context, principal, annualRatePct float64, termMonths int) (loancalc.Result, error) {
	gen := s.begin()
	result, err := s.api.CalculateLoan(ctx, principal, annualRatePct, termMonths)
	if err != nil {
		s.fail(gen, err)
		return loancalc.Result{}, err
	}
	s.complete(gen, nil, func() {
		r := result
		s.lastCalculation = &r
	})
	return result, nil
}

// Loans returns a copy of the held loan book.
func (s *LoanStore) Loans() []domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Loan(nil), s.loans...)
}

// LastCalculation returns the most recent calculator result, if any.
func (s *LoanStore) LastCalculation() (loancalc.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCalculation == nil {
		return loancalc.Result{}, false
	}
	return *s.lastCalculation, true
}
