package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// CustomerAPI is the slice of the mock API the customer store depends on.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, search string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	AddCustomerNote(ctx context.Context, customerID, employeeID, text string) (domain.CustomerNote, error)
}

// CustomerStore holds the customer list and the currently selected profile.
type CustomerStore struct {
	tracker
	api CustomerAPI

	customers []domain.Customer
	selected  *domain.Customer
}

// NewCustomerStore constructs an empty customer store.
func NewCustomerStore(api CustomerAPI) *CustomerStore {
	return &CustomerStore{api: api}
}

// Fetch loads the customer list. Failures are recorded on the store and also
// returned so transport layers can surface the typed error.
func (s *CustomerStore) Fetch(ctx context.Context, search string) error {
	gen := s.begin()
	customers, err := s.api.ListCustomers(ctx, search)
	s.complete(gen, err, func() {
		s.customers = customers
		s.clampSelection()
	})
	return err
}

// Select loads one customer profile into the selected slot and returns it.
func (s *CustomerStore) Select(ctx context.Context, id string) (domain.Customer, error) {
	gen := s.begin()
	customer, err := s.api.GetCustomer(ctx, id)
	if err != nil {
		s.fail(gen, err)
		return domain.Customer{}, err
	}
	s.complete(gen, nil, func() {
		c := customer
		s.selected = &c
	})
	return customer, nil
}

// AddNote records a note through the API and splices it into the local copy
// of the customer. The error is both stored and returned so forms can show
// inline feedback.
func (s *CustomerStore) AddNote(ctx context.Context, customerID, employeeID, text string) (domain.CustomerNote, error) {
	gen := s.begin()
	note, err := s.api.AddCustomerNote(ctx, customerID, employeeID, text)
	if err != nil {
		s.fail(gen, err)
		return domain.CustomerNote{}, err
	}
	s.complete(gen, nil, func() {
		for i := range s.customers {
			if s.customers[i].ID == customerID {
				s.customers[i].Notes = append(s.customers[i].Notes, note)
			}
		}
		if s.selected != nil && s.selected.ID == customerID {
			s.selected.Notes = append(s.selected.Notes, note)
		}
	})
	return note, nil
}

// Customers returns a copy of the held customer list.
func (s *CustomerStore) Customers() []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Customer(nil), s.customers...)
}

// Selected returns the currently selected customer, if any.
func (s *CustomerStore) Selected() (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Customer{}, false
	}
	return *s.selected, true
}

// clampSelection drops the selection when it no longer exists in the list.
// Caller must hold the lock.
func (s *CustomerStore) clampSelection() {
	if s.selected == nil {
		return
	}
	for _, c := range s.customers {
		if c.ID == s.selected.ID {
			return
		}
	}
	s.selected = nil
}
