package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// AuthAPI is the slice of the mock API the auth store uses.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.Employee, error)
}

// AuthStore holds the mock login session: the employee currently signed in.
type AuthStore struct {
	tracker
	api AuthAPI

	current *domain.Employee
}

// NewAuthStore constructs a signed-out auth store.
func NewAuthStore(api AuthAPI) *AuthStore {
	return &AuthStore{api: api}
}

// Login authenticates an employee. The error is stored and returned so the
// login form can show inline feedback.
func (s *AuthStore) Login(ctx context.Context, username, password string) (domain.Employee, error) {
	gen := s.begin()
	employee, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.fail(gen, err)
		return domain.Employee{}, err
	}
	s.complete(gen, nil, func() {
		e := employee
		s.current = &e
	})
	return employee, nil
}

// Logout drops the session.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the signed-in employee, if any.
func (s *AuthStore) Current() (domain.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Employee{}, false
	}
	return *s.current, true
}

// Authenticated reports whether an employee is signed in.
func (s *AuthStore) Authenticated() bool {
	_, ok := s.Current()
	return ok
}
