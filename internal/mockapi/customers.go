package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// ListCustomers returns all seed customers, optionally filtered by a
// case-insensitive name/id search.
func (a *API) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}

	customers := fixtures.Customers()
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return customers, nil
	}

	var filtered []domain.Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName()), search) ||
			strings.Contains(strings.ToLower(c.ID), search) ||
			strings.Contains(c.NationalID, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// GetCustomer returns a single customer profile.
func (a *API) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	if err := a.simulate(ctx, opDetail, OpRead); err != nil {
		return domain.Customer{}, err
	}
	if id == "" {
		return domain.Customer{}, NewError(http.StatusBadRequest, CodeMissingID, "customer id is required")
	}
	for _, c := range fixtures.Customers() {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, NewError(http.StatusNotFound, CodeNotFound, "customer not found")
}

// AddCustomerNote appends an employee note to a customer profile and returns
// the stored note.
func (a *API) AddCustomerNote(ctx context.Context, customerID, employeeID, text string) (domain.CustomerNote, error) {
	if err := a.simulate(ctx, opMutation, OpMutation); err != nil {
		return domain.CustomerNote{}, err
	}
	if customerID == "" || employeeID == "" {
		return domain.CustomerNote{}, NewError(http.StatusBadRequest, CodeMissingID, "customer and employee ids are required")
	}
	if strings.TrimSpace(text) == "" {
		return domain.CustomerNote{}, NewError(http.StatusBadRequest, CodeMissingID, "note text is required")
	}
	if _, err := a.findCustomer(customerID); err != nil {
		return domain.CustomerNote{}, err
	}

	return domain.CustomerNote{
		ID:         "note_" + uuid.NewString(),
		EmployeeID: employeeID,
		Text:       strings.TrimSpace(text),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (a *API) findCustomer(id string) (domain.Customer, error) {
	for _, c := range fixtures.Customers() {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, NewError(http.StatusNotFound, CodeNotFound, "customer not found")
}
