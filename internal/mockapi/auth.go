package mockapi

import (
	"context"
	"net/http"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// Login authenticates an employee against the seed identities. The password
// is the fixed demo password; there is no real credential handling.
func (a *API) Login(ctx context.Context, username, password string) (domain.Employee, error) {
	if err := a.simulate(ctx, opDetail, OpMutation); err != nil {
		return domain.Employee{}, err
	}

	if username == "" || password == "" {
		return domain.Employee{}, NewError(http.StatusBadRequest, CodeMissingID, "username and password are required")
	}

	for _, emp := range fixtures.Employees() {
		if emp.Username == username && password == fixtures.DemoPassword {
			return emp, nil
		}
	}
	return domain.Employee{}, NewError(http.StatusUnauthorized, CodeInvalidCredentials, "invalid username or password")
}

// ListEmployees returns the seed employee directory.
func (a *API) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}
	return fixtures.Employees(), nil
}
