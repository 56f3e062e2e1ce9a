package mockapi

import (
	"context"
	"net/http"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
	"github.com/ecm-digital/bankingapp-sub000/internal/loancalc"
)

// ListLoans returns the seed loan book, optionally filtered by customer.
func (a *API) ListLoans(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}

	loans := fixtures.Loans()
	if customerID == "" {
		return loans, nil
	}
	var filtered []domain.Loan
	for _, l := range loans {
		if l.CustomerID == customerID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// CalculateLoan runs the amortization calculator behind the simulated latency
// envelope so the UI exercises the same loading states as any other call.
func (a *API) CalculateLoan(ctx context.Context, principal, annualRatePct float64, termMonths int) (loancalc.Result, error) {
	if err := a.simulate(ctx, opDetail, OpRead); err != nil {
		return loancalc.Result{}, err
	}

	result, err := loancalc.Calculate(principal, annualRatePct, termMonths)
	if err != nil {
		return loancalc.Result{}, NewError(http.StatusBadRequest, CodeInvalidAmount, err.Error())
	}
	return result, nil
}
