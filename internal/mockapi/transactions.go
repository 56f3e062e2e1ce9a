package mockapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// TransferLimit is the single-operation amount ceiling enforced by the
// transfer wizard.
const TransferLimit = 100000.0

// CreateTransactionInput carries the transfer wizard payload.
type CreateTransactionInput struct {
	Type          domain.TransactionType
	Amount        float64
	Currency      string
	FromAccountID string
	ToAccountID   string
	Category      string
	Title         string
	CustomerID    string
	EmployeeID    string
}

// ListTransactions returns the seed transaction history, optionally filtered
// by customer.
func (a *API) ListTransactions(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}

	txs := fixtures.Transactions()
	if customerID == "" {
		return txs, nil
	}
	var filtered []domain.Transaction
	for _, tx := range txs {
		if tx.CustomerID == customerID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// CreateTransaction validates and records a new transaction. Validation is
// deterministic: insufficient funds derives from the actual seeded balance of
// the source account, never from chance.
func (a *API) CreateTransaction(ctx context.Context, in CreateTransactionInput) (domain.Transaction, error) {
	if err := a.simulate(ctx, opMutation, OpMoneyMovement); err != nil {
		return domain.Transaction{}, err
	}

	if in.FromAccountID == "" && in.Type != domain.TransactionDeposit {
		return domain.Transaction{}, NewError(http.StatusBadRequest, CodeMissingID, "source account id is required")
	}
	if in.CustomerID == "" || in.EmployeeID == "" {
		return domain.Transaction{}, NewError(http.StatusBadRequest, CodeMissingID, "customer and employee ids are required")
	}
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return domain.Transaction{}, NewError(http.StatusBadRequest, CodeInvalidAmount, "amount must be a positive number")
	}
	if in.Amount > TransferLimit {
		return domain.Transaction{}, NewError(http.StatusUnprocessableEntity, CodeAmountLimitExceeded,
			fmt.Sprintf("amount exceeds the %0.f limit for a single operation", TransferLimit))
	}

	if in.FromAccountID != "" {
		if acc, ok := fixtures.AccountByID(in.FromAccountID); ok && acc.Balance < in.Amount {
			return domain.Transaction{}, NewError(http.StatusConflict, CodeInsufficientFunds, "insufficient funds on the source account")
		}
	}

	now := time.Now().UTC()
	txType := in.Type
	if txType == "" {
		txType = domain.TransactionTransfer
	}
	currency := in.Currency
	if currency == "" {
		currency = "PLN"
	}

	return domain.Transaction{
		ID:              "tx_" + uuid.NewString(),
		Type:            txType,
		Amount:          in.Amount,
		Currency:        currency,
		FromAccountID:   in.FromAccountID,
		ToAccountID:     in.ToAccountID,
		Category:        in.Category,
		Status:          domain.TransactionPending,
		Title:           in.Title,
		ReferenceNumber: a.nextReference(now),
		CustomerID:      in.CustomerID,
		EmployeeID:      in.EmployeeID,
		Timestamp:       now,
	}, nil
}

// nextReference produces TXN<year><sequence> reference numbers, unique within
// the session.
func (a *API) nextReference(now time.Time) string {
	a.mu.Lock()
	a.txSeq++
	seq := a.txSeq
	a.mu.Unlock()
	return fmt.Sprintf("TXN%d%06d", now.Year(), seq)
}
