package fixtures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

func TestCustomersAreWellFormed(t *testing.T) {
	customers := Customers()
	require.Len(t, customers, 5)

	seenAccounts := map[string]bool{}
	for _, c := range customers {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.FirstName)
		require.NotEmpty(t, c.LastName)
		require.NotEmpty(t, c.Accounts, "customer %s must own at least one account", c.ID)

		for _, acc := range c.Accounts {
			require.False(t, seenAccounts[acc.ID], "duplicate account id %s", acc.ID)
			seenAccounts[acc.ID] = true
			require.False(t, math.IsNaN(acc.Balance) || math.IsInf(acc.Balance, 0))
			require.NotEmpty(t, acc.Currency)
		}
	}
}

func TestAccountByID(t *testing.T) {
	acc, ok := AccountByID("acc_003")
	require.True(t, ok)
	require.Negative(t, acc.Balance)

	_, ok = AccountByID("acc_missing")
	require.False(t, ok)
}

func TestTransactionsReferenceKnownEntities(t *testing.T) {
	customers := map[string]bool{}
	for _, c := range Customers() {
		customers[c.ID] = true
	}
	employees := map[string]bool{}
	for _, e := range Employees() {
		employees[e.ID] = true
	}

	refs := map[string]bool{}
	for _, tx := range Transactions() {
		require.Greater(t, tx.Amount, 0.0, "transaction %s", tx.ID)
		require.True(t, customers[tx.CustomerID], "transaction %s references unknown customer", tx.ID)
		require.True(t, employees[tx.EmployeeID], "transaction %s references unknown employee", tx.ID)
		require.False(t, refs[tx.ReferenceNumber], "duplicate reference %s", tx.ReferenceNumber)
		refs[tx.ReferenceNumber] = true
	}
}

func TestQueueNumbersStrictlyIncrease(t *testing.T) {
	items := QueueItems()
	require.NotEmpty(t, items)

	prev := 0
	inService := 0
	for _, item := range items {
		require.Greater(t, item.QueueNumber, prev)
		prev = item.QueueNumber
		if item.Status == domain.QueueInService {
			inService++
		}
	}
	require.Equal(t, MaxSeedQueueNumber, prev)
	require.LessOrEqual(t, inService, 1, "at most one ticket may be in service")
}

func TestCardLimitsAreConsistent(t *testing.T) {
	for _, card := range Cards() {
		if card.Type != domain.CardCredit {
			continue
		}
		require.LessOrEqual(t, card.AvailableLimit, card.CreditLimit, "card %s", card.ID)
	}
}

func TestLoansBalancesWithinPrincipal(t *testing.T) {
	for _, loan := range Loans() {
		require.Greater(t, loan.Principal, 0.0)
		require.GreaterOrEqual(t, loan.Balance, 0.0)
		require.LessOrEqual(t, loan.Balance, loan.Principal, "loan %s", loan.ID)
		require.Positive(t, loan.TermMonths)
	}
}

func TestFullDatasetIsComplete(t *testing.T) {
	dataset := Full()

	require.Len(t, dataset.Customers, len(Customers()))
	require.Len(t, dataset.Employees, len(Employees()))
	require.Len(t, dataset.Transactions, len(Transactions()))
	require.Len(t, dataset.QueueItems, len(QueueItems()))
	require.Len(t, dataset.Products, len(Products()))
	require.Len(t, dataset.Cards, len(Cards()))
	require.Len(t, dataset.Loans, len(Loans()))
}
