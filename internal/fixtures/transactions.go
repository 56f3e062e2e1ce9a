package fixtures

import (
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// Transactions returns the seed transaction history. Amounts are always
// positive; direction is carried by the type and the account references.
func Transactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:              "tx_seed_001",
			Type:            domain.TransactionTransfer,
			Amount:          1250.00,
			Currency:        "PLN",
			FromAccountID:   "acc_001",
			ToAccountID:     "acc_004",
			Category:        "RENT",
			Status:          domain.TransactionCompleted,
			Title:           "Czynsz październik",
			ReferenceNumber: "TXN2024000101",
			CustomerID:      "cust_001",
			EmployeeID:      "emp_001",
			Timestamp:       time.Date(2024, time.October, 1, 9, 14, 0, 0, time.UTC),
		},
		{
			ID:              "tx_seed_002",
			Type:            domain.TransactionDeposit,
			Amount:          5000.00,
			Currency:        "PLN",
			ToAccountID:     "acc_006",
			Category:        "CASH",
			Status:          domain.TransactionCompleted,
			Title:           "Wpłata gotówkowa",
			ReferenceNumber: "TXN2024000102",
			CustomerID:      "cust_004",
			EmployeeID:      "emp_001",
			Timestamp:       time.Date(2024, time.October, 2, 11, 2, 0, 0, time.UTC),
		},
		{
			ID:              "tx_seed_003",
			Type:            domain.TransactionWithdrawal,
			Amount:          800.00,
			Currency:        "PLN",
			FromAccountID:   "acc_003",
			Category:        "CASH",
			Status:          domain.TransactionCompleted,
			Title:           "Wypłata gotówkowa",
			ReferenceNumber: "TXN2024000103",
			CustomerID:      "cust_002",
			EmployeeID:      "emp_004",
			Timestamp:       time.Date(2024, time.October, 3, 14, 45, 0, 0, time.UTC),
		},
		{
			ID:              "tx_seed_004",
			Type:            domain.TransactionPayment,
			Amount:          219.99,
			Currency:        "PLN",
			FromAccountID:   "acc_004",
			Category:        "UTILITIES",
			Status:          domain.TransactionCompleted,
			Title:           "Faktura za energię",
			ReferenceNumber: "TXN2024000104",
			CustomerID:      "cust_003",
			EmployeeID:      "emp_002",
			Timestamp:       time.Date(2024, time.October, 4, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:              "tx_seed_005",
			Type:            domain.TransactionTransfer,
			Amount:          14000.00,
			Currency:        "PLN",
			FromAccountID:   "acc_006",
			ToAccountID:     "acc_001",
			Category:        "INVOICE",
			Status:          domain.TransactionPending,
			Title:           "Faktura 2024/88",
			ReferenceNumber: "TXN2024000105",
			CustomerID:      "cust_004",
			EmployeeID:      "emp_003",
			Timestamp:       time.Date(2024, time.October, 7, 8, 55, 0, 0, time.UTC),
		},
		{
			ID:              "tx_seed_006",
			Type:            domain.TransactionTransfer,
			Amount:          75.50,
			Currency:        "EUR",
			FromAccountID:   "acc_005",
			ToAccountID:     "acc_002",
			Category:        "FX",
			Status:          domain.TransactionFailed,
			Title:           "Przewalutowanie",
			ReferenceNumber: "TXN2024000106",
			CustomerID:      "cust_003",
			EmployeeID:      "emp_002",
			Timestamp:       time.Date(2024, time.October, 7, 16, 20, 0, 0, time.UTC),
		},
	}
}
