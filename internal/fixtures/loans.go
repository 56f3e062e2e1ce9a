package fixtures

import (
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// Loans returns the seed loan book.
func Loans() []domain.Loan {
	return []domain.Loan{
		{
			ID:            "loan_001",
			CustomerID:    "cust_001",
			Principal:     350000,
			Balance:       298450.30,
			AnnualRatePct: 6.8,
			TermMonths:    300,
			Currency:      "PLN",
			Status:        domain.LoanActive,
			StartedAt:     time.Date(2021, time.April, 15, 0, 0, 0, 0, time.UTC),
			PaymentHistory: []domain.LoanPayment{
				{
					ID:        "lp_001",
					Amount:    2436.91,
					Principal: 745.11,
					Interest:  1691.80,
					PaidAt:    time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
				},
				{
					ID:        "lp_002",
					Amount:    2436.91,
					Principal: 749.33,
					Interest:  1687.58,
					PaidAt:    time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:            "loan_002",
			CustomerID:    "cust_004",
			Principal:     120000,
			Balance:       54210.88,
			AnnualRatePct: 9.2,
			TermMonths:    60,
			Currency:      "PLN",
			Status:        domain.LoanDelinquent,
			StartedAt:     time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC),
			PaymentHistory: []domain.LoanPayment{
				{
					ID:        "lp_003",
					Amount:    2502.57,
					Principal: 2086.90,
					Interest:  415.67,
					PaidAt:    time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:             "loan_003",
			CustomerID:     "cust_002",
			Principal:      15000,
			Balance:        0,
			AnnualRatePct:  11.5,
			TermMonths:     24,
			Currency:       "PLN",
			Status:         domain.LoanPaidOff,
			StartedAt:      time.Date(2021, time.September, 10, 0, 0, 0, 0, time.UTC),
			PaymentHistory: []domain.LoanPayment{},
		},
	}
}
