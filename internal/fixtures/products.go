package fixtures

import "github.com/ecm-digital/bankingapp-sub000/internal/domain"

// Products returns the static product catalog.
func Products() []domain.BankProduct {
	return []domain.BankProduct{
		{
			ID:          "prod_001",
			Name:        "Konto Standard",
			Category:    domain.ProductAccounts,
			Description: "Everyday checking account with free domestic transfers.",
			Features:    []string{"Free online transfers", "Mobile app access", "Contactless debit card"},
			Requirements: []string{
				"Valid national ID",
				"Age 18 or older",
			},
			Fees: []domain.ProductFee{
				{Name: "Account maintenance", Amount: 0, Currency: "PLN", Period: "MONTHLY"},
				{Name: "ATM withdrawal (other banks)", Amount: 5, Currency: "PLN"},
			},
		},
		{
			ID:          "prod_002",
			Name:        "Konto Premium",
			Category:    domain.ProductAccounts,
			Description: "Premium account with multi-currency support and concierge line.",
			Features:    []string{"Multi-currency sub-accounts", "Dedicated advisor", "Airport lounge access"},
			Requirements: []string{
				"Monthly inflow of at least 10 000 PLN",
			},
			Fees: []domain.ProductFee{
				{Name: "Account maintenance", Amount: 49.99, Currency: "PLN", Period: "MONTHLY"},
			},
			Promotion: &domain.Promotion{
				Title:       "First year free",
				Description: "Maintenance fee waived for 12 months for new premium customers.",
				ValidUntil:  "2024-12-31",
			},
		},
		{
			ID:          "prod_003",
			Name:        "Karta Kredytowa Gold",
			Category:    domain.ProductCards,
			Description: "Gold credit card with travel insurance.",
			Features:    []string{"Credit limit up to 50 000 PLN", "Travel insurance", "3% cashback on fuel"},
			Requirements: []string{
				"Documented monthly income of 5 000 PLN",
				"Positive credit history",
			},
			Fees: []domain.ProductFee{
				{Name: "Annual fee", Amount: 150, Currency: "PLN", Period: "YEARLY"},
			},
		},
		{
			ID:          "prod_004",
			Name:        "Kredyt Hipoteczny",
			Category:    domain.ProductLoans,
			Description: "Mortgage loan with fixed or variable rate.",
			Features:    []string{"Up to 30 year term", "Fixed rate for first 5 years", "Early repayment after 3 years"},
			Requirements: []string{
				"Down payment of at least 20%",
				"Stable income for 12 months",
			},
			Fees: []domain.ProductFee{
				{Name: "Origination fee", Amount: 2000, Currency: "PLN"},
			},
		},
		{
			ID:          "prod_005",
			Name:        "Lokata 12M",
			Category:    domain.ProductSavings,
			Description: "12-month fixed term deposit.",
			Features:    []string{"5.1% annual rate", "Automatic renewal option"},
			Requirements: []string{
				"Minimum deposit of 1 000 PLN",
			},
			Fees: []domain.ProductFee{},
		},
	}
}
