package fixtures

import (
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// Cards returns the seed payment cards. Available limit never exceeds the
// credit limit.
func Cards() []domain.Card {
	return []domain.Card{
		{
			ID:             "card_001",
			CustomerID:     "cust_001",
			MaskedNumber:   "4512 **** **** 7821",
			Type:           domain.CardCredit,
			Brand:          "VISA",
			Status:         domain.CardActive,
			CreditLimit:    20000,
			AvailableLimit: 14350.25,
			Currency:       "PLN",
			ExpiresAt:      time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "card_002",
			CustomerID:     "cust_001",
			MaskedNumber:   "5267 **** **** 0034",
			Type:           domain.CardDebit,
			Brand:          "MASTERCARD",
			Status:         domain.CardActive,
			CreditLimit:    0,
			AvailableLimit: 0,
			Currency:       "PLN",
			ExpiresAt:      time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "card_003",
			CustomerID:     "cust_002",
			MaskedNumber:   "4512 **** **** 9912",
			Type:           domain.CardDebit,
			Brand:          "VISA",
			Status:         domain.CardBlocked,
			CreditLimit:    0,
			AvailableLimit: 0,
			Currency:       "PLN",
			ExpiresAt:      time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "card_004",
			CustomerID:     "cust_004",
			MaskedNumber:   "3742 **** **** 552",
			Type:           domain.CardCredit,
			Brand:          "AMEX",
			Status:         domain.CardPending,
			CreditLimit:    50000,
			AvailableLimit: 50000,
			Currency:       "PLN",
			ExpiresAt:      time.Date(2028, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "card_005",
			CustomerID:     "cust_005",
			MaskedNumber:   "5267 **** **** 4410",
			Type:           domain.CardDebit,
			Brand:          "MASTERCARD",
			Status:         domain.CardExpired,
			CreditLimit:    0,
			AvailableLimit: 0,
			Currency:       "PLN",
			ExpiresAt:      time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}
}
