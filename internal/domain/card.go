package domain

import "time"

// CardType distinguishes debit from credit instruments.
type CardType string

const (
	CardDebit  CardType = "DEBIT"
	CardCredit CardType = "CREDIT"
)

// CardStatus is the card's simple status machine.
type CardStatus string

const (
	CardActive  CardStatus = "ACTIVE"
	CardBlocked CardStatus = "BLOCKED"
	CardExpired CardStatus = "EXPIRED"
	CardPending CardStatus = "PENDING"
)

// Card is a payment card linked to a customer. AvailableLimit never exceeds
// CreditLimit in the seed data.
type Card struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	MaskedNumber   string     `json:"maskedNumber"`
	Type           CardType   `json:"type"`
	Brand          string     `json:"brand"`
	Status         CardStatus `json:"status"`
	CreditLimit    float64    `json:"creditLimit"`
	AvailableLimit float64    `json:"availableLimit"`
	Currency       string     `json:"currency"`
	ExpiresAt      time.Time  `json:"expiresAt"`
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Expired is terminal; pending cards activate, active and blocked toggle.
func (s CardStatus) CanTransitionTo(next CardStatus) bool {
	switch s {
	case CardPending:
		return next == CardActive
	case CardActive:
		return next == CardBlocked || next == CardExpired
	case CardBlocked:
		return next == CardActive || next == CardExpired
	default:
		return false
	}
}
