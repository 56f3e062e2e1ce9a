package domain

import "time"

// CustomerStatus tracks whether a customer relationship is live.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
	CustomerBlocked  CustomerStatus = "BLOCKED"
)

// Segment buckets customers for product targeting.
type Segment string

const (
	SegmentRetail   Segment = "RETAIL"
	SegmentPremium  Segment = "PREMIUM"
	SegmentBusiness Segment = "BUSINESS"
)

// RiskProfile is the advisory risk classification shown on the profile card.
type RiskProfile string

const (
	RiskLow    RiskProfile = "LOW"
	RiskMedium RiskProfile = "MEDIUM"
	RiskHigh   RiskProfile = "HIGH"
)

// Address holds the customer's registered address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Contact groups the customer's reachable channels.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AccountType distinguishes the product behind an account.
type AccountType string

const (
	AccountChecking AccountType = "CHECKING"
	AccountSavings  AccountType = "SAVINGS"
	AccountCurrency AccountType = "CURRENCY"
)

// Account is a single customer account. Balances are unconstrained numbers;
// overdrafts appear as negative balances in the seed data.
type Account struct {
	ID            string      `json:"id"`
	AccountNumber string      `json:"accountNumber"`
	IBAN          string      `json:"iban"`
	BIC           string      `json:"bic"`
	Type          AccountType `json:"type"`
	Balance       float64     `json:"balance"`
	Currency      string      `json:"currency"`
	Active        bool        `json:"active"`
}

// CustomerNote is a free-text annotation left by an employee.
type CustomerNote struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Customer is the full profile presented to tellers. Accounts are owned 1:many.
type Customer struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	NationalID  string         `json:"nationalId"`
	DateOfBirth time.Time      `json:"dateOfBirth"`
	Address     Address        `json:"address"`
	Contact     Contact        `json:"contact"`
	Segment     Segment        `json:"segment"`
	RiskProfile RiskProfile    `json:"riskProfile"`
	Status      CustomerStatus `json:"status"`
	Accounts    []Account      `json:"accounts"`
	Notes       []CustomerNote `json:"notes"`
	JoinedAt    time.Time      `json:"joinedAt"`
}

// FullName joins the name parts for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AccountByID returns the matching account and whether it was found.
func (c Customer) AccountByID(id string) (Account, bool) {
	for _, acc := range c.Accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return Account{}, false
}
