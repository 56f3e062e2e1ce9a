package domain

import "time"

// LoanStatus tracks a loan's repayment state.
type LoanStatus string

const (
	LoanActive     LoanStatus = "ACTIVE"
	LoanPaidOff    LoanStatus = "PAID_OFF"
	LoanDelinquent LoanStatus = "DELINQUENT"
	LoanDefault    LoanStatus = "DEFAULT"
)

// LoanPayment is one historical installment on a loan.
type LoanPayment struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Principal float64   `json:"principal"`
	Interest  float64   `json:"interest"`
	PaidAt    time.Time `json:"paidAt"`
}

// Loan is a customer credit product with its repayment history.
type Loan struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customerId"`
	Principal      float64       `json:"principal"`
	Balance        float64       `json:"balance"`
	AnnualRatePct  float64       `json:"annualRatePct"`
	TermMonths     int           `json:"termMonths"`
	Currency       string        `json:"currency"`
	Status         LoanStatus    `json:"status"`
	StartedAt      time.Time     `json:"startedAt"`
	PaymentHistory []LoanPayment `json:"paymentHistory"`
}
