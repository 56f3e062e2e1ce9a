package domain

import "time"

// TransactionType enumerates the operations the transfer wizard can produce.
type TransactionType string

const (
	TransactionTransfer   TransactionType = "TRANSFER"
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionPayment    TransactionType = "PAYMENT"
)

// TransactionStatus follows a transaction through its short mock lifecycle.
// Completed transactions are immutable in this prototype.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction models a money movement recorded through the portal.
type Transaction struct {
	ID              string            `json:"id"`
	Type            TransactionType   `json:"type"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	FromAccountID   string            `json:"fromAccountId,omitempty"`
	ToAccountID     string            `json:"toAccountId,omitempty"`
	Category        string            `json:"category,omitempty"`
	Status          TransactionStatus `json:"status"`
	Title           string            `json:"title"`
	ReferenceNumber string            `json:"referenceNumber"`
	CustomerID      string            `json:"customerId"`
	EmployeeID      string            `json:"employeeId"`
	Timestamp       time.Time         `json:"timestamp"`
}
