package mockapi

import "fmt"

// Machine codes carried by simulated API errors.
const (
	CodeTimeout             = "TIMEOUT"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeRateLimited         = "RATE_LIMITED"
	CodeMissingID           = "MISSING_ID"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeAmountLimitExceeded = "AMOUNT_LIMIT_EXCEEDED"
	CodeInsufficientFunds   = "INSUFFICIENT_FUNDS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidCardStatus   = "INVALID_CARD_STATUS"
	CodeQueueEmpty          = "QUEUE_EMPTY"
)

// Error is the simulated remote API error contract: a human message, a
// numeric status and an optional machine code.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// NewError constructs a typed API error.
func NewError(status int, code, message string) *Error {
	return &Error{Message: message, Status: status, Code: code}
}
