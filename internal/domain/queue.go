package domain

import "time"

// Priority orders waiting customers. Higher rank is served first.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
	PriorityLow    Priority = "LOW"
)

// Rank maps a priority to its numeric serving order.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ServiceType describes what the customer is waiting for.
type ServiceType string

const (
	ServiceCashier      ServiceType = "CASHIER"
	ServiceAdvisory     ServiceType = "ADVISORY"
	ServiceLoanOfficer  ServiceType = "LOAN_OFFICER"
	ServiceCardServices ServiceType = "CARD_SERVICES"
)

// QueueStatus tracks a ticket through the teller queue.
type QueueStatus string

const (
	QueueWaiting   QueueStatus = "WAITING"
	QueueInService QueueStatus = "IN_SERVICE"
	QueueCompleted QueueStatus = "COMPLETED"
)

// QueueItem is one ticket in the branch queue. Queue numbers are strictly
// increasing within a session.
type QueueItem struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	CustomerName string      `json:"customerName"`
	ServiceType  ServiceType `json:"serviceType"`
	Priority     Priority    `json:"priority"`
	Status       QueueStatus `json:"status"`
	QueueNumber  int         `json:"queueNumber"`
	ArrivalTime  time.Time   `json:"arrivalTime"`
}
