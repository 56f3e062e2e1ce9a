package fixtures

import (
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// MaxSeedQueueNumber is the highest queue number present in the seed data.
// Session counters must start above it to keep numbers strictly increasing.
const MaxSeedQueueNumber = 106

// QueueItems returns the seed branch queue.
func QueueItems() []domain.QueueItem {
	arrival := func(h, m int) time.Time {
		return time.Date(2024, time.October, 8, h, m, 0, 0, time.UTC)
	}
	return []domain.QueueItem{
		{
			ID:           "q_001",
			CustomerID:   "cust_002",
			CustomerName: "Piotr Nowak",
			ServiceType:  domain.ServiceCashier,
			Priority:     domain.PriorityNormal,
			Status:       domain.QueueWaiting,
			QueueNumber:  101,
			ArrivalTime:  arrival(8, 32),
		},
		{
			ID:           "q_002",
			CustomerID:   "cust_001",
			CustomerName: "Anna Kowalska",
			ServiceType:  domain.ServiceAdvisory,
			Priority:     domain.PriorityHigh,
			Status:       domain.QueueWaiting,
			QueueNumber:  102,
			ArrivalTime:  arrival(8, 40),
		},
		{
			ID:           "q_003",
			CustomerID:   "cust_004",
			CustomerName: "Tomasz Zieliński",
			ServiceType:  domain.ServiceLoanOfficer,
			Priority:     domain.PriorityUrgent,
			Status:       domain.QueueWaiting,
			QueueNumber:  103,
			ArrivalTime:  arrival(8, 47),
		},
		{
			ID:           "q_004",
			CustomerID:   "cust_003",
			CustomerName: "Maria Wiśniewska",
			ServiceType:  domain.ServiceCardServices,
			Priority:     domain.PriorityLow,
			Status:       domain.QueueWaiting,
			QueueNumber:  104,
			ArrivalTime:  arrival(8, 51),
		},
		{
			ID:           "q_005",
			CustomerID:   "cust_005",
			CustomerName: "Ewa Lewandowska",
			ServiceType:  domain.ServiceCashier,
			Priority:     domain.PriorityNormal,
			Status:       domain.QueueInService,
			QueueNumber:  105,
			ArrivalTime:  arrival(8, 15),
		},
		{
			ID:           "q_006",
			CustomerID:   "cust_001",
			CustomerName: "Anna Kowalska",
			ServiceType:  domain.ServiceCashier,
			Priority:     domain.PriorityNormal,
			Status:       domain.QueueCompleted,
			QueueNumber:  106,
			ArrivalTime:  arrival(7, 58),
		},
	}
}
