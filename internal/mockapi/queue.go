package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// AddQueueItemInput registers a walk-in customer for the branch queue.
type AddQueueItemInput struct {
	CustomerID   string
	CustomerName string
	ServiceType  domain.ServiceType
	Priority     domain.Priority
}

// ListQueue returns the seed branch queue.
func (a *API) ListQueue(ctx context.Context) ([]domain.QueueItem, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}
	return fixtures.QueueItems(), nil
}

// AddQueueItem issues the next ticket. Queue numbers come from a session
// counter seeded past the fixtures, so they are strictly increasing.
func (a *API) AddQueueItem(ctx context.Context, in AddQueueItemInput) (domain.QueueItem, error) {
	if err := a.simulate(ctx, opMutation, OpMutation); err != nil {
		return domain.QueueItem{}, err
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		return domain.QueueItem{}, NewError(http.StatusBadRequest, CodeMissingID, "customer name is required")
	}
	priority := in.Priority
	if priority.Rank() == 0 {
		priority = domain.PriorityNormal
	}
	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = domain.ServiceCashier
	}

	a.mu.Lock()
	number := a.nextQueueNumber
	a.nextQueueNumber++
	a.mu.Unlock()

	return domain.QueueItem{
		ID:           "q_" + uuid.NewString(),
		CustomerID:   in.CustomerID,
		CustomerName: strings.TrimSpace(in.CustomerName),
		ServiceType:  serviceType,
		Priority:     priority,
		Status:       domain.QueueWaiting,
		QueueNumber:  number,
		ArrivalTime:  time.Now().UTC(),
	}, nil
}
