package store

import (
	"context"
	"errors"
	"sort"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

// ErrQueueEmpty is returned by CallNext when nobody is waiting.
var ErrQueueEmpty = errors.New("no customers waiting in the queue")

// QueueAPI is the slice of the mock API the queue store uses.
type QueueAPI interface {
	ListQueue(ctx context.Context) ([]domain.QueueItem, error)
	AddQueueItem(ctx context.Context, in mockapi.AddQueueItemInput) (domain.QueueItem, error)
}

// QueueStore holds the branch queue and the ticket currently being served.
type QueueStore struct {
	tracker
	api QueueAPI

	items            []domain.QueueItem
	currentlyServing *domain.QueueItem
}

// NewQueueStore constructs an empty queue store.
func NewQueueStore(api QueueAPI) *QueueStore {
	return &QueueStore{api: api}
}

// Fetch loads the queue. The failure is recorded on the store and also
// returned.
func (s *QueueStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.ListQueue(ctx)
	s.complete(gen, err, func() {
		s.items = items
		s.currentlyServing = nil
		for i := range s.items {
			if s.items[i].Status == domain.QueueInService {
				serving := s.items[i]
				s.currentlyServing = &serving
				break
			}
		}
	})
	return err
}

// AddWalkIn registers a walk-in customer and appends the new ticket.
func (s *QueueStore) AddWalkIn(ctx context.Context, in mockapi.AddQueueItemInput) (domain.QueueItem, error) {
	gen := s.begin()
	item, err := s.api.AddQueueItem(ctx, in)
	if err != nil {
		s.fail(gen, err)
		return domain.QueueItem{}, err
	}
	s.complete(gen, nil, func() {
		s.items = append(s.items, item)
	})
	return item, nil
}

// CallNext promotes the highest-priority waiting ticket to IN_SERVICE and
// marks it as currently served. Ties on priority go to the earliest arrival.
// This acts directly on the held list; no API round trip is simulated.
func (s *QueueStore) CallNext() (domain.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	waiting := make([]int, 0, len(s.items))
	for i := range s.items {
		if s.items[i].Status == domain.QueueWaiting {
			waiting = append(waiting, i)
		}
	}
	if len(waiting) == 0 {
		return domain.QueueItem{}, ErrQueueEmpty
	}

	sort.SliceStable(waiting, func(a, b int) bool {
		ia, ib := s.items[waiting[a]], s.items[waiting[b]]
		if ia.Priority.Rank() != ib.Priority.Rank() {
			return ia.Priority.Rank() > ib.Priority.Rank()
		}
		return ia.ArrivalTime.Before(ib.ArrivalTime)
	})

	// Finish the previous ticket before serving the next one.
	if s.currentlyServing != nil {
		for i := range s.items {
			if s.items[i].ID == s.currentlyServing.ID {
				s.items[i].Status = domain.QueueCompleted
			}
		}
	}

	idx := waiting[0]
	s.items[idx].Status = domain.QueueInService
	serving := s.items[idx]
	s.currentlyServing = &serving
	return serving, nil
}

// CompleteCurrent closes the ticket currently in service.
func (s *QueueStore) CompleteCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentlyServing == nil {
		return
	}
	for i := range s.items {
		if s.items[i].ID == s.currentlyServing.ID {
			s.items[i].Status = domain.QueueCompleted
		}
	}
	s.currentlyServing = nil
}

// Items returns a copy of the held queue.
func (s *QueueStore) Items() []domain.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.QueueItem(nil), s.items...)
}

// CurrentlyServing returns the ticket in service, if any.
func (s *QueueStore) CurrentlyServing() (domain.QueueItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentlyServing == nil {
		return domain.QueueItem{}, false
	}
	return *s.currentlyServing, true
}

// WaitingCount reports how many tickets are still waiting.
func (s *QueueStore) WaitingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		if item.Status == domain.QueueWaiting {
			count++
		}
	}
	return count
}
