package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
)

type stubQueueAPI struct {
	items []domain.QueueItem
	next  int
}

func (s *stubQueueAPI) ListQueue(context.Context) ([]domain.QueueItem, error) {
	return append([]domain.QueueItem(nil), s.items...), nil
}

func (s *stubQueueAPI) AddQueueItem(_ context.Context, in mockapi.AddQueueItemInput) (domain.QueueItem, error) {
	s.next++
	return domain.QueueItem{
		ID:           "q_new",
		CustomerName: in.CustomerName,
		Priority:     in.Priority,
		Status:       domain.QueueWaiting,
		QueueNumber:  s.next,
		ArrivalTime:  time.Now(),
	}, nil
}

func queueFixture() []domain.QueueItem {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return []domain.QueueItem{
		{ID: "q1", CustomerName: "Early Normal", Priority: domain.PriorityNormal, Status: domain.QueueWaiting, QueueNumber: 1, ArrivalTime: base},
		{ID: "q2", CustomerName: "Urgent", Priority: domain.PriorityUrgent, Status: domain.QueueWaiting, QueueNumber: 2, ArrivalTime: base.Add(5 * time.Minute)},
		{ID: "q3", CustomerName: "High A", Priority: domain.PriorityHigh, Status: domain.QueueWaiting, QueueNumber: 3, ArrivalTime: base.Add(10 * time.Minute)},
		{ID: "q4", CustomerName: "High B", Priority: domain.PriorityHigh, Status: domain.QueueWaiting, QueueNumber: 4, ArrivalTime: base.Add(15 * time.Minute)},
		{ID: "q5", CustomerName: "Being Served", Priority: domain.PriorityNormal, Status: domain.QueueInService, QueueNumber: 5, ArrivalTime: base.Add(20 * time.Minute)},
	}
}

func TestQueueStoreFetchDetectsServing(t *testing.T) {
	s := NewQueueStore(&stubQueueAPI{items: queueFixture(), next: 5})

	require.NoError(t, s.Fetch(context.Background()))

	serving, ok := s.CurrentlyServing()
	require.True(t, ok)
	require.Equal(t, "q5", serving.ID)
	require.Equal(t, 4, s.WaitingCount())
}

func TestQueueStoreCallNextByPriorityThenArrival(t *testing.T) {
	s := NewQueueStore(&stubQueueAPI{items: queueFixture(), next: 5})
	require.NoError(t, s.Fetch(context.Background()))

	// Urgent wins over the earlier-arrived normal ticket.
	first, err := s.CallNext()
	require.NoError(t, err)
	require.Equal(t, "q2", first.ID)
	require.Equal(t, domain.QueueInService, first.Status)

	// The previously served ticket was completed.
	for _, item := range s.Items() {
		if item.ID == "q5" {
			require.Equal(t, domain.QueueCompleted, item.Status)
		}
	}

	// Two highs tie on priority; the earlier arrival goes first.
	second, err := s.CallNext()
	require.NoError(t, err)
	require.Equal(t, "q3", second.ID)

	third, err := s.CallNext()
	require.NoError(t, err)
	require.Equal(t, "q4", third.ID)

	fourth, err := s.CallNext()
	require.NoError(t, err)
	require.Equal(t, "q1", fourth.ID)

	_, err = s.CallNext()
	require.ErrorIs(t, err, ErrQueueEmpty)
}

func TestQueueStoreCompleteCurrent(t *testing.T) {
	s := NewQueueStore(&stubQueueAPI{items: queueFixture(), next: 5})
	require.NoError(t, s.Fetch(context.Background()))

	s.CompleteCurrent()

	_, ok := s.CurrentlyServing()
	require.False(t, ok)
	for _, item := range s.Items() {
		if item.ID == "q5" {
			require.Equal(t, domain.QueueCompleted, item.Status)
		}
	}

	// Completing with nobody in service is a no-op.
	s.CompleteCurrent()
}

func TestQueueStoreAddWalkIn(t *testing.T) {
	s := NewQueueStore(&stubQueueAPI{items: queueFixture(), next: 5})
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx))

	item, err := s.AddWalkIn(ctx, mockapi.AddQueueItemInput{
		CustomerName: "Walk-in",
		Priority:     domain.PriorityLow,
	})
	require.NoError(t, err)
	require.Equal(t, 6, item.QueueNumber)
	require.Len(t, s.Items(), 6)
	require.Equal(t, 5, s.WaitingCount())
}
