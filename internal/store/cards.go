package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// CardAPI is the slice of the mock API the card store uses.
type CardAPI interface {
	ListCards(ctx context.Context, customerID string) ([]domain.Card, error)
	SetCardStatus(ctx context.Context, cardID string, status domain.CardStatus) (domain.Card, error)
}

// CardStore holds the card list.
type CardStore struct {
	tracker
	api CardAPI

	cards []domain.Card
}

// NewCardStore constructs an empty card store.
func NewCardStore(api CardAPI) *CardStore {
	return &CardStore{api: api}
}

// Fetch loads the cards, optionally scoped to one customer. The failure is
// recorded on the store and also returned.
func (s *CardStore) Fetch(ctx context.Context, customerID string) error {
	gen := s.begin()
	cards, err := s.api.ListCards(ctx, customerID)
	s.complete(gen, err, func() {
		s.cards = cards
	})
	return err
}

// SetStatus changes a card's status and merges the updated card into the
// list. The error is stored and returned for inline display.
func (s *CardStore) SetStatus(ctx context.Context, cardID string, status domain.CardStatus) (domain.Card, error) {
	gen := s.begin()
	card, err := s.api.SetCardStatus(ctx, cardID, status)
	if err != nil {
		s.fail(gen, err)
		return domain.Card{}, err
	}
	s.complete(gen, nil, func() {
		for i := range s.cards {
			if s.cards[i].ID == card.ID {
				s.cards[i] = card
				return
			}
		}
		s.cards = append(s.cards, card)
	})
	return card, nil
}

// Cards returns a copy of the held card list.
func (s *CardStore) Cards() []domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Card(nil), s.cards...)
}
