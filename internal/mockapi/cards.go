package mockapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// ListCards returns the seed cards, optionally filtered by customer.
func (a *API) ListCards(ctx context.Context, customerID string) ([]domain.Card, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}

	cards := fixtures.Cards()
	if customerID == "" {
		return cards, nil
	}
	var filtered []domain.Card
	for _, c := range cards {
		if c.CustomerID == customerID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// SetCardStatus applies a status change, enforcing the card status machine.
func (a *API) SetCardStatus(ctx context.Context, cardID string, status domain.CardStatus) (domain.Card, error) {
	if err := a.simulate(ctx, opMutation, OpMutation); err != nil {
		return domain.Card{}, err
	}
	if cardID == "" {
		return domain.Card{}, NewError(http.StatusBadRequest, CodeMissingID, "card id is required")
	}

	for _, card := range fixtures.Cards() {
		if card.ID != cardID {
			continue
		}
		if !card.Status.CanTransitionTo(status) {
			return domain.Card{}, NewError(http.StatusConflict, CodeInvalidCardStatus,
				fmt.Sprintf("cannot change card status from %s to %s", card.Status, status))
		}
		card.Status = status
		return card, nil
	}
	return domain.Card{}, NewError(http.StatusNotFound, CodeNotFound, "card not found")
}
