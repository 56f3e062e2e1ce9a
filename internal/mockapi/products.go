package mockapi

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

// ListProducts returns the static product catalog, optionally filtered by
// category.
func (a *API) ListProducts(ctx context.Context, category domain.ProductCategory) ([]domain.BankProduct, error) {
	if err := a.simulate(ctx, opList, OpRead); err != nil {
		return nil, err
	}

	products := fixtures.Products()
	if category == "" {
		return products, nil
	}
	var filtered []domain.BankProduct
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
