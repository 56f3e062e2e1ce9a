package store

import (
	"context"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

// ProductAPI is the slice of the mock API the product store uses.
type ProductAPI interface {
	ListProducts(ctx context.Context, category domain.ProductCategory) ([]domain.BankProduct, error)
}

// ProductStore holds the product catalog.
type ProductStore struct {
	tracker
	api ProductAPI

	products []domain.BankProduct
}

// NewProductStore constructs an empty product store.
func NewProductStore(api ProductAPI) *ProductStore {
	return &ProductStore{api: api}
}

// Fetch loads the catalog, optionally filtered by category. The failure is
// recorded on the store and also returned.
func (s *ProductStore) Fetch(ctx context.Context, category domain.ProductCategory) error {
	gen := s.begin()
	products, err := s.api.ListProducts(ctx, category)
	s.complete(gen, err, func() {
		s.products = products
	})
	return err
}

// Products returns a copy of the held catalog.
func (s *ProductStore) Products() []domain.BankProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.BankProduct(nil), s.products...)
}
