package document

import (
	"context"
	"errors"
	"fmt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

// productCatalog is a document-backed binding of the external catalog
// collaborator. The core only ever reads products and asks for stock
// adjustments through the interface.
type productCatalog struct {
	kv kvstore.Store
}

func NewProductCatalog(kv kvstore.Store) repository.ProductCatalog {
	return &productCatalog{kv: kv}
}

func (c *productCatalog) load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := kvstore.GetJSON(ctx, c.kv, keyProducts, &products)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (c *productCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	products, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (c *productCatalog) AdjustStock(ctx context.Context, id string, delta int32) error {
	products, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			next := products[i].Stock + delta
			if next < 0 {
				return repository.ErrInsufficientStock
			}
			products[i].Stock = next
			if err := kvstore.SetJSON(ctx, c.kv, keyProducts, products); err != nil {
				return fmt.Errorf("save products: %w", err)
			}
			return nil
		}
	}
	return repository.ErrProductNotFound
}

// SeedProducts is a convenience for bootstrapping a fresh store with catalog
// data, used by the server at startup and by tests.
func SeedProducts(ctx context.Context, kv kvstore.Store, products []domain.Product) error {
	return kvstore.SetJSON(ctx, kv, keyProducts, products)
}
