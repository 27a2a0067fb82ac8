package document

import (
	"context"
	"errors"
	"fmt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

type cartRepository struct {
	kv kvstore.Store
}

func NewCartRepository(kv kvstore.Store) repository.CartRepository {
	return &cartRepository{kv: kv}
}

func (r *cartRepository) get(ctx context.Context, key string) (*domain.Cart, error) {
	var cart domain.Cart
	err := kvstore.GetJSON(ctx, r.kv, key, &cart)
	if errors.Is(err, kvstore.ErrNotFound) {
		// Carts are created empty on first access.
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &cart, nil
}

func (r *cartRepository) save(ctx context.Context, key string, cart *domain.Cart) error {
	if err := kvstore.SetJSON(ctx, r.kv, key, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *cartRepository) GetGuestCart(ctx context.Context, guestID string) (*domain.Cart, error) {
	return r.get(ctx, keyGuestCart(guestID))
}

func (r *cartRepository) SaveGuestCart(ctx context.Context, guestID string, cart *domain.Cart) error {
	return r.save(ctx, keyGuestCart(guestID), cart)
}

func (r *cartRepository) ClearGuestCart(ctx context.Context, guestID string) error {
	return r.kv.Delete(ctx, keyGuestCart(guestID))
}

func (r *cartRepository) GetUserCart(ctx context.Context, email string) (*domain.Cart, error) {
	return r.get(ctx, keyUserCart(email))
}

func (r *cartRepository) SaveUserCart(ctx context.Context, email string, cart *domain.Cart) error {
	return r.save(ctx, keyUserCart(email), cart)
}

func (r *cartRepository) ClearUserCart(ctx context.Context, email string) error {
	return r.kv.Delete(ctx, keyUserCart(email))
}
