package document

import (
	"context"
	"errors"
	"fmt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

// orderRepository keeps orders in two documents: one array per user and one
// global array for the admin view. Creates and updates write both so the
// views never drift.
type orderRepository struct {
	kv kvstore.Store
}

func NewOrderRepository(kv kvstore.Store) repository.OrderRepository {
	return &orderRepository{kv: kv}
}

func (r *orderRepository) loadList(ctx context.Context, key string) ([]domain.Order, error) {
	var orders []domain.Order
	err := kvstore.GetJSON(ctx, r.kv, key, &orders)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) saveList(ctx context.Context, key string, orders []domain.Order) error {
	if err := kvstore.SetJSON(ctx, r.kv, key, orders); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	userOrders, err := r.loadList(ctx, keyUserOrders(order.UserEmail))
	if err != nil {
		return err
	}
	allOrders, err := r.loadList(ctx, keyOrdersAll)
	if err != nil {
		return err
	}

	userOrders = append(userOrders, *order)
	allOrders = append(allOrders, *order)

	if err := r.saveList(ctx, keyUserOrders(order.UserEmail), userOrders); err != nil {
		return err
	}
	return r.saveList(ctx, keyOrdersAll, allOrders)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	allOrders, err := r.loadList(ctx, keyOrdersAll)
	if err != nil {
		return nil, err
	}
	for i := range allOrders {
		if allOrders[i].ID == id {
			order := allOrders[i]
			return &order, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.replaceIn(ctx, keyOrdersAll, order); err != nil {
		return err
	}
	return r.replaceIn(ctx, keyUserOrders(order.UserEmail), order)
}

func (r *orderRepository) replaceIn(ctx context.Context, key string, order *domain.Order) error {
	orders, err := r.loadList(ctx, key)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			return r.saveList(ctx, key, orders)
		}
	}
	return repository.ErrOrderNotFound
}

func (r *orderRepository) ListByUser(ctx context.Context, email string) ([]domain.Order, error) {
	return r.loadList(ctx, keyUserOrders(email))
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.loadList(ctx, keyOrdersAll)
}
