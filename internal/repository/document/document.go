// Package document implements the repository interfaces on top of a
// kvstore.Store, one JSON document per logical collection. The layout mirrors
// the storefront's persisted state: a users array, a notifications array,
// per-profile guest carts, per-email user carts, and orders kept both
// per-user and in a global admin-scoped array.
package document

import (
	"fmt"

	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

const (
	keyUsers         = "users"
	keyNotifications = "notifications"
	keyProducts      = "products"
	keyOrdersAll     = "orders:all"
)

func keyGuestCart(guestID string) string {
	return fmt.Sprintf("cart:guest:%s", guestID)
}

func keyUserCart(email string) string {
	return fmt.Sprintf("cart:user:%s", email)
}

func keyUserOrders(email string) string {
	return fmt.Sprintf("orders:user:%s", email)
}

// Store bundles all document repositories over one kvstore.Store.
type Store struct {
	repository.UserRepository
	repository.CartRepository
	repository.OrderRepository
	repository.NotificationRepository
	repository.ProductCatalog
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{
		UserRepository:         NewUserRepository(kv),
		CartRepository:         NewCartRepository(kv),
		OrderRepository:        NewOrderRepository(kv),
		NotificationRepository: NewNotificationRepository(kv),
		ProductCatalog:         NewProductCatalog(kv),
	}
}
