package repository

import (
	"context"
	"errors"

	"vivaha-backend/internal/domain"
)

// Not-found and stock sentinels shared by every Store binding, so services
// can branch on them without knowing which backend is in play.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientStock    = errors.New("insufficient stock")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail resolves among non-deleted identities only; soft-deleted
	// accounts do not shadow their email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	// HardDelete permanently removes an identity, used once the recovery
	// window has lapsed.
	HardDelete(ctx context.Context, id string) error
}

type CartRepository interface {
	// GetGuestCart returns the guest cart for a browser profile, empty on
	// first access.
	GetGuestCart(ctx context.Context, guestID string) (*domain.Cart, error)
	SaveGuestCart(ctx context.Context, guestID string, cart *domain.Cart) error
	ClearGuestCart(ctx context.Context, guestID string) error

	GetUserCart(ctx context.Context, email string) (*domain.Cart, error)
	SaveUserCart(ctx context.Context, email string, cart *domain.Cart) error
	ClearUserCart(ctx context.Context, email string) error
}

type OrderRepository interface {
	// Create appends the order to both the user-scoped and the global order
	// documents.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// Update rewrites the order in place in both documents.
	Update(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, email string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	// ListForUser returns notifications targeted at the user directly or via
	// the broadcast recipient, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) error
	UnreadCount(ctx context.Context, userID string) (int32, error)
}

// ProductCatalog is the external catalog collaborator. The core reads product
// data when building line items and asks the catalog to adjust stock at order
// placement; it never owns stock itself.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	AdjustStock(ctx context.Context, id string, delta int32) error
}

// PaymentProcessor is the external payment collaborator. The order engine
// records the returned outcome and nothing more.
type PaymentProcessor interface {
	Process(ctx context.Context, order *domain.Order) (outcome string, err error)
}
