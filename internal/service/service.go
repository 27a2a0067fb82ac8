package service

import (
	"context"

	"vivaha-backend/internal/domain"
)

// CartRef names the cart an operation acts on. Exactly one of the two fields
// is set: a guest cart is keyed by the browser profile's guest ID, a user
// cart by the authenticated identity's email. Passing the reference
// explicitly keeps the cart operations free of any ambient "current user".
type CartRef struct {
	GuestID   string
	UserEmail string
}

// ForGuest references the guest cart of a browser profile.
func ForGuest(guestID string) CartRef {
	return CartRef{GuestID: guestID}
}

// ForUser references the cart scoped to an authenticated identity.
func ForUser(email string) CartRef {
	return CartRef{UserEmail: email}
}

type AuthService interface {
	// Register creates a new user-role identity, absorbs the guest cart if a
	// guest ID is supplied, and returns the identity with an access/refresh
	// token pair.
	Register(ctx context.Context, guestID, name, email, password string) (*domain.User, string, string, error)
	// Login authenticates, absorbs the guest cart, updates last login, and
	// returns the identity with an access/refresh token pair.
	Login(ctx context.Context, guestID, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name string) error
	// SoftDelete marks the target deleted and starts the recovery window.
	// sessionEnded reports whether the actor deleted their own account and
	// must discard their tokens.
	SoftDelete(ctx context.Context, actorID, targetID string) (sessionEnded bool, err error)
	// Recover clears the deleted flag if the recovery window has not lapsed.
	Recover(ctx context.Context, userID string) error
}

type CartService interface {
	GetCart(ctx context.Context, ref CartRef) (*domain.Cart, error)
	// AddItem resolves the product, performs the stock check, bakes rental
	// pricing into the unit price, and merges the line into the cart.
	AddItem(ctx context.Context, ref CartRef, productID string, quantity int32, purchaseType domain.PurchaseType, rentalDays int32) (*domain.Cart, error)
	RemoveItem(ctx context.Context, ref CartRef, productID string, purchaseType domain.PurchaseType) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, ref CartRef, productID string, purchaseType domain.PurchaseType, quantity int32) (*domain.Cart, error)
	// MergeGuestCart folds the guest cart into the user cart line by line and
	// clears the guest cart whole. Invoked once per authentication; a second
	// invocation finds an empty guest cart and is a no-op.
	MergeGuestCart(ctx context.Context, guestID, userEmail string) (*domain.Cart, error)
}

type OrderService interface {
	// PlaceOrder snapshots the user's cart into an immutable order, adjusts
	// catalog stock, records the payment outcome, clears the cart, and emits
	// notifications.
	PlaceOrder(ctx context.Context, user *domain.User, shippingAddress, pickupPoint string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, email string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, adminNotes string) (*domain.Order, error)
	RequestReplacement(ctx context.Context, orderID, reason string) (*domain.Order, error)
	RequestPostSaleSupport(ctx context.Context, orderID, issue string) (*domain.Order, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID, message string, typ domain.NotificationType, orderID string) (*domain.Notification, error)
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	UnreadCount(ctx context.Context, userID string) (int32, error)
}

type AdminService interface {
	// BlockUser hard-blocks an identity independent of deletion. sessionEnded
	// reports whether the actor blocked themselves.
	BlockUser(ctx context.Context, actorID, targetID, reason string) (sessionEnded bool, err error)
	UnblockUser(ctx context.Context, actorID, targetID string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, email, name, orderID string, total int64) error
	SendOrderStatusUpdate(ctx context.Context, email, name, orderID string, status domain.OrderStatus) error
	SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error
	SendUnreadDigest(ctx context.Context, email, name string, unread int32) error
}
