package service

import "errors"

// Failure taxonomy of the core. Every operation either succeeds or surfaces
// one of these (or a wrapped store error); no mutation is ever dropped
// silently.
var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrMissingPickupPoint     = errors.New("pickup point is required for rental items")
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrUnknownStatus          = errors.New("unknown order status")
	ErrDuplicateEmail         = errors.New("email is already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountDeactivated     = errors.New("account has been deactivated")
	ErrRecoveryWindowExpired  = errors.New("account recovery window has expired")
	ErrAccountNotDeleted      = errors.New("account is not deleted")
	ErrInvalidQuantity        = errors.New("quantity must be at least one")
	ErrInvalidRentalDays      = errors.New("rental days must be at least one")
	ErrNotRentable            = errors.New("product is not available for rent")
	ErrInvalidToken           = errors.New("invalid token")
)
