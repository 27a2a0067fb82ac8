package domain

import "time"

type OrderStatus string

const (
	OrderStatusPlaced                 OrderStatus = "order_placed"
	OrderStatusPendingPayment         OrderStatus = "pending_payment"
	OrderStatusPendingPaymentApproval OrderStatus = "pending_payment_approval"
	OrderStatusConfirmed              OrderStatus = "order_confirmed"
	OrderStatusProcessing             OrderStatus = "processing"
	OrderStatusShipped                OrderStatus = "shipped"
	OrderStatusOnDelivery             OrderStatus = "on_delivery"
	OrderStatusCompleted              OrderStatus = "completed"
	OrderStatusCancelled              OrderStatus = "cancelled"
)

// statusRank orders the forward-only lifecycle. Cancelled sits outside the
// sequence and is handled separately.
var statusRank = map[OrderStatus]int{
	OrderStatusPlaced:                 0,
	OrderStatusPendingPayment:         1,
	OrderStatusPendingPaymentApproval: 2,
	OrderStatusConfirmed:              3,
	OrderStatusProcessing:             4,
	OrderStatusShipped:                5,
	OrderStatusOnDelivery:             6,
	OrderStatusCompleted:              7,
}

// IsValidStatus reports whether s names a known order status.
func IsValidStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether no further transitions leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo enforces the forward-only status machine: never out of a
// terminal state, never backward in the sequence, cancellation allowed from
// any non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[target]
	if !ok {
		return false
	}
	return to > from
}

// ReplacementRequest is one entry in an order's replacement history. Requests
// accumulate; the latest entry is the active one.
type ReplacementRequest struct {
	Reason      string    `json:"reason"`
	RequestedOn time.Time `json:"requested_on"`
}

type SupportStatus string

const (
	SupportStatusOpen     SupportStatus = "OPEN"
	SupportStatusResolved SupportStatus = "RESOLVED"
)

// SupportRequest is one post-sale support entry on an order.
type SupportRequest struct {
	Issue       string        `json:"issue"`
	Status      SupportStatus `json:"status"`
	RequestedOn time.Time     `json:"requested_on"`
}

// Order is the immutable-after-creation envelope produced by checkout.
// Items, Total, ID and CreatedOn are frozen at placement; Status, AdminNotes,
// CancellationReason and the request histories are the only mutable parts.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	UserEmail       string      `json:"user_email"`
	Items           []LineItem  `json:"items"`
	Total           int64       `json:"total"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	// PickupPoint is required whenever any line is a rental.
	PickupPoint        string               `json:"pickup_point,omitempty"`
	AdminNotes         string               `json:"admin_notes,omitempty"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	Replacements       []ReplacementRequest `json:"replacements,omitempty"`
	SupportRequests    []SupportRequest     `json:"support_requests,omitempty"`
	PaymentOutcome     string               `json:"payment_outcome,omitempty"`
	CreatedOn          time.Time            `json:"created_on"`
	UpdatedOn          time.Time            `json:"updated_on"`
}
