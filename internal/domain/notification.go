package domain

import "time"

// RecipientAll targets a notification at every user.
const RecipientAll = "all"

type NotificationType string

const (
	NotificationTypeOrder   NotificationType = "ORDER"
	NotificationTypeAccount NotificationType = "ACCOUNT"
	NotificationTypeSupport NotificationType = "SUPPORT"
	NotificationTypeSystem  NotificationType = "SYSTEM"
)

// Notification is one entry in the append-only sink. Only IsRead mutates
// after creation.
type Notification struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Message    string            `json:"message"`
	Type       NotificationType  `json:"type"`
	IsRead     bool              `json:"is_read"`
	OrderID    string            `json:"order_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedOn  time.Time         `json:"created_on"`
}

// TargetedAt reports whether the notification is visible to the given user,
// either directly or via the broadcast recipient.
func (n *Notification) TargetedAt(userID string) bool {
	return n.UserID == userID || n.UserID == RecipientAll
}
