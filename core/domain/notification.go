// ABOUTME: Notification domain model for transient toast messages
// ABOUTME: Defines the message kinds understood by the notification centre

package domain

import "time"

// NotificationKind is the visual category of a toast
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
	KindWarning NotificationKind = "warning"
	KindInfo    NotificationKind = "info"
)

// ParseNotificationKind normalises s to a known kind.
// Empty input defaults to success; unknown values become info.
func ParseNotificationKind(s string) NotificationKind {
	switch NotificationKind(s) {
	case "":
		return KindSuccess
	case KindSuccess, KindError, KindWarning, KindInfo:
		return NotificationKind(s)
	default:
		return KindInfo
	}
}

// Notification is a dismissible, auto-expiring message
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}
