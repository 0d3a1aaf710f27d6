// ABOUTME: UI feedback interfaces shared by screens and front ends
// ABOUTME: Defines contracts for toast notifications and the busy overlay

package interfaces

import "library-admin/core/domain"

// Notifier displays transient messages to the user.
//
// Example usage:
//
//	notifier.Notify("Book added successfully", domain.KindSuccess)
//	notifier.Notify("Failed to load members", domain.KindError)
type Notifier interface {
	// Notify shows a dismissible, auto-expiring message and returns it.
	Notify(message string, kind domain.NotificationKind) domain.Notification

	// Dismiss removes a message before it expires.
	// Returns false if the message was unknown or already expired.
	Dismiss(id string) bool

	// Active returns the unexpired messages, oldest first.
	Active() []domain.Notification
}

// BusyIndicator is the full-screen blocking overlay shown during network calls.
// Show and Hide must be safe to call redundantly.
type BusyIndicator interface {
	// Show makes the overlay visible. Calling Show while visible is a no-op.
	Show()

	// Hide removes the overlay. Calling Hide while hidden is a no-op.
	Hide()

	// Visible reports whether the overlay is currently shown.
	Visible() bool
}
