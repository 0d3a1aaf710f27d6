// ABOUTME: Public types for the library admin client API
// ABOUTME: Re-exports the render-ready views and records of the core packages

package adminlib

import (
	"library-admin/core/dashboard"
	"library-admin/core/domain"
	"library-admin/core/table"
)

type (
	// Record is one flat backend row keyed by field name
	Record = domain.Record

	// Resource describes one REST resource with its columns and form fields
	Resource = domain.Resource

	// TableView is a render-ready page of a resource table
	TableView = table.View

	// DashboardView holds the dashboard cards, genre chart and lists
	DashboardView = dashboard.View

	// Notification is one toast message
	Notification = domain.Notification

	// MutationResult is the backend reply to a create, update or delete
	MutationResult = domain.MutationResult

	// DuplicateGroup is a set of books sharing a title and author
	DuplicateGroup = domain.DuplicateGroup

	// FieldOption is one choice of a foreign-key form field
	FieldOption = domain.Option
)

// Resource names accepted by the client
const (
	Books           = domain.ResourceBooks
	Members         = domain.ResourceMembers
	Staff           = domain.ResourceStaff
	Publishers      = domain.ResourcePublishers
	Borrowings      = domain.ResourceBorrowings
	Reservations    = domain.ResourceReservations
	Fines           = domain.ResourceFines
	MembershipTypes = domain.ResourceMembershipTypes
)
