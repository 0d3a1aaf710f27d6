// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"library-admin/core/domain"
)

// RecordService performs CRUD calls for one REST resource
type RecordService interface {
	Resource() domain.Resource
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id int) (domain.Record, error)
	Create(ctx context.Context, record domain.Record) (*domain.MutationResult, error)
	Update(ctx context.Context, id int, record domain.Record) (*domain.MutationResult, error)
	Delete(ctx context.Context, id int) (*domain.MutationResult, error)
}

// DuplicateFinder lists books sharing a title and author
type DuplicateFinder interface {
	Duplicates(ctx context.Context) ([]domain.DuplicateGroup, error)
}

// DashboardService fetches the dashboard summary statistics
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

// ViewStateStore persists per-resource table preferences
type ViewStateStore interface {
	// Load returns the saved preferences, or the zero value when none exist.
	Load(ctx context.Context, resource string) (domain.ViewPrefs, error)

	// Save stores the preferences for resource.
	Save(ctx context.Context, resource string, prefs domain.ViewPrefs) error
}
