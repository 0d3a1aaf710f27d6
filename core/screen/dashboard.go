// ABOUTME: Dashboard and duplicate-books screens
// ABOUTME: Fetch summary data and notify the user when it cannot be shown

package screen

import (
	"context"
	"time"

	"library-admin/core/dashboard"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

// Dashboard is the controller behind the dashboard page
type Dashboard struct {
	service  interfaces.DashboardService
	notifier interfaces.Notifier
	now      func() time.Time
}

// NewDashboard creates a dashboard controller
func NewDashboard(service interfaces.DashboardService, notifier interfaces.Notifier) *Dashboard {
	return &Dashboard{service: service, notifier: notifier, now: time.Now}
}

// Load fetches the statistics and renders the dashboard
func (d *Dashboard) Load(ctx context.Context) (*dashboard.View, error) {
	stats, err := d.service.Stats(ctx)
	if err != nil {
		d.notifier.Notify("Failed to load dashboard data", domain.KindError)
		return nil, err
	}
	view := dashboard.Render(stats, d.now())
	return &view, nil
}

// Duplicates fetches groups of books sharing a title and author.
// An empty result is reported as an informational message.
func Duplicates(ctx context.Context, finder interfaces.DuplicateFinder, notifier interfaces.Notifier) ([]domain.DuplicateGroup, error) {
	groups, err := finder.Duplicates(ctx)
	if err != nil {
		notifier.Notify("Failed to load duplicate books", domain.KindError)
		return nil, err
	}
	if len(groups) == 0 {
		notifier.Notify("No duplicate books found", domain.KindInfo)
	}
	return groups, nil
}
