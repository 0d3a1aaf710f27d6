// ABOUTME: Dashboard handlers for the panel API
// ABOUTME: Serves the rendered dashboard and the duplicate books view behind feature flags

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"library-admin/core/dashboard"
	"library-admin/core/domain"
	"library-admin/core/interfaces"
	"library-admin/core/screen"
	"library-admin/pkg/featureflags"
)

// DashboardHandler handles the dashboard and duplicates endpoints
type DashboardHandler struct {
	dashboard *screen.Dashboard
	finder    interfaces.DuplicateFinder
	notifier  interfaces.Notifier
	flags     featureflags.Manager
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(d *screen.Dashboard, finder interfaces.DuplicateFinder, notifier interfaces.Notifier, flags featureflags.Manager) *DashboardHandler {
	if flags == nil {
		flags = featureflags.NewDefaultManager()
	}
	return &DashboardHandler{
		dashboard: d,
		finder:    finder,
		notifier:  notifier,
		flags:     flags,
	}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getDashboard",
		Method:      http.MethodGet,
		Path:        "/views/dashboard",
		Summary:     "Render the dashboard",
		Description: "Returns the headline counts, genre chart, recent borrowings and top books",
		Tags:        []string{"Dashboard"},
	}, h.GetDashboard)

	huma.Register(api, huma.Operation{
		OperationID: "getDuplicateBooks",
		Method:      http.MethodGet,
		Path:        "/views/books/duplicates",
		Summary:     "List duplicate books",
		Description: "Returns groups of books sharing a title and author",
		Tags:        []string{"Dashboard"},
	}, h.GetDuplicates)
}

// GetDashboardOutput defines the output for GetDashboard
type GetDashboardOutput struct {
	Body dashboard.View
}

// GetDashboard handles the GET /views/dashboard endpoint
func (h *DashboardHandler) GetDashboard(ctx context.Context, input *struct{}) (*GetDashboardOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.DashboardEnabled) {
		return nil, huma.Error404NotFound("Dashboard is disabled")
	}

	view, err := h.dashboard.Load(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetDashboardOutput{Body: *view}, nil
}

// GetDuplicatesOutput defines the output for GetDuplicates
type GetDuplicatesOutput struct {
	Body struct {
		Groups []domain.DuplicateGroup `json:"groups" doc:"Books sharing a title and author"`
	}
}

// GetDuplicates handles the GET /views/books/duplicates endpoint
func (h *DashboardHandler) GetDuplicates(ctx context.Context, input *struct{}) (*GetDuplicatesOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.DuplicatesEnabled) {
		return nil, huma.Error404NotFound("Duplicates view is disabled")
	}

	groups, err := screen.Duplicates(ctx, h.finder, h.notifier)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &GetDuplicatesOutput{}
	output.Body.Groups = groups
	if output.Body.Groups == nil {
		output.Body.Groups = []domain.DuplicateGroup{}
	}
	return output, nil
}
