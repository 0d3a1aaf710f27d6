// ABOUTME: Request DTOs for the panel view endpoints
// ABOUTME: Carries table navigation parameters and record form bodies

package requests

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"library-admin/core/table"
	"library-admin/core/tablesort"
)

// ViewParams are the table navigation parameters of GET /views/{resource}
type ViewParams struct {
	// Page is the requested page (1-based). Zero keeps the current page.
	Page int `query:"page" minimum:"0" doc:"Page number (1-based)"`

	// PageSize changes the rows per page and returns to page 1
	PageSize int `query:"page_size" minimum:"0" maximum:"100" doc:"Rows per page"`

	// Query replaces the current search when q is present. Absent keeps the
	// saved search and an empty q clears it.
	Query string `query:"q" maxLength:"200" doc:"Case-insensitive search text, empty to clear"`

	// Status selects an option of the resource's filter, such as overdue
	// borrowings or unpaid fines
	Status string `query:"status" doc:"Filter option, see the resource's filter"`

	// Sort is a column key. Without Dir it toggles like a header click.
	Sort string `query:"sort" doc:"Column key to sort by"`

	// Dir forces the sort direction (asc or desc)
	Dir string `query:"dir" doc:"Sort direction: asc or desc"`

	// Refresh refetches the records from the backend
	Refresh bool `query:"refresh" doc:"Reload records from the backend"`

	hasQuery bool
}

// Resolve records whether q was sent, since huma leaves an absent and an
// empty parameter indistinguishable
func (p *ViewParams) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	p.hasQuery = u.Query().Has("q")
	return nil
}

// WithQuery returns p searching for query
func (p ViewParams) WithQuery(query string) ViewParams {
	p.Query = query
	p.hasQuery = true
	return p
}

// Apply updates the table state and reports whether the persistable
// preferences changed. Search and status reset to page 1, so the page is
// applied last.
func (p ViewParams) Apply(state *table.State) bool {
	before := state.Prefs()

	if p.PageSize > 0 {
		state.SetPageSize(p.PageSize)
	}
	if query := strings.TrimSpace(p.Query); p.hasQuery && query != before.Query {
		state.SetQuery(query)
	}
	if p.Status != "" {
		state.SetStatus(p.Status)
	}
	switch {
	case p.Sort != "" && p.Dir != "":
		state.SetSort(p.Sort, tablesort.ParseDirection(p.Dir))
	case p.Sort != "":
		state.ToggleSort(p.Sort)
	}
	if p.Page > 0 {
		state.SetPage(p.Page)
	}

	return state.Prefs() != before
}
