// ABOUTME: Pagination utilities for table views
// ABOUTME: Computes page windows and the Previous/Next/page-number controls

package pagination

import "strconv"

const (
	// DefaultPageSize is used when a page size below 1 is requested
	DefaultPageSize = 10

	// WindowSize is the maximum number of page-number controls
	WindowSize = 5
)

// ControlKind distinguishes the navigation controls
type ControlKind string

const (
	ControlPrevious ControlKind = "previous"
	ControlPage     ControlKind = "page"
	ControlNext     ControlKind = "next"
)

// Control is one rendered pagination link
type Control struct {
	Kind     ControlKind `json:"kind"`
	Label    string      `json:"label"`
	Page     int         `json:"page"`
	Disabled bool        `json:"disabled"`
	Active   bool        `json:"active"`
}

// Controls is the full set of pagination links for one table
type Controls struct {
	TotalItems int       `json:"total_items"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
	Current    int       `json:"current"`
	Previous   Control   `json:"previous"`
	Pages      []Control `json:"pages"`
	Next       Control   `json:"next"`
}

// Empty reports whether no controls should be rendered
func (c Controls) Empty() bool {
	return c.TotalPages <= 1
}

// All returns Previous, the page window and Next in render order.
// Returns nil when the controls are empty.
func (c Controls) All() []Control {
	if c.Empty() {
		return nil
	}
	out := make([]Control, 0, len(c.Pages)+2)
	out = append(out, c.Previous)
	out = append(out, c.Pages...)
	return append(out, c.Next)
}

// Invoke calls onChange with the control's target page. Disabled and
// active controls do nothing. Invoke never fetches data itself.
func (c Controls) Invoke(control Control, onChange func(page int)) bool {
	if c.Empty() || control.Disabled || control.Active || onChange == nil {
		return false
	}
	if control.Page < 1 || control.Page > c.TotalPages {
		return false
	}
	onChange(control.Page)
	return true
}

// TotalPages returns ceil(total/pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Window returns the page numbers shown around current, at most WindowSize
// entries, clamped to [1, totalPages]
func Window(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	current = clamp(current, 1, totalPages)

	start := max(1, current-2)
	end := min(start+WindowSize-1, totalPages)
	if end-start < WindowSize-1 {
		start = max(1, end-WindowSize+1)
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Build computes the controls for a table of total items
func Build(total, pageSize, current int) Controls {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := TotalPages(total, pageSize)
	c := Controls{
		TotalItems: total,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Current:    clamp(current, 1, max(totalPages, 1)),
	}
	if c.Empty() {
		return c
	}

	c.Previous = Control{
		Kind:     ControlPrevious,
		Label:    "«",
		Page:     c.Current - 1,
		Disabled: c.Current == 1,
	}
	for _, p := range Window(c.Current, totalPages) {
		c.Pages = append(c.Pages, Control{
			Kind:   ControlPage,
			Label:  strconv.Itoa(p),
			Page:   p,
			Active: p == c.Current,
		})
	}
	c.Next = Control{
		Kind:     ControlNext,
		Label:    "»",
		Page:     c.Current + 1,
		Disabled: c.Current == totalPages,
	}
	return c
}

// Slice returns the items on the given page
func Slice[T any](items []T, page, pageSize int) []T {
	// Handle invalid page
	if page < 1 {
		page = 1
	}

	// Handle invalid pageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
