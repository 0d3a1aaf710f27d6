// ABOUTME: Table view state for one resource screen
// ABOUTME: Holds records, page, search query, row filter and sort, and renders a View

package table

import (
	"strings"
	"sync"
	"time"

	"library-admin/core/domain"
	"library-admin/core/pagination"
	"library-admin/core/tablesort"
)

// Header is one rendered column header
type Header struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Indicator string `json:"indicator"`
}

// Row is one rendered table row. Cells are keyed by column key.
type Row struct {
	ID     int               `json:"id"`
	Cells  map[string]string `json:"cells"`
	Record domain.Record     `json:"-"`
}

// Cell returns the rendered text of column key
func (r Row) Cell(key string) string {
	return r.Cells[key]
}

// View is a render-ready snapshot of a table
type View struct {
	Resource     string              `json:"resource"`
	Label        string              `json:"label"`
	Headers      []Header            `json:"headers"`
	Rows         []Row               `json:"rows"`
	Pagination   pagination.Controls `json:"pagination"`
	Query        string              `json:"query"`
	Status       string              `json:"status,omitempty"`
	SortKey      string              `json:"sort_key,omitempty"`
	SortDir      tablesort.Direction `json:"sort_dir,omitempty"`
	TotalRecords int                 `json:"total_records"`
	EmptyMessage string              `json:"empty_message,omitempty"`
}

// Empty reports whether the current page has no rows
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// State is the mutable view state of one resource table.
// It is safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	resource domain.Resource
	records  []domain.Record
	page     int
	pageSize int
	query    string
	status   string
	sorter   *tablesort.Sorter
}

// NewState creates an empty table for resource
func NewState(resource domain.Resource, pageSize int) *State {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &State{
		resource: resource,
		page:     1,
		pageSize: pageSize,
		status:   resource.Filter.Default(),
		sorter:   tablesort.NewSorter(),
	}
}

// Resource returns the resource the table displays
func (s *State) Resource() domain.Resource {
	return s.resource
}

// SetRecords replaces the loaded records
func (s *State) SetRecords(records []domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Records returns the loaded records
func (s *State) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Page returns the requested page
func (s *State) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// SetPage moves to page. Render clamps it to the available range.
func (s *State) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// SetPageSize changes the number of rows per page and returns to page 1
func (s *State) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size < 1 {
		size = pagination.DefaultPageSize
	}
	s.pageSize = size
	s.page = 1
}

// SetQuery changes the search text and returns to page 1
func (s *State) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = strings.TrimSpace(query)
	s.page = 1
}

// SetStatus selects the filter option with value and returns to page 1.
// Unknown values select the default option. It is ignored for resources
// without a filter.
func (s *State) SetStatus(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.resource.Filter
	if f == nil {
		return
	}
	option, ok := f.Option(value)
	if !ok {
		option, _ = f.Option(f.Default())
	}
	s.status = option.Value
	s.page = 1
}

// Status returns the selected filter option, or "" without a filter
func (s *State) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// ToggleSort handles a click on the header of column key
func (s *State) ToggleSort(key string) tablesort.Direction {
	return s.sorter.Toggle(key)
}

// SetSort forces the sort column and direction
func (s *State) SetSort(key string, dir tablesort.Direction) {
	if key != "" {
		if _, ok := s.resource.Column(key); !ok {
			return
		}
	}
	s.sorter.Set(key, dir)
}

// Prefs returns the persistable part of the state
func (s *State) Prefs() domain.ViewPrefs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, dir := s.sorter.Active()
	return domain.ViewPrefs{
		SortKey:  key,
		SortDir:  string(dir),
		PageSize: s.pageSize,
		Query:    s.query,
	}
}

// ApplyPrefs restores previously saved preferences
func (s *State) ApplyPrefs(prefs domain.ViewPrefs) {
	if prefs.PageSize > 0 {
		s.SetPageSize(prefs.PageSize)
	}
	s.SetQuery(prefs.Query)
	s.SetSort(prefs.SortKey, tablesort.ParseDirection(prefs.SortDir))
}

// Render produces the view at now. Records are filtered by query and
// status, sliced to the current page, and the page rows are then sorted.
func (s *State) Render(now time.Time) View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filter(now)
	controls := pagination.Build(len(filtered), s.pageSize, s.page)
	pageRecords := pagination.Slice(filtered, controls.Current, s.pageSize)

	rows := make([]Row, 0, len(pageRecords))
	for _, rec := range pageRecords {
		rows = append(rows, s.row(rec, now))
	}
	tablesort.Apply(s.sorter, rows)

	key, dir := s.sorter.Active()
	view := View{
		Resource:     s.resource.Name,
		Label:        s.resource.Label,
		Headers:      s.headers(),
		Rows:         rows,
		Pagination:   controls,
		Query:        s.query,
		SortKey:      key,
		TotalRecords: len(filtered),
	}
	if key != "" {
		view.SortDir = dir
	}
	if s.resource.Filter != nil {
		view.Status = s.status
	}
	if len(rows) == 0 {
		view.EmptyMessage = s.resource.EmptyMessage()
	}
	return view
}

func (s *State) filter(now time.Time) []domain.Record {
	query := strings.ToLower(s.query)
	out := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		if s.resource.Filter != nil && !s.resource.Filter.Accepts(s.status, rec, now) {
			continue
		}
		if query != "" && !s.matches(rec, query) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (s *State) matches(rec domain.Record, query string) bool {
	for _, field := range s.resource.SearchFields {
		if strings.Contains(strings.ToLower(rec.String(field)), query) {
			return true
		}
	}
	return false
}

func (s *State) row(rec domain.Record, now time.Time) Row {
	id, _ := rec.ID(s.resource.IDField)
	cells := make(map[string]string, len(s.resource.Columns))
	for _, col := range s.resource.Columns {
		if col.Compute != nil {
			cells[col.Key] = col.Compute(rec, now)
			continue
		}
		cells[col.Key] = rec.Format(col)
	}
	return Row{ID: id, Cells: cells, Record: rec}
}

func (s *State) headers() []Header {
	headers := make([]Header, 0, len(s.resource.Columns))
	for _, col := range s.resource.Columns {
		headers = append(headers, Header{
			Key:       col.Key,
			Label:     col.Label,
			Indicator: s.sorter.Indicator(col.Key),
		})
	}
	return headers
}
