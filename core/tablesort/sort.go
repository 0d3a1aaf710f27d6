// ABOUTME: Table sorting that orders rows by the text of one column
// ABOUTME: Compares cells as dates, then numbers, then with English collation

package tablesort

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"library-admin/pkg/utils/parse"
	timeutil "library-admin/pkg/utils/time"
)

// Direction is the sort order of a column
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps s to a direction, defaulting to ascending
func ParseDirection(s string) Direction {
	if Direction(s) == Descending {
		return Descending
	}
	return Ascending
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Row exposes the rendered text of a cell
type Row interface {
	Cell(key string) string
}

// Sort stably reorders rows by the cell text under key
func Sort[R Row](rows []R, key string, dir Direction) {
	if key == "" || len(rows) < 2 {
		return
	}

	cmp := newComparer()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Cell(key), rows[j].Cell(key)
		if dir == Descending {
			return cmp.compare(b, a) < 0
		}
		return cmp.compare(a, b) < 0
	})
}

// Compare orders two cell texts the way Sort does
func Compare(a, b string) int {
	return newComparer().compare(a, b)
}

type comparer struct {
	collator *collate.Collator
}

// collate.Collator keeps internal buffers and is not safe for concurrent use
func newComparer() *comparer {
	return &comparer{collator: collate.New(language.English)}
}

func (c *comparer) compare(a, b string) int {
	if ta, ok := timeutil.Parse(a); ok {
		if tb, ok := timeutil.Parse(b); ok {
			return ta.Compare(tb)
		}
	}

	if na, ok := parse.Number(a); ok {
		if nb, ok := parse.Number(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	return c.collator.CompareString(a, b)
}

// Sorter tracks the active column and direction of one table
type Sorter struct {
	mu  sync.RWMutex
	key string
	dir Direction
}

// NewSorter creates a sorter with no active column
func NewSorter() *Sorter {
	return &Sorter{dir: Ascending}
}

// Toggle handles a header click. Clicking the active column flips its
// direction; clicking another column makes it active in ascending order.
func (s *Sorter) Toggle(key string) Direction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == key {
		s.dir = s.dir.Reverse()
	} else {
		s.key = key
		s.dir = Ascending
	}
	return s.dir
}

// Set forces the active column and direction
func (s *Sorter) Set(key string, dir Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.dir = dir
}

// Clear removes the active column
func (s *Sorter) Clear() {
	s.Set("", Ascending)
}

// Active returns the active column and direction
func (s *Sorter) Active() (string, Direction) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key, s.dir
}

// Indicator returns the header marker for key: ▲, ▼ or ""
func (s *Sorter) Indicator(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if key == "" || key != s.key {
		return ""
	}
	if s.dir == Descending {
		return "▼"
	}
	return "▲"
}

// Apply sorts rows by the active column, if any
func Apply[R Row](s *Sorter, rows []R) {
	key, dir := s.Active()
	Sort(rows, key, dir)
}
