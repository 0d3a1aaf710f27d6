// ABOUTME: Dashboard service fetching summary statistics from the backend
// ABOUTME: Builds the genre chart, recent borrowings and top books for display

package dashboard

import (
	"context"
	"strings"
	"time"

	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

// UnspecifiedGenre labels books without a genre
const UnspecifiedGenre = "Unspecified"

// Palette is the fixed chart colour cycle
var Palette = []string{
	"#4e73df", "#1cc88a", "#36b9cc", "#f6c23e", "#e74a3b",
	"#6f42c1", "#5a5c69", "#858796", "#d1d3e2", "#f8f9fc",
}

// Service implements interfaces.DashboardService
type Service struct {
	api interfaces.APIClient
}

// NewService creates a dashboard service
func NewService(api interfaces.APIClient) *Service {
	return &Service{api: api}
}

// Stats fetches the dashboard summary
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.api.Get(ctx, "/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Slice is one wedge of the genre chart
type Slice struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// GenreChart converts genre counts into chart slices
func GenreChart(genres []domain.GenreCount) []Slice {
	total := 0
	for _, g := range genres {
		total += g.Count
	}

	slices := make([]Slice, 0, len(genres))
	for i, g := range genres {
		label := strings.TrimSpace(g.Genre)
		if label == "" {
			label = UnspecifiedGenre
		}
		var pct float64
		if total > 0 {
			pct = float64(g.Count) * 100 / float64(total)
		}
		slices = append(slices, Slice{
			Label:   label,
			Count:   g.Count,
			Percent: pct,
			Color:   Palette[i%len(Palette)],
		})
	}
	return slices
}

// Badge values for recent borrowings
const (
	BadgeOverdue  = "Overdue"
	BadgeBorrowed = "Borrowed"
	BadgeReturned = "Returned"
)

// BorrowingBadge returns the status badge of a borrowing at now
func BorrowingBadge(r domain.Record, now time.Time) string {
	switch {
	case domain.MatchesStatus(r, domain.StatusOverdue, now):
		return BadgeOverdue
	case domain.MatchesStatus(r, domain.StatusActive, now):
		return BadgeBorrowed
	default:
		return BadgeReturned
	}
}

// RecentBorrowing is one rendered row of the recent borrowings table
type RecentBorrowing struct {
	Member   string `json:"member"`
	Book     string `json:"book"`
	Borrowed string `json:"borrowed"`
	Due      string `json:"due"`
	Status   string `json:"status"`
}

// RankedBook is one rendered row of the top books table
type RankedBook struct {
	Rank  int    `json:"rank"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Card is one headline statistic
type Card struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// View is the render-ready dashboard
type View struct {
	Cards             []Card            `json:"cards"`
	Genres            []Slice           `json:"genres"`
	RecentBorrowings  []RecentBorrowing `json:"recent_borrowings"`
	RecentEmptyText   string            `json:"recent_empty_text,omitempty"`
	TopBooks          []RankedBook      `json:"top_books"`
	TopBooksEmptyText string            `json:"top_books_empty_text,omitempty"`
}

// Render builds the dashboard view from stats at now
func Render(stats *domain.DashboardStats, now time.Time) View {
	view := View{
		Cards: []Card{
			{Label: "Total Books", Value: stats.TotalBooks},
			{Label: "Total Members", Value: stats.TotalMembers},
			{Label: "Total Borrowings", Value: stats.TotalBorrowings},
			{Label: "Overdue", Value: stats.OverdueBorrowings},
		},
		Genres:           GenreChart(stats.BooksByGenre),
		RecentBorrowings: make([]RecentBorrowing, 0, len(stats.RecentBorrowings)),
		TopBooks:         make([]RankedBook, 0, len(stats.TopBooks)),
	}

	dateCol := domain.Column{Kind: domain.KindDate}
	for _, r := range stats.RecentBorrowings {
		dateCol.Key = "BorrowDate"
		borrowed := r.Format(dateCol)
		dateCol.Key = "DueDate"
		due := r.Format(dateCol)

		view.RecentBorrowings = append(view.RecentBorrowings, RecentBorrowing{
			Member:   r.String("MemberName"),
			Book:     r.String("BookTitle"),
			Borrowed: borrowed,
			Due:      due,
			Status:   BorrowingBadge(r, now),
		})
	}
	if len(view.RecentBorrowings) == 0 {
		view.RecentEmptyText = "No recent borrowings found"
	}

	for i, b := range stats.TopBooks {
		view.TopBooks = append(view.TopBooks, RankedBook{Rank: i + 1, Title: b.Title, Count: b.Count})
	}
	if len(view.TopBooks) == 0 {
		view.TopBooksEmptyText = "No book data available"
	}

	return view
}

var _ interfaces.DashboardService = (*Service)(nil)
