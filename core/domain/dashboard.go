// ABOUTME: Dashboard domain models for summary statistics and duplicate detection
// ABOUTME: Mirrors the /api/dashboard/stats and /api/books/duplicates payloads

package domain

// GenreCount is one slice of the books-by-genre chart
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// TopBook is one entry of the most borrowed books list
type TopBook struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// DashboardStats holds the dashboard summary
type DashboardStats struct {
	TotalBooks        int          `json:"total_books"`
	TotalMembers      int          `json:"total_members"`
	TotalBorrowings   int          `json:"total_borrowings"`
	OverdueBorrowings int          `json:"overdue_borrowings"`
	BooksByGenre      []GenreCount `json:"books_by_genre"`
	TopBooks          []TopBook    `json:"top_books"`
	RecentBorrowings  []Record     `json:"recent_borrowings"`
}

// DuplicateGroup lists books sharing a title and author
type DuplicateGroup struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Count  int      `json:"count"`
	Books  []Record `json:"books"`
}

// MutationResult is the backend reply to create, update and delete calls
type MutationResult struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
}
