package domain

import "time"

// ViewPrefs are the per-resource table preferences kept between sessions
type ViewPrefs struct {
	SortKey  string `json:"sort_key,omitempty"`
	SortDir  string `json:"sort_dir,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	Query    string `json:"query,omitempty"`
}

// BorrowingStatus filters borrowings by their return state
type BorrowingStatus string

const (
	StatusAll      BorrowingStatus = FilterAll
	StatusActive   BorrowingStatus = "active"
	StatusReturned BorrowingStatus = "returned"
	StatusOverdue  BorrowingStatus = "overdue"
)

// MatchesStatus reports whether a borrowing record falls under status at now
func MatchesStatus(r Record, status BorrowingStatus, now time.Time) bool {
	returned := r.String("ReturnDate") != ""
	switch status {
	case StatusActive:
		return !returned
	case StatusReturned:
		return returned
	case StatusOverdue:
		if returned {
			return false
		}
		due, ok := r.Date("DueDate")
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return ok && due.Before(today)
	default:
		return true
	}
}
