// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the API and display date formats found in table cells

package time

import (
	"strings"
	"time"
)

// Formats recognised in backend payloads and rendered cells
var timeFormats = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	"01/02/2006",
}

// Parse attempts each known format and reports whether one matched
func Parse(timeStr string) (time.Time, bool) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, false
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseFlexibleTime attempts to parse a time string using various formats
func ParseFlexibleTime(timeStr string) time.Time {
	t, _ := Parse(timeStr)
	return t
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed, ok := Parse(timeStr); ok {
		return parsed
	}
	return defaultTime
}
