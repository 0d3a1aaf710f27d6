// ABOUTME: Record domain model mirrors one flat JSON object returned by the backend
// ABOUTME: Provides identifier extraction and display formatting of cell values

package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// EmptyCell is rendered for missing values
const EmptyCell = "-"

// DisplayDateLayout is the layout used to render date columns
const DisplayDateLayout = "Jan 2, 2006"

// APIDateLayout is the date layout exchanged with the backend
const APIDateLayout = "2006-01-02"

// Record is a flat JSON object keyed by field name
type Record map[string]any

// ID returns the numeric identifier stored under field
func (r Record) ID(field string) (int, bool) {
	return toInt(r[field])
}

// String returns the raw value of key as text, or "" when absent
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return formatNumber(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Format renders the value under col.Key for display
func (r Record) Format(col Column) string {
	v, ok := r[col.Key]
	if !ok || v == nil {
		return EmptyCell
	}

	switch col.Kind {
	case KindBool:
		b, isBool := v.(bool)
		if !isBool {
			break
		}
		if b {
			return labelOr(col.TrueLabel, "Yes")
		}
		return labelOr(col.FalseLabel, "No")
	case KindCurrency:
		if f, isNum := toFloat(v); isNum {
			return fmt.Sprintf("$%.2f", f)
		}
	case KindDate:
		s := r.String(col.Key)
		if s == "" {
			return EmptyCell
		}
		if t, err := time.Parse(APIDateLayout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
		return s
	}

	s := r.String(col.Key)
	if strings.TrimSpace(s) == "" {
		return EmptyCell
	}
	return s
}

// Date parses a backend date field
func (r Record) Date(key string) (time.Time, bool) {
	s := r.String(key)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(APIDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DuplicateIDs returns identifiers that occur more than once in records
func DuplicateIDs(records []Record, idField string) []int {
	seen := make(map[int]int, len(records))
	var dups []int
	for _, r := range records {
		id, ok := r.ID(idField)
		if !ok {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
