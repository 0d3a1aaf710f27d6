// ABOUTME: Table filters, computed columns and form option sources
// ABOUTME: Declares the per-resource status filters and foreign-key option lists

package domain

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll is the value of the default option of every filter
const FilterAll = "all"

// Filter is a set of mutually exclusive row filters shown above a table.
// The first option is the default.
type Filter struct {
	Label   string         `json:"label"`
	Options []FilterOption `json:"options"`
}

// FilterOption is one filter button. A nil Match accepts every record.
type FilterOption struct {
	Value string                             `json:"value"`
	Label string                             `json:"label"`
	Match func(r Record, now time.Time) bool `json:"-"`
}

// Default returns the value of the first option
func (f *Filter) Default() string {
	if f == nil || len(f.Options) == 0 {
		return ""
	}
	return f.Options[0].Value
}

// Option returns the option with value, compared case-insensitively
func (f *Filter) Option(value string) (FilterOption, bool) {
	if f == nil {
		return FilterOption{}, false
	}
	for _, o := range f.Options {
		if strings.EqualFold(o.Value, value) {
			return o, true
		}
	}
	return FilterOption{}, false
}

// Next returns the option after value, wrapping around to the first
func (f *Filter) Next(value string) string {
	if f == nil || len(f.Options) == 0 {
		return ""
	}
	for i, o := range f.Options {
		if o.Value == value {
			return f.Options[(i+1)%len(f.Options)].Value
		}
	}
	return f.Default()
}

// Accepts reports whether r passes the option with value at now.
// Unknown values accept everything.
func (f *Filter) Accepts(value string, r Record, now time.Time) bool {
	o, ok := f.Option(value)
	if !ok || o.Match == nil {
		return true
	}
	return o.Match(r, now)
}

// OptionSource fills a foreign-key form field from another resource
type OptionSource struct {
	// Resource is the registry name of the referenced resource
	Resource string `json:"resource"`

	Label   func(r Record) string `json:"-"`
	Include func(r Record) bool   `json:"-"`
}

// Option is one selectable value of a foreign-key field
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Borrowing status labels shown in the borrowings table
const (
	LabelReturned = "Returned"
	LabelOverdue  = "Overdue"
	LabelActive   = "Active"
)

// BorrowingStatusLabel derives the status column of a borrowing at now
func BorrowingStatusLabel(r Record, now time.Time) string {
	switch {
	case MatchesStatus(r, StatusReturned, now):
		return LabelReturned
	case MatchesStatus(r, StatusOverdue, now):
		return LabelOverdue
	default:
		return LabelActive
	}
}

// Bool reads a boolean field, accepting JSON booleans, numbers and text
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		n, ok := toFloat(v)
		return ok && n != 0
	}
}

func statusOption(status BorrowingStatus, label string) FilterOption {
	return FilterOption{
		Value: string(status),
		Label: label,
		Match: func(r Record, now time.Time) bool { return MatchesStatus(r, status, now) },
	}
}

func valueOption(key, value string) FilterOption {
	return FilterOption{
		Value: strings.ToLower(value),
		Label: value,
		Match: func(r Record, _ time.Time) bool { return strings.EqualFold(r.String(key), value) },
	}
}

var (
	borrowingFilter = &Filter{
		Label: "Status",
		Options: []FilterOption{
			{Value: FilterAll, Label: "All"},
			statusOption(StatusActive, "Active"),
			statusOption(StatusReturned, "Returned"),
			statusOption(StatusOverdue, "Overdue"),
		},
	}

	fineFilter = &Filter{
		Label: "Payment",
		Options: []FilterOption{
			{Value: FilterAll, Label: "All"},
			{Value: "paid", Label: "Paid", Match: func(r Record, _ time.Time) bool { return r.Bool("Paid") }},
			{Value: "unpaid", Label: "Unpaid", Match: func(r Record, _ time.Time) bool { return !r.Bool("Paid") }},
		},
	}

	reservationFilter = &Filter{
		Label: "Status",
		Options: []FilterOption{
			{Value: FilterAll, Label: "All"},
			valueOption("Status", "Pending"),
			valueOption("Status", "Completed"),
			valueOption("Status", "Cancelled"),
		},
	}
)

func nameLabel(r Record) string {
	return r.String("Name")
}

var (
	memberSource    = &OptionSource{Resource: ResourceMembers, Label: nameLabel}
	staffSource     = &OptionSource{Resource: ResourceStaff, Label: nameLabel}
	publisherSource = &OptionSource{Resource: ResourcePublishers, Label: nameLabel}

	// Only books with copies left can be lent or reserved
	bookSource = &OptionSource{
		Resource: ResourceBooks,
		Label: func(r Record) string {
			return r.String("Title") + " (" + r.String("Quantity") + " available)"
		},
		Include: func(r Record) bool {
			n, ok := toFloat(r["Quantity"])
			return ok && n > 0
		},
	}

	membershipTypeSource = &OptionSource{
		Resource: ResourceMembershipTypes,
		Label: func(r Record) string {
			return r.String("TypeName") + " (" + r.String("DurationMonths") + " months, " +
				r.Format(Column{Key: "Fee", Kind: KindCurrency}) + ")"
		},
	}

	borrowingSource = &OptionSource{
		Resource: ResourceBorrowings,
		Label: func(r Record) string {
			return r.String("MemberName") + " - " + r.String("BookTitle") +
				" (Due: " + r.Format(Column{Key: "DueDate", Kind: KindDate}) + ")"
		},
	}
)
