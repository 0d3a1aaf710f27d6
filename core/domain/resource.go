// ABOUTME: Resource domain model describes one REST-exposed entity type
// ABOUTME: Holds the registry of library resources with their columns and form fields

package domain

import (
	"sort"
	"strings"
	"time"
)

// ColumnKind controls how a value is rendered and validated
type ColumnKind string

const (
	KindText     ColumnKind = "text"
	KindNumber   ColumnKind = "number"
	KindDate     ColumnKind = "date"
	KindCurrency ColumnKind = "currency"
	KindBool     ColumnKind = "bool"
	KindEmail    ColumnKind = "email"
)

// Column is a table column bound to a record field
type Column struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind"`

	// TrueLabel and FalseLabel render boolean columns
	TrueLabel  string `json:"true_label,omitempty"`
	FalseLabel string `json:"false_label,omitempty"`

	// Compute derives the cell from the whole record instead of Key
	Compute func(r Record, now time.Time) string `json:"-"`
}

// Field is an editable form input bound to a record field
type Field struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Kind     ColumnKind `json:"kind"`
	Required bool       `json:"required"`

	// Source lists the selectable records of a foreign-key field
	Source *OptionSource `json:"source,omitempty"`
}

// Resource describes a REST resource exposed under /api/<Path>
type Resource struct {
	// Name is the registry key, e.g. "books"
	Name string `json:"name"`

	// Path is the API path segment
	Path string `json:"path"`

	// Label is the plural display name, e.g. "Books"
	Label string `json:"label"`

	// Singular is used in messages, e.g. "book"
	Singular string `json:"singular"`

	// Plural overrides the lower-cased Label in messages
	Plural string `json:"plural,omitempty"`

	// IDField is the record key holding the numeric identifier
	IDField string `json:"id_field"`

	Columns      []Column `json:"columns"`
	Fields       []Field  `json:"fields"`
	SearchFields []string `json:"search_fields"`

	// Filter is the optional row filter offered above the table
	Filter *Filter `json:"filter,omitempty"`
}

// Column returns the column with the given key
func (r Resource) Column(key string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// PluralNoun returns the lower-case plural used in messages
func (r Resource) PluralNoun() string {
	if r.Plural != "" {
		return r.Plural
	}
	return strings.ToLower(r.Label)
}

// SingularTitle returns Singular with its first letter upper-cased
func (r Resource) SingularTitle() string {
	if r.Singular == "" {
		return ""
	}
	return strings.ToUpper(r.Singular[:1]) + r.Singular[1:]
}

// EmptyMessage is shown when a table has no rows
func (r Resource) EmptyMessage() string {
	return "No " + r.PluralNoun() + " found"
}

// Field returns the form field with the given key
func (r Resource) Field(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Resource names
const (
	ResourceBooks           = "books"
	ResourceMembers         = "members"
	ResourceStaff           = "staff"
	ResourcePublishers      = "publishers"
	ResourceBorrowings      = "borrowings"
	ResourceReservations    = "reservations"
	ResourceFines           = "fines"
	ResourceMembershipTypes = "membershiptypes"
)

var registry = map[string]Resource{
	ResourcePublishers: {
		Name: ResourcePublishers, Path: "publishers", Label: "Publishers", Singular: "publisher",
		IDField: "PublisherID",
		Columns: []Column{
			{Key: "Name", Label: "Name", Kind: KindText},
			{Key: "Address", Label: "Address", Kind: KindText},
			{Key: "Email", Label: "Email", Kind: KindEmail},
			{Key: "Phone", Label: "Phone", Kind: KindText},
		},
		Fields: []Field{
			{Key: "Name", Label: "Name", Kind: KindText, Required: true},
			{Key: "Address", Label: "Address", Kind: KindText},
			{Key: "Email", Label: "Email", Kind: KindEmail},
			{Key: "Phone", Label: "Phone", Kind: KindText},
		},
		SearchFields: []string{"Name", "Email", "Phone"},
	},
	ResourceBooks: {
		Name: ResourceBooks, Path: "books", Label: "Books", Singular: "book",
		IDField: "BookID",
		Columns: []Column{
			{Key: "Title", Label: "Title", Kind: KindText},
			{Key: "Author", Label: "Author", Kind: KindText},
			{Key: "ISBN", Label: "ISBN", Kind: KindText},
			{Key: "Genre", Label: "Genre", Kind: KindText},
			{Key: "PublishedYear", Label: "Year", Kind: KindNumber},
			{Key: "Quantity", Label: "Quantity", Kind: KindNumber},
		},
		Fields: []Field{
			{Key: "Title", Label: "Title", Kind: KindText, Required: true},
			{Key: "Author", Label: "Author", Kind: KindText, Required: true},
			{Key: "ISBN", Label: "ISBN", Kind: KindText, Required: true},
			{Key: "Genre", Label: "Genre", Kind: KindText},
			{Key: "PublishedYear", Label: "Published Year", Kind: KindNumber},
			{Key: "PublisherID", Label: "Publisher", Kind: KindNumber, Source: publisherSource},
			{Key: "Quantity", Label: "Quantity", Kind: KindNumber, Required: true},
		},
		SearchFields: []string{"Title", "Author", "ISBN", "Genre"},
	},
	ResourceMembershipTypes: {
		Name: ResourceMembershipTypes, Path: "membershiptypes", Label: "Membership Types", Singular: "membership type",
		IDField: "MembershipTypeID",
		Columns: []Column{
			{Key: "TypeName", Label: "Type", Kind: KindText},
			{Key: "DurationMonths", Label: "Duration (months)", Kind: KindNumber},
			{Key: "Fee", Label: "Fee", Kind: KindCurrency},
		},
		Fields: []Field{
			{Key: "TypeName", Label: "Type Name", Kind: KindText, Required: true},
			{Key: "DurationMonths", Label: "Duration (months)", Kind: KindNumber, Required: true},
			{Key: "Fee", Label: "Fee", Kind: KindCurrency, Required: true},
		},
		SearchFields: []string{"TypeName"},
	},
	ResourceMembers: {
		Name: ResourceMembers, Path: "members", Label: "Members", Singular: "member",
		IDField: "MemberID",
		Columns: []Column{
			{Key: "Name", Label: "Name", Kind: KindText},
			{Key: "Email", Label: "Email", Kind: KindEmail},
			{Key: "Phone", Label: "Phone", Kind: KindText},
			{Key: "Address", Label: "Address", Kind: KindText},
			{Key: "MembershipTypeName", Label: "Membership", Kind: KindText},
			{Key: "MembershipDate", Label: "Member Since", Kind: KindDate},
		},
		Fields: []Field{
			{Key: "Name", Label: "Name", Kind: KindText, Required: true},
			{Key: "Email", Label: "Email", Kind: KindEmail, Required: true},
			{Key: "Phone", Label: "Phone", Kind: KindText, Required: true},
			{Key: "Address", Label: "Address", Kind: KindText},
			{Key: "MembershipTypeID", Label: "Membership Type", Kind: KindNumber, Source: membershipTypeSource},
			{Key: "MembershipDate", Label: "Membership Date", Kind: KindDate},
		},
		SearchFields: []string{"Name", "Email", "Phone"},
	},
	ResourceStaff: {
		Name: ResourceStaff, Path: "staff", Label: "Staff", Singular: "staff member", Plural: "staff members",
		IDField: "StaffID",
		Columns: []Column{
			{Key: "Name", Label: "Name", Kind: KindText},
			{Key: "Email", Label: "Email", Kind: KindEmail},
			{Key: "Phone", Label: "Phone", Kind: KindText},
			{Key: "Role", Label: "Role", Kind: KindText},
			{Key: "HireDate", Label: "Hire Date", Kind: KindDate},
		},
		Fields: []Field{
			{Key: "Name", Label: "Name", Kind: KindText, Required: true},
			{Key: "Email", Label: "Email", Kind: KindEmail, Required: true},
			{Key: "Phone", Label: "Phone", Kind: KindText, Required: true},
			{Key: "Role", Label: "Role", Kind: KindText},
			{Key: "HireDate", Label: "Hire Date", Kind: KindDate},
		},
		SearchFields: []string{"Name", "Email", "Role"},
	},
	ResourceBorrowings: {
		Name: ResourceBorrowings, Path: "borrowings", Label: "Borrowings", Singular: "borrowing",
		IDField: "BorrowID",
		Columns: []Column{
			{Key: "MemberName", Label: "Member", Kind: KindText},
			{Key: "BookTitle", Label: "Book", Kind: KindText},
			{Key: "BorrowDate", Label: "Borrowed", Kind: KindDate},
			{Key: "DueDate", Label: "Due", Kind: KindDate},
			{Key: "ReturnDate", Label: "Returned", Kind: KindDate},
			{Key: "StaffName", Label: "Staff", Kind: KindText},
			{Key: "Status", Label: "Status", Kind: KindText, Compute: BorrowingStatusLabel},
		},
		Fields: []Field{
			{Key: "MemberID", Label: "Member", Kind: KindNumber, Required: true, Source: memberSource},
			{Key: "BookID", Label: "Book", Kind: KindNumber, Required: true, Source: bookSource},
			{Key: "BorrowDate", Label: "Borrow Date", Kind: KindDate},
			{Key: "DueDate", Label: "Due Date", Kind: KindDate, Required: true},
			{Key: "ReturnDate", Label: "Return Date", Kind: KindDate},
			{Key: "StaffID", Label: "Staff", Kind: KindNumber, Source: staffSource},
		},
		SearchFields: []string{"MemberName", "BookTitle", "StaffName"},
		Filter:       borrowingFilter,
	},
	ResourceFines: {
		Name: ResourceFines, Path: "fines", Label: "Fines", Singular: "fine",
		IDField: "FineID",
		Columns: []Column{
			{Key: "MemberName", Label: "Member", Kind: KindText},
			{Key: "BookTitle", Label: "Book", Kind: KindText},
			{Key: "BorrowDate", Label: "Borrowed", Kind: KindDate},
			{Key: "DueDate", Label: "Due", Kind: KindDate},
			{Key: "Amount", Label: "Amount", Kind: KindCurrency},
			{Key: "Paid", Label: "Status", Kind: KindBool, TrueLabel: "Paid", FalseLabel: "Unpaid"},
		},
		Fields: []Field{
			{Key: "BorrowID", Label: "Borrowing", Kind: KindNumber, Required: true, Source: borrowingSource},
			{Key: "Amount", Label: "Amount", Kind: KindCurrency, Required: true},
			{Key: "Paid", Label: "Paid", Kind: KindBool},
		},
		SearchFields: []string{"MemberName", "BookTitle"},
		Filter:       fineFilter,
	},
	ResourceReservations: {
		Name: ResourceReservations, Path: "reservations", Label: "Reservations", Singular: "reservation",
		IDField: "ReservationID",
		Columns: []Column{
			{Key: "MemberName", Label: "Member", Kind: KindText},
			{Key: "BookTitle", Label: "Book", Kind: KindText},
			{Key: "ReservationDate", Label: "Reserved", Kind: KindDate},
			{Key: "Status", Label: "Status", Kind: KindText},
		},
		Fields: []Field{
			{Key: "MemberID", Label: "Member", Kind: KindNumber, Required: true, Source: memberSource},
			{Key: "BookID", Label: "Book", Kind: KindNumber, Required: true, Source: bookSource},
			{Key: "ReservationDate", Label: "Reservation Date", Kind: KindDate},
			{Key: "Status", Label: "Status", Kind: KindText},
		},
		SearchFields: []string{"MemberName", "BookTitle", "Status"},
		Filter:       reservationFilter,
	},
}

// LookupResource returns the registered resource with the given name
func LookupResource(name string) (Resource, bool) {
	r, ok := registry[name]
	return r, ok
}

// Resources returns all registered resources sorted by name
func Resources() []Resource {
	out := make([]Resource, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
