package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-admin/core/domain"
)

func lookup(t *testing.T, name string) domain.Resource {
	t.Helper()
	r, ok := domain.LookupResource(name)
	require.True(t, ok)
	return r
}

func TestValidate(t *testing.T) {
	members := lookup(t, domain.ResourceMembers)

	tests := []struct {
		name    string
		form    domain.Record
		invalid []string
	}{
		{
			name: "valid",
			form: domain.Record{"Name": "Ann", "Email": "ann@example.com", "Phone": "555", "MembershipDate": "2024-01-02"},
		},
		{
			name:    "missing required",
			form:    domain.Record{"Email": "ann@example.com"},
			invalid: []string{"Name", "Phone"},
		},
		{
			name:    "bad email",
			form:    domain.Record{"Name": "Ann", "Email": "ann@example", "Phone": "555"},
			invalid: []string{"Email"},
		},
		{
			name:    "bad date and number",
			form:    domain.Record{"Name": "Ann", "Email": "a@b.co", "Phone": "555", "MembershipDate": "yesterday", "MembershipTypeID": "gold"},
			invalid: []string{"MembershipTypeID", "MembershipDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(members, tt.form)
			if len(tt.invalid) == 0 {
				assert.NoError(t, err)
				return
			}

			formErr, ok := AsFormError(err)
			require.True(t, ok)
			var fields []string
			for _, f := range formErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tt.invalid, fields)
		})
	}
}

func TestValidate_NumbersAndBooleans(t *testing.T) {
	fines := lookup(t, domain.ResourceFines)

	assert.NoError(t, Validate(fines, domain.Record{"BorrowID": float64(2), "Amount": "$4.50", "Paid": true}))
	assert.Error(t, Validate(fines, domain.Record{"BorrowID": "2", "Amount": "-1"}))
	assert.Error(t, Validate(fines, domain.Record{"BorrowID": "2", "Amount": "1", "Paid": "maybe"}))
}

func TestNormalize(t *testing.T) {
	books := lookup(t, domain.ResourceBooks)

	out := Normalize(books, domain.Record{
		"Title":         " Dune ",
		"Genre":         "",
		"PublishedYear": "1965",
		"Quantity":      float64(2),
		"Unknown":       "dropped",
	})

	assert.Equal(t, domain.Record{
		"Title":         "Dune",
		"Genre":         nil,
		"PublishedYear": int64(1965),
		"Quantity":      float64(2),
	}, out)

	fines := lookup(t, domain.ResourceFines)
	out = Normalize(fines, domain.Record{"Amount": "$1,250.50", "Paid": "true"})
	assert.Equal(t, 1250.5, out["Amount"])
	assert.Equal(t, true, out["Paid"])
}
