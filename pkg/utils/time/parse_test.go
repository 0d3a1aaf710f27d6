package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	want := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in string
		ok bool
	}{
		{"2024-01-02", true},
		{"Jan 2, 2024", true},
		{"January 2, 2024", true},
		{"  2024-01-02 ", true},
		{"01/02/2024", true},
		{"", false},
		{"-", false},
		{"2024", false},
		{"Dune", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.True(t, want.Equal(got), tt.in)
		}
	}
}

func TestParseWithDefault(t *testing.T) {
	def := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, def, ParseWithDefault("not a date", def))
	assert.Equal(t, 2023, ParseWithDefault("2023-12-31", def).Year())
	assert.True(t, ParseFlexibleTime("").IsZero())
}
