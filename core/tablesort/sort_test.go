package tablesort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row map[string]string

func (r row) Cell(key string) string { return r[key] }

func column(rows []row, key string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[key]
	}
	return out
}

func rowsOf(key string, values ...string) []row {
	rows := make([]row, len(values))
	for i, v := range values {
		rows[i] = row{key: v}
	}
	return rows
}

func TestSort_Dates(t *testing.T) {
	rows := rowsOf("d", "2024-01-02", "2023-12-31")

	Sort(rows, "d", Ascending)
	assert.Equal(t, []string{"2023-12-31", "2024-01-02"}, column(rows, "d"))

	Sort(rows, "d", Descending)
	assert.Equal(t, []string{"2024-01-02", "2023-12-31"}, column(rows, "d"))
}

func TestSort_DisplayDates(t *testing.T) {
	rows := rowsOf("d", "Feb 1, 2024", "Dec 31, 2023", "Jan 15, 2024")

	Sort(rows, "d", Ascending)

	assert.Equal(t, []string{"Dec 31, 2023", "Jan 15, 2024", "Feb 1, 2024"}, column(rows, "d"))
}

func TestSort_NumbersAndCurrency(t *testing.T) {
	rows := rowsOf("n", "10", "9", "100", "2")
	Sort(rows, "n", Ascending)
	assert.Equal(t, []string{"2", "9", "10", "100"}, column(rows, "n"))

	rows = rowsOf("amt", "$1,200.00", "$15.50", "$3.00")
	Sort(rows, "amt", Ascending)
	assert.Equal(t, []string{"$3.00", "$15.50", "$1,200.00"}, column(rows, "amt"))
}

func TestSort_Collation(t *testing.T) {
	rows := rowsOf("t", "banana", "Apple", "cherry", "apple pie")

	Sort(rows, "t", Ascending)

	assert.Equal(t, []string{"Apple", "apple pie", "banana", "cherry"}, column(rows, "t"))
}

func TestSort_IdempotentAndReversible(t *testing.T) {
	values := []string{"Dune", "Emma", "Beloved", "Anna Karenina", "Carrie", "Frankenstein"}

	rows := rowsOf("t", values...)
	Sort(rows, "t", Ascending)
	first := column(rows, "t")
	Sort(rows, "t", Ascending)
	assert.Equal(t, first, column(rows, "t"), "re-sorting must not change the order")

	Sort(rows, "t", Descending)
	desc := column(rows, "t")
	require.Len(t, desc, len(first))
	for i := range first {
		assert.Equal(t, first[i], desc[len(desc)-1-i])
	}
}

func TestSort_Stable(t *testing.T) {
	rows := []row{
		{"g": "Fiction", "id": "1"},
		{"g": "Drama", "id": "2"},
		{"g": "Fiction", "id": "3"},
		{"g": "Drama", "id": "4"},
	}

	Sort(rows, "g", Ascending)

	assert.Equal(t, []string{"2", "4", "1", "3"}, column(rows, "id"))
}

func TestSort_EmptyKeyIsNoop(t *testing.T) {
	rows := rowsOf("t", "b", "a")
	Sort(rows, "", Ascending)
	assert.Equal(t, []string{"b", "a"}, column(rows, "t"))
}

func TestSorter_Toggle(t *testing.T) {
	s := NewSorter()
	assert.Equal(t, "", s.Indicator("Title"))

	assert.Equal(t, Ascending, s.Toggle("Title"))
	assert.Equal(t, "▲", s.Indicator("Title"))

	assert.Equal(t, Descending, s.Toggle("Title"))
	assert.Equal(t, "▼", s.Indicator("Title"))

	assert.Equal(t, Ascending, s.Toggle("Author"))
	assert.Equal(t, "▲", s.Indicator("Author"))
	assert.Equal(t, "", s.Indicator("Title"), "other indicators are cleared")

	s.Clear()
	assert.Equal(t, "", s.Indicator("Author"))
}

func TestApply(t *testing.T) {
	s := NewSorter()
	rows := rowsOf("t", "b", "c", "a")

	Apply(s, rows)
	assert.Equal(t, []string{"b", "c", "a"}, column(rows, "t"))

	s.Set("t", Descending)
	Apply(s, rows)
	assert.Equal(t, []string{"c", "b", "a"}, column(rows, "t"))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("desc"))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, Ascending, ParseDirection("sideways"))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("2023-12-31", "2024-01-02"))
	assert.Positive(t, Compare("10", "9"))
	assert.Zero(t, Compare("$5.00", "5"))
}
