package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Scenario47Items(t *testing.T) {
	c := Build(47, 10, 3)

	assert.Equal(t, 5, c.TotalPages)
	assert.False(t, c.Empty())
	assert.False(t, c.Previous.Disabled)
	assert.False(t, c.Next.Disabled)
	assert.Equal(t, 2, c.Previous.Page)
	assert.Equal(t, 4, c.Next.Page)

	var pages []int
	for _, p := range c.Pages {
		pages = append(pages, p.Page)
		assert.Equal(t, p.Page == 3, p.Active)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages)
}

func TestBuild_NoControlsForSinglePage(t *testing.T) {
	for _, total := range []int{-3, 0, 1, 9, 10} {
		c := Build(total, 10, 1)
		assert.True(t, c.Empty(), "total=%d", total)
		assert.Nil(t, c.All(), "total=%d", total)
		assert.Empty(t, c.Pages)
	}
}

func TestBuild_FirstAndLastPageDisableEdges(t *testing.T) {
	first := Build(100, 10, 1)
	assert.True(t, first.Previous.Disabled)
	assert.False(t, first.Next.Disabled)

	last := Build(100, 10, 10)
	assert.False(t, last.Previous.Disabled)
	assert.True(t, last.Next.Disabled)
}

func TestBuild_ClampsCurrentPage(t *testing.T) {
	c := Build(30, 10, 99)
	assert.Equal(t, 3, c.Current)

	c = Build(30, 10, -4)
	assert.Equal(t, 1, c.Current)
}

func TestBuild_DefaultsPageSize(t *testing.T) {
	c := Build(25, 0, 1)
	assert.Equal(t, DefaultPageSize, c.PageSize)
	assert.Equal(t, 3, c.TotalPages)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 10, []int{1, 2, 3, 4, 5}},
		{2, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{2, 3, []int{1, 2, 3}},
		{1, 1, []int{1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Window(tt.current, tt.total), "current=%d total=%d", tt.current, tt.total)
	}

	assert.Nil(t, Window(1, 0))
}

func TestBuild_Properties(t *testing.T) {
	for total := 0; total <= 120; total++ {
		for _, pageSize := range []int{1, 3, 10, 25} {
			totalPages := (total + pageSize - 1) / pageSize
			for page := 1; page <= totalPages+1; page++ {
				c := Build(total, pageSize, page)

				require.Equal(t, totalPages <= 1, c.Empty(), "total=%d size=%d", total, pageSize)
				if c.Empty() {
					continue
				}

				require.LessOrEqual(t, len(c.Pages), WindowSize)
				found := false
				for _, p := range c.Pages {
					require.GreaterOrEqual(t, p.Page, 1)
					require.LessOrEqual(t, p.Page, c.TotalPages)
					if p.Page == c.Current {
						found = true
					}
				}
				require.True(t, found, "window must contain current page")
			}
		}
	}
}

func TestControls_Invoke(t *testing.T) {
	c := Build(47, 10, 1)

	var got []int
	onChange := func(page int) { got = append(got, page) }

	assert.False(t, c.Invoke(c.Previous, onChange), "disabled previous")
	assert.False(t, c.Invoke(c.Pages[0], onChange), "active page")
	assert.True(t, c.Invoke(c.Next, onChange))
	assert.True(t, c.Invoke(c.Pages[3], onChange))
	assert.False(t, c.Invoke(Control{Kind: ControlPage, Page: 42}, onChange), "out of range")

	assert.Equal(t, []int{2, 4}, got)
}

func TestControls_All(t *testing.T) {
	c := Build(47, 10, 3)
	all := c.All()

	require.Len(t, all, 7)
	assert.Equal(t, ControlPrevious, all[0].Kind)
	assert.Equal(t, ControlNext, all[6].Kind)
}

func TestSlice(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i + 1
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Slice(items, 1, 10))
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, Slice(items, 2, 10))
	assert.Equal(t, []int{19, 20}, Slice(items, 4, 6))
	assert.Empty(t, Slice(items, 3, 10))
	assert.Equal(t, Slice(items, 1, 10), Slice(items, 0, 10), "invalid page falls back to 1")
	assert.Len(t, Slice(items, 1, 0), DefaultPageSize)
}
