package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name     string
		items    []int
		page     int
		pageSize int
		want     []int
	}{
		{
			name:     "first page",
			items:    items,
			page:     1,
			pageSize: 5,
			want:     []int{1, 2, 3, 4, 5},
		},
		{
			name:     "middle page",
			items:    items,
			page:     2,
			pageSize: 5,
			want:     []int{6, 7, 8, 9, 10},
		},
		{
			name:     "last page is partial",
			items:    items,
			page:     3,
			pageSize: 5,
			want:     []int{11, 12},
		},
		{
			name:     "page zero clamps to first",
			items:    items,
			page:     0,
			pageSize: 5,
			want:     []int{1, 2, 3, 4, 5},
		},
		{
			name:     "negative page clamps to first",
			items:    items,
			page:     -3,
			pageSize: 5,
			want:     []int{1, 2, 3, 4, 5},
		},
		{
			name:     "page past the end clamps to last",
			items:    items,
			page:     99,
			pageSize: 5,
			want:     []int{11, 12},
		},
		{
			name:     "page size covers everything",
			items:    items,
			page:     1,
			pageSize: 100,
			want:     items,
		},
		{
			name:     "exact multiple has no partial page",
			items:    []int{1, 2, 3, 4},
			page:     2,
			pageSize: 2,
			want:     []int{3, 4},
		},
		{
			name:     "empty input yields empty page",
			items:    []int{},
			page:     1,
			pageSize: 5,
			want:     []int{},
		},
		{
			name:     "zero page size yields empty page",
			items:    items,
			page:     1,
			pageSize: 0,
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(tt.items, tt.page, tt.pageSize)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "empty still reports one page", total: 0, pageSize: 10, want: 1},
		{name: "partial last page rounds up", total: 11, pageSize: 10, want: 2},
		{name: "exact multiple", total: 20, pageSize: 10, want: 2},
		{name: "single item", total: 1, pageSize: 10, want: 1},
		{name: "zero page size", total: 50, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 1, Clamp(-10, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 5, Clamp(9, 5))
	assert.Equal(t, 1, Clamp(1, 1))
}
