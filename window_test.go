package paginate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowedPages(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		window      Window
		want        []int
	}{
		{
			name:        "first page of ten is fully covered",
			currentPage: 1, totalPages: 10,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:        "middle page of ten is fully covered",
			currentPage: 5, totalPages: 10,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:        "last page of ten is fully covered",
			currentPage: 10, totalPages: 10,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:        "middle of twenty leaves a gap on both sides",
			currentPage: 10, totalPages: 20,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 6, 7, 8, 9, 10, 11, 12, 13, 14, 19, 20},
		},
		{
			name:        "first of twenty keeps the trailing anchor",
			currentPage: 1, totalPages: 20,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 19, 20},
		},
		{
			name:        "last of twenty keeps the leading anchor",
			currentPage: 20, totalPages: 20,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		},
		{
			name:        "narrow window with no outer anchor",
			currentPage: 3, totalPages: 10,
			window: Window{Inner: 2, Outer: 0},
			want:   []int{1, 2, 3, 4, 5, 10},
		},
		{
			name:        "gap on the left only",
			currentPage: 7, totalPages: 10,
			window: Window{Inner: 2, Outer: 1},
			want:   []int{1, 2, 5, 6, 7, 8, 9, 10},
		},
		{
			name:        "zero windows collapse everything between the ends",
			currentPage: 1, totalPages: 6,
			window: Window{Inner: 0, Outer: 0},
			want:   []int{1, 6},
		},
		{
			name:        "two-page gap is collapsed",
			currentPage: 1, totalPages: 4,
			window: Window{Inner: 0, Outer: 0},
			want:   []int{1, 4},
		},
		{
			name:        "single-page gap is not worth a marker",
			currentPage: 1, totalPages: 3,
			window: Window{Inner: 0, Outer: 0},
			want:   []int{1, 2, 3},
		},
		{
			name:        "single-page gaps survive on both sides",
			currentPage: 6, totalPages: 11,
			window: Window{Inner: 1, Outer: 2},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		},
		{
			name:        "small window far from both ends",
			currentPage: 15, totalPages: 30,
			window: Window{Inner: 2, Outer: 1},
			want:   []int{1, 2, 13, 14, 15, 16, 17, 29, 30},
		},
		{
			name:        "current page past the end degrades to a clamped window",
			currentPage: 50, totalPages: 10,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:        "single page",
			currentPage: 1, totalPages: 1,
			window: Window{Inner: 4, Outer: 1},
			want:   []int{1},
		},
		{
			name:        "no pages",
			currentPage: 1, totalPages: 0,
			window: Window{Inner: 4, Outer: 1},
			want:   nil,
		},
		{
			name:        "negative window sizes are treated as zero",
			currentPage: 1, totalPages: 3,
			window: Window{Inner: -2, Outer: -1},
			want:   []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowedPages(tt.currentPage, tt.totalPages, tt.window)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Small collections never show a gap with the default window; every
// page stays visible.
func TestWindowedPagesSmallTotals(t *testing.T) {
	window := Window{Inner: DefaultInnerWindow, Outer: DefaultOuterWindow}

	for totalPages := 1; totalPages <= 6; totalPages++ {
		full := make([]int, totalPages)
		for i := range full {
			full[i] = i + 1
		}
		for currentPage := 1; currentPage <= totalPages; currentPage++ {
			got := WindowedPages(currentPage, totalPages, window)
			assert.Equal(t, full, got, "currentPage=%d totalPages=%d", currentPage, totalPages)
		}
	}
}

// Structural guarantees that hold for any input: the result is a
// strictly ascending subset of 1..totalPages, the first and last
// outer+1 pages are always present, and every gap hides at least two
// pages.
func TestWindowedPagesProperties(t *testing.T) {
	for totalPages := 1; totalPages <= 40; totalPages++ {
		for currentPage := 1; currentPage <= totalPages; currentPage++ {
			for inner := 0; inner <= 3; inner++ {
				for outer := 0; outer <= 2; outer++ {
					label := fmt.Sprintf("current=%d total=%d inner=%d outer=%d",
						currentPage, totalPages, inner, outer)
					got := WindowedPages(currentPage, totalPages, Window{Inner: inner, Outer: outer})

					visible := make(map[int]bool, len(got))
					for i, page := range got {
						assert.GreaterOrEqual(t, page, 1, label)
						assert.LessOrEqual(t, page, totalPages, label)
						visible[page] = true
						if i == 0 {
							continue
						}
						step := page - got[i-1]
						if !assert.True(t, step == 1 || step >= 3, "%s: step %d at page %d", label, step, page) {
							return
						}
					}
					assert.Len(t, visible, len(got), label)

					for page := 1; page <= outer+1 && page <= totalPages; page++ {
						assert.True(t, visible[page], "%s: missing leading page %d", label, page)
					}
					for page := totalPages - outer; page <= totalPages; page++ {
						if page < 1 {
							continue
						}
						assert.True(t, visible[page], "%s: missing trailing page %d", label, page)
					}
				}
			}
		}
	}
}
