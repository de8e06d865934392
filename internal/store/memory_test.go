package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooks(n int) []Book {
	books := make([]Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, Book{
			ID:    uuid.New(),
			Title: string(rune('A'+i)) + " title",
		})
	}
	return books
}

func TestMemoryStoreList(t *testing.T) {
	s := NewMemoryStore(testBooks(7))
	ctx := context.Background()

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantTitles int
	}{
		{name: "first page", offset: 0, limit: 3, wantTitles: 3},
		{name: "middle page", offset: 3, limit: 3, wantTitles: 3},
		{name: "partial last page", offset: 6, limit: 3, wantTitles: 1},
		{name: "offset past the end", offset: 9, limit: 3, wantTitles: 0},
		{name: "zero limit", offset: 0, limit: 0, wantTitles: 0},
		{name: "negative offset is clamped", offset: -5, limit: 3, wantTitles: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, total, err := s.List(ctx, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, 7, total)
			assert.Len(t, books, tt.wantTitles)
		})
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	s := NewMemoryStore([]Book{
		{ID: uuid.New(), Title: "Zeta"},
		{ID: uuid.New(), Title: "Alpha"},
		{ID: uuid.New(), Title: "Mid"},
	})

	books, total, err := s.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{books[0].Title, books[1].Title, books[2].Title})
}

func TestMemoryStoreListCancelledContext(t *testing.T) {
	s := NewMemoryStore(testBooks(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.List(ctx, 0, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeededMemoryStore(t *testing.T) {
	s := NewSeededMemoryStore()

	books, total, err := s.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Equal(t, total, len(books))
	assert.Greater(t, total, 20, "seed should span multiple pages at any sane page size")
}
