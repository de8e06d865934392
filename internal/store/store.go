// Package store provides the demo catalog's book storage backends.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Book is a single catalog entry.
type Book struct {
	ID     uuid.UUID
	Title  string
	Author string
	Year   int
}

// Store lists books one page at a time.
//
// List returns up to limit books starting at offset in title order,
// plus the total number of books in the catalog. An offset past the
// end yields an empty slice, not an error.
type Store interface {
	List(ctx context.Context, offset, limit int) ([]Book, int, error)
}
