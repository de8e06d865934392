package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore serves the catalog from a books table. It expects the
// pgx stdlib driver to be registered by the caller and migrations to
// have run (see RunMigrations).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// List implements Store.
func (s *PostgresStore) List(ctx context.Context, offset, limit int) ([]Book, int, error) {
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting books: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, author, year FROM books ORDER BY title, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year); err != nil {
			return nil, 0, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading books: %w", err)
	}

	return books, total, nil
}
