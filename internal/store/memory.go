package store

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// MemoryStore serves a fixed in-memory catalog. It backs the demo
// server when no database is configured and the handler tests.
type MemoryStore struct {
	books []Book
}

// NewMemoryStore creates a store over the given books, sorted by title.
func NewMemoryStore(books []Book) *MemoryStore {
	sorted := make([]Book, len(books))
	copy(sorted, books)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return &MemoryStore{books: sorted}
}

// NewSeededMemoryStore creates a store pre-loaded with the demo
// catalog.
func NewSeededMemoryStore() *MemoryStore {
	seed := []struct {
		title  string
		author string
		year   int
	}{
		{"A Wizard of Earthsea", "Ursula K. Le Guin", 1968},
		{"Beloved", "Toni Morrison", 1987},
		{"Brave New World", "Aldous Huxley", 1932},
		{"Catch-22", "Joseph Heller", 1961},
		{"Dune", "Frank Herbert", 1965},
		{"Fahrenheit 451", "Ray Bradbury", 1953},
		{"Frankenstein", "Mary Shelley", 1818},
		{"Invisible Man", "Ralph Ellison", 1952},
		{"Jane Eyre", "Charlotte Brontë", 1847},
		{"Kindred", "Octavia E. Butler", 1979},
		{"Middlemarch", "George Eliot", 1871},
		{"Moby-Dick", "Herman Melville", 1851},
		{"Mrs Dalloway", "Virginia Woolf", 1925},
		{"Neuromancer", "William Gibson", 1984},
		{"Nineteen Eighty-Four", "George Orwell", 1949},
		{"One Hundred Years of Solitude", "Gabriel García Márquez", 1967},
		{"Pride and Prejudice", "Jane Austen", 1813},
		{"Slaughterhouse-Five", "Kurt Vonnegut", 1969},
		{"The Brothers Karamazov", "Fyodor Dostoevsky", 1880},
		{"The Count of Monte Cristo", "Alexandre Dumas", 1844},
		{"The Dispossessed", "Ursula K. Le Guin", 1974},
		{"The Great Gatsby", "F. Scott Fitzgerald", 1925},
		{"The Left Hand of Darkness", "Ursula K. Le Guin", 1969},
		{"The Name of the Rose", "Umberto Eco", 1980},
		{"The Remains of the Day", "Kazuo Ishiguro", 1989},
		{"Things Fall Apart", "Chinua Achebe", 1958},
		{"To Kill a Mockingbird", "Harper Lee", 1960},
		{"Wide Sargasso Sea", "Jean Rhys", 1966},
	}

	books := make([]Book, 0, len(seed))
	for _, s := range seed {
		books = append(books, Book{
			ID:     uuid.New(),
			Title:  s.title,
			Author: s.author,
			Year:   s.year,
		})
	}
	return NewMemoryStore(books)
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, offset, limit int) ([]Book, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	total := len(s.books)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return []Book{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]Book, end-offset)
	copy(page, s.books[offset:end])
	return page, total, nil
}
