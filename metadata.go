package paginate

// Metadata describes one page of a paginated collection.
//
// It is constructed once per request from caller-supplied counts and
// never mutated; every derived quantity is recomputed from the three
// input fields, so reusing a Metadata across renders is safe.
type Metadata struct {
	currentPage  int
	perPage      int
	totalEntries int
}

// NewMetadata validates the inputs and builds a Metadata.
//
// Returns an EINVALID error when perPage < 1, currentPage < 1 or
// totalEntries < 0. A current page beyond the last page is accepted:
// downstream output degrades (empty window, disabled next control)
// instead of erroring, since a stale bookmark must not crash a render.
func NewMetadata(currentPage, perPage, totalEntries int) (*Metadata, error) {
	const op = "paginate.metadata"

	if perPage < 1 {
		return nil, Invalid(op, "per_page must be at least 1, got %d", perPage)
	}
	if currentPage < 1 {
		return nil, Invalid(op, "current_page must be at least 1, got %d", currentPage)
	}
	if totalEntries < 0 {
		return nil, Invalid(op, "total_entries must not be negative, got %d", totalEntries)
	}

	return &Metadata{
		currentPage:  currentPage,
		perPage:      perPage,
		totalEntries: totalEntries,
	}, nil
}

// CurrentPage returns the 1-based current page number.
func (m *Metadata) CurrentPage() int {
	return m.currentPage
}

// PerPage returns the number of entries per page.
func (m *Metadata) PerPage() int {
	return m.perPage
}

// TotalEntries returns the size of the whole collection.
func (m *Metadata) TotalEntries() int {
	return m.totalEntries
}

// TotalPages returns the page count. An empty collection still counts
// as one page, so TotalPages is always at least 1; callers treat
// TotalPages < 2 as "no pagination needed".
func (m *Metadata) TotalPages() int {
	if m.totalEntries == 0 {
		return 1
	}
	return (m.totalEntries + m.perPage - 1) / m.perPage
}

// Offset returns the zero-based index of the first entry on the
// current page within the full collection.
func (m *Metadata) Offset() int {
	return (m.currentPage - 1) * m.perPage
}

// Length returns the number of entries actually on the current page.
// It is at most PerPage and is 0 when the current page lies past the
// end of the collection.
func (m *Metadata) Length() int {
	remaining := m.totalEntries - m.Offset()
	switch {
	case remaining <= 0:
		return 0
	case remaining > m.perPage:
		return m.perPage
	default:
		return remaining
	}
}

// PreviousPage returns the page before the current one, or nil when
// the current page is the first.
func (m *Metadata) PreviousPage() *int {
	if m.currentPage <= 1 {
		return nil
	}
	prev := m.currentPage - 1
	return &prev
}

// NextPage returns the page after the current one, or nil when the
// current page is the last (or lies beyond it).
func (m *Metadata) NextPage() *int {
	if m.currentPage >= m.TotalPages() {
		return nil
	}
	next := m.currentPage + 1
	return &next
}

// HasEntries reports whether the collection holds any entries at all.
func (m *Metadata) HasEntries() bool {
	return m.totalEntries > 0
}

// OutOfRange reports whether the current page lies past the last page.
func (m *Metadata) OutOfRange() bool {
	return m.currentPage > m.TotalPages()
}
