package paginate

// ItemKind identifies the variant of a sequence item.
type ItemKind string

const (
	// KindPage is a numbered page link, possibly the current page.
	KindPage ItemKind = "page"

	// KindGap marks one or more omitted page numbers; renderers show
	// it as an ellipsis.
	KindGap ItemKind = "gap"

	// KindPrevious is the previous-page control. It is always present
	// in a non-empty sequence, rendered disabled when there is no
	// previous page.
	KindPrevious ItemKind = "previous"

	// KindNext is the next-page control, mirroring KindPrevious.
	KindNext ItemKind = "next"
)

// Item is one element of a pagination sequence.
//
// Page and IsCurrent are meaningful for KindPage; TargetPage and Label
// for the previous/next controls. A nil TargetPage means the control
// renders disabled rather than being omitted. Rel carries the
// rel="prev"/rel="next" hint for page links adjacent to the current
// page.
type Item struct {
	Kind       ItemKind
	Page       int
	IsCurrent  bool
	TargetPage *int
	Label      string
	Rel        string
}

// Build assembles the ordered link sequence for m: a previous control,
// the windowed page numbers with gap markers between non-consecutive
// neighbors, and a next control.
//
// It returns an empty sequence when the collection fits on a single
// page, which callers treat as "render nothing". With
// Options.PageLinks disabled only the two controls are emitted. Build
// keeps no state between calls; identical inputs always yield a
// structurally identical sequence.
func Build(m *Metadata, opts Options) []Item {
	totalPages := m.TotalPages()
	if totalPages < 2 {
		return nil
	}

	current := m.CurrentPage()
	items := make([]Item, 0, totalPages+4)

	items = append(items, Item{
		Kind:       KindPrevious,
		TargetPage: m.PreviousPage(),
		Label:      opts.previousLabel(),
	})

	if opts.PageLinks {
		last := 0
		for _, page := range WindowedPages(current, totalPages, opts.Window) {
			if last != 0 && page != last+1 {
				items = append(items, Item{Kind: KindGap})
			}
			items = append(items, Item{
				Kind:      KindPage,
				Page:      page,
				IsCurrent: page == current,
				Rel:       relHint(page, current),
			})
			last = page
		}
	}

	items = append(items, Item{
		Kind:       KindNext,
		TargetPage: m.NextPage(),
		Label:      opts.nextLabel(),
	})

	return items
}

// relHint returns the relative-link hint for a page number: "prev"
// when it sits directly before the current page, "next" directly
// after, and "" otherwise.
func relHint(page, currentPage int) string {
	switch page {
	case currentPage - 1:
		return "prev"
	case currentPage + 1:
		return "next"
	}
	return ""
}
