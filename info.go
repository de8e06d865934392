package paginate

import "fmt"

// EntriesInfo formats the summary line describing which entries are on
// the current page.
//
// The message branches on two axes: whether the collection spans more
// than one page, and whether the page holds zero, one or many entries:
//
//	No books found
//	Displaying 1 book
//	Displaying all 7 books
//	Displaying books 6–10 of 26 in total
//
// An empty name falls back to "entry"/"entries". The plural form is
// always used on multi-page output.
func EntriesInfo(m *Metadata, name EntityName) string {
	if name.Singular == "" {
		name.Singular = "entry"
	}
	if name.Plural == "" {
		name.Plural = Pluralize(name.Singular)
	}

	if m.TotalPages() < 2 {
		switch size := m.Length(); size {
		case 0:
			return fmt.Sprintf("No %s found", name.Plural)
		case 1:
			return fmt.Sprintf("Displaying 1 %s", name.Singular)
		default:
			return fmt.Sprintf("Displaying all %d %s", size, name.Plural)
		}
	}

	first := m.Offset() + 1
	last := m.Offset() + m.Length()
	return fmt.Sprintf("Displaying %s %d–%d of %d in total",
		name.Plural, first, last, m.TotalEntries())
}
