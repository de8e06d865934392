package paginate

// Window controls how many page numbers stay visible around the
// current page (Inner) and next to both ends of the collection
// (Outer). An Outer of 1 keeps pages 1-2 and the last two pages on
// screen no matter how far away the current page is, giving users a
// stable anchor to jump to either end.
type Window struct {
	Inner int `option:"inner_window"`
	Outer int `option:"outer_window"`
}

// WindowedPages returns the ascending set of page numbers to render
// for the given current page. The result is always a strictly
// ascending subset of 1..totalPages; any break between consecutive
// returned numbers is a gap the caller renders as an ellipsis.
//
// The window is first centered on the current page, then shifted back
// inside 1..totalPages when it overhangs either end. Pages between the
// window and the outer anchors are dropped, but only when dropping
// them hides at least two pages: collapsing a single page into a gap
// marker saves no space.
//
// totalPages < 1 yields nil. A current page outside 1..totalPages is
// not an error; centering proceeds arithmetically and clamps.
func WindowedPages(currentPage, totalPages int, w Window) []int {
	if totalPages < 1 {
		return nil
	}

	inner := w.Inner
	if inner < 0 {
		inner = 0
	}
	outer := w.Outer
	if outer < 0 {
		outer = 0
	}

	from := currentPage - inner
	to := currentPage + inner

	// Slide the window back when it runs past the last page.
	if to > totalPages {
		from -= to - totalPages
		to = totalPages
	}
	// Slide it forward when it starts before the first page, then
	// re-clamp the far edge.
	if from < 1 {
		to += 1 - from
		from = 1
		if to > totalPages {
			to = totalPages
		}
	}

	visible := make([]int, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		if hiddenByGap(page, from, to, outer, totalPages) {
			continue
		}
		visible = append(visible, page)
	}
	return visible
}

// hiddenByGap reports whether page falls inside one of the two removal
// ranges between the outer anchors and the window. A range only takes
// effect when it covers two or more pages.
//
// Note the deliberate asymmetry inherited from the reference behavior:
// the left range starts at 2+outer inclusive, while the right range
// stops one short of totalPages-outer.
func hiddenByGap(page, from, to, outer, totalPages int) bool {
	leftLo, leftHi := 2+outer, from-1
	if leftHi-leftLo >= 1 && page >= leftLo && page <= leftHi {
		return true
	}

	rightLo, rightHi := to+1, totalPages-outer-1
	if rightHi-rightLo >= 1 && page >= rightLo && page <= rightHi {
		return true
	}

	return false
}
