// Package virtualize computes which slice of a long fixed-height row list is
// worth rendering for the current scroll position. Rows outside the window
// are replaced by spacer blocks so the scrollbar keeps its true extent.
package virtualize

// Window is an inclusive row-index range plus the pixel heights of the
// spacers standing in for the rows above and below it.
type Window struct {
	First     int
	Last      int
	TopPad    int
	BottomPad int
}

// Range computes the render window for a viewport scrolled to scrollTop over
// total rows of rowHeight pixels, extended by overscan rows on each side. An
// empty list yields First > Last.
func Range(scrollTop, rowHeight, viewportHeight, overscan, total int) Window {
	if total <= 0 || rowHeight <= 0 {
		return Window{First: 0, Last: -1}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	first := scrollTop/rowHeight - overscan
	if first < 0 {
		first = 0
	}
	last := (scrollTop+viewportHeight)/rowHeight + overscan
	if last > total-1 {
		last = total - 1
	}
	if first > last {
		first = last
	}

	return Window{
		First:     first,
		Last:      last,
		TopPad:    first * rowHeight,
		BottomPad: (total - 1 - last) * rowHeight,
	}
}
