package calendar

import "time"

// DisplayWindow is the set of month indices (0..11) currently shown in a
// multi-month calendar view, plus the anchor year those indices resolve
// against. Span is constrained to {4, 12} by the caller; the navigator does
// not validate it.
//
// When the window straddles a year boundary (the index sequence wraps), the
// leading run of indices belongs to AnchorYear and the wrapped trailing run
// to AnchorYear+1.
type DisplayWindow struct {
	AnchorYear int
	Months     []int
	Span       int
}

// NewDisplayWindow builds the initial window: Span months starting at the
// current month, shifted left when the right edge would pass December.
func NewDisplayWindow(now time.Time, span int) *DisplayWindow {
	w := &DisplayWindow{AnchorYear: now.Year(), Span: span}
	w.resetMonths(now)
	return w
}

func (w *DisplayWindow) resetMonths(now time.Time) {
	start := int(now.Month()) - 1
	if start+w.Span > 12 {
		start = 12 - w.Span
	}
	months := make([]int, w.Span)
	for i := range months {
		months[i] = start + i
	}
	w.Months = months
}

func containsBoth(months []int, a, b int) bool {
	var hasA, hasB bool
	for _, m := range months {
		if m == a {
			hasA = true
		}
		if m == b {
			hasB = true
		}
	}
	return hasA && hasB
}

// StepForward advances every visible index by Span modulo 12. A window that
// straddled the year boundary before the step (contained both January and
// December) lands fully in the next year, so the anchor year increments.
func (w *DisplayWindow) StepForward() {
	straddled := containsBoth(w.Months, 0, 11)
	for i, m := range w.Months {
		w.Months[i] = (m + w.Span) % 12
	}
	if straddled {
		w.AnchorYear++
	}
}

// StepBackward slides the window back so its last month is the old first
// month, wrapping negative indices by twelve. The full-year layout already
// shows every index, so it keeps its shape and moves to the previous year.
// When the new window straddles the year boundary (contains both January and
// December) the anchor year decrements.
func (w *DisplayWindow) StepBackward() {
	shift := w.Span - 1
	if w.Span >= 12 {
		shift = 0
	}
	for i, m := range w.Months {
		next := (m - shift) % 12
		if next < 0 {
			next += 12
		}
		w.Months[i] = next
	}
	if containsBoth(w.Months, 0, 11) {
		w.AnchorYear--
	}
}

// ChangeSpan switches between the 4- and 12-month layouts and recomputes the
// window around the current month.
func (w *DisplayWindow) ChangeSpan(now time.Time, span int) {
	w.Span = span
	w.AnchorYear = now.Year()
	w.resetMonths(now)
}

// JumpToCurrent re-centers the window on today without changing the span.
func (w *DisplayWindow) JumpToCurrent(now time.Time) {
	w.AnchorYear = now.Year()
	w.resetMonths(now)
}

// JumpToYear pins the window to the start of the given year: the full year
// for the 12-month span, January onward for shorter spans.
func (w *DisplayWindow) JumpToYear(year int) {
	w.AnchorYear = year
	months := make([]int, w.Span)
	for i := range months {
		months[i] = i
	}
	w.Months = months
}

// Clone returns an independent copy of the window.
func (w *DisplayWindow) Clone() *DisplayWindow {
	months := make([]int, len(w.Months))
	copy(months, w.Months)
	return &DisplayWindow{AnchorYear: w.AnchorYear, Months: months, Span: w.Span}
}

// wrapAt returns the position where the index sequence wraps to a smaller
// value, or -1 for a non-wrapping window.
func (w *DisplayWindow) wrapAt() int {
	for i := 1; i < len(w.Months); i++ {
		if w.Months[i] < w.Months[i-1] {
			return i
		}
	}
	return -1
}

// YearFor resolves the calendar year of the i-th visible month.
func (w *DisplayWindow) YearFor(i int) int {
	wrap := w.wrapAt()
	if wrap == -1 || i < wrap {
		return w.AnchorYear
	}
	return w.AnchorYear + 1
}

// Interval returns the closed date interval the window covers, honoring the
// year wrap.
func (w *DisplayWindow) Interval() Interval {
	if len(w.Months) == 0 {
		return Interval{}
	}
	first := w.Months[0]
	last := w.Months[len(w.Months)-1]
	start := time.Date(w.YearFor(0), time.Month(first+1), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(w.YearFor(len(w.Months)-1), time.Month(last+2), 0, 0, 0, 0, 0, time.UTC)
	return Interval{Start: start, End: end}
}
