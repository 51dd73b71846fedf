package services

import (
	"github.com/google/uuid"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
)

// LoadState tracks the infinite-scroll coordinator: which page was loaded
// last, whether a fetch is in flight and whether the row sequence is
// complete.
type LoadState struct {
	CurrentPage   int
	IsLoadingNext bool
	ReachedEnd    bool
}

// GridState is the full calendar-grid state: the displayed interval and
// month window, the loaded rows and the scroll coordinator. Every navigation
// rotates Tag; fetch completions carrying a different tag are stale and must
// be discarded instead of applied.
type GridState struct {
	Tag                   uuid.UUID
	Interval              calendar.Interval
	Window                calendar.DisplayWindow
	Search                string
	DisableInfiniteScroll bool

	Rows       []calendar.EmployeeDayStatusRow
	TotalCount int
	Load       LoadState
}

// Events published on the bus when the grid state advances. Subscribers
// (metrics, logging) observe them without coupling to the service.

type GridNavigatedEvent struct {
	Tag      uuid.UUID
	Interval calendar.Interval
	Search   string
}

type GridPageLoadedEvent struct {
	Tag        uuid.UUID
	Page       int
	RowCount   int
	TotalCount int
	ReachedEnd bool
}

type GridFetchFailedEvent struct {
	Tag  uuid.UUID
	Page int
	Err  error
}

type StaleResponseDiscardedEvent struct {
	StaleTag   uuid.UUID
	CurrentTag uuid.UUID
}

// fetchCompleted is the internal completion event applied to the state.
type fetchCompleted struct {
	tag   uuid.UUID
	page  int
	items []calendar.EmployeeDayStatusRow
	total int
}

// applyNavigate resets the state for a fresh interval: new tag, empty rows,
// coordinator rewound to "nothing loaded yet".
func applyNavigate(s GridState, window calendar.DisplayWindow, search string, disableScroll bool) GridState {
	s.Tag = uuid.New()
	s.Window = window
	s.Interval = window.Interval()
	s.Search = search
	s.DisableInfiniteScroll = disableScroll
	s.Rows = nil
	s.TotalCount = 0
	s.Load = LoadState{CurrentPage: -1}
	return s
}

// beginLoad marks a fetch in flight. Returns ok=false when the coordinator
// must stay idle: a fetch is already running, the sequence is complete, or
// scrolling is disabled after the first page.
func beginLoad(s GridState) (GridState, bool) {
	if s.Load.IsLoadingNext || s.Load.ReachedEnd {
		return s, false
	}
	if s.DisableInfiniteScroll && s.Load.CurrentPage >= 0 {
		return s, false
	}
	s.Load.IsLoadingNext = true
	return s, true
}

// applyFetchCompleted folds a finished fetch into the state. A completion
// tagged for a superseded interval leaves the state untouched and reports
// stale=true.
func applyFetchCompleted(s GridState, ev fetchCompleted) (GridState, bool) {
	if ev.tag != s.Tag {
		return s, true
	}
	s.Rows = append(s.Rows, ev.items...)
	s.TotalCount = ev.total
	s.Load.CurrentPage = ev.page
	s.Load.IsLoadingNext = false
	s.Load.ReachedEnd = len(s.Rows) >= ev.total
	if s.DisableInfiniteScroll {
		s.Load.ReachedEnd = true
	}
	return s, false
}

// applyFetchFailed clears the in-flight flag so a later scroll signal can
// retry. Stale failures are ignored the same way stale successes are.
func applyFetchFailed(s GridState, tag uuid.UUID) (GridState, bool) {
	if tag != s.Tag {
		return s, true
	}
	s.Load.IsLoadingNext = false
	return s, false
}
