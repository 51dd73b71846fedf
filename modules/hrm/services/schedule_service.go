package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
	"github.com/iota-uz/staffcal/modules/hrm/infrastructure/daystatus"
	"github.com/iota-uz/staffcal/pkg/eventbus"
	"github.com/iota-uz/staffcal/pkg/metrics"
)

// DefaultSpan is the month span a fresh session opens with.
const DefaultSpan = 12

// ScheduleService owns the calendar-grid sessions: it navigates windows,
// fetches day-status pages and coordinates infinite scroll. Sessions live in
// memory, keyed by the grid cookie, and expire after ttl of inactivity.
type ScheduleService struct {
	source    daystatus.PagedSource
	publisher eventbus.EventBus
	pageSize  int
	ttl       time.Duration
	clock     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*GridSession
}

func NewScheduleService(
	source daystatus.PagedSource,
	publisher eventbus.EventBus,
	pageSize int,
	ttl time.Duration,
) *ScheduleService {
	return &ScheduleService{
		source:    source,
		publisher: publisher,
		pageSize:  pageSize,
		ttl:       ttl,
		clock:     time.Now,
		sessions:  make(map[uuid.UUID]*GridSession),
	}
}

// Session returns the session for id, creating it when absent or expired.
// Expired sessions across the whole store are pruned on the way.
func (s *ScheduleService) Session(id uuid.UUID) *GridSession {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, sess := range s.sessions {
		if key != id && sess.expired(now, s.ttl) {
			delete(s.sessions, key)
		}
	}

	sess, ok := s.sessions[id]
	if ok && !sess.expired(now, s.ttl) {
		sess.touch(now)
		return sess
	}

	window := calendar.NewDisplayWindow(now, DefaultSpan)
	sess = &GridSession{
		ID:        id,
		state:     applyNavigate(GridState{}, *window, "", false),
		touchedAt: now,
	}
	s.sessions[id] = sess
	return sess
}

// Navigate applies a window mutation (step, span change, year jump) together
// with the active search filter, rotates the interval tag and loads the first
// page of the new interval. A non-empty search disables infinite scroll; the
// whole filtered result is expected on the first page.
func (s *ScheduleService) Navigate(
	ctx context.Context,
	sess *GridSession,
	mutate func(w *calendar.DisplayWindow),
	search string,
) (GridState, error) {
	sess.mu.Lock()
	window := sess.state.Window.Clone()
	if mutate != nil {
		mutate(window)
	}
	st := applyNavigate(sess.state, *window, search, search != "")
	st, _ = beginLoad(st)
	sess.state = st
	sess.touchedAt = s.clock()
	tag := st.Tag
	page := 0
	params := fetchParams(st, page, s.pageSize)
	sess.mu.Unlock()

	s.publisher.Publish(GridNavigatedEvent{Tag: tag, Interval: st.Interval, Search: search})

	return s.loadPage(ctx, sess, tag, page, params)
}

// MaybeLoadNext is the infinite-scroll trigger. It is idempotent under
// concurrent calls: while a fetch is in flight, or once the sequence is
// complete, it returns the current state without issuing a request. loaded
// reports whether this call appended a page.
func (s *ScheduleService) MaybeLoadNext(ctx context.Context, sess *GridSession) (st GridState, loaded bool, err error) {
	sess.mu.Lock()
	next, ok := beginLoad(sess.state)
	if !ok {
		st = sess.state
		sess.mu.Unlock()
		return st, false, nil
	}
	sess.state = next
	sess.touchedAt = s.clock()
	tag := next.Tag
	page := next.Load.CurrentPage + 1
	params := fetchParams(next, page, s.pageSize)
	sess.mu.Unlock()

	st, err = s.loadPage(ctx, sess, tag, page, params)
	if err != nil {
		return st, false, err
	}
	// A stale completion reports loaded=false: the rows went nowhere.
	return st, st.Tag == tag, nil
}

func (s *ScheduleService) loadPage(
	ctx context.Context,
	sess *GridSession,
	tag uuid.UUID,
	page int,
	params daystatus.FindParams,
) (GridState, error) {
	fetched, err := s.source.FetchPage(ctx, params)

	sess.mu.Lock()
	if err != nil {
		st, stale := applyFetchFailed(sess.state, tag)
		sess.state = st
		current := st.Tag
		sess.mu.Unlock()
		if stale {
			metrics.CalendarStaleResponsesDiscarded.Inc()
			s.publisher.Publish(StaleResponseDiscardedEvent{StaleTag: tag, CurrentTag: current})
			return st, nil
		}
		metrics.CalendarFetchErrors.Inc()
		s.publisher.Publish(GridFetchFailedEvent{Tag: tag, Page: page, Err: err})
		return st, err
	}

	st, stale := applyFetchCompleted(sess.state, fetchCompleted{
		tag:   tag,
		page:  page,
		items: fetched.Items,
		total: fetched.TotalCount,
	})
	sess.state = st
	current := st.Tag
	sess.mu.Unlock()

	if stale {
		metrics.CalendarStaleResponsesDiscarded.Inc()
		s.publisher.Publish(StaleResponseDiscardedEvent{StaleTag: tag, CurrentTag: current})
		return st, nil
	}

	metrics.CalendarPagesFetched.Inc()
	s.publisher.Publish(GridPageLoadedEvent{
		Tag:        tag,
		Page:       page,
		RowCount:   len(st.Rows),
		TotalCount: st.TotalCount,
		ReachedEnd: st.Load.ReachedEnd,
	})
	return st, nil
}

// ErrDayOffInPast rejects day-off requests for dates that already passed.
var ErrDayOffInPast = errors.New("day off date is in the past")

// DayOffRequestedEvent is published for downstream processing when a day-off
// request is submitted from the picker.
type DayOffRequestedEvent struct {
	Date    time.Time
	Comment string
}

// RequestDayOff validates and publishes a day-off request. Persistence is the
// upstream HR system's concern; the next day-status fetch reflects the
// outcome.
func (s *ScheduleService) RequestDayOff(ctx context.Context, date time.Time, comment string) error {
	if calendar.Day(date).Before(calendar.Day(s.clock())) {
		return ErrDayOffInPast
	}
	s.publisher.Publish(DayOffRequestedEvent{Date: calendar.Day(date), Comment: comment})
	return nil
}

// OwnStatuses fetches the day-status map for the day-off picker's mini
// calendar. Missing data renders every day as a default working day.
func (s *ScheduleService) OwnStatuses(ctx context.Context, interval calendar.Interval) (calendar.DayStatusMap, error) {
	page, err := s.source.FetchPage(ctx, daystatus.FindParams{
		Start: interval.Start.Format(time.DateOnly),
		End:   interval.End.Format(time.DateOnly),
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return calendar.DayStatusMap{}, nil
	}
	return page.Items[0].Dates, nil
}

func fetchParams(st GridState, page, limit int) daystatus.FindParams {
	return daystatus.FindParams{
		Search: st.Search,
		Start:  st.Interval.Start.Format(time.DateOnly),
		End:    st.Interval.End.Format(time.DateOnly),
		Offset: page * limit,
		Limit:  limit,
	}
}
