package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/mappers"
	calendarui "github.com/iota-uz/staffcal/modules/hrm/presentation/templates/pages/calendar"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/virtualize"
	"github.com/iota-uz/staffcal/modules/hrm/services"
	"github.com/iota-uz/staffcal/pkg/application"
	"github.com/iota-uz/staffcal/pkg/composables"
	"github.com/iota-uz/staffcal/pkg/configuration"
	"github.com/iota-uz/staffcal/pkg/htmx"
	"github.com/iota-uz/staffcal/pkg/middleware"
	"github.com/iota-uz/staffcal/pkg/shared"
)

// Grid geometry used to bound how many rows one batch response materializes.
const (
	gridRowHeight      = 40
	gridViewportHeight = 640
	gridOverscan       = 10
)

type CalendarController struct {
	app             application.Application
	scheduleService *services.ScheduleService
	basePath        string
}

func NewCalendarController(app application.Application) application.Controller {
	return &CalendarController{
		app:             app,
		scheduleService: app.Service(services.ScheduleService{}).(*services.ScheduleService),
		basePath:        "/hrm/calendar",
	}
}

func (c *CalendarController) Key() string {
	return c.basePath
}

func (c *CalendarController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.ProvideLocalizer(c.app),
		middleware.WithPageContext(),
	}

	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware...)
	router.HandleFunc("", c.Grid).Methods(http.MethodGet)
	router.HandleFunc("/rows", c.Rows).Methods(http.MethodGet)
	router.HandleFunc("/cell", c.CellDetail).Methods(http.MethodGet)
	router.HandleFunc("/employees/{id:[0-9a-fA-F-]+}", c.EmployeeDetail).Methods(http.MethodGet)

	dayOffs := r.PathPrefix("/hrm/day-offs").Subrouter()
	dayOffs.Use(commonMiddleware...)
	dayOffs.HandleFunc("/new", c.NewDayOff).Methods(http.MethodGet)
	dayOffs.HandleFunc("", c.CreateDayOff).Methods(http.MethodPost)
}

// session resolves the grid session from the cookie, minting a fresh cookie
// for first-time visitors.
func (c *CalendarController) session(w http.ResponseWriter, r *http.Request) *services.GridSession {
	conf := configuration.Use()
	var id uuid.UUID
	if cookie, err := r.Cookie(conf.GridCookieKey); err == nil {
		id, _ = uuid.Parse(cookie.Value)
	}
	if id == uuid.Nil {
		id = uuid.New()
		http.SetCookie(w, &http.Cookie{
			Name:     conf.GridCookieKey,
			Value:    id.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.scheduleService.Session(id)
}

// Grid serves the calendar. Navigation actions arrive as query parameters;
// HTMX requests get the grid fragment, everything else the full page.
func (c *CalendarController) Grid(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	now := time.Now()
	search := strings.TrimSpace(composables.GetLastQueryParam(r, "search"))

	var mutate func(win *calendar.DisplayWindow)
	switch r.URL.Query().Get("action") {
	case "forward":
		mutate = func(win *calendar.DisplayWindow) { win.StepForward() }
	case "back":
		mutate = func(win *calendar.DisplayWindow) { win.StepBackward() }
	case "today":
		mutate = func(win *calendar.DisplayWindow) { win.JumpToCurrent(now) }
	case "span":
		span, err := strconv.Atoi(r.URL.Query().Get("span"))
		if err != nil || (span != 4 && span != 12) {
			span = services.DefaultSpan
		}
		mutate = func(win *calendar.DisplayWindow) { win.ChangeSpan(now, span) }
	case "year":
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			break
		}
		mutate = func(win *calendar.DisplayWindow) { win.JumpToYear(year) }
	default:
		// Deep links restore the pushed URL state: ?year=YYYY&span=N.
		year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
		span, spanErr := strconv.Atoi(r.URL.Query().Get("span"))
		if yearErr == nil {
			mutate = func(win *calendar.DisplayWindow) {
				if spanErr == nil && (span == 4 || span == 12) {
					win.ChangeSpan(now, span)
				}
				win.JumpToYear(year)
			}
		}
	}

	st, err := c.scheduleService.Navigate(r.Context(), sess, mutate, search)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load day statuses")
		http.Error(w, "failed to load day statuses", http.StatusBadGateway)
		return
	}

	vm, err := mappers.GridToViewModel(composables.UsePageCtx(r.Context()), st, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if htmx.IsHxRequest(r) && !htmx.IsBoosted(r) {
		pushed := c.basePath + "?year=" + strconv.Itoa(st.Window.AnchorYear) + "&span=" + strconv.Itoa(st.Window.Span)
		if search != "" {
			pushed += "&search=" + url.QueryEscape(search)
		}
		htmx.PushURL(w, pushed)
		templ.Handler(calendarui.Grid(vm), templ.WithStreaming()).ServeHTTP(w, r)
		return
	}
	templ.Handler(calendarui.Index(vm), templ.WithStreaming()).ServeHTTP(w, r)
}

// Rows appends the next page when the scroll sentinel is revealed. A tag from
// a superseded grid means the sentinel itself is stale; the response removes
// it without fetching.
func (c *CalendarController) Rows(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)
	now := time.Now()

	tag, err := uuid.Parse(r.URL.Query().Get("tag"))
	if err != nil || tag != sess.Snapshot().Tag {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pagination := composables.UsePaginated(r)
	st, _, err := c.scheduleService.MaybeLoadNext(r.Context(), sess)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load next page")
		http.Error(w, "failed to load next page", http.StatusBadGateway)
		return
	}

	// The sentinel sits at the bottom of the loaded rows, so its offset is the
	// best scroll-position estimate available server-side. Only the visible
	// range of the batch is materialized.
	win := virtualize.Range(pagination.Offset*gridRowHeight, gridRowHeight, gridViewportHeight, gridOverscan, len(st.Rows))
	first := pagination.Offset
	if win.First > first {
		first = win.First
	}
	vm, err := mappers.RowBatchToViewModel(composables.UsePageCtx(r.Context()), st, first, win.Last, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	templ.Handler(calendarui.RowBatch(vm), templ.WithStreaming()).ServeHTTP(w, r)
}

// CellDetail renders the popover for one employee/date cell.
func (c *CalendarController) CellDetail(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)

	employeeID, err := uuid.Parse(r.URL.Query().Get("employee"))
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}
	date, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	row, ok := findRow(sess.Snapshot(), employeeID)
	if !ok {
		c.rowNotLoaded(w, r)
		return
	}

	vm := mappers.CellDetailToViewModel(composables.UsePageCtx(r.Context()), row, date, time.Now())
	templ.Handler(calendarui.CellDetail(vm), templ.WithStreaming()).ServeHTTP(w, r)
}

// EmployeeDetail renders the per-type day tally for one grid row.
func (c *CalendarController) EmployeeDetail(w http.ResponseWriter, r *http.Request) {
	sess := c.session(w, r)

	employeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	st := sess.Snapshot()
	row, ok := findRow(st, employeeID)
	if !ok {
		c.rowNotLoaded(w, r)
		return
	}

	vm, err := mappers.EmployeeDetailToViewModel(composables.UsePageCtx(r.Context()), row, st.Interval)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	templ.Handler(calendarui.EmployeeDetail(vm), templ.WithStreaming()).ServeHTTP(w, r)
}

// NewDayOff opens the day-off picker with a two-month mini calendar.
func (c *CalendarController) NewDayOff(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	interval := calendar.NewInterval(now, now.AddDate(0, 2, 0))

	dates, err := c.scheduleService.OwnStatuses(r.Context(), interval)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load day statuses for picker")
		http.Error(w, "failed to load day statuses", http.StatusBadGateway)
		return
	}

	vm, err := mappers.MiniCalendarToViewModel(composables.UsePageCtx(r.Context()), interval, dates, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	templ.Handler(calendarui.DayOffPicker(vm), templ.WithStreaming()).ServeHTTP(w, r)
}

type dayOffForm struct {
	Date    string `form:"Date"`
	Comment string `form:"Comment"`
}

// CreateDayOff validates and submits a day-off request.
func (c *CalendarController) CreateDayOff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var form dayOffForm
	if err := shared.Decoder.Decode(&form, r.Form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, form.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := c.scheduleService.RequestDayOff(r.Context(), date, strings.TrimSpace(form.Comment)); err != nil {
		if htmx.IsHxRequest(r) {
			// Keep the picker in place and swap the message into its
			// feedback area instead of replacing the whole dialog.
			htmx.Retarget(w, "#day-off-feedback")
			htmx.Reswap(w, "innerHTML")
			templ.Handler(calendarui.DayOffError("Calendar.DayOffPastDate"), templ.WithStreaming()).ServeHTTP(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if !htmx.IsHxRequest(r) {
		shared.Redirect(w, r, c.basePath)
		return
	}
	htmx.Trigger(w, "calendar:day-off-submitted")
	templ.Handler(calendarui.DayOffSubmitted(form.Date), templ.WithStreaming()).ServeHTTP(w, r)
}

// rowNotLoaded handles detail requests for rows the current grid does not
// hold, typically because the grid was re-navigated after the link rendered.
// HTMX clients are sent back to the calendar for a fresh grid.
func (c *CalendarController) rowNotLoaded(w http.ResponseWriter, r *http.Request) {
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, c.basePath)
		return
	}
	http.Error(w, "employee not loaded", http.StatusNotFound)
}

func findRow(st services.GridState, employeeID uuid.UUID) (calendar.EmployeeDayStatusRow, bool) {
	for _, row := range st.Rows {
		if row.Employee.ID == employeeID {
			return row, true
		}
	}
	return calendar.EmployeeDayStatusRow{}, false
}
