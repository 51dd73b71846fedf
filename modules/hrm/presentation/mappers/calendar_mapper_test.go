package mappers

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
	"github.com/iota-uz/staffcal/modules/hrm/services"
	"github.com/iota-uz/staffcal/pkg/types"
)

// keyEchoCtx translates every message ID to itself, keeping assertions
// locale-independent.
type keyEchoCtx struct{}

func (keyEchoCtx) T(key string, _ ...map[string]interface{}) string     { return key }
func (keyEchoCtx) TSafe(key string, _ ...map[string]interface{}) string { return key }
func (c keyEchoCtx) Namespace(string) types.PageContextProvider         { return c }
func (keyEchoCtx) GetLocale() language.Tag                              { return language.English }
func (keyEchoCtx) GetURL() *url.URL                                     { return nil }
func (keyEchoCtx) GetLocalizer() *i18n.Localizer                        { return nil }

func gridState(t *testing.T) services.GridState {
	t.Helper()
	window := calendar.DisplayWindow{AnchorYear: 2024, Months: []int{0, 1, 2, 3}, Span: 4}
	empID := uuid.New()
	return services.GridState{
		Tag:      uuid.New(),
		Window:   window,
		Interval: window.Interval(),
		Rows: []calendar.EmployeeDayStatusRow{
			{
				Employee: calendar.EmployeeRef{ID: empID, FirstName: "Anna", LastName: "Petrova", Position: "Engineer"},
				Dates: calendar.DayStatusMap{
					"2024-01-01": {
						Date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
						Type:      calendar.Holiday,
						Name:      "New Year",
						IsWorking: false,
					},
				},
			},
		},
		TotalCount: 1,
		Load:       services.LoadState{CurrentPage: 0, ReachedEnd: true},
	}
}

func TestGridToViewModel(t *testing.T) {
	today := time.Date(2024, time.February, 10, 9, 30, 0, 0, time.UTC)
	vm, err := GridToViewModel(keyEchoCtx{}, gridState(t), today)
	require.NoError(t, err)

	// Jan..Apr 2024: 31 + 29 + 31 + 30 days.
	require.Len(t, vm.Months, 4)
	assert.Equal(t, "Calendar.Months.1 2024", vm.Months[0].Label)
	assert.Equal(t, 31, vm.Months[0].DayCount)
	assert.Equal(t, 29, vm.Months[1].DayCount)
	assert.Len(t, vm.Days, 121)

	assert.True(t, vm.Days[0].IsMonthStart)
	assert.False(t, vm.Days[1].IsMonthStart)
	assert.True(t, vm.Days[31].IsMonthStart) // Feb 1
	assert.Equal(t, 31+9, vm.TodayColumn)    // Feb 10
	assert.True(t, vm.Days[vm.TodayColumn].IsToday)

	require.Len(t, vm.Rows, 1)
	row := vm.Rows[0]
	assert.Equal(t, "Petrova Anna", row.FullName)
	require.Len(t, row.Cells, 121)
	assert.Equal(t, string(calendar.Holiday), row.Cells[0].Type)
	assert.Equal(t, "New Year", row.Cells[0].Label)
	assert.Equal(t, string(calendar.WorkingDay), row.Cells[1].Type)
	assert.Equal(t, "Calendar.DayTypes.working_day", row.Cells[1].Label)

	assert.False(t, vm.ShowSentinel)
	assert.Equal(t, 1, vm.NextPage)
}

func TestGridToViewModel_TodayOutsideInterval(t *testing.T) {
	today := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	vm, err := GridToViewModel(keyEchoCtx{}, gridState(t), today)
	require.NoError(t, err)
	assert.Equal(t, -1, vm.TodayColumn)
}

func TestGridToViewModel_WrappedWindow(t *testing.T) {
	st := gridState(t)
	st.Window = calendar.DisplayWindow{AnchorYear: 2023, Months: []int{10, 11, 0, 1}, Span: 4}
	st.Interval = st.Window.Interval()
	st.Rows = nil

	vm, err := GridToViewModel(keyEchoCtx{}, st, time.Now())
	require.NoError(t, err)

	require.Len(t, vm.Months, 4)
	assert.Equal(t, 2023, vm.Months[0].Year)
	assert.Equal(t, 2024, vm.Months[2].Year)
	// Feb 2024 is a leap February.
	assert.Equal(t, 29, vm.Months[3].DayCount)
}

func TestRowBatchToViewModel(t *testing.T) {
	st := gridState(t)
	st.Rows = append(st.Rows, calendar.EmployeeDayStatusRow{
		Employee: calendar.EmployeeRef{ID: uuid.New(), LastName: "Ivanov"},
		Dates:    calendar.DayStatusMap{},
	})

	vm, err := RowBatchToViewModel(keyEchoCtx{}, st, 1, 5, time.Now())
	require.NoError(t, err)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "Ivanov", vm.Rows[0].FullName)
	assert.Equal(t, 1, vm.RowOffset)

	empty, err := RowBatchToViewModel(keyEchoCtx{}, st, 5, 9, time.Now())
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)
}

func TestDayTypeColor_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, DayTypeColor(calendar.WorkingDay), DayTypeColor(calendar.DayType("mystery")))
	assert.NotEqual(t, DayTypeColor(calendar.WorkingDay), DayTypeColor(calendar.Holiday))
}

func TestMiniCalendarToViewModel(t *testing.T) {
	interval := calendar.NewInterval(
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	)
	vm, err := MiniCalendarToViewModel(keyEchoCtx{}, interval, calendar.DayStatusMap{}, time.Now())
	require.NoError(t, err)

	require.Len(t, vm.Months, 2)
	// Jan 1 2024 is a Monday, Feb 1 2024 is a Thursday.
	assert.Equal(t, 0, vm.Months[0].LeadingBlanks)
	assert.Equal(t, 3, vm.Months[1].LeadingBlanks)
	assert.Len(t, vm.Months[0].Days, 31)
	assert.Len(t, vm.Months[1].Days, 29)
}

func TestMiniCalendarToViewModel_TrimmedFirstMonth(t *testing.T) {
	// The picker interval starts mid-month; the blanks must place the first
	// rendered day in its own weekday column, not the 1st's.
	interval := calendar.NewInterval(
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	)
	vm, err := MiniCalendarToViewModel(keyEchoCtx{}, interval, calendar.DayStatusMap{}, time.Now())
	require.NoError(t, err)

	require.Len(t, vm.Months, 2)
	// Mar 15 2024 is a Friday, Apr 1 2024 is a Monday.
	assert.Equal(t, 4, vm.Months[0].LeadingBlanks)
	assert.Equal(t, 0, vm.Months[1].LeadingBlanks)
	assert.Len(t, vm.Months[0].Days, 17)
	assert.Len(t, vm.Months[1].Days, 30)
	assert.Equal(t, "2024-03-15", vm.Months[0].Days[0].Date)
}
