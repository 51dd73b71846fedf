package mappers

import (
	"fmt"
	"time"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/viewmodels"
	"github.com/iota-uz/staffcal/modules/hrm/services"
	"github.com/iota-uz/staffcal/pkg/types"
)

var dayTypeColors = map[calendar.DayType]string{
	calendar.WorkingDay:                 "bg-surface-100",
	calendar.Weekend:                    "bg-gray-200",
	calendar.Holiday:                    "bg-red-200",
	calendar.SickDay:                    "bg-amber-200",
	calendar.WorkingDayPersonalSchedule: "bg-sky-100",
	calendar.WeekendPersonalSchedule:    "bg-gray-300",
	calendar.Vacation:                   "bg-green-200",
	calendar.UnpaidLeave:                "bg-orange-200",
	calendar.BusinessTrip:               "bg-blue-200",
	calendar.DayBeforeEmployment:        "bg-gray-100",
	calendar.DayAfterDismissal:          "bg-gray-100",
}

// DayTypeColor returns the cell background class for a day classification.
func DayTypeColor(t calendar.DayType) string {
	if color, ok := dayTypeColors[t]; ok {
		return color
	}
	return dayTypeColors[calendar.WorkingDay]
}

func dayCell(pageCtx types.PageContextProvider, date time.Time, dates calendar.DayStatusMap, today time.Time) viewmodels.DayCell {
	status := calendar.Classify(date, dates)
	label := status.Name
	if label == "" {
		label = pageCtx.T("Calendar.DayTypes." + string(status.Type))
	}
	return viewmodels.DayCell{
		Date:      calendar.DateKey(date),
		Type:      string(status.Type),
		Label:     label,
		Color:     DayTypeColor(status.Type),
		IsWorking: status.IsWorking,
		IsToday:   calendar.Day(date).Equal(calendar.Day(today)),
	}
}

// EmployeeRowToViewModel renders one employee's cells for the given day
// columns. Days without a status record fall back to the working-day default.
func EmployeeRowToViewModel(
	pageCtx types.PageContextProvider,
	row calendar.EmployeeDayStatusRow,
	days []time.Time,
	today time.Time,
) viewmodels.EmployeeRow {
	cells := make([]viewmodels.DayCell, 0, len(days))
	for _, date := range days {
		cells = append(cells, dayCell(pageCtx, date, row.Dates, today))
	}
	return viewmodels.EmployeeRow{
		EmployeeID: row.Employee.ID.String(),
		FullName:   row.Employee.FullName(),
		Position:   row.Employee.Position,
		Cells:      cells,
	}
}

func monthLabel(pageCtx types.PageContextProvider, month time.Time) string {
	return fmt.Sprintf(
		"%s %d",
		pageCtx.T(fmt.Sprintf("Calendar.Months.%d", int(month.Month()))),
		month.Year(),
	)
}

// GridToViewModel flattens the grid state into the template's shape: month
// headers from the interval partition, one column per date and one row per
// loaded employee.
func GridToViewModel(
	pageCtx types.PageContextProvider,
	st services.GridState,
	today time.Time,
) (*viewmodels.CalendarGrid, error) {
	buckets, err := calendar.PartitionIntoMonths(st.Interval.Start, st.Interval.End)
	if err != nil {
		return nil, err
	}
	days, err := calendar.DaysInInterval(st.Interval.Start, st.Interval.End)
	if err != nil {
		return nil, err
	}

	months := make([]viewmodels.MonthHeader, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, viewmodels.MonthHeader{
			Label:    monthLabel(pageCtx, b.Month),
			Year:     b.Month.Year(),
			DayCount: b.DayCount,
		})
	}

	todayColumn := -1
	columns := make([]viewmodels.DayColumn, 0, len(days))
	for i, date := range days {
		isToday := calendar.Day(date).Equal(calendar.Day(today))
		if isToday {
			todayColumn = i
		}
		columns = append(columns, viewmodels.DayColumn{
			Date:         calendar.DateKey(date),
			Day:          date.Day(),
			IsToday:      isToday,
			IsMonthStart: date.Day() == 1,
		})
	}

	rows := make([]viewmodels.EmployeeRow, 0, len(st.Rows))
	for _, row := range st.Rows {
		rows = append(rows, EmployeeRowToViewModel(pageCtx, row, days, today))
	}

	return &viewmodels.CalendarGrid{
		Tag:          st.Tag.String(),
		AnchorYear:   st.Window.AnchorYear,
		Span:         st.Window.Span,
		Search:       st.Search,
		Months:       months,
		Days:         columns,
		Rows:         rows,
		RowOffset:    0,
		TotalCount:   st.TotalCount,
		ShowSentinel: !st.Load.ReachedEnd && !st.DisableInfiniteScroll,
		NextPage:     st.Load.CurrentPage + 1,
		TodayColumn:  todayColumn,
	}, nil
}

// RowBatchToViewModel renders the inclusive row range [first, last] for the
// HTMX append response; first positions the batch after the rows already on
// the client. An inverted or out-of-range pair yields an empty batch.
func RowBatchToViewModel(
	pageCtx types.PageContextProvider,
	st services.GridState,
	first, last int,
	today time.Time,
) (*viewmodels.CalendarGrid, error) {
	vm, err := GridToViewModel(pageCtx, st, today)
	if err != nil {
		return nil, err
	}
	if first < 0 {
		first = 0
	}
	if last > len(vm.Rows)-1 {
		last = len(vm.Rows) - 1
	}
	if first > last {
		vm.Rows = nil
	} else {
		vm.Rows = vm.Rows[first : last+1]
	}
	vm.RowOffset = first
	return vm, nil
}

// CellDetailToViewModel resolves one cell's classification for the detail
// popover.
func CellDetailToViewModel(
	pageCtx types.PageContextProvider,
	row calendar.EmployeeDayStatusRow,
	date time.Time,
	today time.Time,
) viewmodels.CellDetail {
	cell := dayCell(pageCtx, date, row.Dates, today)
	return viewmodels.CellDetail{
		FullName:  row.Employee.FullName(),
		Position:  row.Employee.Position,
		Date:      cell.Date,
		Label:     cell.Label,
		Type:      cell.Type,
		Color:     cell.Color,
		IsWorking: cell.IsWorking,
	}
}

// EmployeeDetailToViewModel tallies the employee's day classifications over
// the interval, in display order, dropping empty entries.
func EmployeeDetailToViewModel(
	pageCtx types.PageContextProvider,
	row calendar.EmployeeDayStatusRow,
	interval calendar.Interval,
) (*viewmodels.EmployeeDetail, error) {
	days, err := calendar.DaysInInterval(interval.Start, interval.End)
	if err != nil {
		return nil, err
	}

	tally := make(map[calendar.DayType]int, len(calendar.DayTypes))
	for _, date := range days {
		tally[calendar.Classify(date, row.Dates).Type]++
	}

	counts := make([]viewmodels.TypeCount, 0, len(calendar.DayTypes))
	for _, t := range calendar.DayTypes {
		if tally[t] == 0 {
			continue
		}
		counts = append(counts, viewmodels.TypeCount{
			Label: pageCtx.T("Calendar.DayTypes." + string(t)),
			Color: DayTypeColor(t),
			Count: tally[t],
		})
	}

	return &viewmodels.EmployeeDetail{
		EmployeeID: row.Employee.ID.String(),
		FullName:   row.Employee.FullName(),
		Position:   row.Employee.Position,
		Counts:     counts,
	}, nil
}

// MiniCalendarToViewModel lays out the picker months in week rows, Monday
// first.
func MiniCalendarToViewModel(
	pageCtx types.PageContextProvider,
	interval calendar.Interval,
	dates calendar.DayStatusMap,
	today time.Time,
) (*viewmodels.MiniCalendar, error) {
	buckets, err := calendar.PartitionIntoMonths(interval.Start, interval.End)
	if err != nil {
		return nil, err
	}

	months := make([]viewmodels.MiniMonth, 0, len(buckets))
	for _, b := range buckets {
		cells := make([]viewmodels.DayCell, 0, b.DayCount)
		var firstRendered time.Time
		for d := 0; d < calendar.DaysInMonth(b.Month.Year(), b.Month.Month()); d++ {
			date := b.Month.AddDate(0, 0, d)
			if !interval.Contains(date) {
				continue
			}
			if len(cells) == 0 {
				firstRendered = date
			}
			cells = append(cells, dayCell(pageCtx, date, dates, today))
		}
		// Blanks align the first rendered day with its weekday column; a
		// month trimmed by the interval does not start on the 1st.
		blanks := 0
		if !firstRendered.IsZero() {
			blanks = (int(firstRendered.Weekday()) + 6) % 7 // Monday = 0
		}
		months = append(months, viewmodels.MiniMonth{
			Label:         monthLabel(pageCtx, b.Month),
			Year:          b.Month.Year(),
			LeadingBlanks: blanks,
			Days:          cells,
		})
	}
	return &viewmodels.MiniCalendar{Months: months}, nil
}
