package calendar

import (
	"time"

	"github.com/google/uuid"
)

// DayType classifies a calendar day for one employee. Exactly one value
// applies to a given (employee, date) pair; WorkingDay is the default when no
// record overrides it.
type DayType string

const (
	WorkingDay                 DayType = "working_day"
	Weekend                    DayType = "weekend"
	Holiday                    DayType = "holiday"
	SickDay                    DayType = "sick_day"
	WorkingDayPersonalSchedule DayType = "working_day_personal_schedule"
	WeekendPersonalSchedule    DayType = "weekend_personal_schedule"
	Vacation                   DayType = "vacation"
	UnpaidLeave                DayType = "unpaid_leave"
	BusinessTrip               DayType = "business_trip"
	DayBeforeEmployment        DayType = "day_before_employment"
	DayAfterDismissal          DayType = "day_after_dismissal"
)

// DayTypes lists every supported classification, in display order.
var DayTypes = []DayType{
	WorkingDay,
	Weekend,
	Holiday,
	SickDay,
	WorkingDayPersonalSchedule,
	WeekendPersonalSchedule,
	Vacation,
	UnpaidLeave,
	BusinessTrip,
	DayBeforeEmployment,
	DayAfterDismissal,
}

func (t DayType) Valid() bool {
	for _, known := range DayTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DayStatus is the backend-produced classification of one day for one
// employee. The core only classifies and renders; which days count as
// holidays is decided upstream.
type DayStatus struct {
	Date      time.Time
	Type      DayType
	Name      string
	IsWorking bool
}

// DateKey is the canonical map key for a calendar date: YYYY-MM-DD,
// time-zone-naive.
func DateKey(t time.Time) string {
	return Day(t).Format(time.DateOnly)
}

// DayStatusMap holds at most one status per date, keyed by DateKey. Absence
// of a key means the working-day default. It lives only as long as the
// visible interval requires and is rebuilt on every fresh query response.
type DayStatusMap map[string]DayStatus

// EmployeeRef identifies a grid row subject.
type EmployeeRef struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Position  string
}

func (e EmployeeRef) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.LastName + " " + e.FirstName
}

// EmployeeDayStatusRow is one grid row: an employee plus the day-status map
// covering the visible interval. Row order is insertion order from the paged
// source and stays stable across pages.
type EmployeeDayStatusRow struct {
	Employee EmployeeRef
	Dates    DayStatusMap
}
