package calendar

import "time"

// Classify maps a date to its day status for one employee. Total over all
// inputs: a nil or empty map, or a date without a record, yields the
// working-day default. A malformed record for one date therefore degrades a
// single cell, never the whole grid.
func Classify(date time.Time, m DayStatusMap) DayStatus {
	if m != nil {
		if status, ok := m[DateKey(date)]; ok {
			if !status.Type.Valid() {
				status.Type = WorkingDay
			}
			status.Date = Day(date)
			return status
		}
	}
	return DayStatus{
		Date:      Day(date),
		Type:      WorkingDay,
		Name:      "",
		IsWorking: false,
	}
}
