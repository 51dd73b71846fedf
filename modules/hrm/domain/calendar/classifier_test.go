package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_EmptyMap(t *testing.T) {
	for _, d := range []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(1970, time.June, 15),
		date(2099, time.December, 31),
	} {
		got := Classify(d, DayStatusMap{})
		assert.Equal(t, WorkingDay, got.Type)
		assert.Empty(t, got.Name)
		assert.False(t, got.IsWorking)
		assert.Equal(t, Day(d), got.Date)
	}
}

func TestClassify_NilMap(t *testing.T) {
	got := Classify(date(2024, time.March, 8), nil)
	assert.Equal(t, WorkingDay, got.Type)
}

func TestClassify_RecordedStatus(t *testing.T) {
	d := date(2024, time.March, 8)
	m := DayStatusMap{
		DateKey(d): {Type: Holiday, Name: "International Women's Day", IsWorking: false},
	}

	got := Classify(d, m)
	assert.Equal(t, Holiday, got.Type)
	assert.Equal(t, "International Women's Day", got.Name)
	assert.False(t, got.IsWorking)

	// A neighboring day falls back to the default.
	next := Classify(d.AddDate(0, 0, 1), m)
	assert.Equal(t, WorkingDay, next.Type)
}

func TestClassify_WorkingFlagFromRecord(t *testing.T) {
	d := date(2024, time.June, 1)
	m := DayStatusMap{
		DateKey(d): {Type: WorkingDayPersonalSchedule, Name: "Shift B", IsWorking: true},
	}
	got := Classify(d, m)
	assert.Equal(t, WorkingDayPersonalSchedule, got.Type)
	assert.True(t, got.IsWorking)
}

func TestClassify_UnknownTypeDegradesToDefault(t *testing.T) {
	d := date(2024, time.June, 2)
	m := DayStatusMap{
		DateKey(d): {Type: DayType("mystery"), Name: "?", IsWorking: true},
	}
	got := Classify(d, m)
	assert.Equal(t, WorkingDay, got.Type)
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2024, time.March, 8, 12, 30, 0, 0, time.FixedZone("X", 3*3600))
	m := DayStatusMap{
		"2024-03-08": {Type: Vacation, Name: "", IsWorking: false},
	}
	got := Classify(noon, m)
	assert.Equal(t, Vacation, got.Type)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-02-29", DateKey(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)))
}

func TestDayType_Valid(t *testing.T) {
	for _, dt := range DayTypes {
		assert.True(t, dt.Valid())
	}
	assert.False(t, DayType("nonsense").Valid())
}

func TestEmployeeRef_FullName(t *testing.T) {
	assert.Equal(t, "Petrova Anna", EmployeeRef{FirstName: "Anna", LastName: "Petrova"}.FullName())
	assert.Equal(t, "Anna", EmployeeRef{FirstName: "Anna"}.FullName())
	assert.Equal(t, "Petrova", EmployeeRef{LastName: "Petrova"}.FullName())
}
