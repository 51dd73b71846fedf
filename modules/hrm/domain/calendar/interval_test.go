package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPartitionIntoMonths_Inverted(t *testing.T) {
	_, err := PartitionIntoMonths(date(2024, time.March, 10), date(2024, time.January, 20))
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPartitionIntoMonths_SingleDay(t *testing.T) {
	buckets, err := PartitionIntoMonths(date(2024, time.January, 15), date(2024, time.January, 15))
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, date(2024, time.January, 1), buckets[0].Month)
	assert.Equal(t, 1, buckets[0].DayCount)
}

func TestPartitionIntoMonths_SameMonth(t *testing.T) {
	// Both edges inside one calendar month: a single double-trimmed bucket.
	buckets, err := PartitionIntoMonths(date(2024, time.May, 10), date(2024, time.May, 20))
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, date(2024, time.May, 1), buckets[0].Month)
	assert.Equal(t, 11, buckets[0].DayCount)
}

func TestPartitionIntoMonths_LeapFebruary(t *testing.T) {
	buckets, err := PartitionIntoMonths(date(2024, time.January, 20), date(2024, time.March, 10))
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, 12, buckets[0].DayCount)
	assert.Equal(t, 29, buckets[1].DayCount) // leap February
	assert.Equal(t, 10, buckets[2].DayCount)
}

func TestPartitionIntoMonths_Coverage(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"full year", date(2024, time.January, 1), date(2024, time.December, 31)},
		{"non-leap year", date(2023, time.January, 1), date(2023, time.December, 31)},
		{"cross-year", date(2023, time.November, 15), date(2024, time.February, 10)},
		{"two full months", date(2024, time.June, 1), date(2024, time.July, 31)},
		{"trimmed edges", date(2024, time.April, 7), date(2024, time.September, 23)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buckets, err := PartitionIntoMonths(tc.start, tc.end)
			require.NoError(t, err)

			total := 0
			for i, b := range buckets {
				total += b.DayCount
				assert.Equal(t, 1, b.Month.Day(), "bucket month must be a first-of-month marker")
				if i > 0 {
					assert.Equal(t, buckets[i-1].Month.AddDate(0, 1, 0), b.Month, "buckets must be consecutive months")
				}
				if i > 0 && i < len(buckets)-1 {
					assert.Equal(t, DaysInMonth(b.Month.Year(), b.Month.Month()), b.DayCount, "inner buckets carry the natural month length")
				}
			}
			want := int(tc.end.Sub(tc.start)/(24*time.Hour)) + 1
			assert.Equal(t, want, total, "bucket day counts must cover the interval exactly")
		})
	}
}

func TestDaysInInterval(t *testing.T) {
	days, err := DaysInInterval(date(2024, time.February, 27), date(2024, time.March, 2))
	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, date(2024, time.February, 29), days[2])
	assert.Equal(t, date(2024, time.March, 2), days[4])

	_, err = DaysInInterval(date(2024, time.March, 2), date(2024, time.February, 27))
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestYearBounds(t *testing.T) {
	d := date(2024, time.July, 15)
	assert.Equal(t, date(2024, time.January, 1), StartOfYear(d))
	assert.Equal(t, date(2024, time.December, 31), EndOfYear(d))

	// Leap year does not disturb the boundaries.
	assert.Equal(t, date(2024, time.December, 31), EndOfYear(date(2024, time.February, 29)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestInterval_Contains(t *testing.T) {
	iv := YearInterval(date(2024, time.June, 1))
	assert.True(t, iv.Contains(date(2024, time.January, 1)))
	assert.True(t, iv.Contains(date(2024, time.December, 31)))
	assert.False(t, iv.Contains(date(2025, time.January, 1)))
	assert.True(t, iv.Valid())
}
