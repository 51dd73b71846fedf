package calendar

import (
	"time"

	"github.com/go-faster/errors"
)

// ErrInvalidInterval marks inverted or unbounded date ranges. Callers always
// supply closed year or month intervals, so hitting this is a programming
// error rather than a user-facing condition.
var ErrInvalidInterval = errors.New("calendar: invalid date interval")

// MonthBucket is a contiguous run of days belonging to one calendar month
// within a larger interval. Month is normalized to the first of the month,
// midnight UTC.
type MonthBucket struct {
	Month    time.Time
	DayCount int
}

// Day normalizes t to a calendar date: midnight UTC of the same year, month
// and day. All interval math operates on these time-zone-naive values.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func lastOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// Day zero of the next month is the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the natural length of the given month, leap years
// included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// PartitionIntoMonths splits [start, end] into per-month buckets in
// chronological order with no gaps and no overlap. The first and last buckets
// are trimmed to the interval edges; every other bucket carries the natural
// month length. The bucket day counts always sum to the inclusive day count
// of the interval. When start and end fall in the same calendar month the
// result is a single double-trimmed bucket.
func PartitionIntoMonths(start, end time.Time) ([]MonthBucket, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil, errors.Wrapf(ErrInvalidInterval, "partition %s..%s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	var buckets []MonthBucket
	for cur := firstOfMonth(start); !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		bucketStart := cur
		if bucketStart.Before(start) {
			bucketStart = start
		}
		bucketEnd := lastOfMonth(cur)
		if bucketEnd.After(end) {
			bucketEnd = end
		}
		buckets = append(buckets, MonthBucket{
			Month:    cur,
			DayCount: daysBetween(bucketStart, bucketEnd) + 1,
		})
	}
	return buckets, nil
}

// DaysInInterval enumerates every calendar date in [start, end], both ends
// inclusive. Used to lay out grid columns.
func DaysInInterval(start, end time.Time) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil, errors.Wrapf(ErrInvalidInterval, "days %s..%s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	days := make([]time.Time, 0, daysBetween(start, end)+1)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days, nil
}

// StartOfYear returns January 1st of d's calendar year.
func StartOfYear(d time.Time) time.Time {
	return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns December 31st of d's calendar year.
func EndOfYear(d time.Time) time.Time {
	return time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Interval is a closed calendar-date range.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: Day(start), End: Day(end)}
}

// YearInterval covers the whole calendar year of d.
func YearInterval(d time.Time) Interval {
	return Interval{Start: StartOfYear(d), End: EndOfYear(d)}
}

func (i Interval) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(i.Start) && !d.After(i.End)
}

func (i Interval) Valid() bool {
	return !i.End.Before(i.Start)
}
