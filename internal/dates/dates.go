// Package dates provides the date-only arithmetic shared by the deadline
// calculators. All helpers normalize to local midnight so that time-of-day
// never leaks into day counts.
package dates

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDate indicates a date string that could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

const isoDateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD) into a local
// midnight time value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a time value as an ISO-8601 calendar date.
func FormatDate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// StartOfDay truncates a time value to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when to precedes from. Rounding absorbs DST
// transitions where a "day" is 23 or 25 hours.
func DaysBetween(from, to time.Time) int {
	diff := StartOfDay(to).Sub(StartOfDay(from))
	return int(math.Round(diff.Hours() / 24))
}

// AddDays returns the date n calendar days after t, normalized to midnight.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// SubtractBusinessDays steps back from t one calendar day at a time, counting
// only weekdays, until n business days have been consumed. The result never
// lands on a Saturday or Sunday for n >= 1.
func SubtractBusinessDays(t time.Time, n int) time.Time {
	d := StartOfDay(t)
	for counted := 0; counted < n; {
		d = d.AddDate(0, 0, -1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return d
}
