package schedule

import (
	"strings"
	"time"
)

// All date math in this package is value-based: every helper returns a new
// time.Time in UTC and never mutates its input.

const dayHours = 24

// AddDays returns t shifted by n whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths returns t shifted by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// AddFractionalDays shifts t by a possibly non-integer number of days.
func AddFractionalDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * dayHours * float64(time.Hour)))
}

// TruncateToDay drops the time-of-day component, keeping UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateFromDOY converts a 1-based day-of-year to the matching UTC date.
func DateFromDOY(year, doy int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
}

// MidMonth is the 15th of the given month, UTC midnight.
func MidMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
}

// Midpoint is the arithmetic midpoint between two instants.
func Midpoint(a, b time.Time) time.Time {
	return a.Add(b.Sub(a) / 2)
}

// MonthByName maps an English month name ("June") to its time.Month.
// Matching is case-insensitive; unknown names report false.
func MonthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), strings.TrimSpace(name)) {
			return m, true
		}
	}
	return 0, false
}
