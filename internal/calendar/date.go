// Package calendar implements the date arithmetic behind the date input:
// month grids, bounds checks, locale-aware parsing and formatting, and month
// navigation. Every function is pure apart from the injected Clock.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

const (
	// MinYear and MaxYear keep the ISO form at exactly four digits, which is
	// what makes string ordering match chronological ordering.
	MinYear = 1
	MaxYear = 9999
)

// Date is a Gregorian calendar date with no time-of-day component. The zero
// value is not a valid date; use NewDate, ParseISO or DateOf.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the triple and returns the corresponding Date.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	if year < MinYear || year > MaxYear {
		return Date{}, false
	}
	if month < time.January || month > time.December {
		return Date{}, false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

var isoPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseISO parses the strict YYYY-MM-DD form used for external values and
// bounds.
func ParseISO(s string) (Date, bool) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	return fromParts(m[1], m[2], m[3])
}

func fromParts(year, month, day string) (Date, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return Date{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, false
	}
	return NewDate(y, time.Month(mo), d)
}

// String returns the ISO form, e.g. 2024-08-15.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// YearMonth returns the month page containing d.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// Time returns midnight of d in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in month of year, or 0 for a month
// outside January..December.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// FirstWeekday returns the weekday of day 1 of the month (Sunday is 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}
