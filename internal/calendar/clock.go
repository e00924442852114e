package calendar

import "time"

// Clock supplies the current time. Pickers take one explicitly so "today" is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

// Today returns the current calendar date in the clock's location. A nil
// clock reads the wall clock.
func Today(c Clock) Date {
	if c == nil {
		c = SystemClock{}
	}
	return DateOf(c.Now())
}

// IsToday reports whether day of ym is the clock's current date.
func IsToday(ym YearMonth, day int, c Clock) bool {
	today := Today(c)
	return today.Year == ym.Year && today.Month == ym.Month && today.Day == day
}
