package calendar

import (
	"fmt"
	"regexp"
	"time"
)

// YearMonth identifies a month page, such as the month currently shown by a
// picker. Month is 1-based like time.Month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// String returns the YYYY-MM form.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Add moves delta months forward (or backward when negative), carrying into
// the year.
func (ym YearMonth) Add(delta int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-time.January) + delta
	year, month := idx/12, idx%12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.January + time.Month(month)}
}

// Compare returns -1, 0 or +1 as ym is before, equal to or after o.
func (ym YearMonth) Compare(o YearMonth) int {
	if ym.Year != o.Year {
		return sign(ym.Year - o.Year)
	}
	return sign(int(ym.Month) - int(o.Month))
}

// MonthsUntil returns how many months o lies after ym; negative when o is
// earlier. ym.Add(ym.MonthsUntil(o)) == o.
func (ym YearMonth) MonthsUntil(o YearMonth) int {
	return (o.Year-ym.Year)*12 + int(o.Month) - int(ym.Month)
}

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseYearMonth parses the YYYY-MM form produced by String.
func ParseYearMonth(s string) (YearMonth, bool) {
	m := yearMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return YearMonth{}, false
	}
	d, ok := fromParts(m[1], m[2], "01")
	if !ok {
		return YearMonth{}, false
	}
	return d.YearMonth(), true
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return DaysInMonth(ym.Year, ym.Month)
}

// First returns day 1 of the month.
func (ym YearMonth) First() (Date, bool) {
	return NewDate(ym.Year, ym.Month, 1)
}

// Last returns the final day of the month.
func (ym YearMonth) Last() (Date, bool) {
	return NewDate(ym.Year, ym.Month, ym.Days())
}

// Navigate is the free-function form of YearMonth.Add.
func Navigate(ym YearMonth, delta int) YearMonth {
	return ym.Add(delta)
}

// SelectDay builds the date for day within ym. Bounds are not consulted;
// callers gate with IsSelectable first. It fails only when day does not exist
// in the month.
func SelectDay(ym YearMonth, day int) (Date, bool) {
	return NewDate(ym.Year, ym.Month, day)
}

// Cell is one slot of a month grid. Day is zero for the padding cells that
// precede day 1.
type Cell struct {
	Day int
}

// Empty reports whether the cell is padding.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// BuildGrid lays out a month starting on Sunday: FirstWeekday empty cells
// followed by days 1..N. The final week is not padded.
func BuildGrid(ym YearMonth) []Cell {
	lead := int(FirstWeekday(ym.Year, ym.Month))
	days := ym.Days()
	cells := make([]Cell, lead+days)
	for day := 1; day <= days; day++ {
		cells[lead+day-1] = Cell{Day: day}
	}
	return cells
}

// Rows splits a grid into weeks of seven cells; the last week may be short.
func Rows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

// IsSelected reports whether day in ym is the selected date.
func IsSelected(ym YearMonth, day int, selected *Date) bool {
	if selected == nil {
		return false
	}
	return selected.Year == ym.Year && selected.Month == ym.Month && selected.Day == day
}
