package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, y int, m time.Month, d int) Date {
	t.Helper()
	date, ok := NewDate(y, m, d)
	require.True(t, ok, "invalid test date %04d-%02d-%02d", y, m, d)
	return date
}

func TestDaysInMonthFebruaryFollowsGregorianRule(t *testing.T) {
	t.Parallel()

	for year := 1600; year <= 2400; year++ {
		leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		want := 28
		if leap {
			want = 29
		}
		require.Equal(t, want, DaysInMonth(year, time.February), "year %d", year)
		require.Equal(t, leap, IsLeap(year), "year %d", year)
	}
}

func TestDaysInMonthFixedLengths(t *testing.T) {
	t.Parallel()

	cases := map[time.Month]int{
		time.January: 31, time.March: 31, time.April: 30, time.May: 31, time.June: 30,
		time.July: 31, time.August: 31, time.September: 30, time.October: 31,
		time.November: 30, time.December: 31,
	}
	for month, want := range cases {
		assert.Equal(t, want, DaysInMonth(2023, month), month.String())
	}
	assert.Zero(t, DaysInMonth(2023, 0))
	assert.Zero(t, DaysInMonth(2023, 13))
}

func TestFirstWeekday(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Thursday, FirstWeekday(2024, time.August))
	assert.Equal(t, time.Sunday, FirstWeekday(2023, time.October))
	assert.Equal(t, time.Saturday, FirstWeekday(2000, time.January))
}

func TestBuildGridLayout(t *testing.T) {
	t.Parallel()

	for year := 1999; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			ym := YearMonth{Year: year, Month: month}
			lead := int(FirstWeekday(year, month))
			days := DaysInMonth(year, month)

			grid := BuildGrid(ym)
			require.Len(t, grid, lead+days)
			for i := 0; i < lead; i++ {
				require.True(t, grid[i].Empty())
			}
			for day := 1; day <= days; day++ {
				require.Equal(t, day, grid[lead+day-1].Day)
			}
		}
	}
}

func TestRowsSplitsWeeks(t *testing.T) {
	t.Parallel()

	// August 2024 starts on Thursday: 4 padding cells + 31 days = 35 cells.
	rows := Rows(BuildGrid(YearMonth{Year: 2024, Month: time.August}))
	require.Len(t, rows, 5)
	for _, row := range rows {
		require.Len(t, row, 7)
	}
	assert.True(t, rows[0][3].Empty())
	assert.Equal(t, 1, rows[0][4].Day)
	assert.Equal(t, 31, rows[4][6].Day)

	// September 2024 starts on Sunday: 30 cells, last week has two days.
	rows = Rows(BuildGrid(YearMonth{Year: 2024, Month: time.September}))
	require.Len(t, rows, 5)
	assert.Len(t, rows[4], 2)
	assert.Empty(t, Rows(nil))
}

func TestNavigateRollsOverYears(t *testing.T) {
	t.Parallel()

	dec := YearMonth{Year: 2024, Month: time.December}
	assert.Equal(t, YearMonth{Year: 2025, Month: time.January}, Navigate(dec, 1))
	assert.Equal(t, YearMonth{Year: 2024, Month: time.November}, Navigate(dec, -1))

	jan := YearMonth{Year: 2024, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2023, Month: time.December}, jan.Add(-1))
	assert.Equal(t, YearMonth{Year: 2022, Month: time.December}, jan.Add(-13))
	assert.Equal(t, YearMonth{Year: 2026, Month: time.March}, jan.Add(26))
	assert.Equal(t, jan, jan.Add(0))
}

func TestNavigateRoundTrips(t *testing.T) {
	t.Parallel()

	start := YearMonth{Year: 2024, Month: time.June}
	for n := -400; n <= 400; n++ {
		require.Equal(t, start, Navigate(Navigate(start, n), -n), "delta %d", n)
	}
}

func TestMonthsUntil(t *testing.T) {
	t.Parallel()

	start := YearMonth{Year: 2024, Month: time.June}
	for n := -30; n <= 30; n++ {
		require.Equal(t, n, start.MonthsUntil(start.Add(n)), "delta %d", n)
	}
}

func TestParseYearMonth(t *testing.T) {
	t.Parallel()

	ym, ok := ParseYearMonth("2024-02")
	require.True(t, ok)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, ym)
	assert.Equal(t, "2024-02", ym.String())

	for _, in := range []string{"2024-13", "2024-00", "0000-01", "2024-2", "2024-02-01", ""} {
		_, ok := ParseYearMonth(in)
		assert.False(t, ok, in)
	}
}

func TestSelectDayDoesNotCheckBounds(t *testing.T) {
	t.Parallel()

	ym := YearMonth{Year: 2024, Month: time.February}
	d, ok := SelectDay(ym, 29)
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", d.String())

	_, ok = SelectDay(ym, 30)
	assert.False(t, ok)
	_, ok = SelectDay(ym, 0)
	assert.False(t, ok)

	b, err := ParseBounds("2025-01-01", "")
	require.NoError(t, err)
	d, ok = SelectDay(ym, 1)
	require.True(t, ok, "selecting outside bounds still builds the date")
	assert.False(t, b.Selectable(d))
}

func TestIsSelected(t *testing.T) {
	t.Parallel()

	ym := YearMonth{Year: 2024, Month: time.August}
	sel := mustDate(t, 2024, time.August, 15)
	assert.True(t, IsSelected(ym, 15, &sel))
	assert.False(t, IsSelected(ym, 14, &sel))
	assert.False(t, IsSelected(YearMonth{Year: 2023, Month: time.August}, 15, &sel))
	assert.False(t, IsSelected(ym, 15, nil))
}

func TestIsTodayUsesInjectedClock(t *testing.T) {
	t.Parallel()

	clock := FixedClock(time.Date(2024, time.August, 15, 23, 59, 0, 0, time.UTC))
	ym := YearMonth{Year: 2024, Month: time.August}
	assert.True(t, IsToday(ym, 15, clock))
	assert.False(t, IsToday(ym, 16, clock))
	assert.Equal(t, "2024-08-15", Today(clock).String())

	// The clock's location decides the calendar date.
	tokyo := time.FixedZone("JST", 9*3600)
	clock = FixedClock(time.Date(2024, time.August, 15, 23, 0, 0, 0, time.UTC).In(tokyo))
	assert.True(t, IsToday(ym, 16, clock))
}

func TestNewDateRejectsInvalidTriples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2023, time.February, 29},
		{2024, time.April, 31},
		{2024, 0, 1},
		{2024, 13, 1},
		{0, time.January, 1},
		{10000, time.January, 1},
		{2024, time.January, 0},
	}
	for _, tc := range cases {
		_, ok := NewDate(tc.year, tc.month, tc.day)
		assert.False(t, ok, "%d-%d-%d", tc.year, tc.month, tc.day)
	}
}

func TestDateCompareMatchesISOStringOrder(t *testing.T) {
	t.Parallel()

	dates := []Date{
		mustDate(t, 999, time.December, 31),
		mustDate(t, 2023, time.December, 31),
		mustDate(t, 2024, time.January, 1),
		mustDate(t, 2024, time.January, 10),
		mustDate(t, 2024, time.February, 9),
		mustDate(t, 2024, time.October, 1),
	}
	for _, a := range dates {
		for _, b := range dates {
			want := 0
			switch {
			case a.String() < b.String():
				want = -1
			case a.String() > b.String():
				want = 1
			}
			require.Equal(t, want, a.Compare(b), "%s vs %s", a, b)
		}
	}
}

func TestParseISOIsStrict(t *testing.T) {
	t.Parallel()

	d, ok := ParseISO("2024-08-15")
	require.True(t, ok)
	assert.Equal(t, mustDate(t, 2024, time.August, 15), d)
	assert.Equal(t, YearMonth{Year: 2024, Month: time.August}, d.YearMonth())
	assert.Equal(t, time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC), d.Time(nil))

	for _, s := range []string{"", "2024-8-15", "2024-08", "2024-02-30", "15/08/2024", " 2024-08-15"} {
		_, ok := ParseISO(s)
		assert.False(t, ok, s)
	}
}
