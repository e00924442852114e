package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format renders d numerically in the locale's field order: 08/15/2024 for
// English, 15/08/2024 for Spanish. loc must be Valid.
func Format(d Date, loc Locale) string {
	if loc.Order() == DayMonthYear {
		return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
	}
	return fmt.Sprintf("%02d/%02d/%04d", int(d.Month), d.Day, d.Year)
}

// FormatLong renders d with the month spelled out: "August 15, 2024" or
// "15 de agosto de 2024". loc must be Valid.
func FormatLong(d Date, loc Locale) string {
	name := loc.MonthName(d.Month)
	if loc == Spanish {
		return fmt.Sprintf("%d de %s de %04d", d.Day, name, d.Year)
	}
	return fmt.Sprintf("%s %d, %04d", name, d.Day, d.Year)
}

// MonthTitle renders the heading of a month page: "August 2024" or
// "agosto de 2024". loc must be Valid.
func MonthTitle(ym YearMonth, loc Locale) string {
	name := loc.MonthName(ym.Month)
	if loc == Spanish {
		return fmt.Sprintf("%s de %04d", name, ym.Year)
	}
	return fmt.Sprintf("%s %04d", name, ym.Year)
}

var (
	looseISOPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	numericPattern  = regexp.MustCompile(`^(\d{1,2})([/.\-])(\d{1,2})([/.\-])(\d{4})$`)
	dayPattern      = regexp.MustCompile(`^\d{1,2}$`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
)

// ParseInput parses text typed into an English date input. See
// ParseInputLocale.
func ParseInput(text string) (Date, bool) {
	return ParseInputLocale(text, English)
}

// ParseInputLocale parses text typed into a date input for loc. It accepts
// ISO dates (2024-08-15, 2024-8-5), the locale's numeric order with "/", "-"
// or "." separators, and month names in either the long or short form
// ("August 15, 2024", "15 Aug 2024", "15 de agosto de 2024"). Empty, partial
// or calendar-invalid text yields false, as does an invalid loc.
func ParseInputLocale(text string, loc Locale) (Date, bool) {
	s := strings.TrimSpace(text)
	if s == "" || !loc.Valid() {
		return Date{}, false
	}

	if m := looseISOPattern.FindStringSubmatch(s); m != nil {
		return fromParts(m[1], m[2], m[3])
	}

	if m := numericPattern.FindStringSubmatch(s); m != nil {
		if m[2] != m[4] {
			return Date{}, false
		}
		if loc.Order() == DayMonthYear {
			return fromParts(m[5], m[3], m[1])
		}
		return fromParts(m[5], m[1], m[3])
	}

	return parseNamed(s, loc)
}

func parseNamed(s string, loc Locale) (Date, bool) {
	var fields []string
	for _, f := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if loc == Spanish && strings.EqualFold(f, "de") {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) != 3 || !yearPattern.MatchString(fields[2]) {
		return Date{}, false
	}
	year, _ := strconv.Atoi(fields[2])

	var (
		month time.Month
		ok    bool
		day   string
	)
	switch {
	case dayPattern.MatchString(fields[0]):
		day = fields[0]
		month, ok = loc.lookupMonth(fields[1])
	case dayPattern.MatchString(fields[1]):
		day = fields[1]
		month, ok = loc.lookupMonth(fields[0])
	}
	if !ok {
		return Date{}, false
	}
	d, _ := strconv.Atoi(day)
	return NewDate(year, month, d)
}
