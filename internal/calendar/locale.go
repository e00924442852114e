package calendar

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// Locale is a supported locale family. Only the values declared here are
// valid; tags are mapped through ParseLocale so an unsupported language is
// reported instead of quietly rendered in English.
type Locale int

const (
	English Locale = iota
	Spanish
)

// FieldOrder is the order of the numeric date fields for a locale.
type FieldOrder int

const (
	MonthDayYear FieldOrder = iota
	DayMonthYear
)

type localeTable struct {
	base           language.Base
	order          FieldOrder
	months         [12]string
	shortMonths    [12]string
	weekdays       [7]string
	weekdayHeaders [7]string
	todayLabel     string
	clearLabel     string
	// aliases are extra spellings accepted when parsing month names.
	aliases map[string]time.Month
}

var localeTables = [...]localeTable{
	English: {
		base:  language.MustParseBase("en"),
		order: MonthDayYear,
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		weekdays: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		weekdayHeaders: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		todayLabel:     "Today",
		clearLabel:     "Clear",
		aliases:        map[string]time.Month{"sept": time.September},
	},
	Spanish: {
		base:  language.MustParseBase("es"),
		order: DayMonthYear,
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		shortMonths: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		weekdays: [7]string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		weekdayHeaders: [7]string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sá"},
		todayLabel:     "Hoy",
		clearLabel:     "Borrar",
		aliases:        map[string]time.Month{"sept": time.September, "setiembre": time.September},
	},
}

// Locales lists every supported locale family.
func Locales() []Locale {
	return []Locale{English, Spanish}
}

// ParseLocale maps a BCP 47 tag ("en", "en-US", "es-419") to a locale family
// by its language subtag. POSIX style underscores ("es_MX") are accepted.
// Malformed tags and tags whose language is only inferred ("und") are
// rejected.
func ParseLocale(tag string) (Locale, error) {
	parsed, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return English, &apperrors.ValidationError{Field: "locale", Value: tag, Message: "is not a well-formed language tag", Err: err}
	}
	base, confidence := parsed.Base()
	if confidence == language.Exact {
		for _, l := range Locales() {
			if localeTables[l].base == base {
				return l, nil
			}
		}
	}
	return English, apperrors.NewValueError("locale", tag, "unsupported locale")
}

// Valid reports whether l is one of the declared locale families.
func (l Locale) Valid() bool {
	return l >= English && int(l) < len(localeTables)
}

// table panics for values outside the declared families. Exported functions
// taking a Locale document that they require l.Valid().
func (l Locale) table() *localeTable {
	if !l.Valid() {
		panic(fmt.Sprintf("calendar: unsupported locale %d", int(l)))
	}
	return &localeTables[l]
}

// String returns the primary language subtag.
func (l Locale) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Locale(%d)", int(l))
	}
	return l.table().base.String()
}

// Order returns the numeric field order used by Format.
func (l Locale) Order() FieldOrder { return l.table().order }

// MonthName returns the full name of m.
func (l Locale) MonthName(m time.Month) string { return l.table().months[m-time.January] }

// ShortMonthName returns the abbreviated name of m.
func (l Locale) ShortMonthName(m time.Month) string {
	return l.table().shortMonths[m-time.January]
}

// WeekdayName returns the full name of wd.
func (l Locale) WeekdayName(wd time.Weekday) string { return l.table().weekdays[wd] }

// WeekdayHeaders returns the two-letter column headers, Sunday first.
func (l Locale) WeekdayHeaders() []string {
	headers := l.table().weekdayHeaders
	return headers[:]
}

// Placeholder is the input hint matching Format's field order.
func (l Locale) Placeholder() string {
	if l.Order() == DayMonthYear {
		return "DD/MM/YYYY"
	}
	return "MM/DD/YYYY"
}

// TodayLabel is the caption of the "today" quick action.
func (l Locale) TodayLabel() string { return l.table().todayLabel }

// ClearLabel is the caption of the "clear" quick action.
func (l Locale) ClearLabel() string { return l.table().clearLabel }

// lookupMonth resolves a full, abbreviated or alias month name, ignoring case
// and a trailing period.
func (l Locale) lookupMonth(name string) (time.Month, bool) {
	name = strings.TrimSuffix(strings.ToLower(name), ".")
	t := l.table()
	for i := range t.months {
		if name == strings.ToLower(t.months[i]) || name == strings.ToLower(t.shortMonths[i]) {
			return time.January + time.Month(i), true
		}
	}
	m, ok := t.aliases[name]
	return m, ok
}
