// Package picker holds the per-instance state of a date input: the month on
// display, the raw input text, and whether the calendar overlay is open. It
// turns user events into change notifications for the value's owner.
package picker

import (
	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// ChangeSource identifies which interaction produced a Change.
type ChangeSource string

const (
	SourceTyped ChangeSource = "typed"
	SourceDay   ChangeSource = "day"
	SourceToday ChangeSource = "today"
	SourceClear ChangeSource = "clear"
)

// Change carries a new value for the owner. Value is an ISO date, or "" when
// the input was cleared.
type Change struct {
	Value  string
	Source ChangeSource
}

// Options configures a Session.
type Options struct {
	// Value is the initial ISO date; "" means no date.
	Value string
	// Min and Max are optional inclusive ISO bounds.
	Min    string
	Max    string
	Locale calendar.Locale
	// Clock defaults to the system clock.
	Clock calendar.Clock
	// OnChange receives every emitted change. When set, the owner is
	// expected to commit accepted values with SetValue. When nil the
	// session commits its own changes.
	OnChange func(Change)
	Logger   *logger.Logger
}

// Session is the state behind one date input. It is not safe for concurrent
// use; a single UI owns it.
type Session struct {
	locale   calendar.Locale
	bounds   calendar.Bounds
	clock    calendar.Clock
	onChange func(Change)
	log      *logger.Logger

	value  *calendar.Date
	month  calendar.YearMonth
	buffer string
	open   bool
}

// New builds a Session. It fails when a bound or the initial value is not an
// ISO calendar date, or when the locale is unknown.
func New(opts Options) (*Session, error) {
	if !opts.Locale.Valid() {
		return nil, apperrors.NewValueError("locale", opts.Locale.String(), "unsupported locale")
	}
	bounds, err := calendar.ParseBounds(opts.Min, opts.Max)
	if err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = calendar.SystemClock{}
	}

	s := &Session{
		locale:   opts.Locale,
		bounds:   bounds,
		clock:    clock,
		onChange: opts.OnChange,
		log:      opts.Logger.WithFields(map[string]any{"locale": opts.Locale.String()}),
		month:    calendar.Today(clock).YearMonth(),
	}
	if bounds.Inverted() {
		s.log.Warn("min is after max; no date is selectable", "min", opts.Min, "max", opts.Max)
	}
	if err := s.SetValue(opts.Value); err != nil {
		return nil, err
	}
	return s, nil
}

// SetValue applies a value change made by the owner. When iso already
// matches what the input text parses to, the text is left alone so the
// user's own spelling survives the echo; otherwise the text is reformatted
// and the calendar jumps to the new value's month (today's month for "").
func (s *Session) SetValue(iso string) error {
	var next *calendar.Date
	if iso != "" {
		d, ok := calendar.ParseISO(iso)
		if !ok {
			return apperrors.NewValueError("value", iso, "must be an ISO calendar date (YYYY-MM-DD)")
		}
		next = &d
	}
	s.value = next

	if s.bufferMatches(next) {
		return nil
	}
	s.buffer = s.formatValue()
	if next != nil {
		s.month = next.YearMonth()
	} else {
		s.month = calendar.Today(s.clock).YearMonth()
	}
	s.log.Debug("value set", "value", iso, "month", s.month.String())
	return nil
}

func (s *Session) bufferMatches(d *calendar.Date) bool {
	parsed, ok := calendar.ParseInputLocale(s.buffer, s.locale)
	if d == nil {
		return !ok && s.buffer == ""
	}
	return ok && parsed == *d
}

// Type records raw input text. Text that parses is emitted as a change and
// brings its month into view; anything else stays in the buffer unreported.
func (s *Session) Type(text string) {
	s.buffer = text
	d, ok := calendar.ParseInputLocale(text, s.locale)
	if !ok {
		return
	}
	s.month = d.YearMonth()
	s.emit(Change{Value: d.String(), Source: SourceTyped})
}

// Blur handles the input losing focus. Unparseable text is replaced by the
// formatted last value the owner committed.
func (s *Session) Blur() {
	if _, ok := calendar.ParseInputLocale(s.buffer, s.locale); ok {
		return
	}
	reverted := s.formatValue()
	if reverted != s.buffer {
		s.log.Debug("input reverted", "discarded", s.buffer, "restored", reverted)
	}
	s.buffer = reverted
}

// SelectDay picks day from the displayed month. It reports false and does
// nothing when the day does not exist or is outside the bounds.
func (s *Session) SelectDay(day int) bool {
	if !calendar.IsSelectable(s.month, day, s.bounds) {
		return false
	}
	d, _ := calendar.SelectDay(s.month, day)
	s.emit(Change{Value: d.String(), Source: SourceDay})
	s.open = false
	return true
}

// Navigate moves the displayed month by delta without touching the value.
func (s *Session) Navigate(delta int) {
	s.month = s.month.Add(delta)
	s.log.Debug("navigated", "month", s.month.String())
}

// JumpToSelectable shows the nearest month holding a selectable day. It
// reports whether the displayed month changed.
func (s *Session) JumpToSelectable() bool {
	target := s.bounds.Clamp(s.month)
	if target == s.month {
		return false
	}
	s.month = target
	s.log.Debug("jumped into bounds", "month", s.month.String())
	return true
}

// PrevMonth shows the previous month.
func (s *Session) PrevMonth() { s.Navigate(-1) }

// NextMonth shows the next month.
func (s *Session) NextMonth() { s.Navigate(1) }

// Today emits the current date and shows its month.
func (s *Session) Today() {
	today := calendar.Today(s.clock)
	s.month = today.YearMonth()
	s.emit(Change{Value: today.String(), Source: SourceToday})
}

// Clear emits an empty value, empties the input and closes the overlay.
func (s *Session) Clear() {
	s.buffer = ""
	s.open = false
	s.emit(Change{Value: "", Source: SourceClear})
}

// Open shows the calendar overlay.
func (s *Session) Open() { s.open = true }

// Close hides the calendar overlay.
func (s *Session) Close() { s.open = false }

// Toggle flips the overlay.
func (s *Session) Toggle() { s.open = !s.open }

// IsOpen reports whether the overlay is shown.
func (s *Session) IsOpen() bool { return s.open }

// Value returns the committed value as an ISO string, or "".
func (s *Session) Value() string {
	if s.value == nil {
		return ""
	}
	return s.value.String()
}

// Input returns the raw input text.
func (s *Session) Input() string { return s.buffer }

// Month returns the displayed month.
func (s *Session) Month() calendar.YearMonth { return s.month }

// Locale returns the session's locale family.
func (s *Session) Locale() calendar.Locale { return s.locale }

// Bounds returns the parsed selection bounds.
func (s *Session) Bounds() calendar.Bounds { return s.bounds }

func (s *Session) formatValue() string {
	if s.value == nil {
		return ""
	}
	return calendar.Format(*s.value, s.locale)
}

func (s *Session) emit(c Change) {
	s.log.Debug("value changed", "value", c.Value, "source", string(c.Source))
	if s.onChange != nil {
		s.onChange(c)
		return
	}
	// Uncontrolled: commit directly. The buffer is kept as typed.
	if c.Value == "" {
		s.value = nil
		return
	}
	d, _ := calendar.ParseISO(c.Value)
	s.value = &d
	if c.Source != SourceTyped {
		s.buffer = calendar.Format(d, s.locale)
	}
}
