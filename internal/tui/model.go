// Package tui is the interactive terminal front end of the date picker: a
// text field with a month grid overlay, driven by a picker.Session.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// Focus names the element receiving key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusGrid
)

// owner plays the role of the value's owner: it accepts every change the
// session reports and commits it back.
type owner struct {
	session *picker.Session
	changes []picker.Change
	forward func(picker.Change)
}

func (o *owner) accept(c picker.Change) {
	o.changes = append(o.changes, c)
	// Emitted values are always valid ISO dates or "".
	_ = o.session.SetValue(c.Value)
	if o.forward != nil {
		o.forward(c)
	}
}

// Model is the Bubbletea model of a single date input.
type Model struct {
	owner *owner
	input textinput.Model
	help  help.Model
	keys  keyMap

	focus  Focus
	cursor int

	done      bool
	cancelled bool
}

// NewModel builds a picker model. opts.OnChange, when set, is called after
// the model has committed each change.
func NewModel(opts picker.Options) (Model, error) {
	o := &owner{forward: opts.OnChange}
	opts.OnChange = o.accept

	session, err := picker.New(opts)
	if err != nil {
		return Model{}, err
	}
	o.session = session

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = session.Locale().Placeholder()
	ti.CharLimit = 32
	ti.SetValue(session.Input())
	ti.CursorEnd()
	ti.Focus()

	m := Model{
		owner: o,
		input: ti,
		help:  help.New(),
		keys:  defaultKeyMap(),
		focus: FocusInput,
	}
	m.cursor = m.defaultCursor()
	return m, nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the committed ISO date, or "".
func (m Model) Value() string { return m.owner.session.Value() }

// Input returns the text shown in the field.
func (m Model) Input() string { return m.input.Value() }

// Changes returns every change committed so far.
func (m Model) Changes() []picker.Change { return m.owner.changes }

// Focus reports which element has keyboard focus.
func (m Model) Focus() Focus { return m.focus }

// Cursor returns the highlighted day of the displayed month.
func (m Model) Cursor() int { return m.cursor }

// Month returns the displayed month.
func (m Model) Month() calendar.YearMonth { return m.owner.session.Month() }

// IsOpen reports whether the month grid is shown.
func (m Model) IsOpen() bool { return m.owner.session.IsOpen() }

// Done reports whether the user finished with a value.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the user aborted.
func (m Model) Cancelled() bool { return m.cancelled }

func (m Model) session() *picker.Session { return m.owner.session }

// defaultCursor prefers the selected day, then today, then the 1st.
func (m Model) defaultCursor() int {
	snap := m.session().Snapshot()
	today := 0
	for _, c := range snap.Cells {
		if c.Selected {
			return c.Day
		}
		if c.Today {
			today = c.Day
		}
	}
	if today > 0 {
		return today
	}
	return 1
}

// syncInput copies the session's text into the field after the session
// rewrote it.
func (m *Model) syncInput() {
	if m.input.Value() == m.session().Input() {
		return
	}
	m.input.SetValue(m.session().Input())
	m.input.CursorEnd()
}
