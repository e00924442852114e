package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchFocus):
		return m, m.switchFocus()
	case key.Matches(msg, m.keys.Close):
		if m.session().IsOpen() {
			m.session().Close()
			return m, m.focusInput()
		}
		return m.finish()
	}

	if m.focus == FocusInput {
		return m.handleInputKeys(msg)
	}
	return m.handleGridKeys(msg)
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.finish()
	case tea.KeyDown:
		return m, m.switchFocus()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.session().Type(after)
		m.cursor = m.defaultCursor()
	}
	return m, cmd
}

func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		s.PrevMonth()
		m.clampCursor()
	case key.Matches(msg, m.keys.NextMonth):
		s.NextMonth()
		m.clampCursor()
	case key.Matches(msg, m.keys.Nearest):
		from := s.Month()
		if s.JumpToSelectable() {
			m.cursor = m.edgeSelectable(from.MonthsUntil(s.Month()) > 0)
		}
	case key.Matches(msg, m.keys.Select):
		if !s.SelectDay(m.cursor) {
			return m, nil
		}
		m.syncInput()
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Today):
		s.Today()
		m.syncInput()
		m.cursor = m.defaultCursor()
	case key.Matches(msg, m.keys.Clear):
		s.Clear()
		m.syncInput()
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// finish reverts unparseable text and ends the program with the committed
// value.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.session().Blur()
	m.syncInput()
	m.session().Close()
	m.done = true
	return m, tea.Quit
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == FocusGrid {
		return m.focusInput()
	}
	m.session().Blur()
	m.syncInput()
	m.input.Blur()
	m.session().Open()
	m.focus = FocusGrid
	m.cursor = m.defaultCursor()
	return nil
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = FocusInput
	return m.input.Focus()
}

// moveCursor shifts the highlighted day by delta days, paging the grid when
// the target falls in another month.
func (m *Model) moveCursor(delta int) {
	s := m.session()
	month := s.Month()
	from, ok := calendar.SelectDay(month, m.cursor)
	if !ok {
		m.cursor = 1
		return
	}
	to := calendar.DateOf(from.Time(time.UTC).AddDate(0, 0, delta))
	if to.Year < calendar.MinYear || to.Year > calendar.MaxYear {
		return
	}
	if shift := month.MonthsUntil(to.YearMonth()); shift != 0 {
		s.Navigate(shift)
	}
	m.cursor = to.Day
}

// edgeSelectable returns the first selectable day of the displayed month, or
// the last one when first is false.
func (m Model) edgeSelectable(first bool) int {
	cells := m.session().Snapshot().Cells
	day := 1
	for _, c := range cells {
		if !c.Selectable {
			continue
		}
		day = c.Day
		if first {
			break
		}
	}
	return day
}

func (m *Model) clampCursor() {
	m.cursor = max(1, min(m.cursor, m.session().Month().Days()))
}
