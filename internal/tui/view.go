package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/components"
)

// View renders the input field and, while open, the month grid with its
// quick actions.
func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	theme := components.GetTheme()
	s := m.session()
	snap := s.Snapshot()

	text := m.input.Value()
	_, parses := calendar.ParseInputLocale(text, s.Locale())
	field := components.NewInputField("", m.input.View()).
		WithFocus(m.focus == FocusInput).
		WithInvalid(text != "" && !parses).
		WithWidth(components.GridWidth - 2)

	sections := []string{field.ViewWithTheme(theme)}
	if snap.Open {
		grid := components.NewMonthGrid(snap)
		if m.focus == FocusGrid {
			grid = grid.WithCursor(m.cursor)
		}
		clearButton := components.NewButton(snap.ClearLabel, components.ButtonOptions{Variant: components.ButtonVariantDanger, Key: "x"})
		if snap.Value == "" && snap.Input == "" {
			clearButton = clearButton.WithVariant(components.ButtonVariantMuted).WithDisabled(true)
		}
		actions := components.NewButtonGroup(
			components.NewButton(snap.TodayLabel, components.ButtonOptions{Variant: components.ButtonVariantAccent, Key: "t"}),
			clearButton,
		)
		sections = append(sections, grid.ViewWithTheme(theme), actions.ViewWithTheme(theme))
	}
	sections = append(sections, theme.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
