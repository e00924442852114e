package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

const (
	// CellWidth is the rendered width of one day column.
	CellWidth = 4
	// GridWidth is the width of a full week.
	GridWidth = 7 * CellWidth
)

// DayCell renders one grid slot. Markers make the state readable without
// colour: [15] selected, >15< under the cursor, 15* today.
type DayCell struct {
	cell   picker.CellView
	cursor bool
}

// NewDayCell wraps a cell from a picker snapshot.
func NewDayCell(cell picker.CellView) *DayCell {
	return &DayCell{cell: cell}
}

// WithCursor marks the cell as the keyboard cursor position.
func (c *DayCell) WithCursor(cursor bool) *DayCell {
	c.cursor = cursor
	return c
}

// View renders the cell with the global theme.
func (c *DayCell) View() string {
	return c.ViewWithTheme(GetTheme())
}

// ViewWithTheme renders the cell with theme.
func (c *DayCell) ViewWithTheme(theme Theme) string {
	if c.cell.Empty() {
		return strings.Repeat(" ", CellWidth)
	}

	left, right := " ", " "
	switch {
	case c.cursor:
		left, right = ">", "<"
	case c.cell.Selected:
		left, right = "[", "]"
	case c.cell.Today:
		right = "*"
	}

	style := theme.Cells.Day
	switch {
	case !c.cell.Selectable:
		style = theme.Cells.Disabled
	case c.cell.Selected:
		style = theme.Cells.Selected
	case c.cell.Today:
		style = theme.Cells.Today
	}
	if c.cursor {
		style = style.Inherit(theme.Cells.Cursor)
	}
	return style.Render(fmt.Sprintf("%s%2d%s", left, c.cell.Day, right))
}

// MonthGrid renders a month page: navigation header, weekday row and weeks.
type MonthGrid struct {
	view   picker.View
	cursor int
}

// NewMonthGrid creates a grid for a picker snapshot.
func NewMonthGrid(view picker.View) *MonthGrid {
	return &MonthGrid{view: view}
}

// WithCursor places the cursor on day; 0 hides it.
func (g *MonthGrid) WithCursor(day int) *MonthGrid {
	g.cursor = day
	return g
}

// View renders the grid with the global theme.
func (g *MonthGrid) View() string {
	return g.ViewWithTheme(GetTheme())
}

// ViewWithTheme renders the grid with theme.
func (g *MonthGrid) ViewWithTheme(theme Theme) string {
	lines := []string{g.header(theme), g.weekdays(theme)}
	for _, row := range g.view.Rows() {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = NewDayCell(cell).WithCursor(!cell.Empty() && cell.Day == g.cursor).ViewWithTheme(theme)
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (g *MonthGrid) header(theme Theme) string {
	prev, next := theme.NavMuted.Render("<"), theme.NavMuted.Render(">")
	if g.view.CanPrev {
		prev = theme.Nav.Render("<")
	}
	if g.view.CanNext {
		next = theme.Nav.Render(">")
	}
	title := lipgloss.PlaceHorizontal(GridWidth-2, lipgloss.Center, theme.Title.Render(g.view.Title))
	return prev + title + next
}

func (g *MonthGrid) weekdays(theme Theme) string {
	var b strings.Builder
	for _, name := range g.view.Weekdays {
		b.WriteString(fmt.Sprintf(" %-2s ", name))
	}
	return theme.Weekday.Render(b.String())
}
