package picker

import "github.com/alexisbeaulieu97/datepick/internal/calendar"

// CellView is one grid cell with the flags a renderer needs.
type CellView struct {
	calendar.Cell
	Selectable bool
	Today      bool
	Selected   bool
}

// View is a read-only snapshot of everything needed to draw the picker.
type View struct {
	Title    string
	Weekdays []string
	Cells    []CellView
	Month    calendar.YearMonth
	Input    string
	Value    string
	Open     bool
	// CanPrev and CanNext report whether the neighbouring months contain a
	// selectable day.
	CanPrev bool
	CanNext bool
	// TodayLabel and ClearLabel caption the quick actions.
	TodayLabel string
	ClearLabel string
}

// Rows groups the cells into weeks.
func (v View) Rows() [][]CellView {
	rows := make([][]CellView, 0, (len(v.Cells)+6)/7)
	for start := 0; start < len(v.Cells); start += 7 {
		rows = append(rows, v.Cells[start:min(start+7, len(v.Cells))])
	}
	return rows
}

// Snapshot derives the render data for the current state.
func (s *Session) Snapshot() View {
	grid := calendar.BuildGrid(s.month)
	cells := make([]CellView, len(grid))
	for i, c := range grid {
		cv := CellView{Cell: c}
		if !c.Empty() {
			cv.Selectable = calendar.IsSelectable(s.month, c.Day, s.bounds)
			cv.Today = calendar.IsToday(s.month, c.Day, s.clock)
			cv.Selected = calendar.IsSelected(s.month, c.Day, s.value)
		}
		cells[i] = cv
	}

	return View{
		Title:      calendar.MonthTitle(s.month, s.locale),
		Weekdays:   s.locale.WeekdayHeaders(),
		Cells:      cells,
		Month:      s.month,
		Input:      s.buffer,
		Value:      s.Value(),
		Open:       s.open,
		CanPrev:    calendar.HasSelectable(s.month.Add(-1), s.bounds),
		CanNext:    calendar.HasSelectable(s.month.Add(1), s.bounds),
		TodayLabel: s.locale.TodayLabel(),
		ClearLabel: s.locale.ClearLabel(),
	}
}
