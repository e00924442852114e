package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

func snapshot(t *testing.T, opts picker.Options) picker.View {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = calendar.FixedClock(time.Date(2024, time.August, 20, 12, 0, 0, 0, time.UTC))
	}
	s, err := picker.New(opts)
	require.NoError(t, err)
	return s.Snapshot()
}

func plainLines(s string) []string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#3b82f6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.True(t, theme.Title.GetBold(), "title should be bold")
	assert.True(t, theme.Cells.Disabled.GetFaint(), "disabled days should be faint")
	assert.True(t, theme.Cells.Cursor.GetReverse(), "cursor should be reversed")
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
	assert.NotEqual(t, light.Cells.Day.GetForeground(), dark.Cells.Day.GetForeground())
}

func TestSetGetTheme(t *testing.T) {
	original := GetTheme()
	defer SetTheme(original)

	custom := DefaultTheme()
	custom.Palette.Primary.Base = lipgloss.AdaptiveColor{Light: "#0000ff", Dark: "#1e3a8a"}
	SetTheme(custom)

	assert.Equal(t, "#0000ff", GetTheme().Palette.Primary.Base.Light)
}

func TestStyleAppliers(t *testing.T) {
	theme := DefaultTheme()
	style := Style(lipgloss.NewStyle(), theme,
		Background(PalettePrimary),
		Border(BorderVariantRounded, PaletteAccent),
		PaddingX(2),
	)

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Primary.OnBase, style.GetForeground())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
}

func TestDayCellMarkers(t *testing.T) {
	theme := DefaultTheme()
	day := func(cv picker.CellView, cursor bool) string {
		return ansi.Strip(NewDayCell(cv).WithCursor(cursor).ViewWithTheme(theme))
	}

	assert.Equal(t, "    ", day(picker.CellView{}, false))
	assert.Equal(t, "  5 ", day(picker.CellView{Cell: calendar.Cell{Day: 5}, Selectable: true}, false))
	assert.Equal(t, "[15]", day(picker.CellView{Cell: calendar.Cell{Day: 15}, Selectable: true, Selected: true}, false))
	assert.Equal(t, " 20*", day(picker.CellView{Cell: calendar.Cell{Day: 20}, Selectable: true, Today: true}, false))
	assert.Equal(t, ">15<", day(picker.CellView{Cell: calendar.Cell{Day: 15}, Selectable: true, Selected: true}, true))
}

func TestMonthGridLayout(t *testing.T) {
	view := snapshot(t, picker.Options{Value: "2024-08-15", Min: "2024-08-03"})
	lines := plainLines(NewMonthGrid(view).WithCursor(9).ViewWithTheme(DefaultTheme()))

	require.Len(t, lines, 2+5)
	assert.True(t, strings.HasPrefix(lines[0], "<"))
	assert.True(t, strings.HasSuffix(lines[0], ">"))
	assert.Contains(t, lines[0], "August 2024")
	assert.Equal(t, " Su  Mo  Tu  We  Th  Fr  Sa", lines[1])
	assert.Equal(t, "                  1   2   3", lines[2])
	assert.Equal(t, "  4   5   6   7   8 > 9< 10", lines[3])
	assert.Equal(t, " 11  12  13  14 [15] 16  17", lines[4])
	assert.Equal(t, " 18  19  20* 21  22  23  24", lines[5])
	assert.Equal(t, " 25  26  27  28  29  30  31", lines[6])
}

func TestMonthGridSpanish(t *testing.T) {
	view := snapshot(t, picker.Options{Value: "2024-09-01", Locale: calendar.Spanish})
	lines := plainLines(NewMonthGrid(view).ViewWithTheme(DefaultTheme()))

	assert.Contains(t, lines[0], "septiembre de 2024")
	assert.Equal(t, " Do  Lu  Ma  Mi  Ju  Vi  Sá", lines[1])
	assert.Equal(t, "[ 1]  2   3   4   5   6   7", lines[2])
	assert.Equal(t, " 29  30", lines[len(lines)-1])
}

func TestButtonStates(t *testing.T) {
	theme := DefaultTheme()
	button := NewButton("Today", ButtonOptions{Key: "t"})
	assert.Equal(t, "Today (t)", button.Label())

	normal := button.ViewWithTheme(theme)
	assert.Contains(t, ansi.Strip(normal), "Today (t)")

	disabled := button.WithDisabled(true).ViewWithTheme(theme)
	assert.NotEqual(t, normal, disabled, "disabled state should render differently")

	focused := button.WithDisabled(false).WithFocus(true).ViewWithTheme(theme)
	assert.NotEqual(t, normal, focused, "focused state should render differently")
}

func TestButtonVariantColours(t *testing.T) {
	theme := DefaultTheme()
	foreground := func(b *Button) lipgloss.TerminalColor {
		return b.buildStyle(theme).GetForeground()
	}

	assert.Equal(t, theme.Palette.Primary.Base, foreground(NewButton("Today", ButtonOptions{})))
	assert.Equal(t, theme.Palette.Accent.Base, foreground(NewButton("Today", ButtonOptions{Variant: ButtonVariantAccent})))
	assert.Equal(t, theme.Palette.Danger.Base, foreground(NewButton("Clear", ButtonOptions{Variant: ButtonVariantDanger})))

	muted := NewButton("Clear", ButtonOptions{Variant: ButtonVariantDanger}).WithVariant(ButtonVariantMuted).WithDisabled(true)
	assert.Equal(t, theme.Palette.Neutral.Base, foreground(muted))
	assert.True(t, muted.buildStyle(theme).GetFaint())
}

func TestButtonGroup(t *testing.T) {
	assert.Equal(t, "", NewButtonGroup().View())

	group := NewButtonGroup(
		NewButton("Today", ButtonOptions{}),
		NewButton("Clear", ButtonOptions{Variant: ButtonVariantDanger}),
	).WithSpacing(2)
	out := plainLines(group.ViewWithTheme(DefaultTheme()))
	require.Len(t, out, 3)
	assert.Contains(t, out[1], "Today")
	assert.Contains(t, out[1], "Clear")
}

func TestInputField(t *testing.T) {
	theme := DefaultTheme()
	field := NewInputField("Date", "08/15/2024")

	plain := plainLines(field.ViewWithTheme(theme))
	require.Len(t, plain, 4)
	assert.Equal(t, "Date", plain[0])
	assert.Contains(t, plain[2], "08/15/2024")

	normal := field.ViewWithTheme(theme)
	focused := field.WithFocus(true).ViewWithTheme(theme)
	assert.NotEqual(t, ansi.Strip(normal), ansi.Strip(focused), "focus switches to a thick border")
	assert.Equal(t, theme.Palette.Danger.Base, theme.Input.Invalid.GetBorderTopForeground())
}

func TestInputFieldWidthMatchesGrid(t *testing.T) {
	theme := DefaultTheme()

	narrow := plainLines(NewInputField("", "08/15/2024").ViewWithTheme(theme))
	assert.Equal(t, GridWidth-2, lipgloss.Width(narrow[0]))

	wide := plainLines(NewInputField("", "08/15/2024").WithWidth(GridWidth - 2).ViewWithTheme(theme))
	require.Len(t, wide, 3)
	assert.Equal(t, GridWidth, lipgloss.Width(wide[0]))
	assert.Contains(t, wide[1], "08/15/2024")
}
