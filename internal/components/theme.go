package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic colour set with base, on-base and muted tones.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by the picker.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
)

// CellStyles holds the styles for each state a day cell can be in.
type CellStyles struct {
	Day      lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Cursor   lipgloss.Style
}

// InputStyles describes default/focus styles for the text input frame.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// Theme is the complete styling for a picker.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Title    lipgloss.Style
	Nav      lipgloss.Style
	NavMuted lipgloss.Style
	Weekday  lipgloss.Style
	Cells    CellStyles
	Input    InputStyles
	Help     lipgloss.Style
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// DefaultTheme returns the default light-on-dark adaptive theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Accent: ColourSet{
			Base:   ac("#eab308", "#facc15"),
			OnBase: ac("#422006", "#422006"),
			Muted:  ac("#ca8a04", "#a16207"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#cbd5e1", "#475569"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
	}
	return buildTheme(palette)
}

// DarkTheme returns a variant with a dark surface in both terminal modes.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	return buildTheme(theme.Palette)
}

func buildTheme(p Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
	day := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return Theme{
		Palette:  p,
		Borders:  borders,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
		Nav:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
		NavMuted: lipgloss.NewStyle().Faint(true).Foreground(p.Neutral.Muted),
		Weekday:  lipgloss.NewStyle().Foreground(p.Neutral.Base),
		Cells: CellStyles{
			Day:      day,
			Today:    day.Bold(true).Foreground(p.Accent.Base),
			Selected: lipgloss.NewStyle().Bold(true).Background(p.Primary.Base).Foreground(p.Primary.OnBase),
			Disabled: lipgloss.NewStyle().Faint(true).Foreground(p.Neutral.Muted),
			Cursor:   lipgloss.NewStyle().Reverse(true),
		},
		Input: InputStyles{
			Default: lipgloss.NewStyle().Border(borders.Rounded).BorderForeground(p.Neutral.Base).Padding(0, 1),
			Focus:   lipgloss.NewStyle().Border(borders.Thick).BorderForeground(p.Primary.Base).Padding(0, 1),
			Invalid: lipgloss.NewStyle().Border(borders.Thick).BorderForeground(p.Danger.Base).Padding(0, 1),
		},
		Help: lipgloss.NewStyle().Faint(true),
	}
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// StyleFunc applies theme data to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Style applies modifiers in order using theme.
func Style(base lipgloss.Style, theme Theme, appliers ...StyleFunc) lipgloss.Style {
	for _, apply := range appliers {
		base = apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme, coloured with slot.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		var b lipgloss.Border
		switch variant {
		case BorderVariantThick:
			b = theme.Borders.Thick
		case BorderVariantRounded:
			b = theme.Borders.Rounded
		default:
			b = theme.Borders.Normal
		}
		return base.Border(b).BorderForeground(slot(theme.Palette).Base)
	}
}

// PaddingX applies horizontal padding.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}
