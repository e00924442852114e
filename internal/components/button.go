package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour scheme of a quick-action button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	// ButtonVariantAccent shares the colour of today's cell.
	ButtonVariantAccent
	ButtonVariantMuted
	ButtonVariantDanger
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
	// Key is the shortcut shown next to the label, e.g. "t".
	Key string
}

// Button is a visual quick action such as "Today" or "Clear".
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// Label returns the caption including the shortcut hint.
func (b *Button) Label() string {
	if b.options.Key == "" {
		return b.label
	}
	return b.label + " (" + b.options.Key + ")"
}

// View renders the button with the global theme.
func (b *Button) View() string {
	return b.ViewWithTheme(GetTheme())
}

// ViewWithTheme renders the button with theme.
func (b *Button) ViewWithTheme(theme Theme) string {
	return b.buildStyle(theme).Render(b.Label())
}

func (b *Button) buildStyle(theme Theme) lipgloss.Style {
	slot := PalettePrimary
	switch b.options.Variant {
	case ButtonVariantAccent:
		slot = PaletteAccent
	case ButtonVariantMuted:
		slot = PaletteNeutral
	case ButtonVariantDanger:
		slot = PaletteDanger
	}

	style := Style(lipgloss.NewStyle(), theme, PaddingX(1))
	switch {
	case b.options.Disabled:
		style = Style(style, theme, Border(BorderVariantNormal, slot), Foreground(slot)).Faint(true)
	case b.options.Focus:
		style = Style(style, theme, Border(BorderVariantThick, slot), Background(slot)).Bold(true)
	default:
		style = Style(style, theme, Border(BorderVariantRounded, slot), Foreground(slot))
	}
	return style
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: 1}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	return bg.ViewWithTheme(GetTheme())
}

// ViewWithTheme renders the group with theme.
func (bg *ButtonGroup) ViewWithTheme(theme Theme) string {
	if len(bg.buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, 2*len(bg.buttons)-1)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.ViewWithTheme(theme))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
