package components

import (
	"github.com/charmbracelet/lipgloss"
)

// InputField frames already-rendered input text with a label.
type InputField struct {
	label   string
	content string
	focused bool
	invalid bool
	width   int
}

// NewInputField creates a framed field.
func NewInputField(label, content string) *InputField {
	return &InputField{label: label, content: content, width: GridWidth - 4}
}

// WithFocus sets whether the field has keyboard focus.
func (f *InputField) WithFocus(focused bool) *InputField {
	f.focused = focused
	return f
}

// WithInvalid marks the content as not parseable.
func (f *InputField) WithInvalid(invalid bool) *InputField {
	f.invalid = invalid
	return f
}

// WithWidth sets the inner width of the frame.
func (f *InputField) WithWidth(width int) *InputField {
	f.width = width
	return f
}

// View renders the field with the global theme.
func (f *InputField) View() string {
	return f.ViewWithTheme(GetTheme())
}

// ViewWithTheme renders the field with theme.
func (f *InputField) ViewWithTheme(theme Theme) string {
	style := theme.Input.Default
	switch {
	case f.invalid:
		style = theme.Input.Invalid
	case f.focused:
		style = theme.Input.Focus
	}
	box := style.Width(f.width).Render(f.content)
	if f.label == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, theme.Weekday.Render(f.label), box)
}
