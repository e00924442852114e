package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the picker responds to.
type keyMap struct {
	SwitchFocus key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	Nearest     key.Binding
	Select      key.Binding
	Today       key.Binding
	Clear       key.Binding
	Close       key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth:   key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("[", "prev month")),
		NextMonth:   key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("]", "next month")),
		Nearest:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "nearest selectable month")),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Cancel:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Select, k.PrevMonth, k.NextMonth, k.Today, k.Clear, k.Close}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Nearest, k.Select},
		{k.Today, k.Clear, k.SwitchFocus, k.Close, k.Cancel},
	}
}
