package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings. It doubles as the help footer's key map.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	SelectNone  key.Binding
	Invert      key.Binding
	Filter      key.Binding
	Popup       key.Binding
	Confirm     key.Binding
	Help        key.Binding
	ViewChecked key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		SelectNone:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
		Invert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Popup:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "open/close")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		ViewChecked: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view selection")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "cancel")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Filter, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Toggle, k.SelectAll, k.SelectNone, k.Invert},
		{k.Filter, k.Popup, k.ViewChecked},
		{k.Confirm, k.Help, k.Quit},
	}
}
