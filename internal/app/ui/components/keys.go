package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the console host. Pane actions stand in for the panel's context menu.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	PageUp          key.Binding
	PageDown        key.Binding
	Top             key.Binding
	Bottom          key.Binding
	NextPane        key.Binding
	PrevPane        key.Binding
	NewPane         key.Binding
	ClosePane       key.Binding
	Timestamps      key.Binding
	EdgeStyle       key.Binding
	TrailingNewline key.Binding
	Copy            key.Binding
	Clear           key.Binding
	Help            key.Binding
	Quit            key.Binding
	ForceQuit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		NewPane: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new pane"),
		),
		ClosePane: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close pane"),
		),
		Timestamps: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timestamps"),
		),
		EdgeStyle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edge style"),
		),
		TrailingNewline: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide trailing newline"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Timestamps, k.EdgeStyle, k.Copy, k.Clear, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextPane, k.PrevPane, k.NewPane, k.ClosePane},
		{k.Timestamps, k.EdgeStyle, k.TrailingNewline},
		{k.Copy, k.Clear, k.Help, k.Quit},
	}
}
