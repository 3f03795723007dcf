package router

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard contract of the engine.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding

	// Paging
	PageUp   key.Binding
	PageDown key.Binding

	// Range extension
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding

	// Selection
	Toggle    key.Binding
	SelectAll key.Binding
	Clear     key.Binding

	// Removal
	Remove key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First item"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last item"),
		),

		// Paging
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),

		// Range extension
		ExtendUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "Extend selection up"),
		),
		ExtendDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "Extend selection down"),
		),
		ExtendLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "Extend selection left"),
		),
		ExtendRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "Extend selection right"),
		),

		// Selection
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle selection"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "Select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear selection"),
		),

		// Removal
		Remove: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "Remove selected"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Remove}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.First, k.Last, k.PageUp, k.PageDown},
		{k.ExtendUp, k.ExtendDown, k.ExtendLeft, k.ExtendRight},
		{k.Toggle, k.SelectAll, k.Clear, k.Remove},
	}
}
