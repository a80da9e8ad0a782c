package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the editing session.
type KeyMap struct {
	// Form navigation
	NextField key.Binding
	PrevField key.Binding

	// Time adjustment on a focused time field
	TimeUp   key.Binding
	TimeDown key.Binding

	// Date navigation
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding

	// Actions
	Save          key.Binding
	Delete        key.Binding
	FocusOverview key.Binding
	Cancel        key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		TimeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "time +step"),
		),
		TimeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "time -step"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "today"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete entry"),
		),
		FocusOverview: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "focus overview"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit / dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Save, k.Delete, k.FocusOverview,
		k.PrevDay, k.NextDay, k.Today, k.Cancel,
	}
}

// FullHelp returns all keybindings grouped by category.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.TimeUp, k.TimeDown},
		{k.PrevDay, k.NextDay, k.Today},
		{k.Save, k.Delete, k.FocusOverview, k.Cancel, k.Quit},
	}
}
