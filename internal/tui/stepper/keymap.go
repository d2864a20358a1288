package stepper

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the stepping-mode key bindings.
type KeyMap struct {
	Step    key.Binding
	Verbose key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default stepping-mode bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Step: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("any key", "step"),
		),
		Verbose: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Verbose, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
