package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global wizard keybindings. Step views handle their
// own local keys; everything here is a ctrl or alt chord so text inputs
// keep plain characters.
type keyMap struct {
	NextStep key.Binding
	PrevStep key.Binding
	JumpStep key.Binding
	Generate key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next step"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "previous step"),
		),
		JumpStep: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5"),
			key.WithHelp("alt+1..5", "jump to step"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
