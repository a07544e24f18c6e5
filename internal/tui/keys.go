package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start    key.Binding
	Complete key.Binding
	Fail     key.Binding
	Continue key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "n"),
			key.WithHelp("s", "start challenge"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "completed"),
		),
		Fail: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f", "failed"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "close level up"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Complete, k.Fail, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Complete, k.Fail},
		{k.Continue, k.Help, k.Quit},
	}
}
