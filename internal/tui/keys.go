package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Commit  key.Binding
	Cancel  key.Binding
	Input   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap(commit bool) keyMap {
	km := keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Commit:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move here")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear highlight")),
		Input:   key.NewBinding(key.WithKeys("i", ":"), key.WithHelp("i", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	km.Commit.SetEnabled(commit)
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Commit, k.Input, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Commit, k.Cancel},
		{k.Input, k.Help, k.Quit},
	}
}
