package tui

import tea "github.com/charmbracelet/bubbletea"

func Run(opt Options) error {
	p := tea.NewProgram(NewModel(opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
