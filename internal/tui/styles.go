package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
	Modal   lipgloss.Style
	Help    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5965E0")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5965E0")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CD62B")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E83F5B")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#DCDDE0")).
			Padding(1, 2),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#5965E0")).
			Align(lipgloss.Center).
			Padding(1, 2),
		Help: lipgloss.NewStyle().MarginTop(1),
	}
}
