package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	settingsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle     = lipgloss.NewStyle().MarginTop(1)
)
