// Package tui implements the Bubble Tea front end of the movie browser.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("245")
	colorBorder  = lipgloss.Color("240")
	colorError   = lipgloss.Color("203")
)

var (
	inputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)

	normalStyle         = lipgloss.NewStyle()
	selectedStyle       = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	selectedBorderStyle = lipgloss.NewStyle().Foreground(colorPrimary)

	titleStyle       = lipgloss.NewStyle().Bold(true)
	yearStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle       = lipgloss.NewStyle().Foreground(colorError)
	helpStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
