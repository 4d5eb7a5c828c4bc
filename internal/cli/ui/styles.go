// Package ui provides the styled terminal output shared by the CLI commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Terminal-green palette, matching the Unraid webGUI accent.
var (
	colorPrimary = lipgloss.Color("#00cc6a")
	colorText    = lipgloss.Color("#d8dee9")
	colorMuted   = lipgloss.Color("#6c7a89")
	colorError   = lipgloss.Color("#e06c75")
	colorWarning = lipgloss.Color("#e5c07b")
	colorBorder  = lipgloss.Color("#3b4252")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(colorBorder)
)
