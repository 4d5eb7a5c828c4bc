package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Success renders a positive value.
func Success(s string) string { return successStyle.Render(s) }

// Failure renders a negative value.
func Failure(s string) string { return errorStyle.Render(s) }

// Warning renders a degraded or cautionary value.
func Warning(s string) string { return warningStyle.Render(s) }

// Muted renders secondary detail.
func Muted(s string) string { return mutedStyle.Render(s) }

// Table renders headers and rows with the shared border and header styles.
func Table(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
