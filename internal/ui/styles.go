// Package ui holds the terminal styles for dotagent output.
// When stdout is not an interactive terminal, every helper degrades to
// plain text so piped and captured output stays clean.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

var (
	Green = lipgloss.Color("#58D68D")
	Gray  = lipgloss.Color("#AAB7B8")
	Amber = lipgloss.Color("#E59866")
	White = lipgloss.Color("#FDFEFE")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Green)
	mutedStyle   = lipgloss.NewStyle().Foreground(Gray)
	warnStyle    = lipgloss.NewStyle().Foreground(Amber)
	boldStyle    = lipgloss.NewStyle().Foreground(White).Bold(true)
)

// Success renders s in the success color.
func Success(s string) string {
	if !IsTTY {
		return s
	}
	return successStyle.Render(s)
}

// Muted renders s dimmed, used for per-file progress lines.
func Muted(s string) string {
	if !IsTTY {
		return s
	}
	return mutedStyle.Render(s)
}

// Warn renders s in the warning color.
func Warn(s string) string {
	if !IsTTY {
		return s
	}
	return warnStyle.Render(s)
}

// Bold renders s emphasized, used for the final tally.
func Bold(s string) string {
	if !IsTTY {
		return s
	}
	return boldStyle.Render(s)
}
