package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// colorEnabled reports whether styled output should be emitted.
// Tests replace it to force either mode.
var colorEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	// HeaderStyle renders table headers and detail labels.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// AlertStyle renders the most urgent values.
	AlertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// WarnStyle renders values that need attention soon.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	// ActiveStyle renders work in progress.
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	// SuccessStyle renders finished work.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	// MutedStyle renders values that no longer need attention.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render applies style to value when color output is enabled.
func Render(style lipgloss.Style, value string) string {
	if value == "" || !colorEnabled() {
		return value
	}
	return style.Render(value)
}
