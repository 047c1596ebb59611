package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
)

// IsTerminal reports whether stdout is an interactive terminal.
// Piped output gets plain text and no banner.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PromptDecorator returns the styling function for question text, or
// the identity when styling is disabled.
func PromptDecorator(enabled bool) func(string) string {
	if !enabled {
		return func(s string) string { return s }
	}
	return func(s string) string { return promptStyle.Render(s) }
}

// ErrorDecorator returns the styling function for retry messages.
func ErrorDecorator(enabled bool) func(string) string {
	if !enabled {
		return func(s string) string { return s }
	}
	return func(s string) string { return errorStyle.Render(s) }
}
