package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRecapRenderer returns a function that renders the recap
// markdown for the terminal, auto-detecting light/dark background.
func NewRecapRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
