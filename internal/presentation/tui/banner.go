package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner. Amber-to-orange gradient,
// one color per line.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ______ _           _    __                     ", "#fbbf24"},
		{" |  ____| |         | |  / _|                    ", "#f59e0b"},
		{" | |__  | | ___  ___| |_| |_ ___  _ __ _ __ ___  ", "#f97316"},
		{" |  __| | |/ _ \\/ _ \\ __|  _/ _ \\| '__| '_ ` _ \\ ", "#ea580c"},
		{" | |    | |  __/  __/ |_| || (_) | |  | | | | | |", "#dc2626"},
		{" |_|    |_|\\___|\\___|\\__|_| \\___/|_|  |_| |_| |_|", "#b91c1c"},
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println(termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Println()
}

// ClearScreen wipes the terminal and homes the cursor.
func ClearScreen() {
	termenv.ClearScreen()
}
