package util

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the column width of the terminal attached to f, or
// 80 when f is not a terminal or its size cannot be determined.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}

	return width
}
