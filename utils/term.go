package utils

import (
	"os"

	"golang.org/x/term"
)

// Fallback board size for when stdout is not a terminal.
const (
	defaultRows = 30
	defaultCols = 60
)

// DisplaySize reports the terminal dimensions as (rows, cols), queried
// once before engine construction. When stdout is not a terminal the
// fallback size is returned instead.
func DisplaySize() (int, int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 || cols <= 0 {
		return defaultRows, defaultCols
	}
	return rows, cols
}
