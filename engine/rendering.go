package engine

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	glyphAlive = "█"
	glyphDead  = "░"

	clearCmd = "clear"
)

// TerminalRenderer draws engine views as rows of block glyphs.
type TerminalRenderer struct{}

// Display writes the current board to stdout, one glyph per cell.
func (r *TerminalRenderer) Display(e *Engine) {
	fmt.Print(r.Frame(e))
}

// Frame renders the board into a single string: one glyph per cell,
// rows separated by a newline with none after the last row.
func (r *TerminalRenderer) Frame(e *Engine) string {
	var b strings.Builder
	b.Grow(e.rows*e.cols*len(glyphAlive) + e.rows)

	for i, row := range e.View() {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				b.WriteString(glyphAlive)
			} else {
				b.WriteString(glyphDead)
			}
		}
	}

	return b.String()
}

// Clear clears the terminal screen.
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
