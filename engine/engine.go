package engine

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"termlife/rules"
)

// Cell identifies one board position by row and column.
type Cell struct {
	Row, Col int
}

// Engine owns a fixed-size board and the ordered list of live cells.
// The two structures always agree: a coordinate is in the live list
// exactly when its board position is true. All mutation funnels
// through Step, so the pair is never observably out of sync.
type Engine struct {
	rows, cols int
	grid       [][]bool
	live       []Cell
}

// New allocates a rows x cols board of dead cells and marks every seed
// coordinate alive. A seed coordinate outside the board is a
// configuration error: construction fails rather than clamping or
// silently dropping it, so seed/display mismatches surface immediately.
func New(seed []Cell, rows, cols int) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("[New] board dimensions must be positive, got %dx%d", rows, cols)
	}

	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}

	e := &Engine{rows: rows, cols: cols, grid: grid}
	for _, c := range seed {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, errors.Errorf("[New] seed cell (%d,%d) outside %dx%d board", c.Row, c.Col, rows, cols)
		}
		if e.grid[c.Row][c.Col] {
			continue // duplicate seed entry
		}
		e.grid[c.Row][c.Col] = true
		e.live = append(e.live, c)
	}

	return e, nil
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.rows
}

// Cols returns the board width.
func (e *Engine) Cols() int {
	return e.cols
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	return len(e.live)
}

// View exposes the boolean board for rendering. The returned slices are
// the engine's own storage and must be treated as read-only.
func (e *Engine) View() [][]bool {
	return e.grid
}

// Step advances the board by exactly one generation. Only cells in the
// neighborhood of a live cell can change state, so instead of a full
// board scan the step walks the live list and the deduplicated dead
// cells adjacent to it. Births and deaths are both decided against the
// current generation before either is applied, so no cell's evaluation
// observes a neighbor's next-generation value.
func (e *Engine) Step() {
	// Dead cells adjacent to at least one live cell are the only birth
	// candidates; everything further away keeps zero neighbors.
	candidates := newCellSet()
	for _, c := range e.live {
		e.forEachNeighbor(c, func(n Cell) {
			if !e.grid[n.Row][n.Col] {
				candidates.insert(n)
			}
		})
	}

	var births []Cell
	for _, c := range candidates.cells() {
		if rules.Apply(e.liveNeighbors(c), false) {
			births = append(births, c)
		}
	}

	var deaths []Cell
	for _, c := range e.live {
		if !rules.Apply(e.liveNeighbors(c), true) {
			deaths = append(deaths, c)
		}
	}

	// Deaths first, then births. Both lists were computed above, so the
	// order cannot change the outcome.
	for _, c := range deaths {
		e.grid[c.Row][c.Col] = false
	}
	if len(deaths) > 0 {
		survivors := e.live[:0]
		for _, c := range e.live {
			if e.grid[c.Row][c.Col] {
				survivors = append(survivors, c)
			}
		}
		e.live = survivors
	}

	for _, c := range births {
		e.grid[c.Row][c.Col] = true
		e.live = append(e.live, c)
	}
}

// liveNeighbors counts the live cells among the up-to-8 neighbors of c.
// The scan window is clamped to the board, so edge and corner cells
// never index outside it.
func (e *Engine) liveNeighbors(c Cell) int {
	count := 0

	minRow := max(0, c.Row-1)
	maxRow := min(e.rows-1, c.Row+1)
	minCol := max(0, c.Col-1)
	maxCol := min(e.cols-1, c.Col+1)

	for r := minRow; r <= maxRow; r++ {
		for col := minCol; col <= maxCol; col++ {
			if r == c.Row && col == c.Col {
				continue // skip the cell itself
			}
			if e.grid[r][col] {
				count++
			}
		}
	}

	return count
}

// forEachNeighbor calls fn for every board position adjacent to c, using
// the same clamped window as liveNeighbors.
func (e *Engine) forEachNeighbor(c Cell, fn func(Cell)) {
	minRow := max(0, c.Row-1)
	maxRow := min(e.rows-1, c.Row+1)
	minCol := max(0, c.Col-1)
	maxCol := min(e.cols-1, c.Col+1)

	for r := minRow; r <= maxRow; r++ {
		for col := minCol; col <= maxCol; col++ {
			if r == c.Row && col == c.Col {
				continue
			}
			fn(Cell{Row: r, Col: col})
		}
	}
}

// Checksum returns an MD5 digest of the board state, stable across runs
// for identical seeds and dimensions.
func (e *Engine) Checksum() string {
	h := md5.New()
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			if e.grid[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
