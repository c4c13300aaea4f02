package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/rules"
)

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive row or column count.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a cell is read outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid owns the cell states of a fixed-size Game of Life board.
// Cells are addressed by zero-based (row, col); the dimensions never change
// after construction.
type Grid struct {
	rows       int
	cols       int
	cells      [][]bool
	generation int
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
	}, nil
}

func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns how many generations have been computed since the last reset
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// ToggleCell flips the cell at (row, col). Coordinates outside the grid are
// ignored so that click-anywhere input never fails.
func (g *Grid) ToggleCell(row, col int) {
	if g.inBounds(row, col) {
		g.cells[row][col] = !g.cells[row][col]
	}
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "[IsAlive] (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// ResetGrid kills every cell and rewinds the generation counter
func (g *Grid) ResetGrid() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row][col] = false
		}
	}
	g.generation = 0
}

// CountNeighbors counts live cells in the Moore neighborhood of (row, col).
// Positions past the edge count as dead; the board does not wrap.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// AdvanceGeneration replaces the grid with its successor. The next generation
// is computed entirely from the current cells into fresh storage and swapped
// in with a single assignment.
func (g *Grid) AdvanceGeneration() {
	next := newCells(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			next[row][col] = rules.ApplyConwayRules(g.CountNeighbors(row, col), g.cells[row][col])
		}
	}
	g.cells = next
	g.generation++
}

// Cells returns a row-major copy of every cell state
func (g *Grid) Cells() []bool {
	out := make([]bool, 0, g.rows*g.cols)
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current cell states
func (g *Grid) Hash() string {
	return hashCells(g.Cells())
}

// Snapshot captures the current generation for rendering
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Rows:       g.rows,
		Cols:       g.cols,
		Generation: g.generation,
		Cells:      g.Cells(),
	}
}
