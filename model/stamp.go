package model

import "math/rand"

// Stamp is a fixed shape of live cells given as (row, col) offsets.
type Stamp [][2]int

var (
	// Glider travels down and to the right.
	Glider = Stamp{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	// Blinker is a vertical three-cell line with period 2.
	Blinker = Stamp{{0, 0}, {1, 0}, {2, 0}}
	// Block is a 2x2 still life.
	Block = Stamp{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

// Place brings the stamp's cells to life with its top-left corner at (row, col).
// Cells already alive stay alive, cells falling outside the grid are dropped.
func (g *Grid) Place(s Stamp, row, col int) {
	for _, off := range s {
		r, c := row+off[0], col+off[1]
		if g.inBounds(r, c) && !g.cells[r][c] {
			g.ToggleCell(r, c)
		}
	}
}

// Randomize brings dead cells to life with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.cells[row][col] && rng.Float64() < density {
				g.ToggleCell(row, col)
			}
		}
	}
}
