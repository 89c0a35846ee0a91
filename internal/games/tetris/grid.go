// Package tetris implements the falling-block engine: the playfield grid,
// the active piece, the placement checks and the state machine that drives
// spawn, fall, lock and end-of-game transitions.
package tetris

import "fmt"

// Grid is the fixed-size occupancy buffer of the playfield.
// Locked cells carry no piece identity.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major, height*width
}

// NewGrid creates an empty width×height grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At reports whether the cell at column x, row y is occupied.
// Reading outside the grid is a caller bug and panics.
func (g *Grid) At(x, y int) bool {
	return g.cells[g.index(x, y)]
}

// Set marks the cell at column x, row y. Writing outside the grid panics.
func (g *Grid) Set(x, y int, occupied bool) {
	g.cells[g.index(x, y)] = occupied
}

func (g *Grid) index(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("tetris: grid access (%d, %d) outside %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows of cells.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range rows {
		rows[y] = make([]bool, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}
