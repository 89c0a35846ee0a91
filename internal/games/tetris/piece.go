package tetris

// Point is a grid coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Piece is the active falling piece: a shape anchored on the grid.
// Shape cell (i, j) occupies grid cell (X+j, Y+i).
type Piece struct {
	Shape Shape
	X     int
	Y     int
}

// Cells returns the grid coordinates of every filled cell.
func (p Piece) Cells() []Point {
	n := p.Shape.Size()
	cells := make([]Point, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if p.Shape.At(i, j) {
				cells = append(cells, Point{X: p.X + j, Y: p.Y + i})
			}
		}
	}
	return cells
}

// Moved returns a candidate piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return Piece{Shape: p.Shape, X: p.X + dx, Y: p.Y + dy}
}

// Rotated returns a candidate piece with a clockwise-rotated shape at the same anchor.
func (p Piece) Rotated() Piece {
	return Piece{Shape: p.Shape.Rotate(), X: p.X, Y: p.Y}
}
