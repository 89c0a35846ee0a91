package tetris

// InBounds reports whether every filled cell of s anchored at (x, y)
// lies inside the grid. Moves and rotations are validated with it.
func InBounds(g *Grid, s Shape, x, y int) bool {
	n := s.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s.At(i, j) && !g.Contains(x+j, y+i) {
				return false
			}
		}
	}
	return true
}

// IsAttached reports whether the piece cannot descend one more row:
// some filled cell sits on the bottom row or on top of an occupied cell.
// Cells above row 0 are allowed and never read from the grid.
func IsAttached(g *Grid, s Shape, x, y int) bool {
	n := s.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !s.At(i, j) {
				continue
			}
			below := y + i + 1
			if below >= g.Height() {
				return true
			}
			if !g.Contains(x+j, below) {
				continue
			}
			if g.At(x+j, below) {
				return true
			}
		}
	}
	return false
}

// IsEndState reports whether a piece that attached with anchor row anchorY
// never left the spawn row, which means the board is full.
func IsEndState(anchorY int) bool {
	return anchorY <= 0
}

// Lock copies the filled cells of p into the grid.
// Cells outside the grid are skipped.
func Lock(g *Grid, p Piece) {
	for _, c := range p.Cells() {
		if g.Contains(c.X, c.Y) {
			g.Set(c.X, c.Y, true)
		}
	}
}
