package tetris

import (
	"errors"
	"fmt"
	"strings"
)

// Shape is a square pattern of filled sub-blocks in piece-local coordinates.
// Its size never changes; rotation produces a new Shape of the same size.
type Shape struct {
	size  int
	cells []bool // row-major, size*size
}

// NewShape creates an empty size×size shape.
func NewShape(size int) Shape {
	if size <= 0 {
		panic(fmt.Sprintf("tetris: invalid shape size %d", size))
	}
	return Shape{size: size, cells: make([]bool, size*size)}
}

// ShapeFromRows builds a shape from a square matrix of cells.
func ShapeFromRows(rows [][]bool) (Shape, error) {
	n := len(rows)
	if n == 0 {
		return Shape{}, errors.New("tetris: empty shape")
	}
	s := NewShape(n)
	for i, row := range rows {
		if len(row) != n {
			return Shape{}, fmt.Errorf("tetris: shape row %d has %d cells, want %d", i, len(row), n)
		}
		copy(s.cells[i*n:(i+1)*n], row)
	}
	return s, nil
}

// MustShape parses rows of '#'/'.' (or '1'/'0') into a shape and panics on error.
// Intended for tests and built-in tables.
func MustShape(rows ...string) Shape {
	matrix := make([][]bool, len(rows))
	for i, row := range rows {
		matrix[i] = make([]bool, 0, len(row))
		for _, r := range row {
			matrix[i] = append(matrix[i], r == '#' || r == '1')
		}
	}
	s, err := ShapeFromRows(matrix)
	if err != nil {
		panic(err)
	}
	return s
}

// Size returns the side length of the shape.
func (s Shape) Size() int {
	return s.size
}

// At reports whether the cell at row i, column j is filled.
func (s Shape) At(i, j int) bool {
	if i < 0 || i >= s.size || j < 0 || j >= s.size {
		panic(fmt.Sprintf("tetris: shape access (%d, %d) outside %dx%d", i, j, s.size, s.size))
	}
	return s.cells[i*s.size+j]
}

// Filled returns the number of filled cells.
func (s Shape) Filled() int {
	n := 0
	for _, c := range s.cells {
		if c {
			n++
		}
	}
	return n
}

// Rotate returns a new shape turned 90° clockwise:
// the source cell (i, j) lands on (j, n-1-i).
func (s Shape) Rotate() Shape {
	n := s.size
	rotated := NewShape(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rotated.cells[j*n+(n-1-i)] = s.cells[i*n+j]
		}
	}
	return rotated
}

// Equal reports whether both shapes have the same size and cells.
func (s Shape) Equal(other Shape) bool {
	if s.size != other.size {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the shape as rows of cells.
func (s Shape) Rows() [][]bool {
	rows := make([][]bool, s.size)
	for i := range rows {
		rows[i] = make([]bool, s.size)
		copy(rows[i], s.cells[i*s.size:(i+1)*s.size])
	}
	return rows
}

// String draws the shape with '#' for filled and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for i := 0; i < s.size; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < s.size; j++ {
			if s.cells[i*s.size+j] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
