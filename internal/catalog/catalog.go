// Package catalog loads the set of selectable piece shapes.
// A catalog is read once at session start and is immutable afterwards.
package catalog

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrUnavailable is returned when the catalog is missing, empty or malformed.
var ErrUnavailable = errors.New("catalog unavailable")

// ErrTooLarge is returned when a piece cannot fit on the board.
var ErrTooLarge = errors.New("piece larger than board")

// Piece is a named catalog entry.
type Piece struct {
	Name  string
	Shape tetris.Shape
}

// Catalog is an in-memory, read-only list of selectable pieces.
// It implements tetris.Source.
type Catalog struct {
	pieces []Piece
	origin string
}

// New creates a catalog from pieces. At least one piece is required.
func New(pieces []Piece, origin string) (*Catalog, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("%w: %s has no selectable pieces", ErrUnavailable, origin)
	}
	cp := make([]Piece, len(pieces))
	copy(cp, pieces)
	return &Catalog{pieces: cp, origin: origin}, nil
}

// PieceCount returns the number of selectable pieces.
func (c *Catalog) PieceCount() int {
	return len(c.pieces)
}

// PieceShape returns the shape of the index-th piece (1-based).
// An index outside [1, PieceCount()] panics.
func (c *Catalog) PieceShape(index int) tetris.Shape {
	if index < 1 || index > len(c.pieces) {
		panic(fmt.Sprintf("catalog: piece index %d outside [1, %d]", index, len(c.pieces)))
	}
	return c.pieces[index-1].Shape
}

// Pieces returns a copy of the catalog entries in selection order.
func (c *Catalog) Pieces() []Piece {
	cp := make([]Piece, len(c.pieces))
	copy(cp, c.pieces)
	return cp
}

// MaxSize returns the side length of the largest piece.
func (c *Catalog) MaxSize() int {
	size := 0
	for _, p := range c.pieces {
		size = max(size, p.Shape.Size())
	}
	return size
}

// FitsBoard checks that every piece can spawn fully inside a width×height board.
func (c *Catalog) FitsBoard(width, height int) error {
	for _, p := range c.pieces {
		if n := p.Shape.Size(); n > width || n > height {
			return fmt.Errorf("%w: %s is %dx%d, board is %dx%d", ErrTooLarge, p.Name, n, n, width, height)
		}
	}
	return nil
}

// Origin describes where the catalog was loaded from.
func (c *Catalog) Origin() string {
	return c.origin
}

var _ tetris.Source = (*Catalog)(nil)
