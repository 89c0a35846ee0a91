package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ParseLegacy reads the whitespace-separated integer format:
//
//	<count>
//	<size> <size*size cells of 0/1, row-major>
//	...
//
// An integer <= 1 where a size is expected is a placeholder and is skipped,
// so the n-th selectable piece is not necessarily the n-th record.
// At most count selectable pieces are kept.
func ParseLegacy(r io.Reader) ([]Piece, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, bool, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, false, fmt.Errorf("%w: %w", ErrUnavailable, err)
			}
			return 0, false, nil
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%w: bad integer %q", ErrUnavailable, sc.Text())
		}
		return v, true, nil
	}

	count, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing piece count", ErrUnavailable)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: piece count %d", ErrUnavailable, count)
	}

	var pieces []Piece
	for len(pieces) < count {
		size, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if size <= 1 {
			continue
		}

		rows := make([][]bool, size)
		for i := range rows {
			rows[i] = make([]bool, size)
			for j := range rows[i] {
				v, ok, err := next()
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, fmt.Errorf("%w: piece %d truncated", ErrUnavailable, len(pieces)+1)
				}
				if v != 0 && v != 1 {
					return nil, fmt.Errorf("%w: piece %d cell value %d", ErrUnavailable, len(pieces)+1, v)
				}
				rows[i][j] = v == 1
			}
		}

		shape, err := tetris.ShapeFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		pieces = append(pieces, Piece{
			Name:  fmt.Sprintf("piece-%d", len(pieces)+1),
			Shape: shape,
		})
	}

	if len(pieces) == 0 {
		return nil, fmt.Errorf("%w: no selectable pieces", ErrUnavailable)
	}
	return pieces, nil
}
