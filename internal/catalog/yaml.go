package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// YAMLCatalog represents the YAML structure of a catalog file.
type YAMLCatalog struct {
	Pieces []YAMLPiece `yaml:"pieces"`
}

// YAMLPiece is one piece drawn as rows of '#'/'1' (filled) and '.'/'0' (empty).
type YAMLPiece struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML catalog file.
func ParseYAML(data []byte) ([]Piece, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("%w: yaml unmarshal: %w", ErrUnavailable, err)
	}

	pieces := make([]Piece, 0, len(yc.Pieces))
	for idx, yp := range yc.Pieces {
		name := yp.Name
		if name == "" {
			name = fmt.Sprintf("piece-%d", idx+1)
		}

		size := len(yp.Rows)
		if size < 2 {
			return nil, fmt.Errorf("%w: piece %s needs at least 2 rows", ErrUnavailable, name)
		}

		rows := make([][]bool, size)
		for i, line := range yp.Rows {
			cells := []rune(line)
			if len(cells) != size {
				return nil, fmt.Errorf("%w: piece %s row %d is %d wide, want %d", ErrUnavailable, name, i, len(cells), size)
			}
			rows[i] = make([]bool, size)
			for j, r := range cells {
				switch r {
				case '#', '1', 'X':
					rows[i][j] = true
				case '.', '0', ' ':
				default:
					return nil, fmt.Errorf("%w: piece %s has invalid cell %q", ErrUnavailable, name, r)
				}
			}
		}

		shape, err := tetris.ShapeFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		pieces = append(pieces, Piece{Name: name, Shape: shape})
	}

	return pieces, nil
}
