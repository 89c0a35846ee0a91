package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			TickMS:       30,
			GravityEvery: 10,
		},
		Keys: KeysConfig{
			Left:    []string{"a", "left"},
			Right:   []string{"d", "right"},
			Down:    []string{"s", "down"},
			Rotate:  []string{"w", "up"},
			Pause:   []string{"p", "esc"},
			Quit:    []string{"q"},
			Start:   []string{"enter"},
			Restart: []string{"r"},
		},
	}
}

