// Package config provides YAML-based game configuration loading and
// speed presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Catalog CatalogConfig `yaml:"catalog"`
	Keys    KeysConfig    `yaml:"keys"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the polling loop cadence.
type TimingConfig struct {
	TickMS       int `yaml:"tick_ms"`       // Delay between two polls
	GravityEvery int `yaml:"gravity_every"` // Polls per gravity tick
}

// TickInterval returns the poll delay as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// CatalogConfig points at the piece catalog file.
type CatalogConfig struct {
	Path string `yaml:"path"` // Empty means the built-in catalog
}

// KeysConfig lists the keys bound to each intent, in Bubble Tea key notation.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Rotate  []string `yaml:"rotate"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
	Start   []string `yaml:"start"`
	Restart []string `yaml:"restart"`
}

// Validate reports configuration values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Board.Width, c.Board.Height))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms %d must be positive", c.Timing.TickMS))
	}
	if c.Timing.GravityEvery <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_every %d must be positive", c.Timing.GravityEvery))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
