package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to seed piece selection.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Delay between two polling steps
	Seed         int64         // RNG seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 30 * time.Millisecond,
		Seed:         0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Pieces   int  // Pieces locked into the field so far
	Started  bool // The player confirmed the start
	GameOver bool // The board is full
	Aborted  bool // The player quit before the board filled up
	Paused   bool // Whether the game is paused
}

// Finished reports whether the session loop should stop stepping the game.
func (s GameState) Finished() bool {
	return s.GameOver || s.Aborted
}

// Outcome names the reason the session stopped: "board_full", "aborted" or "none".
func (s GameState) Outcome() string {
	switch {
	case s.GameOver:
		return "board_full"
	case s.Aborted:
		return "aborted"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
