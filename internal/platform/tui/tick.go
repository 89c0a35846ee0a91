// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and session bookkeeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation step.
type TickMsg time.Time

// defaultTickInterval matches the classic 30ms polling delay.
const defaultTickInterval = 30 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
