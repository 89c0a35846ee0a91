package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Quit    key.Binding
	Start   key.Binding
	Restart key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Down:    binding(keys.Down, "down"),
		Rotate:  binding(keys.Rotate, "rotate"),
		Pause:   binding(keys.Pause, "pause"),
		Quit:    binding(keys.Quit, "quit"),
		Start:   binding(keys.Start, "start"),
		Restart: binding(keys.Restart, "restart"),
	}
}

// DefaultKeyMap returns the default bindings (WASD and arrows).
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Keys without a binding map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	}
	return core.ActionNone
}
