package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with player intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move piece one column left
	ActionRight          // D, Right arrow - move piece one column right
	ActionDown           // S, Down arrow - move piece one row down
	ActionRotate         // W, Up arrow - rotate piece clockwise
	ActionConfirm        // Enter - start the game
	ActionRestart        // R - restart after the board filled up
	ActionQuit           // Q - abort the session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received between two simulation ticks.
// Actions keep their arrival order so that two quick key presses
// (left, then rotate) are applied in the order the player typed them.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns a copy of the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	if len(f.actions) == 0 {
		return nil
	}
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

