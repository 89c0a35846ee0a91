package tetris

// State is a phase of the game session.
type State int

const (
	StateStart   State = iota // waiting for the player to confirm
	StateSpawn                // a new piece is being created
	StateMove                 // a piece is falling under player control
	StateShift                // gravity is moving the piece one row down
	StateAttach               // the piece has landed and is being locked
	StateEnd                  // the board is full
	StatePause                // gravity and movement suspended
	StateAborted              // the player quit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSpawn:
		return "spawn"
	case StateMove:
		return "move"
	case StateShift:
		return "shift"
	case StateAttach:
		return "attach"
	case StateEnd:
		return "end"
	case StatePause:
		return "pause"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == StateEnd || s == StateAborted
}

// Outcome is the reason a session stopped.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeBoardFull         // a piece locked without leaving the spawn row
	OutcomeAborted           // the player quit
)

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeBoardFull:
		return "board_full"
	case OutcomeAborted:
		return "aborted"
	default:
		return "none"
	}
}

// event is an input to the state machine: a player intent or a gravity tick.
type event int

const (
	eventConfirm event = iota
	eventQuit
	eventPause
	eventLeft
	eventRight
	eventDown
	eventRotate
	eventGravity
)
