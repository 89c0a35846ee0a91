package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Source supplies piece shapes. Indexes are 1-based: 1 <= index <= PieceCount().
// PieceShape may panic for an index outside that range.
type Source interface {
	PieceCount() int
	PieceShape(index int) Shape
}

// Settings controls the board size and the gravity cadence.
type Settings struct {
	Width        int // Columns
	Height       int // Rows
	GravityEvery int // Steps between two gravity ticks
}

// DefaultSettings returns the classic 10×20 board with gravity every 10 steps.
func DefaultSettings() Settings {
	return Settings{
		Width:        10,
		Height:       20,
		GravityEvery: 10,
	}
}

// Game is the falling-block engine and the only owner of the grid and the active piece.
type Game struct {
	settings Settings
	source   Source
	rng      Selector
	tick     uint64

	grid  *Grid
	piece *Piece // nil in START and after the session ended

	state   State
	resume  State // state restored when leaving PAUSE
	outcome Outcome

	gravityTicker int // Counts steps until the next gravity tick
	pieces        int // Pieces locked into the grid
	spawned       int
}

// New creates a game that draws its pieces from source.
func New(source Source, settings Settings) *Game {
	if settings.GravityEvery <= 0 {
		settings.GravityEvery = 1
	}
	return &Game{
		settings: settings,
		source:   source,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// BoardSize returns the number of columns and rows of the playfield.
func (g *Game) BoardSize() (width, height int) {
	return g.settings.Width, g.settings.Height
}

// Reset initializes/restarts the game in the START state with an empty grid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = NewSelector(cfg.Seed)
	g.tick = 0
	g.grid = NewGrid(g.settings.Width, g.settings.Height)
	g.piece = nil
	g.state = StateStart
	g.resume = StateStart
	g.outcome = OutcomeNone
	g.gravityTicker = 0
	g.pieces = 0
	g.spawned = 0
}

// SetSelector replaces the piece selector.
func (g *Game) SetSelector(sel Selector) {
	g.rng = sel
}

// actionEvents maps platform actions to engine events.
// ActionRestart is handled by the platform, which calls Reset.
var actionEvents = map[core.Action]event{
	core.ActionConfirm: eventConfirm,
	core.ActionQuit:    eventQuit,
	core.ActionPause:   eventPause,
	core.ActionLeft:    eventLeft,
	core.ActionRight:   eventRight,
	core.ActionDown:    eventDown,
	core.ActionRotate:  eventRotate,
}

// Step advances the game by one polling step: every intent of the frame is
// applied in order, then the gravity divider runs while a piece is falling.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		g.Apply(a)
	}

	if g.state == StateMove {
		g.gravityTicker++
		if g.gravityTicker >= g.settings.GravityEvery {
			g.gravityTicker = 0
			g.handle(eventGravity)
		}
	}

	return core.StepResult{State: g.State()}
}

// Apply feeds a single player intent to the state machine.
// Actions the engine does not know are ignored.
func (g *Game) Apply(a core.Action) {
	if ev, ok := actionEvents[a]; ok {
		g.handle(ev)
	}
}

// Tick applies one gravity tick regardless of the step divider.
func (g *Game) Tick() {
	g.handle(eventGravity)
}

// handle is the single transition function of the state machine.
func (g *Game) handle(ev event) {
	switch g.state {
	case StateStart:
		switch ev {
		case eventConfirm:
			g.spawn()
		case eventQuit:
			g.abort()
		}

	case StatePause:
		switch ev {
		case eventPause:
			g.state = g.resume
		case eventQuit:
			g.abort()
		}

	case StateMove:
		switch ev {
		case eventQuit:
			g.abort()
		case eventPause:
			g.resume = StateMove
			g.state = StatePause
		case eventLeft:
			g.moveSideways(-1)
		case eventRight:
			g.moveSideways(1)
		case eventDown:
			g.moveDown()
		case eventRotate:
			g.rotate()
		case eventGravity:
			g.state = StateShift
			g.moveDown()
			if g.state == StateShift {
				g.state = StateMove
			}
		}
	}
}

// attached reports whether the active piece has landed.
func (g *Game) attached() bool {
	return IsAttached(g.grid, g.piece.Shape, g.piece.X, g.piece.Y)
}

// moveSideways shifts the piece one column. A landed piece is locked instead,
// and a move that leaves the grid is dropped.
func (g *Game) moveSideways(dx int) {
	if g.attached() {
		g.attach()
		return
	}
	candidate := g.piece.Moved(dx, 0)
	if InBounds(g.grid, candidate.Shape, candidate.X, candidate.Y) {
		*g.piece = candidate
	}
}

// moveDown descends one row or locks a landed piece.
func (g *Game) moveDown() {
	if g.attached() {
		g.attach()
		return
	}
	g.piece.Y++
}

// rotate turns the piece clockwise when the rotated shape stays inside the grid.
func (g *Game) rotate() {
	candidate := g.piece.Rotated()
	if InBounds(g.grid, candidate.Shape, candidate.X, candidate.Y) {
		*g.piece = candidate
	}
}

// attach locks the landed piece, then either ends the game or spawns the next piece.
func (g *Game) attach() {
	g.state = StateAttach
	Lock(g.grid, *g.piece)
	g.pieces++

	if IsEndState(g.piece.Y) {
		g.piece = nil
		g.state = StateEnd
		g.outcome = OutcomeBoardFull
		return
	}

	g.spawn()
}

// spawn creates a random piece centered on the top row.
func (g *Game) spawn() {
	g.state = StateSpawn

	index := g.rng.Next(1, g.source.PieceCount())
	shape := g.source.PieceShape(index)
	g.piece = &Piece{
		Shape: shape,
		X:     (g.grid.Width() - shape.Size()) / 2,
		Y:     0,
	}
	g.spawned++

	g.state = StateMove
}

func (g *Game) abort() {
	g.piece = nil
	g.state = StateAborted
	g.outcome = OutcomeAborted
}

// Phase returns the current state machine state.
func (g *Game) Phase() State {
	return g.state
}

// Outcome returns why the session stopped, or OutcomeNone while it runs.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Piece returns a copy of the active piece and whether one exists.
func (g *Game) Piece() (Piece, bool) {
	if g.piece == nil {
		return Piece{}, false
	}
	return *g.piece, true
}

// Grid returns the playfield. Callers must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Board returns a copy of the grid with the active piece drawn in.
// The grid itself is never written for display.
func (g *Game) Board() [][]bool {
	rows := g.grid.Rows()
	if g.piece != nil {
		for _, c := range g.piece.Cells() {
			if g.grid.Contains(c.X, c.Y) {
				rows[c.Y][c.X] = true
			}
		}
	}
	return rows
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Pieces:   g.pieces,
		Started:  g.spawned > 0,
		GameOver: g.state == StateEnd,
		Aborted:  g.state == StateAborted,
		Paused:   g.state == StatePause,
	}
}
