package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeSource serves a fixed list of shapes.
type fakeSource []Shape

func (s fakeSource) PieceCount() int { return len(s) }

func (s fakeSource) PieceShape(index int) Shape { return s[index-1] }

// fixedSelector returns the same index on every call.
type fixedSelector int

func (f fixedSelector) Next(min, max int) int { return int(f) }

// recordingSelector remembers the requested ranges.
type recordingSelector struct {
	calls [][2]int
}

func (r *recordingSelector) Next(min, max int) int {
	r.calls = append(r.calls, [2]int{min, max})
	return max
}

func newTestGame(t *testing.T, width, height int, shapes ...Shape) *Game {
	t.Helper()
	g := New(fakeSource(shapes), Settings{Width: width, Height: height, GravityEvery: 1})
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.SetSelector(fixedSelector(1))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func square() Shape { return MustShape("##", "##") }

func TestResetStartsEmpty(t *testing.T) {
	g := newTestGame(t, 10, 20, square())

	snap := g.Snapshot()
	assert.Equal(t, StateStart, snap.State)
	assert.False(t, snap.HasPiece)
	assert.Zero(t, snap.Occupied)
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.False(t, g.State().Started)
}

func TestStartIgnoresMovement(t *testing.T) {
	g := newTestGame(t, 10, 20, square())

	g.Step(frame(core.ActionLeft, core.ActionDown, core.ActionRotate, core.ActionPause))
	g.Tick()

	assert.Equal(t, StateStart, g.Phase())
	_, ok := g.Piece()
	assert.False(t, ok)
}

func TestConfirmSpawnsCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		shape Shape
		wantX int
	}{
		{"square on 10", 10, square(), 4},
		{"bar on 10", 10, MustShape("....", "####", "....", "...."), 3},
		{"T on 10", 10, MustShape(".#.", "###", "..."), 3},
		{"square on 4", 4, square(), 1},
		{"square on 5", 5, square(), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.width, 20, tc.shape)
			g.Apply(core.ActionConfirm)

			p, ok := g.Piece()
			require.True(t, ok)
			assert.Equal(t, tc.wantX, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, StateMove, g.Phase())
		})
	}
}

func TestSpawnDrawsFromWholeCatalog(t *testing.T) {
	rec := &recordingSelector{}
	g := New(fakeSource{square(), MustShape(".#.", "###", "...")}, Settings{Width: 10, Height: 20, GravityEvery: 1})
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.SetSelector(rec)

	g.Apply(core.ActionConfirm)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, [2]int{1, 2}, rec.calls[0])
	p, _ := g.Piece()
	assert.Equal(t, 3, p.Shape.Size())
}

func TestGravityDropsThenLocks(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)

	g.Tick()
	p, _ := g.Piece()
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 1, p.Y)

	g.Tick()
	p, _ = g.Piece()
	assert.Equal(t, 2, p.Y)
	assert.Zero(t, g.Grid().Occupied())

	// Resting on the bottom: the next tick locks and spawns.
	g.Tick()
	for _, c := range []Point{{1, 2}, {2, 2}, {1, 3}, {2, 3}} {
		assert.True(t, g.Grid().At(c.X, c.Y), "cell %v", c)
	}
	assert.Equal(t, 4, g.Grid().Occupied())
	assert.Equal(t, 1, g.State().Pieces)

	p, ok := g.Piece()
	require.True(t, ok)
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, StateMove, g.Phase())
}

func TestBoardFullEndsSession(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)
	for range 3 {
		g.Tick()
	}

	// The second piece lands on the first without leaving row 0.
	g.Tick()

	assert.Equal(t, StateEnd, g.Phase())
	assert.Equal(t, OutcomeBoardFull, g.Outcome())
	assert.Equal(t, 8, g.Grid().Occupied())
	_, ok := g.Piece()
	assert.False(t, ok)

	st := g.State()
	assert.True(t, st.GameOver)
	assert.True(t, st.Finished())
	assert.Equal(t, "board_full", st.Outcome())
	assert.Equal(t, 2, st.Pieces)
}

func TestEndIgnoresInput(t *testing.T) {
	g := newTestGame(t, 4, 2, square())
	g.Apply(core.ActionConfirm)
	g.Tick()
	require.Equal(t, StateEnd, g.Phase())

	before := g.Snapshot()
	g.Step(frame(core.ActionConfirm, core.ActionLeft, core.ActionQuit, core.ActionPause))
	g.Tick()

	after := g.Snapshot()
	assert.Equal(t, StateEnd, after.State)
	assert.Equal(t, before.Occupied, after.Occupied)
	assert.Equal(t, OutcomeBoardFull, g.Outcome())
}

func TestStepGravityDivider(t *testing.T) {
	g := New(fakeSource{square()}, Settings{Width: 10, Height: 20, GravityEvery: 10})
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.SetSelector(fixedSelector(1))

	g.Step(frame(core.ActionConfirm))
	empty := core.NewInputFrame()
	for range 8 {
		g.Step(empty)
	}
	p, _ := g.Piece()
	assert.Equal(t, 0, p.Y, "nine steps must not trigger gravity")

	g.Step(empty)
	p, _ = g.Piece()
	assert.Equal(t, 1, p.Y)
}

func TestGravityDividerHoldsDuringPause(t *testing.T) {
	g := New(fakeSource{square()}, Settings{Width: 10, Height: 20, GravityEvery: 10})
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.SetSelector(fixedSelector(1))

	g.Step(frame(core.ActionConfirm)) // divider 1
	g.Step(frame(core.ActionPause))   // paused before counting
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	p, _ := g.Piece()
	assert.Equal(t, 0, p.Y)
	assert.True(t, g.State().Paused)

	g.Step(frame(core.ActionPause)) // divider 2
	for range 7 {
		g.Step(core.NewInputFrame())
	}
	p, _ = g.Piece()
	assert.Equal(t, 0, p.Y)

	g.Step(core.NewInputFrame())
	p, _ = g.Piece()
	assert.Equal(t, 1, p.Y)
}

func TestLateralMoves(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)

	g.Apply(core.ActionLeft)
	p, _ := g.Piece()
	assert.Equal(t, 0, p.X)

	// Out of bounds: rejected without change.
	g.Apply(core.ActionLeft)
	p, _ = g.Piece()
	assert.Equal(t, 0, p.X)
	assert.Equal(t, StateMove, g.Phase())

	g.Apply(core.ActionRight)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionRight)
	p, _ = g.Piece()
	assert.Equal(t, 2, p.X)
}

func TestFrameActionsApplyInOrder(t *testing.T) {
	g := newTestGame(t, 10, 20, square())

	g.Step(frame(core.ActionConfirm, core.ActionLeft, core.ActionLeft, core.ActionDown))

	p, ok := g.Piece()
	require.True(t, ok)
	assert.Equal(t, 2, p.X)
	// One explicit down plus one gravity tick.
	assert.Equal(t, 2, p.Y)
}

func TestLateralMoveOnAttachedPieceLocks(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)
	g.Tick()
	g.Tick()
	p, _ := g.Piece()
	require.Equal(t, 2, p.Y)

	g.Apply(core.ActionLeft)

	assert.True(t, g.Grid().At(1, 3), "piece must lock where it was")
	assert.False(t, g.Grid().At(0, 3))
	assert.Equal(t, 1, g.State().Pieces)
	p, _ = g.Piece()
	assert.Equal(t, 0, p.Y, "a new piece spawns")
}

func TestDownOnAttachedPieceLocks(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)
	g.Apply(core.ActionDown)
	g.Apply(core.ActionDown)
	require.Zero(t, g.Grid().Occupied())

	g.Apply(core.ActionDown)
	assert.Equal(t, 4, g.Grid().Occupied())
	assert.Equal(t, 1, g.State().Pieces)
}

func TestRotation(t *testing.T) {
	bar := MustShape("....", "####", "....", "....")

	t.Run("accepted inside the grid", func(t *testing.T) {
		g := newTestGame(t, 10, 20, bar)
		g.Apply(core.ActionConfirm)
		g.Apply(core.ActionRotate)

		p, _ := g.Piece()
		assert.True(t, p.Shape.Equal(bar.Rotate()))
		assert.Equal(t, 3, p.X)
		assert.Equal(t, 0, p.Y)
	})

	t.Run("rejected out of bounds", func(t *testing.T) {
		g := newTestGame(t, 10, 20, bar)
		g.Apply(core.ActionConfirm)
		g.Apply(core.ActionRotate)
		for range 5 {
			g.Apply(core.ActionRight)
		}
		before, _ := g.Piece()
		require.Equal(t, 7, before.X)

		// Rotating back would put the bar at columns 7..10.
		g.Apply(core.ActionRotate)

		after, _ := g.Piece()
		assert.True(t, after.Shape.Equal(before.Shape))
		assert.Equal(t, before.X, after.X)
		assert.Equal(t, before.Y, after.Y)
		assert.Equal(t, StateMove, g.Phase())
	})
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 10, 20, square())
	g.Apply(core.ActionConfirm)
	g.Apply(core.ActionPause)
	require.Equal(t, StatePause, g.Phase())

	g.Apply(core.ActionLeft)
	g.Apply(core.ActionDown)
	g.Apply(core.ActionRotate)
	g.Apply(core.ActionConfirm)
	g.Tick()

	p, _ := g.Piece()
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, StatePause, g.Phase())

	g.Apply(core.ActionPause)
	assert.Equal(t, StateMove, g.Phase())
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name        string
		setup       []core.Action
		wantStarted bool
	}{
		{"from start", nil, false},
		{"while moving", []core.Action{core.ActionConfirm}, true},
		{"while paused", []core.Action{core.ActionConfirm, core.ActionPause}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 10, 20, square())
			for _, a := range tc.setup {
				g.Apply(a)
			}

			res := g.Step(frame(core.ActionQuit))

			assert.Equal(t, StateAborted, g.Phase())
			assert.Equal(t, OutcomeAborted, g.Outcome())
			assert.True(t, res.State.Aborted)
			assert.Equal(t, "aborted", res.State.Outcome())
			assert.Equal(t, tc.wantStarted, res.State.Started)
			assert.Zero(t, g.Grid().Occupied())
		})
	}
}

func TestBoardOverlaysPieceWithoutTouchingGrid(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)

	board := g.Board()
	assert.True(t, board[0][1])
	assert.True(t, board[1][2])
	assert.Zero(t, g.Grid().Occupied())
}

func TestResetAfterEnd(t *testing.T) {
	g := newTestGame(t, 4, 2, square())
	g.Apply(core.ActionConfirm)
	g.Tick()
	require.Equal(t, StateEnd, g.Phase())

	g.Reset(core.RuntimeConfig{Seed: 7})
	g.SetSelector(fixedSelector(1))

	assert.Equal(t, StateStart, g.Phase())
	assert.Zero(t, g.Grid().Occupied())
	assert.Zero(t, g.State().Pieces)
	assert.Equal(t, OutcomeNone, g.Outcome())
}
