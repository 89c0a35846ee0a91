package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// cellsAt reads n runes starting at (x, y).
func cellsAt(s *core.Screen, x, y, n int) string {
	return string([]rune(s.Row(y))[x : x+n])
}

func TestFieldSize(t *testing.T) {
	g := New(fakeSource{square()}, DefaultSettings())
	w, h := g.FieldSize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 24, h)
}

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t, 10, 20, square())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "T E T R I S")
	assert.Equal(t, '┌', screen.Get(24, 1))
	assert.Equal(t, '┘', screen.Get(55, 22))
	assert.Contains(t, screen.Row(12), "Press Enter to start")
	assert.Contains(t, screen.Row(23), "Pieces: 0")
	assert.NotContains(t, screen.String(), "[+]")
}

func TestRenderPieceAndLockedCells(t *testing.T) {
	g := newTestGame(t, 10, 20, square())
	g.Apply(core.ActionConfirm)
	g.Grid().Set(0, 19, true)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Piece at column 4 starts 1 + 4*3 cells into the box.
	assert.Equal(t, "[+][+]", cellsAt(screen, 37, 2, 6))
	assert.Equal(t, core.ColorBrightYellow, screen.GetCell(37, 2).Color)

	assert.Equal(t, "[+]", cellsAt(screen, 25, 21, 3))
	assert.Equal(t, core.ColorCyan, screen.GetCell(25, 21).Color)

	// Empty cells are three spaces.
	assert.Equal(t, "   ", cellsAt(screen, 28, 21, 3))
	assert.NotContains(t, screen.String(), "Press Enter")
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	g := newTestGame(t, 10, 20, square())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	g.Apply(core.ActionConfirm)
	g.Render(screen)

	assert.NotContains(t, screen.String(), "Press Enter")
}

func TestRenderBanners(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    string
	}{
		{"pause", []core.Action{core.ActionConfirm, core.ActionPause}, "PAUSED"},
		{"start", nil, "Press Enter to start"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 10, 20, square())
			for _, a := range tc.actions {
				g.Apply(a)
			}
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			assert.Contains(t, screen.String(), tc.want)
		})
	}
}

func TestRenderBoardFull(t *testing.T) {
	g := newTestGame(t, 4, 2, square())
	g.Apply(core.ActionConfirm)
	g.Tick()
	require.Equal(t, StateEnd, g.Phase())

	screen := core.NewScreen(40, 10)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "BOARD FULL")
	assert.Contains(t, out, "Pieces: 1")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 10, 20, square())
	screen := core.NewScreen(20, 10)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Terminal too small")
	assert.False(t, strings.Contains(out, "[+]"))
}

func TestRenderMatchesBoard(t *testing.T) {
	g := newTestGame(t, 4, 4, square())
	g.Apply(core.ActionConfirm)
	g.Tick()
	g.Tick()
	g.Tick() // first piece locked, second spawned at (1, 0)
	screen := core.NewScreen(40, 12)

	g.Render(screen)

	w, _ := g.FieldSize()
	boxX := (40 - w) / 2
	for y, row := range g.Board() {
		for x, occupied := range row {
			got := cellsAt(screen, boxX+1+x*cellWidth, 2+y, 3)
			if occupied {
				assert.Equal(t, filledGlyph, got, "cell (%d, %d)", x, y)
			} else {
				assert.Equal(t, "   ", got, "cell (%d, %d)", x, y)
			}
		}
	}
	assert.Equal(t, core.ColorBrightYellow, screen.GetCell(boxX+1+cellWidth, 2).Color)
	assert.Equal(t, core.ColorCyan, screen.GetCell(boxX+1+cellWidth, 4).Color)
}
