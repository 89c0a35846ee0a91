package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Rendering constants
const (
	cellWidth   = 3
	filledGlyph = "[+]"
	hudRows     = 2 // title above the field, status line below it
)

// FieldSize returns the on-screen size of the bordered field including the HUD.
func (g *Game) FieldSize() (w, h int) {
	return g.settings.Width*cellWidth + 2, g.settings.Height + 2 + hudRows
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.FieldSize()
	if !core.NewRect(0, 0, dst.Width(), dst.Height()).Fits(w, h) {
		g.renderTooSmall(dst, w, h)
		return
	}

	offX := (dst.Width() - w) / 2
	box := core.NewRect(offX, 1, w, g.settings.Height+2)

	dst.DrawTextCentered(0, "T E T R I S")
	dst.DrawBox(box)

	for y, row := range g.Board() {
		for x, occupied := range row {
			if !occupied {
				continue
			}
			color := core.ColorBrightYellow
			if g.grid.At(x, y) {
				color = core.ColorCyan
			}
			dst.DrawTextColor(box.X+1+x*cellWidth, box.Y+1+y, filledGlyph, color)
		}
	}

	mid := box.Y + box.H/2
	switch g.state {
	case StateStart:
		g.drawBanner(dst, mid, "Press Enter to start", "q to quit")
	case StatePause:
		g.drawBanner(dst, mid, "PAUSED", "p to resume")
	case StateEnd:
		g.drawBanner(dst, mid, "BOARD FULL", "r to restart, q to quit")
	}

	status := fmt.Sprintf("Pieces: %d", g.pieces)
	dst.DrawTextColor((dst.Width()-len(status))/2, box.Bottom(), status, core.ColorGray)
}

// drawBanner writes a two-line message across the middle of the field.
func (g *Game) drawBanner(dst *core.Screen, y int, title, hint string) {
	x := (dst.Width() - len(title)) / 2
	dst.DrawTextColor(x, y, title, core.ColorBrightCyan)
	x = (dst.Width() - len(hint)) / 2
	dst.DrawTextColor(x, y+1, hint, core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen, w, h int) {
	y := core.Max(dst.Height()/2, 1)
	dst.DrawTextCentered(y-1, "Terminal too small")
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
}
