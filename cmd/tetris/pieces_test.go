package main

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestDrawRotations(t *testing.T) {
	lines := drawRotations(tetris.MustShape(".#.", "###", "..."))

	want := []string{
		".#.   .#.   ...   .#.",
		"###   .##   ###   ##.",
		"...   .#.   .#.   .#.",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}
