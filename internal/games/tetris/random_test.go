package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorStaysInRange(t *testing.T) {
	sel := NewSelector(42)
	seen := map[int]bool{}
	for range 1000 {
		v := sel.Next(1, 7)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 7, "every index should come up")
}

func TestSelectorSeedIsReproducible(t *testing.T) {
	a, b := NewSelector(99), NewSelector(99)
	for range 50 {
		assert.Equal(t, a.Next(1, 7), b.Next(1, 7))
	}
}

func TestSelectorSingleValue(t *testing.T) {
	assert.Equal(t, 1, NewSelector(3).Next(1, 1))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "move", StateMove.String())
	assert.Equal(t, "aborted", StateAborted.String())
	assert.True(t, StateEnd.Terminal())
	assert.False(t, StatePause.Terminal())
	assert.Equal(t, "board_full", OutcomeBoardFull.String())
}
