package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", f.Len())
	}
	if !f.Has(ActionRotate) || f.Has(ActionDown) {
		t.Error("Has() does not match recorded actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.Clear()

	if f.Len() != 0 || f.Has(ActionQuit) {
		t.Error("Clear() should drop every action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionLeft, "Left"},
		{ActionRotate, "Rotate"},
		{ActionConfirm, "Confirm"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestGameStateOutcome(t *testing.T) {
	tests := []struct {
		state    GameState
		outcome  string
		finished bool
	}{
		{GameState{}, "none", false},
		{GameState{Paused: true}, "none", false},
		{GameState{GameOver: true}, "board_full", true},
		{GameState{Aborted: true}, "aborted", true},
	}
	for _, tc := range tests {
		if got := tc.state.Outcome(); got != tc.outcome {
			t.Errorf("%+v Outcome() = %q, expected %q", tc.state, got, tc.outcome)
		}
		if got := tc.state.Finished(); got != tc.finished {
			t.Errorf("%+v Finished() = %v, expected %v", tc.state, got, tc.finished)
		}
	}
}

func TestInputFrameActionsIsCopy(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	got := f.Actions()

	f.Clear()
	f.Set(ActionQuit)

	if len(got) != 1 || got[0] != ActionLeft {
		t.Errorf("Actions() result changed after Clear/Set: %v", got)
	}
	if f.Actions()[0] != ActionQuit {
		t.Errorf("Actions()[0] = %v, expected Quit", f.Actions()[0])
	}
}
