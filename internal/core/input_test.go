package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionSwapRightUp)
	if !f.Has(ActionSwapRightUp) {
		t.Error("Has should report a set action")
	}
	if f.Has(ActionSwapUp) {
		t.Error("Has should not report an unset action")
	}
	if f.Empty() {
		t.Error("Frame with an action should not be empty")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Cleared frame should be empty")
	}
	if !clone.Has(ActionSwapRightUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionHint) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionHint)
	if !f.Has(ActionHint) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestSwapActionsAreDistinct(t *testing.T) {
	seen := make(map[Action]bool)
	for _, a := range SwapActions() {
		if seen[a] {
			t.Errorf("duplicate swap action %s", a)
		}
		seen[a] = true
		if a.String() == "Unknown" {
			t.Errorf("swap action %d has no name", a)
		}
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 swap actions, got %d", len(seen))
	}
}

func TestActionString(t *testing.T) {
	if ActionHint.String() != "Hint" {
		t.Errorf("ActionHint.String() = %q", ActionHint.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("Out of range actions should be Unknown")
	}
}
