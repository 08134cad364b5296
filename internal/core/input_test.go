package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame(ActionForward)

	if !f.Has(ActionForward) {
		t.Error("frame built with ActionForward should have it")
	}
	if f.Has(ActionJump) {
		t.Error("frame should not have ActionJump before Set")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) should be visible through Has")
	}

	f.Clear()
	if f.Has(ActionForward) || f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestActionIsMovement(t *testing.T) {
	tests := []struct {
		action   Action
		movement bool
	}{
		{ActionForward, true},
		{ActionBack, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionJump, false},
		{ActionPause, false},
		{ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsMovement(); got != tc.movement {
				t.Errorf("IsMovement() = %v, expected %v", got, tc.movement)
			}
		})
	}
}
