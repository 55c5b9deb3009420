package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotate)

	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionHardDrop) {
		t.Error("unset action reported as triggered")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionLeft:     "Left",
		ActionSoftDrop: "SoftDrop",
		ActionHardDrop: "HardDrop",
		ActionRotate:   "Rotate",
		Action(99):     "Unknown",
	}

	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}

func TestKeyRepeatFires(t *testing.T) {
	r := KeyRepeat{Delay: 12, Every: 3}

	tests := []struct {
		held int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{11, false},
		{12, true},
		{13, false},
		{14, false},
		{15, true},
		{18, true},
	}

	for _, tt := range tests {
		if got := r.Fires(tt.held); got != tt.want {
			t.Errorf("Fires(%d) = %v, want %v", tt.held, got, tt.want)
		}
	}

	if (KeyRepeat{Delay: 12}).Fires(12) {
		t.Error("zero interval should never repeat")
	}
}
