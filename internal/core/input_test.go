package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPrimary)
	if !f.JustPressed(ActionPrimary) {
		t.Error("Primary should be pressed")
	}
	if f.Has(ActionSecondary) {
		t.Error("Secondary should not be pressed")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if f.Has(ActionPrimary) {
		t.Error("Clear should drop Primary")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report nothing pressed")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameTriState(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		x, y    int
	}{
		{"none", nil, 0, 0},
		{"left", []Action{ActionLeft}, -1, 0},
		{"right", []Action{ActionRight}, 1, 0},
		{"up", []Action{ActionUp}, 0, -1},
		{"down", []Action{ActionDown}, 0, 1},
		{"diagonal", []Action{ActionRight, ActionDown}, 1, 1},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, 0, 0},
		{"buttons ignored", []Action{ActionPrimary, ActionSecondary}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.XTri(); got != tc.x {
				t.Errorf("XTri() = %d, expected %d", got, tc.x)
			}
			if got := f.YTri(); got != tc.y {
				t.Errorf("YTri() = %d, expected %d", got, tc.y)
			}
		})
	}
}

func TestActionAndEventNames(t *testing.T) {
	if ActionSecondary.String() != "Secondary" {
		t.Errorf("ActionSecondary.String() = %q", ActionSecondary.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action = %q", Action(99).String())
	}
	if EventBlocked.String() != "Blocked" {
		t.Errorf("EventBlocked.String() = %q", EventBlocked.String())
	}
}
