package core

import "testing"

func TestInputFramePressed(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	if !f.Pressed(ActionJump) {
		t.Error("held now and not before should be a press")
	}

	f.SetPrevious(ActionJump)
	if f.Pressed(ActionJump) {
		t.Error("held on both ticks must not be a press")
	}
	if !f.Has(ActionJump) {
		t.Error("Has should report the held state")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Pressed(ActionJump) {
		t.Error("Clear should drop all actions")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.Pressed(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionQuit)
	if !f.Pressed(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestKeyTrackerRisingEdge(t *testing.T) {
	kt := NewKeyTracker()

	held := [][]Action{
		{},
		{ActionJump},
		{ActionJump},
		{ActionJump},
		{},
		{ActionJump},
	}
	expected := []bool{false, true, false, false, false, true}

	for i, h := range held {
		f := kt.Next(h...)
		if got := f.Pressed(ActionJump); got != expected[i] {
			t.Errorf("tick %d: Pressed = %v, expected %v", i, got, expected[i])
		}
	}
}

func TestKeyTrackerReset(t *testing.T) {
	kt := NewKeyTracker()
	kt.Next(ActionRestart)
	kt.Reset()
	if !kt.Next(ActionRestart).Pressed(ActionRestart) {
		t.Error("after Reset a held key should count as a fresh press")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
