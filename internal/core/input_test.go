package core

import "testing"

func TestInputFrameEdgesAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.Hold(ActionLeft)

	if !f.Has(ActionRotate) || !f.Holding(ActionRotate) {
		t.Error("a pressed action is also held")
	}
	if f.Has(ActionLeft) {
		t.Error("held action is not an edge")
	}
	if !f.Holding(ActionLeft) {
		t.Error("expected ActionLeft held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionRotate) || f.Holding(ActionLeft) {
		t.Error("Clear should drop edges and held state")
	}
	if !clone.Has(ActionRotate) || !clone.Holding(ActionLeft) {
		t.Error("Clone should be independent")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) || f.Holding(ActionConfirm) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionConfirm)
	f.Hold(ActionSoftDrop)
	if !f.Has(ActionConfirm) || !f.Holding(ActionSoftDrop) {
		t.Error("zero frame should accept actions")
	}
}
