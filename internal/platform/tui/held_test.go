package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func TestHeldKeysRepeatsExtendHold(t *testing.T) {
	h := newHeldKeys(releaseAfter)
	t0 := time.Unix(0, 0)

	if !h.press(core.ActionLeft, t0) {
		t.Fatal("first press should be an edge")
	}
	for i := 1; i <= 5; i++ {
		if h.press(core.ActionLeft, t0.Add(time.Duration(i)*30*time.Millisecond)) {
			t.Fatalf("repeat %d should not be an edge", i)
		}
	}

	frame := core.NewInputFrame()
	h.apply(&frame, t0.Add(200*time.Millisecond))
	if !frame.Holding(core.ActionLeft) {
		t.Error("key should still be held right after its last repeat")
	}
}

func TestHeldKeysReleaseAfterQuiet(t *testing.T) {
	h := newHeldKeys(releaseAfter)
	t0 := time.Unix(0, 0)
	h.press(core.ActionSoftDrop, t0)

	frame := core.NewInputFrame()
	h.apply(&frame, t0.Add(releaseAfter+time.Millisecond))
	if frame.Holding(core.ActionSoftDrop) {
		t.Error("key should be released after going quiet")
	}

	if !h.press(core.ActionSoftDrop, t0.Add(time.Second)) {
		t.Error("pressing again after release should be an edge")
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := newHeldKeys(releaseAfter)
	t0 := time.Unix(0, 0)
	h.press(core.ActionRight, t0)
	h.reset()

	frame := core.NewInputFrame()
	h.apply(&frame, t0)
	if frame.Holding(core.ActionRight) {
		t.Error("reset should release every key")
	}
}
