package tui

import (
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// releaseAfter is how long a key may stay silent before it counts as
// released. Terminals only report presses and auto-repeats, so holding is
// inferred from the repeat stream; typical repeat gaps are 30-50ms.
const releaseAfter = 90 * time.Millisecond

// heldKeys synthesizes held state from key presses. The first press of a
// key is an edge; repeats arriving before the key goes quiet only extend
// the hold.
type heldKeys struct {
	last  map[core.Action]time.Time
	quiet time.Duration
}

func newHeldKeys(quiet time.Duration) *heldKeys {
	return &heldKeys{last: make(map[core.Action]time.Time), quiet: quiet}
}

// press records a key event and reports whether it starts a new hold.
func (h *heldKeys) press(a core.Action, now time.Time) bool {
	prev, ok := h.last[a]
	h.last[a] = now
	return !ok || now.Sub(prev) > h.quiet
}

// apply drops keys that went quiet and marks the rest held in frame.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.quiet {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}

// reset releases everything, e.g. when the game is paused.
func (h *heldKeys) reset() {
	clear(h.last)
}
