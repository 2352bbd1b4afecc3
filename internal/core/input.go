package core

// Action represents a semantic input action, abstracted from physical keys.
// Games and menus work with intents rather than raw key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, k - menu navigation
	ActionDown             // S, Down arrow, j - menu navigation
	ActionLeft             // A, Left arrow, h - move piece left
	ActionRight            // D, Right arrow, l - move piece right
	ActionRotate           // W, Up arrow, x - rotate piece
	ActionSoftDrop         // S, Down arrow, Space - soft drop
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // Escape - return to menu
	ActionPause            // P - pause/unpause game
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick. Actions holds key-down
// edges seen since the previous tick; Held holds actions whose keys are
// still down. Frontends that only see key presses synthesize Held.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks a key-down edge for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action had a key-down edge this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Holding returns true if the action is down this frame, either held over
// from earlier or pressed just now.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Actions[a]
}

// Clear resets both edges and held state for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
