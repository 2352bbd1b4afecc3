package engine

import (
	"slices"
	"time"
)

// Direction is a lateral movement direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Phase is the controller's position in the fall/lock/spawn cycle.
// Locking and Spawning only last for the duration of the Gravity call
// that touched down.
type Phase int

const (
	Falling Phase = iota
	Locking
	Spawning
)

func (p Phase) String() string {
	switch p {
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case Spawning:
		return "spawning"
	default:
		return "unknown"
	}
}

// LockEvent describes a piece that has just settled.
type LockEvent struct {
	Piece Piece
}

// Controller owns the current and next pieces and applies lateral moves,
// rotation, gravity and the lock-and-respawn cycle against a grid.
type Controller struct {
	grid *Grid
	bag  *Bag

	current Piece
	next    Piece
	phase   Phase

	// dirs is the stack of held directions; the last element wins.
	dirs         []Direction
	lateralTimer time.Duration
	gravityTimer time.Duration
	softDrop     bool

	gravity  time.Duration
	lateral  time.Duration
	softStep time.Duration
}

// NewController draws the first two pieces from bag and spawns the first.
func NewController(grid *Grid, bag *Bag, gravity, lateral, softDrop time.Duration) *Controller {
	c := &Controller{
		grid:     grid,
		bag:      bag,
		dirs:     make([]Direction, 0, 2),
		gravity:  gravity,
		lateral:  lateral,
		softStep: softDrop,
	}
	c.current = SpawnPiece(bag.Next(), grid.Width())
	c.next = SpawnPiece(bag.Next(), grid.Width())
	return c
}

// Current returns the active piece.
func (c *Controller) Current() Piece {
	return c.current
}

// Next returns the piece that will spawn after the current one locks.
func (c *Controller) Next() Piece {
	return c.next
}

// Phase returns the controller phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SetIntervals installs the round's gravity and lateral repeat intervals.
func (c *Controller) SetIntervals(gravity, lateral time.Duration) {
	c.gravity = gravity
	c.lateral = lateral
}

// GravityInterval returns the interval gravity is currently measured
// against, which is the soft-drop interval while soft drop is latched.
func (c *Controller) GravityInterval() time.Duration {
	if c.softDrop {
		return c.softStep
	}
	return c.gravity
}

// LateralInterval returns the round's auto-repeat interval.
func (c *Controller) LateralInterval() time.Duration {
	return c.lateral
}

// Press records a key-down for dir. It becomes the active direction and the
// next Lateral call moves immediately.
func (c *Controller) Press(dir Direction) {
	c.dirs = slices.DeleteFunc(c.dirs, func(d Direction) bool { return d == dir })
	c.dirs = append(c.dirs, dir)
	c.lateralTimer = c.lateral
}

// Release records a key-up for dir. If it was the active direction the
// previously pressed, still-held direction takes over.
func (c *Controller) Release(dir Direction) {
	c.dirs = slices.DeleteFunc(c.dirs, func(d Direction) bool { return d == dir })
}

// ActiveDirection returns the most recently pressed held direction.
func (c *Controller) ActiveDirection() (Direction, bool) {
	if len(c.dirs) == 0 {
		return 0, false
	}
	return c.dirs[len(c.dirs)-1], true
}

// Lateral advances the repeat timer and moves the piece one column in the
// active direction when the timer is due. It reports whether the piece moved.
func (c *Controller) Lateral(elapsed time.Duration) bool {
	dir, ok := c.ActiveDirection()
	if !ok {
		c.lateralTimer = 0
		return false
	}
	c.lateralTimer += elapsed
	if c.lateralTimer < c.lateral {
		return false
	}
	c.lateralTimer = 0
	return c.try(c.current.Shifted(int(dir), 0))
}

// Rotate attempts a clockwise turn. The square never rotates, and a turn
// that would push any cell above row 0 is rejected.
func (c *Controller) Rotate() bool {
	if !c.current.Rotatable() {
		return false
	}
	candidate := c.current.Rotated()
	if candidate.AboveGrid() {
		return false
	}
	return c.try(candidate)
}

// SetSoftDrop latches soft drop on a key-down and clears it on release.
func (c *Controller) SetSoftDrop(on bool) {
	c.softDrop = on
}

// SoftDropping reports whether soft drop is latched.
func (c *Controller) SoftDropping() bool {
	return c.softDrop
}

// Gravity advances the gravity timer. When the timer exceeds the interval
// the piece tries to descend one row; if it cannot, it locks in place, the
// next piece spawns and a new next piece is drawn. The returned event is
// non-nil only when a lock happened.
func (c *Controller) Gravity(elapsed time.Duration) *LockEvent {
	c.gravityTimer += elapsed
	if c.gravityTimer <= c.GravityInterval() {
		return nil
	}
	c.gravityTimer = 0

	if c.try(c.current.Shifted(0, 1)) {
		return nil
	}

	c.phase = Locking
	locked := c.current
	c.grid.Lock(locked)

	c.phase = Spawning
	c.current = c.next
	c.next = SpawnPiece(c.bag.Next(), c.grid.Width())
	c.gravityTimer = 0
	c.lateralTimer = 0
	c.softDrop = false

	c.phase = Falling
	return &LockEvent{Piece: locked}
}

// Reset discards both pieces and all timers and spawns fresh pieces.
func (c *Controller) Reset(gravity, lateral time.Duration) {
	c.dirs = c.dirs[:0]
	c.lateralTimer = 0
	c.gravityTimer = 0
	c.softDrop = false
	c.phase = Falling
	c.SetIntervals(gravity, lateral)
	c.current = SpawnPiece(c.bag.Next(), c.grid.Width())
	c.next = SpawnPiece(c.bag.Next(), c.grid.Width())
}

// try adopts candidate if it fits the grid.
func (c *Controller) try(candidate Piece) bool {
	if !c.grid.Fits(candidate) {
		return false
	}
	c.current = candidate
	return true
}
