package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Grid limits. Every shape is at most four columns wide.
const (
	MinWidth  = 4
	MinHeight = 1
)

// Configuration errors. They are fatal: New refuses to build a simulation.
var (
	ErrGridTooNarrow = errors.New("grid narrower than the widest piece")
	ErrGridTooShort  = errors.New("grid has no rows")
	ErrBadTiming     = errors.New("timing intervals must be positive")
	ErrNoPalette     = errors.New("palette is empty")
	ErrBadScoring    = errors.New("scoring table must be positive")
)

// Rules holds everything a simulation needs to know about its board and
// pacing. It is built once from configuration and passed in explicitly.
type Rules struct {
	Width  int
	Height int

	// Gravity interval for round r is max(GravityMin, GravityBase-(r-1)*GravityStep).
	GravityBase time.Duration
	GravityStep time.Duration
	GravityMin  time.Duration

	// Lateral auto-repeat interval, scaled the same way.
	LateralBase time.Duration
	LateralStep time.Duration
	LateralMin  time.Duration

	// SoftDrop replaces the gravity interval while soft drop is held.
	SoftDrop time.Duration

	// LinePoints[c-1] is the round-1 award for clearing c rows at once.
	LinePoints [4]int

	// RowsPerRound is the cleared-row count a round must exceed to advance.
	RowsPerRound int

	// Palette is indexed by round, wrapping around.
	Palette []core.Color
}

// DefaultRules returns the standard 10x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:        10,
		Height:       20,
		GravityBase:  800 * time.Millisecond,
		GravityStep:  60 * time.Millisecond,
		GravityMin:   100 * time.Millisecond,
		LateralBase:  150 * time.Millisecond,
		LateralStep:  10 * time.Millisecond,
		LateralMin:   50 * time.Millisecond,
		SoftDrop:     25 * time.Millisecond,
		LinePoints:   [4]int{100, 300, 700, 1500},
		RowsPerRound: 10,
		Palette: []core.Color{
			core.ColorBrightCyan,
			core.ColorBrightYellow,
			core.ColorBrightMagenta,
			core.ColorBrightGreen,
			core.ColorBrightRed,
			core.ColorBrightBlue,
			core.ColorOrange,
		},
	}
}

// Validate reports configuration that would make the simulation unplayable.
func (r Rules) Validate() error {
	if r.Width < MinWidth {
		return fmt.Errorf("%w: width %d < %d", ErrGridTooNarrow, r.Width, MinWidth)
	}
	if r.Height < MinHeight {
		return fmt.Errorf("%w: height %d < %d", ErrGridTooShort, r.Height, MinHeight)
	}
	if r.GravityBase <= 0 || r.GravityMin <= 0 || r.LateralBase <= 0 || r.LateralMin <= 0 || r.SoftDrop <= 0 {
		return ErrBadTiming
	}
	if r.GravityStep < 0 || r.LateralStep < 0 {
		return fmt.Errorf("%w: negative step", ErrBadTiming)
	}
	for _, p := range r.LinePoints {
		if p <= 0 {
			return ErrBadScoring
		}
	}
	if r.RowsPerRound < 1 {
		return fmt.Errorf("%w: rows per round %d", ErrBadScoring, r.RowsPerRound)
	}
	if len(r.Palette) == 0 {
		return ErrNoPalette
	}
	return nil
}

// RoundParams are the values recomputed whenever the round changes.
type RoundParams struct {
	Round      int
	Gravity    time.Duration
	Lateral    time.Duration
	LinePoints [4]int
	Color      core.Color
}

// ForRound derives the pacing, scoring table and color for round r (r >= 1).
func (r Rules) ForRound(round int) RoundParams {
	if round < 1 {
		round = 1
	}
	steps := time.Duration(round - 1)

	p := RoundParams{
		Round:   round,
		Gravity: max(r.GravityMin, r.GravityBase-steps*r.GravityStep),
		Lateral: max(r.LateralMin, r.LateralBase-steps*r.LateralStep),
		Color:   r.Palette[(round-1)%len(r.Palette)],
	}
	for i, pts := range r.LinePoints {
		p.LinePoints[i] = pts * round
	}
	return p
}
