// Package engine implements the falling-block simulation: the settled grid,
// the piece catalog, the bag randomizer, the active piece controller, line
// clearing, scoring and round escalation.
//
// The engine is pure and deterministic for a given seed. It never blocks,
// never logs and exposes its state only through immutable Snapshot values.
package engine

import "fmt"

// Cell is a grid coordinate. Col increases to the right, Row increases
// downward. Row 0 is the top of the visible grid; an active piece may sit
// at negative rows while it falls in.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// C is a convenience constructor for Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Add returns the cell offset by other.
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Sub returns the offset from other to c.
func (c Cell) Sub(other Cell) Cell {
	return Cell{Col: c.Col - other.Col, Row: c.Row - other.Row}
}

// Rotated returns the offset turned 90 degrees clockwise around the origin.
// With rows growing downward, (dx, dy) maps to (-dy, dx).
func (c Cell) Rotated() Cell {
	return Cell{Col: -c.Row, Row: c.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
