package engine

// Grid is the table of settled cells: Height rows of exactly Width booleans.
// Row 0 is the top row.
type Grid struct {
	width  int
	height int
	rows   [][]bool
}

// NewGrid creates an empty grid. Dimensions are not validated here;
// Rules.Validate guards them before a simulation is built.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([][]bool, height)
	for r := range g.rows {
		g.rows[r] = make([]bool, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// contains reports whether c addresses a settled-cell slot.
func (g *Grid) contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Occupied reports whether the cell holds a settled block.
// Cells outside the grid are never occupied.
func (g *Grid) Occupied(c Cell) bool {
	if !g.contains(c) {
		return false
	}
	return g.rows[c.Row][c.Col]
}

// Set marks a cell as settled. Cells outside the grid are ignored, which
// drops the part of a locked piece still above row 0.
func (g *Grid) Set(c Cell) {
	if !g.contains(c) {
		return
	}
	g.rows[c.Row][c.Col] = true
}

// RowComplete reports whether every cell of row r is occupied.
func (g *Grid) RowComplete(r int) bool {
	if r < 0 || r >= g.height {
		return false
	}
	for _, filled := range g.rows[r] {
		if !filled {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row r has no occupied cells.
func (g *Grid) RowEmpty(r int) bool {
	if r < 0 || r >= g.height {
		return true
	}
	for _, filled := range g.rows[r] {
		if filled {
			return false
		}
	}
	return true
}

// removeRow deletes row r and inserts an empty row at the top. Rows above r
// shift down by one; rows below r are untouched.
func (g *Grid) removeRow(r int) {
	removed := g.rows[r]
	copy(g.rows[1:r+1], g.rows[0:r])
	clear(removed)
	g.rows[0] = removed
}

// Reset empties the grid.
func (g *Grid) Reset() {
	for _, row := range g.rows {
		clear(row)
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.rows {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the occupancy table.
func (g *Grid) Rows() [][]bool {
	out := make([][]bool, g.height)
	for r, row := range g.rows {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, rows: g.Rows()}
}

// String renders the grid with '#' for settled cells and '.' for empty ones.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for r, row := range g.rows {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
