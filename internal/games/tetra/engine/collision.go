package engine

// IsInBounds reports whether every cell lies inside the side walls and above
// the floor. There is no upper bound: cells at negative rows are allowed so
// pieces can enter from above the grid.
func (g *Grid) IsInBounds(cells []Cell) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= g.width || c.Row >= g.height {
			return false
		}
	}
	return true
}

// IsOccupied reports whether any of the cells overlaps a settled block.
func (g *Grid) IsOccupied(cells []Cell) bool {
	for _, c := range cells {
		if g.Occupied(c) {
			return true
		}
	}
	return false
}

// Fits reports whether p is a valid placement: in bounds and overlapping
// nothing. Callers test a candidate and keep the previous piece on failure.
func (g *Grid) Fits(p Piece) bool {
	cells := p.Cells()
	return g.IsInBounds(cells[:]) && !g.IsOccupied(cells[:])
}

// Lock writes the piece's cells into the grid as settled blocks.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Cells() {
		g.Set(c)
	}
}
