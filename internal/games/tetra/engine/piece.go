package engine

// Piece is an active tetromino: a shape, a pivot position and the shape's
// current (possibly rotated) offsets. Pieces are values; every transform
// returns a new Piece and leaves the receiver untouched.
type Piece struct {
	shape   ShapeID
	pivot   Cell
	offsets [4]Cell
}

// NewPiece places the catalog shape id with its pivot at the given cell.
func NewPiece(id ShapeID, pivot Cell) Piece {
	return Piece{shape: id, pivot: pivot, offsets: ShapeOf(id).Offsets}
}

// SpawnPiece places id at the spawn position for a grid of the given width:
// pivot column (width-1)/2, lowest block on row -1 so the piece enters
// from above the grid.
func SpawnPiece(id ShapeID, width int) Piece {
	maxRow := 0
	for _, off := range ShapeOf(id).Offsets {
		maxRow = max(maxRow, off.Row)
	}
	return NewPiece(id, C((width-1)/2, -1-maxRow))
}

// Shape returns the piece's catalog id.
func (p Piece) Shape() ShapeID {
	return p.shape
}

// Pivot returns the absolute pivot cell.
func (p Piece) Pivot() Cell {
	return p.pivot
}

// Offsets returns the current pivot-relative offsets.
func (p Piece) Offsets() [4]Cell {
	return p.offsets
}

// Cells returns the four absolute cells covered by the piece.
func (p Piece) Cells() [4]Cell {
	var out [4]Cell
	for i, off := range p.offsets {
		out[i] = p.pivot.Add(off)
	}
	return out
}

// Shifted returns the piece moved by (dCol, dRow).
func (p Piece) Shifted(dCol, dRow int) Piece {
	p.pivot = p.pivot.Add(C(dCol, dRow))
	return p
}

// Rotatable reports whether rotation applies to this shape at all.
func (p Piece) Rotatable() bool {
	return ShapeOf(p.shape).Rotatable
}

// Rotated returns the piece turned 90 degrees clockwise around its pivot.
// The square is returned unchanged.
func (p Piece) Rotated() Piece {
	if !p.Rotatable() {
		return p
	}
	for i, off := range p.offsets {
		p.offsets[i] = off.Rotated()
	}
	return p
}

// AboveGrid reports whether any cell sits above row 0.
func (p Piece) AboveGrid() bool {
	for _, c := range p.Cells() {
		if c.Row < 0 {
			return true
		}
	}
	return false
}

// Preview returns the piece's cells translated so the top-left corner of
// their bounding box is (0,0). Used to draw the next-piece panel.
func (p Piece) Preview() []Cell {
	minCol, minRow := p.offsets[0].Col, p.offsets[0].Row
	for _, off := range p.offsets[1:] {
		minCol = min(minCol, off.Col)
		minRow = min(minRow, off.Row)
	}
	out := make([]Cell, len(p.offsets))
	for i, off := range p.offsets {
		out[i] = off.Sub(C(minCol, minRow))
	}
	return out
}
