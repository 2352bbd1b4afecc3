package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	shapes := Catalog()
	require.Len(t, shapes, ShapeCount)

	for i, s := range shapes {
		assert.Equal(t, ShapeID(i), s.ID)
		assert.Equal(t, C(0, 0), s.Offsets[0], "%s: pivot must be the first offset", s.ID)

		seen := map[Cell]bool{}
		for _, off := range s.Offsets {
			assert.False(t, seen[off], "%s: duplicate offset %v", s.ID, off)
			seen[off] = true
		}
		assert.Equal(t, s.ID != ShapeO, s.Rotatable, "%s rotatable", s.ID)
	}
}

func TestParseVisualErrors(t *testing.T) {
	tests := []struct {
		name   string
		visual string
	}{
		{"no pivot", "|OOOO"},
		{"two pivots", "|XOX"},
		{"too few", "|XO"},
		{"too many", "|XOOOO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVisual(tt.visual)
			assert.Error(t, err)
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range Catalog() {
		p := NewPiece(s.ID, C(5, 5))
		r := p
		for range 4 {
			r = r.Rotated()
		}
		assert.Equal(t, p.Offsets(), r.Offsets(), "%s", s.ID)
		assert.Equal(t, p.Pivot(), r.Pivot(), "%s", s.ID)
	}
}

func TestSquareNeverRotates(t *testing.T) {
	p := NewPiece(ShapeO, C(3, 3))
	r := p
	for range 7 {
		r = r.Rotated()
		require.Equal(t, p, r)
	}
}

func TestRotationKeepsShape(t *testing.T) {
	p := NewPiece(ShapeT, C(4, 4))
	r := p.Rotated()

	// T pointing up turns to point right.
	want := []Cell{C(0, 0), C(1, 0), C(0, -1), C(0, 1)}
	got := r.Offsets()
	assert.ElementsMatch(t, want, got[:])

	// The receiver is untouched.
	assert.Equal(t, ShapeOf(ShapeT).Offsets, p.Offsets())
}

func TestSpawnPieceEntersFromAbove(t *testing.T) {
	for _, s := range Catalog() {
		p := SpawnPiece(s.ID, 10)
		lowest := -100
		for _, c := range p.Cells() {
			lowest = max(lowest, c.Row)
			assert.GreaterOrEqual(t, c.Col, 0)
			assert.Less(t, c.Col, 10)
		}
		assert.Equal(t, -1, lowest, "%s lowest row", s.ID)
	}
}

func TestSpawnFitsNarrowestGrid(t *testing.T) {
	g := NewGrid(MinWidth, 1)
	for _, s := range Catalog() {
		assert.True(t, g.Fits(SpawnPiece(s.ID, MinWidth)), "%s", s.ID)
	}
}

func TestPreviewNormalized(t *testing.T) {
	for _, s := range Catalog() {
		cells := NewPiece(s.ID, C(7, 7)).Preview()
		require.Len(t, cells, 4)
		minCol := slices.MinFunc(cells, func(a, b Cell) int { return a.Col - b.Col }).Col
		minRow := slices.MinFunc(cells, func(a, b Cell) int { return a.Row - b.Row }).Row
		assert.Equal(t, 0, minCol, "%s", s.ID)
		assert.Equal(t, 0, minRow, "%s", s.ID)
	}
}

func TestShapeIDUnmarshal(t *testing.T) {
	var id ShapeID
	require.NoError(t, id.UnmarshalText([]byte("T")))
	assert.Equal(t, ShapeT, id)
	assert.Error(t, id.UnmarshalText([]byte("Q")))
}
