package engine

import (
	"fmt"
	"strings"
)

// ShapeID identifies one of the seven catalog shapes.
type ShapeID uint8

const (
	ShapeI ShapeID = iota
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapeT
	ShapeO

	// ShapeCount is the number of base shapes the bag cycles through.
	ShapeCount = 7
)

var shapeNames = [ShapeCount]string{"I", "S", "Z", "J", "L", "T", "O"}

// String returns the conventional letter for the shape.
func (id ShapeID) String() string {
	if int(id) >= ShapeCount {
		return "?"
	}
	return shapeNames[id]
}

// MarshalText encodes the shape as its letter.
func (id ShapeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes a shape letter.
func (id *ShapeID) UnmarshalText(b []byte) error {
	for i, name := range shapeNames {
		if name == string(b) {
			*id = ShapeID(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown shape %q", b)
}

// Shape is an immutable catalog entry: four offsets relative to the pivot.
// Offsets[0] is always the pivot itself, (0,0).
type Shape struct {
	ID        ShapeID
	Offsets   [4]Cell
	Rotatable bool
}

// Shapes are declared as pictures. Lines start with '|'; 'X' marks the
// pivot and 'O' the other blocks. Rows grow downward.
var visualShapes = [ShapeCount]string{
	ShapeI: `
|OXOO
`,
	ShapeS: `
| XO
|OO
`,
	ShapeZ: `
|OX
| OO
`,
	ShapeJ: `
|O
|OXO
`,
	ShapeL: `
|  O
|OXO
`,
	ShapeT: `
| O
|OXO
`,
	ShapeO: `
|XO
|OO
`,
}

var catalog [ShapeCount]Shape

func init() {
	for i, v := range visualShapes {
		offsets, err := parseVisual(v)
		if err != nil {
			panic(fmt.Sprintf("engine: shape %s: %v", ShapeID(i), err))
		}
		catalog[i] = Shape{
			ID:        ShapeID(i),
			Offsets:   offsets,
			Rotatable: ShapeID(i) != ShapeO,
		}
	}
}

// Catalog returns all seven shapes in id order.
func Catalog() [ShapeCount]Shape {
	return catalog
}

// ShapeOf returns the catalog entry for id.
func ShapeOf(id ShapeID) Shape {
	return catalog[int(id)%ShapeCount]
}

// parseVisual converts a shape picture into pivot-relative offsets, pivot
// first, the remaining blocks in reading order.
func parseVisual(v string) ([4]Cell, error) {
	var out [4]Cell

	lines := make([]string, 0, 4)
	for ln := range strings.SplitSeq(strings.TrimSpace(v), "\n") {
		if !strings.HasPrefix(ln, "|") {
			continue
		}
		lines = append(lines, ln[1:])
	}

	pivot := Cell{Col: -1, Row: -1}
	for row, ln := range lines {
		for col, ch := range ln {
			if ch != 'X' {
				continue
			}
			if pivot.Col >= 0 {
				return out, fmt.Errorf("more than one pivot")
			}
			pivot = C(col, row)
		}
	}
	if pivot.Col < 0 {
		return out, fmt.Errorf("no pivot")
	}

	n := 1
	for row, ln := range lines {
		for col, ch := range ln {
			if ch != 'O' {
				continue
			}
			if n == len(out) {
				return out, fmt.Errorf("more than %d blocks", len(out))
			}
			out[n] = C(col, row).Sub(pivot)
			n++
		}
	}
	if n != len(out) {
		return out, fmt.Errorf("want %d blocks, got %d", len(out), n)
	}
	return out, nil
}
