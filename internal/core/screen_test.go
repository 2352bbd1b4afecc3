package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d,%d) = %+v, expected uncolored space", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '█', ColorBrightCyan)

	c := s.GetCell(2, 1)
	if c.Rune != '█' || c.Color != ColorBrightCyan {
		t.Errorf("GetCell(2, 1) = %+v", c)
	}
	if s.Get(2, 1) != '█' {
		t.Errorf("Get(2, 1) = %q", s.Get(2, 1))
	}

	// Plain Set resets the color.
	s.Set(2, 1, 'x')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should clear the color")
	}

	// Out of bounds is ignored and reads back as space.
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(0, 9, 'A', ColorRed)
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return space")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "Round", ColorYellow)

	if s.Row(0) != "     Rou" {
		t.Errorf("Row(0) = %q, expected clipping at the right edge", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorYellow {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▶ go")

	if s.Get(3, 0) != '▶' {
		t.Errorf("Row(0) = %q, expected text to start at column 3", s.Row(0))
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘',
	}
	for pos, want := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != want || c.Color != ColorGray {
			t.Errorf("corner %v = %+v, expected %q gray", pos, c, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.Get(0, 0) != ' ' {
		t.Error("1x1 box should not be drawn")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 2, 3), '#')

	got := s.String()
	expected := strings.Join([]string{
		"      ",
		" ##   ",
		" ##   ",
		" ##   ",
		"      ",
		"      ",
	}, "\n")
	if got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)

	s.Resize(4, 2)
	if s.Row(0) != "Hell" {
		t.Errorf("Row(0) = %q after shrinking", s.Row(0))
	}

	s.Resize(12, 6)
	if !strings.HasPrefix(s.Row(0), "Hell ") {
		t.Errorf("Row(0) = %q after growing", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("resize should keep colors")
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Error("out of bounds row should be blank")
	}
}
