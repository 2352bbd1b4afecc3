package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // top-left corner (inclusive)
		{29, 29, true},  // bottom-right inside
		{30, 30, false}, // bottom-right corner (exclusive)
		{5, 15, false},  // left of rect
		{15, 5, false},  // above rect
	}

	for _, tc := range tests {
		result := r.Contains(tc.x, tc.y)
		if result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset should not produce negative sizes, got %+v", tiny)
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24).Centered(20, 4)
	if r != NewRect(30, 10, 20, 4) {
		t.Errorf("Centered() = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Error("Min(3, 5) should be 3")
	}
	if Min(5, 3) != 3 {
		t.Error("Min(5, 3) should be 3")
	}
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
}
