package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"red", ColorRed},
		{"Bright-Cyan", ColorBrightCyan},
		{" bright magenta ", ColorBrightMagenta},
		{"grey", ColorGray},
		{"orange", ColorOrange},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestColorRGBA(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.RGBA().A != 255 {
			t.Errorf("%v is not opaque", c)
		}
	}
	if ColorRed.RGBA() == ColorGreen.RGBA() {
		t.Error("distinct colors should differ")
	}
	if Color(200).RGBA() != ColorDefault.RGBA() {
		t.Error("unknown color should fall back to default")
	}
}
