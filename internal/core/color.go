package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or RGB.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

var colorRGB = [...]color.RGBA{
	ColorDefault:       {200, 200, 200, 255},
	ColorRed:           {205, 49, 49, 255},
	ColorGreen:         {13, 188, 121, 255},
	ColorYellow:        {229, 229, 16, 255},
	ColorBlue:          {36, 114, 200, 255},
	ColorMagenta:       {188, 63, 188, 255},
	ColorCyan:          {17, 168, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {241, 76, 76, 255},
	ColorBrightGreen:   {35, 209, 139, 255},
	ColorBrightYellow:  {245, 245, 67, 255},
	ColorBrightBlue:    {59, 142, 234, 255},
	ColorBrightMagenta: {214, 112, 214, 255},
	ColorBrightCyan:    {41, 184, 219, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {102, 102, 102, 255},
}

// RGBA returns the color for pixel frontends. Unknown colors map to the
// default.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(colorRGB) {
		return colorRGB[c]
	}
	return colorRGB[ColorDefault]
}

// String returns the color's config name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// ParseColor looks a color up by its config name. Dashes, spaces and case
// are ignored, so "Bright-Cyan" and "bright_cyan" are the same color.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "grey" {
		key = "gray"
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
