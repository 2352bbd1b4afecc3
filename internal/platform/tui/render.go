package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// colorCodes maps core.Color to terminal color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Styles holds every lipgloss style of the frontend, bound to one renderer.
// SSH sessions each get their own renderer so colors match the client.
type Styles struct {
	cells map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
	Empty    lipgloss.Style
	Frame    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
}

// NewStyles builds the styles for r. A nil renderer means the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	s := Styles{cells: make(map[core.Color]lipgloss.Style, len(colorCodes)+1)}
	s.cells[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		s.cells[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	s.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	s.Dim = r.NewStyle().Foreground(lipgloss.Color("241"))
	s.Help = r.NewStyle().Foreground(lipgloss.Color("241"))
	s.Empty = r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	s.Frame = r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	s.Accent = r.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	s.Selected = r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	s.Header = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	return s
}

func (s Styles) cell(c core.Color) lipgloss.Style {
	if style, ok := s.cells[c]; ok {
		return style
	}
	return s.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (s Styles) RenderScreen(scr *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	var run strings.Builder
	for y := range scr.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < scr.Width() {
			color := scr.GetCell(x, y).Color
			run.Reset()
			for x < scr.Width() {
				cell := scr.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(s.cell(color).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
