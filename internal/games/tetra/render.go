package tetra

import (
	"fmt"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// Layout constants. Each grid cell is two characters wide so blocks look
// square in a terminal.
const (
	cellW  = 2
	panelW = 20
	gap    = 2
)

const (
	blockRune = '█'
	emptyRune = '·'
)

var legend = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"p    pause",
	"esc  menu",
	"q    quit",
}

// MinScreenSize returns the smallest screen that fits the board and panel.
func MinScreenSize(rules engine.Rules) (w, h int) {
	w = rules.Width*cellW + 2 + gap + panelW
	h = max(rules.Height+2, 10+len(legend))
	return w, h
}

func sizeHint(w, h int) string {
	return fmt.Sprintf("Need at least %dx%d", w, h)
}

// RenderSnapshot draws a board with its side panel, centered on dst.
// rowsPerRound is only used for the cleared-rows counter; 0 hides the target.
func RenderSnapshot(dst *core.Screen, snap engine.Snapshot, rowsPerRound int) {
	boardW := snap.Width*cellW + 2
	boardH := snap.Height + 2
	totalW := boardW + gap + panelW

	area := dst.Bounds().Centered(totalW, max(boardH, 10+len(legend)))
	bx, by := area.X, area.Y

	dst.DrawBoxColored(core.NewRect(bx, by, boardW, boardH), core.ColorGray)
	for row := range snap.Height {
		for col := range snap.Width {
			x := bx + 1 + col*cellW
			y := by + 1 + row
			switch {
			case snap.Occupied(col, row) || snap.IsActive(col, row):
				drawBlock(dst, x, y, snap.Color)
			default:
				dst.SetColored(x, y, ' ', core.ColorDefault)
				dst.SetColored(x+1, y, emptyRune, core.ColorGray)
			}
		}
	}

	renderPanel(dst, snap, rowsPerRound, bx+boardW+gap, by)
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, blockRune, c)
	dst.SetColored(x+1, y, blockRune, c)
}

func renderPanel(dst *core.Screen, snap engine.Snapshot, rowsPerRound, x, y int) {
	dst.DrawTextColored(x, y, "NEXT", core.ColorBrightWhite)
	for _, c := range snap.Next {
		drawBlock(dst, x+1+c.Col*cellW, y+1+c.Row, snap.Color)
	}

	cleared := fmt.Sprintf("CLEARED %d", snap.Cleared)
	if rowsPerRound > 0 {
		cleared = fmt.Sprintf("CLEARED %d/%d", snap.Cleared, rowsPerRound)
	}
	stats := []string{
		fmt.Sprintf("ROUND   %d", snap.Round),
		fmt.Sprintf("SCORE   %d", snap.Score),
		cleared,
		fmt.Sprintf("LINES   %d", snap.Lines),
	}
	for i, s := range stats {
		dst.DrawText(x, y+4+i, s)
	}

	for i, s := range legend {
		dst.DrawTextColored(x, y+4+len(stats)+1+i, s, core.ColorGray)
	}
}
