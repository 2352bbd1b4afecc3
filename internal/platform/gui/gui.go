// Package gui runs the game in a desktop window.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/records"
)

const (
	cellPx   = 28
	marginPx = 24
	panelPx  = 200
	tps      = 60
)

var (
	background = color.RGBA{18, 18, 24, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	frameColor = color.RGBA{102, 102, 102, 255}
	shade      = color.RGBA{0, 0, 0, 170}
)

var bindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}},
	{core.ActionRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX, ebiten.KeyK}},
	{core.ActionSoftDrop, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeySpace, ebiten.KeyJ}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
}

// Options configure a window session.
type Options struct {
	Rules  engine.Rules
	Book   *records.Book
	Logger *log.Logger
	Seed   int64
}

type state int

const (
	stateTitle state = iota
	statePlaying
	statePaused
	stateOver
)

type window struct {
	opts   Options
	logger *log.Logger
	game   *tetra.Game
	state  state
	result core.GameResult
	down   map[ebiten.Key]bool
	width  int
	height int
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := tetra.New(opts.Rules)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &window{
		opts:   opts,
		logger: logger,
		game:   g,
		down:   make(map[ebiten.Key]bool),
		width:  opts.Rules.Width*cellPx + 2*marginPx + panelPx,
		height: opts.Rules.Height*cellPx + 2*marginPx,
	}

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("Tetra")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *window) start() {
	seed := w.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sw, sh := tetra.MinScreenSize(w.opts.Rules)
	w.game.Reset(core.RuntimeConfig{ScreenW: sw, ScreenH: sh, TickRate: tps, Seed: seed})
	clear(w.down)
	w.state = statePlaying
	w.logger.Debug("window game started", "seed", seed)
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch w.state {
	case stateTitle:
		if confirmPressed() {
			w.start()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}

	case statePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || confirmPressed() {
			w.state = statePlaying
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.state = stateTitle
		}

	case stateOver:
		if confirmPressed() {
			w.start()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.state = stateTitle
		}

	case statePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			w.state = statePaused
			clear(w.down)
			return nil
		}
		w.step(w.readInput())
	}
	return nil
}

// readInput turns this tick's key edges into a frame. Keys stay held from
// their down edge until their up edge.
func (w *window) readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			switch {
			case inpututil.IsKeyJustPressed(k):
				w.down[k] = true
				frame.Set(b.action)
			case inpututil.IsKeyJustReleased(k):
				delete(w.down, k)
			}
			if w.down[k] {
				frame.Hold(b.action)
			}
		}
	}
	return frame
}

func (w *window) step(in core.InputFrame) {
	res := w.game.Step(in)
	switch {
	case res.ToMenu:
		w.state = stateTitle
	case res.Finished != nil:
		w.result = *res.Finished
		w.state = stateOver
		if w.opts.Book == nil {
			return
		}
		if _, err := w.opts.Book.Add(w.result.Score, w.result.Round, w.result.Lines); err != nil {
			w.logger.Warn("saving record failed", "error", err)
		}
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if w.state == stateTitle {
		w.drawTitle(screen)
		return
	}

	w.drawBoard(screen, w.game.Snapshot())
	w.drawPanel(screen, w.game.Snapshot())

	switch w.state {
	case statePaused:
		w.drawOverlay(screen, "PAUSED", "P resume   Esc menu")
	case stateOver:
		w.drawOverlay(screen, "GAME OVER",
			fmt.Sprintf("Score %d  Round %d  Lines %d", w.result.Score, w.result.Round, w.result.Lines),
			"Enter play again   Esc menu")
	}
}

func (w *window) drawBoard(screen *ebiten.Image, snap engine.Snapshot) {
	x0, y0 := float32(marginPx), float32(marginPx)
	bw, bh := float32(snap.Width*cellPx), float32(snap.Height*cellPx)

	for row := range snap.Height {
		for col := range snap.Width {
			x := x0 + float32(col*cellPx)
			y := y0 + float32(row*cellPx)
			if snap.Occupied(col, row) || snap.IsActive(col, row) {
				vector.DrawFilledRect(screen, x+1, y+1, cellPx-2, cellPx-2, snap.Color.RGBA(), false)
				continue
			}
			vector.StrokeRect(screen, x, y, cellPx, cellPx, 1, gridLine, false)
		}
	}
	vector.StrokeRect(screen, x0-2, y0-2, bw+4, bh+4, 2, frameColor, false)
}

func (w *window) drawPanel(screen *ebiten.Image, snap engine.Snapshot) {
	x := marginPx*2 + snap.Width*cellPx
	y := marginPx

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	for _, c := range snap.Next {
		vector.DrawFilledRect(screen,
			float32(x+c.Col*cellPx/2), float32(y+20+c.Row*cellPx/2),
			cellPx/2-1, cellPx/2-1, snap.Color.RGBA(), false)
	}

	cleared := fmt.Sprintf("CLEARED %d", snap.Cleared)
	if rpr := w.opts.Rules.RowsPerRound; rpr > 0 {
		cleared = fmt.Sprintf("CLEARED %d/%d", snap.Cleared, rpr)
	}
	lines := []string{
		fmt.Sprintf("ROUND   %d", snap.Round),
		fmt.Sprintf("SCORE   %d", snap.Score),
		cleared,
		fmt.Sprintf("LINES   %d", snap.Lines),
		"",
		"Arrows  move/rotate/drop",
		"P       pause",
		"Esc     menu",
		"Q       quit",
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+90+i*16)
	}
}

func (w *window) drawOverlay(screen *ebiten.Image, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, float32(w.width), float32(w.height), shade, false)
	y := w.height/2 - len(lines)*10
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, w.width/2-len(l)*3, y+i*20)
	}
}

func (w *window) drawTitle(screen *ebiten.Image) {
	lines := []string{"T E T R A", "", "Enter  play", "Esc    quit"}
	if w.opts.Book != nil {
		lines = append(lines, "", fmt.Sprintf("Best score: %d", w.opts.Book.Best()))
	}
	y := w.height / 3
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, w.width/2-len(l)*3, y+i*20)
	}
}

func (w *window) Layout(int, int) (int, int) {
	return w.width, w.height
}
