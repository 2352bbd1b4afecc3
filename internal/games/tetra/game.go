// Package tetra adapts the falling-block engine to the platform: it maps
// input frames to engine commands, drives the simulation at the platform
// tick rate and draws snapshots onto a core.Screen.
package tetra

import (
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
)

// ID is the game identifier used for records and spectator streams.
const ID = "tetra"

// Game implements the tetra game on top of engine.Simulation.
type Game struct {
	rules engine.Rules
	sim   *engine.Simulation
	snap  engine.Snapshot

	tickDur time.Duration

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Invalid rules are rejected here so Reset cannot fail.
func New(rules engine.Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Game{rules: rules}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetra" }

// Rules returns the rules the game was built with.
func (g *Game) Rules() engine.Rules { return g.rules }

// Reset starts a fresh simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)

	// rules were validated by New
	sim, _ := engine.New(g.rules, cfg.Seed)
	g.sim = sim
	g.snap = sim.Snapshot()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size the game renders into.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	needW, needH := MinScreenSize(g.rules)
	g.tooSmall = w < needW || h < needH
}

// Step advances the simulation by one platform tick. Nothing moves while
// the screen is too small to show the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall && !in.Has(core.ActionBack) {
		return core.StepResult{State: g.State()}
	}

	g.snap = g.sim.Step(Commands(in), g.tickDur)

	res := core.StepResult{State: g.State()}
	switch g.snap.Outcome {
	case engine.OutcomeGameOver:
		res.State.GameOver = true
		res.Finished = &core.GameResult{
			Score: g.snap.FinalScore,
			Round: g.snap.FinalRound,
			Lines: g.snap.FinalLines,
		}
	case engine.OutcomeMenu:
		res.ToMenu = true
	}
	return res
}

// Commands translates platform actions into engine commands.
func Commands(in core.InputFrame) engine.Input {
	var out engine.Input
	for _, m := range actionCommands {
		if in.Has(m.action) {
			out.Pressed |= m.cmd
		}
		if in.Holding(m.action) {
			out.Held |= m.cmd
		}
	}
	return out
}

var actionCommands = [...]struct {
	action core.Action
	cmd    engine.Command
}{
	{core.ActionLeft, engine.CmdMoveLeft},
	{core.ActionRight, engine.CmdMoveRight},
	{core.ActionRotate, engine.CmdRotate},
	{core.ActionSoftDrop, engine.CmdSoftDrop},
	{core.ActionBack, engine.CmdReturnToMenu},
	{core.ActionQuit, engine.CmdQuit},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.tooSmall {
		needW, needH := MinScreenSize(g.rules)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, sizeHint(needW, needH))
		return
	}
	RenderSnapshot(dst, g.snap, g.rules.RowsPerRound)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Round:    g.snap.Round,
		Lines:    g.snap.Lines,
		GameOver: g.snap.Outcome == engine.OutcomeGameOver,
	}
}

// Snapshot returns the state after the latest tick.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}
