package engine

import "time"

// Simulation runs one game: it owns the grid, the bag, the piece controller
// and the score keeper, and advances them one tick at a time.
type Simulation struct {
	rules Rules

	grid   *Grid
	bag    *Bag
	ctrl   *Controller
	scores *ScoreKeeper

	tick uint64
}

// New validates rules and builds a simulation at round 1. The seed fixes
// the piece sequence.
func New(rules Rules, seed int64) (*Simulation, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	// Palette is shared with the caller's Rules otherwise.
	rules.Palette = append(rules.Palette[:0:0], rules.Palette...)

	params := rules.ForRound(1)
	grid := NewGrid(rules.Width, rules.Height)
	bag := NewBag(seed)
	return &Simulation{
		rules:  rules,
		grid:   grid,
		bag:    bag,
		ctrl:   NewController(grid, bag, params.Gravity, params.Lateral, rules.SoftDrop),
		scores: NewScoreKeeper(params, rules.RowsPerRound),
	}, nil
}

// Rules returns the rules the simulation was built with.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Step advances the game by one tick of elapsed time.
//
// Order within a tick: input, lateral move, rotation, gravity (with lock,
// line clear and scoring), round escalation, game-over check, snapshot.
func (s *Simulation) Step(in Input, elapsed time.Duration) Snapshot {
	s.tick++

	if in.JustPressed(CmdReturnToMenu) {
		s.Reset()
		snap := s.Snapshot()
		snap.Outcome = OutcomeMenu
		return snap
	}

	s.applyInput(in)
	s.ctrl.Lateral(elapsed)
	if in.JustPressed(CmdRotate) {
		s.ctrl.Rotate()
	}

	if lock := s.ctrl.Gravity(elapsed); lock != nil {
		if cleared := ClearLines(s.grid); len(cleared) > 0 {
			s.scores.Award(len(cleared))
		}
	}

	if s.scores.RoundDue() {
		params := s.rules.ForRound(s.scores.Round() + 1)
		s.scores.Advance(params)
		s.ctrl.SetIntervals(params.Gravity, params.Lateral)
	}

	if !s.grid.RowEmpty(0) {
		final := s.Snapshot()
		s.Reset()
		snap := s.Snapshot()
		snap.Outcome = OutcomeGameOver
		snap.FinalScore = final.Score
		snap.FinalRound = final.Round
		snap.FinalLines = final.Lines
		return snap
	}

	return s.Snapshot()
}

func (s *Simulation) applyInput(in Input) {
	for _, d := range [...]struct {
		cmd Command
		dir Direction
	}{{CmdMoveLeft, Left}, {CmdMoveRight, Right}} {
		if in.JustPressed(d.cmd) {
			s.ctrl.Press(d.dir)
		}
		if !in.IsHeld(d.cmd) {
			s.ctrl.Release(d.dir)
		}
	}

	if in.JustPressed(CmdSoftDrop) {
		s.ctrl.SetSoftDrop(true)
	}
	if !in.IsHeld(CmdSoftDrop) {
		s.ctrl.SetSoftDrop(false)
	}
}

// Reset discards the game and starts over at round 1 with an empty grid.
// The bag keeps its sequence.
func (s *Simulation) Reset() {
	params := s.rules.ForRound(1)
	s.grid.Reset()
	s.scores.Reset(params)
	s.ctrl.Reset(params.Gravity, params.Lateral)
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	cur, next := s.ctrl.Current(), s.ctrl.Next()
	cells := cur.Cells()
	params := s.scores.Params()

	return Snapshot{
		Tick:        s.tick,
		Width:       s.grid.Width(),
		Height:      s.grid.Height(),
		Grid:        s.grid.Rows(),
		Active:      cells[:],
		ActiveShape: cur.Shape(),
		Next:        next.Preview(),
		NextShape:   next.Shape(),
		Color:       params.Color,
		Round:       params.Round,
		Score:       s.scores.Score(),
		Cleared:     s.scores.Cleared(),
		Lines:       s.scores.Lines(),
	}
}

// Round returns the current round parameters.
func (s *Simulation) Round() RoundParams {
	return s.scores.Params()
}

// Controller exposes the piece controller, mainly for tests and debugging.
func (s *Simulation) Controller() *Controller {
	return s.ctrl
}

// Grid exposes the settled grid, mainly for tests and debugging.
func (s *Simulation) Grid() *Grid {
	return s.grid
}
