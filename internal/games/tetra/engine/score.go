package engine

// ScoreKeeper turns cleared rows into points and tracks when the round is
// due to advance.
type ScoreKeeper struct {
	rowsPerRound int

	params  RoundParams
	score   int
	cleared int
	lines   int
}

// NewScoreKeeper starts at round 1 with the given parameters.
func NewScoreKeeper(params RoundParams, rowsPerRound int) *ScoreKeeper {
	return &ScoreKeeper{params: params, rowsPerRound: rowsPerRound}
}

// Award credits c rows cleared by a single lock and returns the points
// added. Counts above four use the four-row award.
func (s *ScoreKeeper) Award(c int) int {
	if c <= 0 {
		return 0
	}
	idx := min(c, len(s.params.LinePoints)) - 1
	points := s.params.LinePoints[idx]
	s.score += points
	s.cleared += c
	s.lines += c
	return points
}

// RoundDue reports whether the rows cleared this round exceed the threshold.
func (s *ScoreKeeper) RoundDue() bool {
	return s.cleared > s.rowsPerRound
}

// Advance moves to the next round with the given parameters and resets the
// per-round cleared counter.
func (s *ScoreKeeper) Advance(params RoundParams) {
	s.params = params
	s.cleared = 0
}

// Reset returns to a fresh game.
func (s *ScoreKeeper) Reset(params RoundParams) {
	s.params = params
	s.score = 0
	s.cleared = 0
	s.lines = 0
}

// Round returns the current round number.
func (s *ScoreKeeper) Round() int {
	return s.params.Round
}

// Params returns the active round parameters.
func (s *ScoreKeeper) Params() RoundParams {
	return s.params
}

// Score returns the points earned this game.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Cleared returns the rows cleared in the current round.
func (s *ScoreKeeper) Cleared() int {
	return s.cleared
}

// Lines returns the rows cleared in the whole game.
func (s *ScoreKeeper) Lines() int {
	return s.lines
}
