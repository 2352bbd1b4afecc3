package engine

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSim(t *testing.T, w, h int) *Simulation {
	t.Helper()
	rules := DefaultRules()
	rules.Width, rules.Height = w, h
	s, err := New(rules, 42)
	require.NoError(t, err)
	return s
}

// dropUntilLock steps with no input until the active piece settles and
// returns the snapshot of the tick that locked it.
func dropUntilLock(t *testing.T, s *Simulation) Snapshot {
	t.Helper()
	for range s.rules.Height + 8 {
		before := s.ctrl.Current()
		snap := s.Step(Input{}, s.ctrl.GravityInterval()+time.Millisecond)
		if snap.Outcome != OutcomePlaying {
			return snap
		}
		if s.ctrl.Current() != before.Shifted(0, 1) {
			return snap
		}
	}
	t.Fatal("piece never locked")
	return Snapshot{}
}

func TestNewRejectsSmallGrids(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"narrow", 3, 20, ErrGridTooNarrow},
		{"no rows", 10, 0, ErrGridTooShort},
		{"negative", -1, -1, ErrGridTooNarrow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			rules.Width, rules.Height = tt.w, tt.h
			s, err := New(rules, 1)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewRejectsBadRules(t *testing.T) {
	rules := DefaultRules()
	rules.Palette = nil
	_, err := New(rules, 1)
	assert.ErrorIs(t, err, ErrNoPalette)

	rules = DefaultRules()
	rules.SoftDrop = 0
	_, err = New(rules, 1)
	assert.ErrorIs(t, err, ErrBadTiming)

	rules = DefaultRules()
	rules.LinePoints[2] = 0
	_, err = New(rules, 1)
	assert.ErrorIs(t, err, ErrBadScoring)
}

func TestMinimumGridStarts(t *testing.T) {
	s := newTestSim(t, MinWidth, MinHeight)
	snap := s.Step(Input{}, time.Millisecond)
	assert.Equal(t, 1, snap.Round)
}

func TestInitialSnapshot(t *testing.T) {
	s := newTestSim(t, 10, 20)
	snap := s.Snapshot()

	requireShape(t, snap.Grid, 10, 20)
	assert.Len(t, snap.Active, 4)
	assert.Len(t, snap.Next, 4)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Cleared)
	assert.Equal(t, DefaultRules().Palette[0], snap.Color)
	assert.Equal(t, OutcomePlaying, snap.Outcome)
}

func TestMoveLeftAtColumnZeroThroughStep(t *testing.T) {
	s := newTestSim(t, 10, 20)
	s.ctrl.current = NewPiece(ShapeO, C(0, 3))
	before := s.ctrl.Current()

	s.Step(Input{Pressed: CmdMoveLeft}, time.Millisecond)
	for range 20 {
		s.Step(Input{Held: CmdMoveLeft}, 20*time.Millisecond)
	}

	assert.Equal(t, before.Pivot().Col, s.ctrl.Current().Pivot().Col)
	assert.Equal(t, 0, s.Grid().Count())
}

func TestSingleLineScoresRoundOne(t *testing.T) {
	s := newTestSim(t, 10, 20)
	fillRow(s.grid, 19, 3, 4, 5, 6)
	s.ctrl.current = SpawnPiece(ShapeI, 10)

	snap := dropUntilLock(t, s)

	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 1, snap.Cleared)
	assert.Equal(t, 1, snap.Lines)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 0, s.Grid().Count())
}

func TestFourLinesScore(t *testing.T) {
	s := newTestSim(t, 10, 20)
	for r := 16; r < 20; r++ {
		fillRow(s.grid, r, 9)
	}
	s.ctrl.current = NewPiece(ShapeI, C(4, 5)).Rotated().Shifted(5, 0)

	snap := dropUntilLock(t, s)

	assert.Equal(t, 1500, snap.Score)
	assert.Equal(t, 4, snap.Cleared)
	assert.Equal(t, 0, s.Grid().Count())
}

func TestRoundAdvancesAfterElevenRows(t *testing.T) {
	s := newTestSim(t, 10, 20)
	startGravity := s.Round().Gravity
	startLateral := s.Round().Lateral

	var snap Snapshot
	for i := range 11 {
		fillRow(s.grid, 19, 3, 4, 5, 6)
		s.ctrl.current = SpawnPiece(ShapeI, 10)
		snap = dropUntilLock(t, s)
		if i < 10 {
			require.Equal(t, 1, snap.Round, "clear %d", i+1)
			require.Equal(t, i+1, snap.Cleared)
		}
	}

	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, 0, snap.Cleared)
	assert.Equal(t, 11, snap.Lines)
	assert.Equal(t, 1100, snap.Score)
	assert.Less(t, s.Round().Gravity, startGravity)
	assert.Less(t, s.Round().Lateral, startLateral)
	assert.Less(t, s.Controller().GravityInterval(), startGravity)
	assert.Equal(t, DefaultRules().Palette[1], snap.Color)
	assert.Equal(t, [4]int{200, 600, 1400, 3000}, s.Round().LinePoints)
}

func TestLockOnRowZeroResetsGame(t *testing.T) {
	s := newTestSim(t, 10, 2)
	s.scores.score = 900
	s.scores.params = s.rules.ForRound(3)
	s.scores.cleared = 4

	// First I lands on row 1, second on row 0.
	s.ctrl.current = SpawnPiece(ShapeI, 10)
	s.ctrl.next = SpawnPiece(ShapeI, 10)
	first := dropUntilLock(t, s)
	require.Equal(t, OutcomePlaying, first.Outcome)
	require.False(t, first.Grid[0][4])

	over := dropUntilLock(t, s)
	require.Equal(t, OutcomeGameOver, over.Outcome)
	assert.Equal(t, 900, over.FinalScore)
	assert.Equal(t, 3, over.FinalRound)

	assert.Equal(t, 1, over.Round)
	assert.Equal(t, 0, over.Score)
	assert.Equal(t, 0, over.Cleared)
	assert.Equal(t, 0, s.Grid().Count())
	assert.Equal(t, DefaultRules().GravityBase, s.Controller().GravityInterval())

	// The game carries on after the reset.
	next := s.Step(Input{}, time.Millisecond)
	assert.Equal(t, OutcomePlaying, next.Outcome)
}

func TestTenLocksWithoutClearKeepScore(t *testing.T) {
	s := newTestSim(t, 10, 40)

	for i := range 10 {
		snap := dropUntilLock(t, s)
		require.Equal(t, OutcomePlaying, snap.Outcome, "lock %d", i+1)
	}

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 40, s.Grid().Count())
}

func TestReturnToMenuDiscardsGame(t *testing.T) {
	s := newTestSim(t, 10, 20)
	fillRow(s.grid, 19, 0)
	s.scores.score = 300

	snap := s.Step(Input{Pressed: CmdReturnToMenu}, time.Millisecond)

	assert.Equal(t, OutcomeMenu, snap.Outcome)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 0, s.Grid().Count())
}

func TestSoftDropReleasedThroughStep(t *testing.T) {
	s := newTestSim(t, 10, 20)

	s.Step(Input{Pressed: CmdSoftDrop}, time.Millisecond)
	assert.True(t, s.ctrl.SoftDropping())

	s.Step(Input{Held: CmdSoftDrop}, time.Millisecond)
	assert.True(t, s.ctrl.SoftDropping())

	s.Step(Input{}, time.Millisecond)
	assert.False(t, s.ctrl.SoftDropping())
	assert.Equal(t, s.Round().Gravity, s.ctrl.GravityInterval())
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		s := newTestSim(t, 10, 20)
		rng := rand.New(rand.NewSource(99))
		out := make([]Snapshot, 0, 600)
		for range 600 {
			out = append(out, s.Step(randomInput(rng), 16*time.Millisecond))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func randomInput(rng *rand.Rand) Input {
	var in Input
	for _, c := range []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdRotate} {
		switch rng.Intn(6) {
		case 0:
			in.Pressed |= c
		case 1, 2:
			in.Held |= c
		}
	}
	return in
}

// matchesCatalog reports whether offsets equal some rotation of the shape.
func matchesCatalog(p Piece) bool {
	want := NewPiece(p.Shape(), C(0, 0))
	for range 4 {
		if want.Offsets() == p.Offsets() {
			return true
		}
		want = want.Rotated()
	}
	return false
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	s := newTestSim(t, 8, 16)
	rng := rand.New(rand.NewSource(2024))
	overs := 0

	for i := range 20000 {
		snap := s.Step(randomInput(rng), 16*time.Millisecond)
		if snap.Outcome == OutcomeGameOver {
			overs++
		}

		requireShape(t, snap.Grid, 8, 16)
		require.Len(t, snap.Active, 4, "tick %d", i)
		require.True(t, matchesCatalog(s.ctrl.Current()), "tick %d: %v", i, s.ctrl.Current())
		require.True(t, s.grid.Fits(s.ctrl.Current()), "tick %d: active piece overlaps", i)
		require.GreaterOrEqual(t, snap.Round, 1)
	}
	assert.Positive(t, overs, "random play should top out at least once")
}

func TestSnapshotIsolated(t *testing.T) {
	s := newTestSim(t, 10, 20)
	snap := s.Snapshot()
	snap.Grid[19][0] = true
	snap.Active[0] = C(99, 99)

	assert.Equal(t, 0, s.Grid().Count())
	assert.NotEqual(t, C(99, 99), s.ctrl.Current().Cells()[0])
}
