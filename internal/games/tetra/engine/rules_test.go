package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesValid(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())
}

func TestForRoundDecreasesUntilFloor(t *testing.T) {
	r := DefaultRules()
	prev := r.ForRound(1)
	assert.Equal(t, r.GravityBase, prev.Gravity)
	assert.Equal(t, r.LateralBase, prev.Lateral)

	for round := 2; round <= 12; round++ {
		p := r.ForRound(round)
		assert.Less(t, p.Gravity, prev.Gravity, "round %d", round)
		prev = p
	}

	far := r.ForRound(500)
	assert.Equal(t, r.GravityMin, far.Gravity)
	assert.Equal(t, r.LateralMin, far.Lateral)
}

func TestForRoundScalesPointsAndWrapsPalette(t *testing.T) {
	r := DefaultRules()
	p := r.ForRound(3)
	assert.Equal(t, [4]int{300, 900, 2100, 4500}, p.LinePoints)
	assert.Equal(t, r.Palette[2], p.Color)

	wrapped := r.ForRound(len(r.Palette) + 1)
	assert.Equal(t, r.Palette[0], wrapped.Color)

	assert.Equal(t, 1, r.ForRound(0).Round)
}

func TestScoreKeeperAward(t *testing.T) {
	r := DefaultRules()
	s := NewScoreKeeper(r.ForRound(2), r.RowsPerRound)

	assert.Equal(t, 0, s.Award(0))
	assert.Equal(t, 200, s.Award(1))
	assert.Equal(t, 3000, s.Award(4))
	assert.Equal(t, 3000, s.Award(6), "more than four rows pays the four-row award")
	assert.Equal(t, 11, s.Cleared())
	assert.True(t, s.RoundDue())

	s.Advance(r.ForRound(3))
	assert.Equal(t, 3, s.Round())
	assert.Equal(t, 0, s.Cleared())
	assert.Equal(t, 11, s.Lines())
	assert.Equal(t, 6200, s.Score())

	s.Reset(r.ForRound(1))
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
}

func TestValidateTiming(t *testing.T) {
	r := DefaultRules()
	r.GravityStep = -time.Millisecond
	assert.ErrorIs(t, r.Validate(), ErrBadTiming)

	r = DefaultRules()
	r.RowsPerRound = 0
	assert.ErrorIs(t, r.Validate(), ErrBadScoring)
}

func TestInputHeldIncludesPressed(t *testing.T) {
	in := Input{Pressed: CmdRotate, Held: CmdMoveLeft | CmdSoftDrop}
	assert.True(t, in.JustPressed(CmdRotate))
	assert.True(t, in.IsHeld(CmdRotate))
	assert.True(t, in.IsHeld(CmdSoftDrop))
	assert.False(t, in.JustPressed(CmdMoveLeft))
	assert.False(t, in.IsHeld(CmdMoveRight))
	assert.False(t, in.IsHeld(CmdNone))
	assert.Equal(t, "MoveLeft|SoftDrop", in.Held.String())
}
