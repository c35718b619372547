package systems

import (
	"testing"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var room = []string{
	"##########",
	"#        #",
	"# S      #",
	"#        #",
	"##########",
}

func TestStepLandsAndJumps(t *testing.T) {
	w, player := newLevelWorld(t, room...)

	for i := 0; i < 60; i++ {
		require.Equal(t, Playing, Step(w))
	}

	assert.Equal(t, 124.0, position(player).Y)
	assert.True(t, components.Player.Get(player).CanJump)
	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)

	components.PlayerInput.Get(player).Jump = true
	Step(w)
	components.PlayerInput.Get(player).Jump = false

	assert.Equal(t, 114.0, position(player).Y)
	assert.Equal(t, -cfg.Physics.VerticalSpeedClamp, components.Physics.Get(player).SpeedY)
	assert.Equal(t, cfg.Jumping, components.State.Get(player).CurrentState)

	events := DrainEvents(w)
	require.NotEmpty(t, events)
	assert.IsType(t, messages.JumpedEvent{}, events[len(events)-1])
}

func TestStepRunsAgainstWall(t *testing.T) {
	w, player := newLevelWorld(t, room...)
	components.PlayerInput.Get(player).MoveRight = true

	for i := 0; i < 120; i++ {
		Step(w)
	}

	assert.Equal(t, 360.0-playerSize, position(player).X)
	assert.Equal(t, cfg.DirectionRight, components.Player.Get(player).Direction)
}

func TestStepOutOfBoundsLoses(t *testing.T) {
	w, player := newLevelWorld(t, room...)

	place(player, 80, -101, 0, 0)
	assert.Equal(t, Lost, EvaluateOutcome(w))

	place(player, 80, 200+cfg.Level.OutOfBounds+1, 0, 0)
	assert.Equal(t, Lost, EvaluateOutcome(w))

	place(player, 80, 80, 0, 0)
	assert.Equal(t, Playing, EvaluateOutcome(w))
}

var tallRoom = []string{
	"##########",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"#        #",
	"# S      #",
	"##########",
}

// jumpHeight settles the player on the floor of tallRoom, jumps once and
// reports how far above the floor the player rises.
func jumpHeight(t *testing.T, multiplier float64) float64 {
	t.Helper()
	w, player := newLevelWorld(t, tallRoom...)
	for i := 0; i < 30; i++ {
		Step(w)
	}
	require.True(t, components.Player.Get(player).CanJump)
	components.Player.Get(player).JumpMultiplier = multiplier

	floor := position(player).Y
	components.PlayerInput.Get(player).Jump = true
	Step(w)
	components.PlayerInput.Get(player).Jump = false

	apex := position(player).Y
	for i := 0; i < 80; i++ {
		Step(w)
		if y := position(player).Y; y < apex {
			apex = y
		}
	}
	return floor - apex
}

func TestJumpPowerupRaisesApex(t *testing.T) {
	plain := jumpHeight(t, 1)
	boosted := jumpHeight(t, cfg.Powerup.JumpMultiplier)

	assert.InDelta(t, 105.0, plain, 1e-6)
	assert.InDelta(t, 232.5, boosted, 1e-6)
	assert.Greater(t, boosted, plain)
}
