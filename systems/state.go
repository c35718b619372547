package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// UpdateStates derives facing and the movement state from velocity. Rising
// and falling are relative to the current gravity.
func UpdateStates(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		if physics.SpeedX > 0 {
			player.Direction = cfg.DirectionRight
		} else if physics.SpeedX < 0 {
			player.Direction = cfg.DirectionLeft
		}

		next := cfg.Idle
		switch {
		case physics.SpeedY*physics.Gravity < 0:
			next = cfg.Jumping
		case !player.CanJump && physics.SpeedY != 0:
			next = cfg.Falling
		case physics.SpeedX != 0:
			next = cfg.Running
		}

		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}
