package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies this tick's input intents to the player.
func UpdatePlayer(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		physics := components.Physics.Get(e)

		handleMovementInput(input, physics)
		if input.Jump {
			Jump(w, e)
		}
	})
}

func handleMovementInput(input *components.PlayerInputData, physics *components.PhysicsData) {
	accel := cfg.Player.Acceleration
	if input.MoveLeft && physics.SpeedX > -physics.MaxSpeed {
		physics.SpeedX -= accel
		if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}
	}
	if input.MoveRight && physics.SpeedX < physics.MaxSpeed {
		physics.SpeedX += accel
		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		}
	}
}

// Jump launches the player with the current dimension's impulse. It does
// nothing unless the player is grounded, and allows one jump per contact.
func Jump(w donburi.World, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if !player.CanJump {
		return false
	}

	physics := components.Physics.Get(e)
	physics.SpeedY = player.Dimension.Profile().JumpImpulse * player.JumpMultiplier
	player.CanJump = false

	state := components.State.Get(e)
	if state.CurrentState != cfg.Jumping {
		state.PreviousState = state.CurrentState
		state.CurrentState = cfg.Jumping
		state.StateTimer = 0
	}

	center := components.Bounds.Get(e).Center()
	emit(w, messages.JumpedEvent{Dimension: player.Dimension, X: center.X, Y: center.Y})
	return true
}

// UpdateTimers counts down the portal cooldown and invincibility.
func UpdateTimers(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.ShiftCooldown > 0 {
			player.ShiftCooldown--
		}
		if player.Invincible > 0 {
			player.Invincible--
		}
	})
}
