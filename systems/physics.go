package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies the current dimension's profile, magnetic pull,
// gravity and friction to the player's velocity.
func UpdatePhysics(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		profile := player.Dimension.Profile()
		physics.Gravity = profile.Gravity
		physics.MaxSpeed = profile.MaxSpeedX * player.SpeedMultiplier

		if player.Dimension == dimension.Magnetic {
			pull := magneticPull(w, e)
			physics.SpeedX += pull.X
			physics.SpeedY += pull.Y
		}

		physics.SpeedY += physics.Gravity
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, verticalLimit(player, physics))

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction, cfg.Physics.StopThreshold)
	})
}

// magneticPull sums the attraction of every metal object the player knows.
func magneticPull(w donburi.World, e *donburi.Entry) gamemath.Vec {
	player := components.Player.Get(e)
	center := components.Bounds.Get(e).Center()

	var total gamemath.Vec
	for _, metal := range player.MetalObjects {
		if !w.Valid(metal) {
			continue
		}
		target := components.Bounds.Get(w.Entry(metal)).Center()
		total = total.Add(gamemath.Attraction(center, target, cfg.Magnet.Strength, cfg.Magnet.MinDistance))
	}
	return total
}

// verticalLimit is the speed clamp for this tick. Rising against gravity
// the jump multiplier raises it, so a jump powerup carries the player higher.
func verticalLimit(player *components.PlayerData, physics *components.PhysicsData) float64 {
	limit := cfg.Physics.VerticalSpeedClamp
	if physics.SpeedY*physics.Gravity < 0 && player.JumpMultiplier > 1 {
		limit *= player.JumpMultiplier
	}
	return limit
}
