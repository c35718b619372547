package factory

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player at (x, y) in Normal. It records the world's
// ethereal and metal walls so the collision and magnet systems can look them
// up per tick.
func CreatePlayer(w donburi.World, x, y, size float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	ethereal := make(map[donburi.Entity]struct{})
	var metal []donburi.Entity
	tags.Wall.Each(w, func(e *donburi.Entry) {
		body := components.StaticBody.Get(e)
		if body.Ethereal {
			ethereal[e.Entity()] = struct{}{}
		}
		if body.Metal {
			metal = append(metal, e.Entity())
		}
	})

	components.Player.SetValue(player, components.PlayerData{
		Dimension:       dimension.Normal,
		Direction:       cfg.DirectionRight,
		SpeedMultiplier: 1,
		JumpMultiplier:  1,
		EtherealObjects: ethereal,
		MetalObjects:    metal,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	profile := dimension.Normal.Profile()
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  profile.Gravity,
		Friction: cfg.Physics.Friction,
		MaxSpeed: profile.MaxSpeedX,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	attachBody(w, player, gamemath.NewRect(x, y, size, size), tags.ResolvPlayer)

	return player
}
