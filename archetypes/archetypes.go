package archetypes

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Bounds,
		components.StaticBody,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Bounds,
		components.StaticBody,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Bounds,
		components.StaticBody,
		components.Object,
		components.Motion,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Bounds,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Bounds,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Bounds,
		components.Object,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Bounds,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Bounds,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Events,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
