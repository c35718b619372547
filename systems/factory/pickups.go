package factory

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

func CreatePortal(w donburi.World, x, y, size float64, target dimension.Dimension) *donburi.Entry {
	portal := archetypes.Portal.Spawn(w)
	components.Portal.SetValue(portal, components.PortalData{Target: target})
	attachBody(w, portal, gamemath.NewRect(x, y, size, size), tags.ResolvPortal)
	return portal
}

// CreateCollectible creates a pickup centred in the tile at (x, y).
func CreateCollectible(w donburi.World, x, y, tile float64) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(w)
	components.Collectible.SetValue(collectible, components.CollectibleData{Value: cfg.Collectible.Value})
	attachBody(w, collectible, gamemath.NewRect(x+tile/4, y+tile/4, tile/2, tile/2), tags.ResolvCollectible)
	return collectible
}

func CreateHazard(w donburi.World, x, y, size float64, damage int) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)
	components.Hazard.SetValue(hazard, components.HazardData{Damage: damage})
	attachBody(w, hazard, gamemath.NewRect(x, y, size, size), tags.ResolvHazard)
	return hazard
}

func CreatePowerup(w donburi.World, x, y, size float64, effect leveldata.Effect) *donburi.Entry {
	powerup := archetypes.Powerup.Spawn(w)
	components.Powerup.SetValue(powerup, components.PowerupData{Effect: effect})
	attachBody(w, powerup, gamemath.NewRect(x, y, size, size), tags.ResolvPowerup)
	return powerup
}
