package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/yohamta/donburi"
)

type PortalData struct {
	Target dimension.Dimension
}

type CollectibleData struct {
	Value int
}

type HazardData struct {
	Damage int
}

type PowerupData struct {
	Effect leveldata.Effect
}

var Portal = donburi.NewComponentType[PortalData]()
var Collectible = donburi.NewComponentType[CollectibleData]()
var Hazard = donburi.NewComponentType[HazardData]()
var Powerup = donburi.NewComponentType[PowerupData]()
