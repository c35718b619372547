package factory

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
