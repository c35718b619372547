package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BoundsData is the exact collision box of an entity. Seq is the spawn order,
// used to resolve contacts in layout order.
type BoundsData struct {
	gamemath.Rect
	Seq int
}

var Bounds = donburi.NewComponentType[BoundsData]()
