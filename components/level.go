package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded level (singleton component).
type LevelData struct {
	Index  int
	Name   string
	Width  float64
	Height float64
	Start  gamemath.Vec
	Goal   gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()
