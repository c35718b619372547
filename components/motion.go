package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MotionData oscillates an entity around Origin along Axis. Wave yields
// sin(phase) and is advanced by Speed degrees each tick.
type MotionData struct {
	Origin gamemath.Vec
	Axis   leveldata.Axis
	Range  float64
	Speed  float64
	Wave   *gween.Sequence
}

var Motion = donburi.NewComponentType[MotionData]()
