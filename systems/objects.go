package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/yohamta/donburi"
)

// UpdateMovingPlatforms advances every oscillating entity by one tick.
func UpdateMovingPlatforms(w donburi.World) {
	components.Motion.Each(w, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		bounds := components.Bounds.Get(e)

		wave, _, _ := motion.Wave.Update(float32(motion.Speed))
		offset := float64(wave) * motion.Range

		switch motion.Axis {
		case leveldata.AxisHorizontal:
			bounds.X = motion.Origin.X + offset
		default:
			bounds.Y = motion.Origin.Y + offset
		}
		syncObject(e)
	})
}

// syncObject moves the entity's broadphase proxy to its bounds.
func syncObject(e *donburi.Entry) {
	bounds := components.Bounds.Get(e)
	obj := components.Object.Get(e)
	obj.X = bounds.X - cfg.Physics.BroadphaseMargin
	obj.Y = bounds.Y - cfg.Physics.BroadphaseMargin
	obj.Update()
}
