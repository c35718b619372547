package factory

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, x, y, width float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.StaticBody.SetValue(platform, components.StaticBodyData{OneWay: true})
	attachBody(w, platform, gamemath.NewRect(x, y, width, cfg.Platform.Thickness), tags.ResolvPlatform)

	return platform
}

// CreateMovingPlatform creates a platform that swings sinusoidally around
// (x, y) along axis.
func CreateMovingPlatform(w donburi.World, x, y, width float64, axis leveldata.Axis) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(w)
	components.StaticBody.SetValue(platform, components.StaticBodyData{OneWay: true})
	attachBody(w, platform, gamemath.NewRect(x, y, width, cfg.Platform.Thickness), tags.ResolvPlatform)

	components.Motion.SetValue(platform, components.MotionData{
		Origin: gamemath.Vec{X: x, Y: y},
		Axis:   axis,
		Range:  cfg.Platform.MotionRange,
		Speed:  cfg.Platform.MotionSpeed,
		Wave:   NewSineWave(),
	})

	return platform
}

// NewSineWave returns a looping sequence whose value is sin(t) for t in
// degrees, one quarter period per tween.
func NewSineWave() *gween.Sequence {
	tw := gween.NewSequence(
		gween.New(0, 1, 90, ease.OutSine),
		gween.New(1, 0, 90, ease.InSine),
		gween.New(0, -1, 90, ease.OutSine),
		gween.New(-1, 0, 90, ease.InSine),
	)
	tw.SetLoop(-1)
	return tw
}
