package config

import (
	"fmt"
	"image/color"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
)

// DimensionColor is the player and portal tint for a dimension.
func DimensionColor(d dimension.Dimension) color.RGBA {
	switch d {
	case dimension.Normal:
		return Blue
	case dimension.Inverse:
		return Red
	case dimension.Ethereal:
		return LightGray
	case dimension.Time:
		return Gold
	case dimension.Magnetic:
		return Purple
	}
	panic(fmt.Sprintf("config: no color for dimension %d", int(d)))
}
