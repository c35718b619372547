package factory

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// CreateWall creates solid geometry. Ethereal and metal walls are walls with
// the matching flag set.
func CreateWall(w donburi.World, x, y, width, height float64, body components.StaticBodyData) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.StaticBody.SetValue(wall, body)

	resolvTags := []string{tags.ResolvSolid}
	if body.Ethereal {
		resolvTags = append(resolvTags, tags.ResolvEthereal)
	}
	if body.Metal {
		resolvTags = append(resolvTags, tags.ResolvMetal)
	}
	attachBody(w, wall, gamemath.NewRect(x, y, width, height), resolvTags...)

	return wall
}
