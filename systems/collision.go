package systems

import (
	"sort"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions moves the player along x then y, resolving each axis
// against level geometry before the next.
func UpdateCollisions(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		resolveHorizontalCollision(e)
		resolveVerticalCollision(e)
	})
}

// resolveHorizontalCollision pushes the player flush against the near face of
// any wall it moved into. Ethereal walls are skipped while Ethereal.
func resolveHorizontalCollision(e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	bounds := components.Bounds.Get(e)

	bounds.X += physics.SpeedX
	syncObject(e)

	for _, wall := range contacts(e, tags.ResolvSolid) {
		if player.PassesThrough(wall.Entity()) {
			continue
		}
		box := components.Bounds.Get(wall)
		if physics.SpeedX > 0 {
			bounds.X = box.X - bounds.W
		} else if physics.SpeedX < 0 {
			bounds.X = box.Right()
		}
		physics.SpeedX = 0
	}
	syncObject(e)
}

// resolveVerticalCollision lands the player on walls and one-way platforms.
// Platforms only block in Normal (from above) and Inverse (from below).
func resolveVerticalCollision(e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	bounds := components.Bounds.Get(e)

	player.CanJump = false
	bounds.Y += physics.SpeedY
	syncObject(e)

	hits := contacts(e, tags.ResolvSolid, tags.ResolvPlatform)

	for _, wall := range hits {
		if components.StaticBody.Get(wall).OneWay || player.PassesThrough(wall.Entity()) {
			continue
		}
		box := components.Bounds.Get(wall)
		if physics.SpeedY > 0 {
			bounds.Y = box.Y - bounds.H
			player.CanJump = true
		} else if physics.SpeedY < 0 {
			bounds.Y = box.Bottom()
			if physics.Gravity < 0 {
				player.CanJump = true
			}
		}
		physics.SpeedY = 0
	}

	for _, platform := range hits {
		if !components.StaticBody.Get(platform).OneWay {
			continue
		}
		tryPlatformCollision(player, physics, bounds, components.Bounds.Get(platform))
	}
	syncObject(e)
}

func tryPlatformCollision(player *components.PlayerData, physics *components.PhysicsData, bounds, platform *components.BoundsData) {
	switch {
	case player.Dimension == dimension.Normal && physics.SpeedY > 0:
		bounds.Y = platform.Y - bounds.H
	case player.Dimension == dimension.Inverse && physics.SpeedY < 0:
		bounds.Y = platform.Bottom()
	default:
		return
	}
	player.CanJump = true
	physics.SpeedY = 0
}

// contacts returns the entities tagged with any of resolvTags whose exact
// bounds overlap e's, in spawn order. resolv narrows the search; the overlap
// test is on Bounds.
func contacts(e *donburi.Entry, resolvTags ...string) []*donburi.Entry {
	obj := components.Object.Get(e)
	box := components.Bounds.Get(e).Rect

	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() || other.Entity() == e.Entity() {
			continue
		}
		if box.Overlaps(components.Bounds.Get(other).Rect) {
			hits = append(hits, other)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return components.Bounds.Get(hits[i]).Seq < components.Bounds.Get(hits[j]).Seq
	})
	return hits
}
