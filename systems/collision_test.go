package systems

import (
	"testing"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems/factory"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/stretchr/testify/assert"
)

func TestHorizontalCollisionStopsFlush(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		speed  float64
		wantX  float64
	}{
		{"moving right", 0, 6, 4},
		{"moving left", 84, -6, 80},
		{"clear path", 200, 6, 206},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			factory.CreateWall(w, 40, 0, 40, 40, components.StaticBodyData{})
			player := factory.CreatePlayer(w, 0, 0, playerSize)
			place(player, tt.startX, 0, tt.speed, 0)

			resolveHorizontalCollision(player)

			assert.InDelta(t, tt.wantX, position(player).X, 1e-9)
			if tt.wantX != tt.startX+tt.speed {
				assert.Zero(t, components.Physics.Get(player).SpeedX)
			}
		})
	}
}

func TestVerticalCollisionLandsOnWall(t *testing.T) {
	w := newWorld()
	factory.CreateWall(w, 0, 100, 200, 40, components.StaticBodyData{})
	player := factory.CreatePlayer(w, 0, 0, playerSize)
	place(player, 10, 60, 0, 8)

	resolveVerticalCollision(player)

	assert.Equal(t, 64.0, position(player).Y)
	assert.Zero(t, components.Physics.Get(player).SpeedY)
	assert.True(t, components.Player.Get(player).CanJump)
}

func TestVerticalCollisionHitsCeiling(t *testing.T) {
	w := newWorld()
	factory.CreateWall(w, 0, 0, 200, 40, components.StaticBodyData{})
	player := factory.CreatePlayer(w, 0, 100, playerSize)
	place(player, 10, 45, 0, -8)

	resolveVerticalCollision(player)

	assert.Equal(t, 40.0, position(player).Y)
	assert.Zero(t, components.Physics.Get(player).SpeedY)
	assert.False(t, components.Player.Get(player).CanJump)
}

func TestCeilingIsGroundUnderInverseGravity(t *testing.T) {
	w := newWorld()
	factory.CreateWall(w, 0, 0, 200, 40, components.StaticBodyData{})
	player := factory.CreatePlayer(w, 0, 100, playerSize)
	components.Player.Get(player).Dimension = dimension.Inverse
	components.Physics.Get(player).Gravity = -0.5
	place(player, 10, 45, 0, -8)

	resolveVerticalCollision(player)

	assert.Equal(t, 40.0, position(player).Y)
	assert.True(t, components.Player.Get(player).CanJump)
}

func TestCollisionResolutionIsIdempotent(t *testing.T) {
	_, player := newLevelWorld(t,
		"##########",
		"#        #",
		"# S      #",
		"#   ##   #",
		"##########",
	)

	steps := []struct{ vx, vy float64 }{
		{6, 0},
		{-6, 0},
		{3, -9},
		{0, 10},
		{0, 50},
		{40, 0},
		{6, 0},
		{0, 0},
	}
	for _, s := range steps {
		physics := components.Physics.Get(player)
		physics.SpeedX, physics.SpeedY = s.vx, s.vy
		resolveHorizontalCollision(player)
		resolveVerticalCollision(player)

		settled := position(player)
		physics.SpeedX, physics.SpeedY = 0, 0
		resolveHorizontalCollision(player)
		resolveVerticalCollision(player)
		assert.Equal(t, settled, position(player))
	}
	assert.Equal(t, 124.0, position(player).X)
	assert.Equal(t, 124.0, position(player).Y)
}

func TestEtherealWallsPassableOnlyInEthereal(t *testing.T) {
	for _, d := range dimension.All() {
		t.Run(d.String(), func(t *testing.T) {
			w := newWorld()
			factory.CreateWall(w, 40, 0, 40, 40, components.StaticBodyData{Ethereal: true})
			factory.CreateWall(w, 0, 100, 40, 40, components.StaticBodyData{Ethereal: true})
			player := factory.CreatePlayer(w, 0, 0, playerSize)
			components.Player.Get(player).Dimension = d

			place(player, 0, 0, 6, 0)
			resolveHorizontalCollision(player)

			place(player, 0, 60, 0, 8)
			resolveVerticalCollision(player)
			landedY := position(player).Y

			place(player, 0, 0, 6, 0)
			resolveHorizontalCollision(player)
			movedX := position(player).X

			if d == dimension.Ethereal {
				assert.Equal(t, 6.0, movedX)
				assert.Equal(t, 68.0, landedY)
			} else {
				assert.Equal(t, 4.0, movedX)
				assert.Equal(t, 64.0, landedY)
			}
		})
	}
}

func TestPlatformOneWayRule(t *testing.T) {
	const platformY = 100.0

	for _, d := range dimension.All() {
		t.Run(d.String(), func(t *testing.T) {
			w := newWorld()
			factory.CreatePlatform(w, 0, platformY, 40)
			player := factory.CreatePlayer(w, 0, 0, playerSize)
			components.Player.Get(player).Dimension = d

			// Falling onto the top face.
			place(player, 0, 60, 0, 8)
			resolveVerticalCollision(player)
			if d == dimension.Normal {
				assert.Equal(t, platformY-playerSize, position(player).Y, "blocks downward")
				assert.True(t, components.Player.Get(player).CanJump)
			} else {
				assert.Equal(t, 68.0, position(player).Y, "passes downward")
			}

			// Rising into the bottom face.
			place(player, 0, 112, 0, -8)
			resolveVerticalCollision(player)
			if d == dimension.Inverse {
				assert.Equal(t, platformY+10, position(player).Y, "blocks upward")
				assert.True(t, components.Player.Get(player).CanJump)
			} else {
				assert.Equal(t, 104.0, position(player).Y, "passes upward")
			}
		})
	}
}

func TestContactsIgnoreTouchingEdges(t *testing.T) {
	w := newWorld()
	factory.CreateWall(w, 36, 0, 40, 40, components.StaticBodyData{})
	player := factory.CreatePlayer(w, 0, 0, playerSize)

	assert.Empty(t, contacts(player, tags.ResolvSolid))

	place(player, 0.5, 0, 0, 0)
	assert.Len(t, contacts(player, tags.ResolvSolid), 1)
}
