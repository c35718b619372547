package systems

import (
	"testing"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const playerSize = 36

// newWorld returns an empty 800x600 level with a collision space and event
// queue.
func newWorld() donburi.World {
	w := donburi.NewWorld()
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Width:  800,
		Height: 600,
		Goal:   gamemath.NewRect(720, 40, 40, 40),
	})
	factory.CreateSpace(w, 800, 600, 40, 40)
	return w
}

// newLevelWorld builds a level from rows with tile size 40 and spawns the
// player at its start.
func newLevelWorld(t *testing.T, rows ...string) (donburi.World, *donburi.Entry) {
	t.Helper()
	bp, err := leveldata.Parse(rows, 40)
	require.NoError(t, err)

	w := donburi.NewWorld()
	factory.CreateLevel(w, bp, 0, t.Name())
	return w, factory.CreatePlayer(w, bp.Start.X, bp.Start.Y, playerSize)
}

// place moves e to (x, y) and sets its velocity.
func place(e *donburi.Entry, x, y, speedX, speedY float64) {
	bounds := components.Bounds.Get(e)
	bounds.X, bounds.Y = x, y
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX, physics.SpeedY = speedX, speedY
	}
	syncObject(e)
}

func position(e *donburi.Entry) gamemath.Vec {
	b := components.Bounds.Get(e)
	return gamemath.Vec{X: b.X, Y: b.Y}
}
