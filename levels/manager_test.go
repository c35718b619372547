package levels

import (
	"testing"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testPack(t *testing.T, layouts ...[]string) *Pack {
	t.Helper()
	pack := &Pack{}
	for i, rows := range layouts {
		bp, err := leveldata.Parse(rows, 40)
		require.NoError(t, err)
		pack.Levels = append(pack.Levels, Entry{Name: string(rune('A' + i)), Blueprint: bp})
	}
	return pack
}

var (
	levelOne = []string{
		"######",
		"#S CC#",
		"######",
	}
	levelTwo = []string{
		"#######",
		"#S   *#",
		"#######",
	}
)

func TestManagerProgression(t *testing.T) {
	m := NewManager(testPack(t, levelOne, levelTwo))
	require.Equal(t, 2, m.Len())

	first := m.Current()
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "A", first.Name)
	assert.Same(t, first, m.Current())

	require.True(t, m.Next())
	second := m.Current()
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 1, m.Index())
	assert.NotSame(t, first, second)

	assert.False(t, m.Next())
	assert.Same(t, second, m.Current())
	assert.Equal(t, 1, m.Index())
}

func TestManagerResetRebuildsEntities(t *testing.T) {
	m := NewManager(testPack(t, levelOne))
	level := m.Current()
	require.Equal(t, 2, systems.RemainingCollectibles(level.World))

	var taken []*donburi.Entry
	tags.Collectible.Each(level.World, func(e *donburi.Entry) {
		taken = append(taken, e)
	})
	for _, e := range taken {
		level.World.Remove(e.Entity())
	}
	require.Zero(t, systems.RemainingCollectibles(level.World))

	require.NoError(t, m.Reset())
	rebuilt := m.Current()
	assert.NotSame(t, level, rebuilt)
	assert.Equal(t, 2, systems.RemainingCollectibles(rebuilt.World))
	assert.Equal(t, 0, rebuilt.Index)
}

func TestManagerSetCurrent(t *testing.T) {
	m := NewManager(testPack(t, levelOne, levelTwo))

	require.NoError(t, m.SetCurrent(1))
	assert.Equal(t, "B", m.Current().Name)

	assert.ErrorIs(t, m.SetCurrent(2), ErrLevelIndex)
	assert.ErrorIs(t, m.SetCurrent(-1), ErrLevelIndex)
	assert.Equal(t, 1, m.Index())
}

func TestManagerReplaceClampsIndex(t *testing.T) {
	m := NewManager(testPack(t, levelOne, levelTwo))
	require.True(t, m.Next())

	m.Replace(testPack(t, levelTwo))
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "A", m.Current().Name)
	assert.Zero(t, systems.RemainingCollectibles(m.Current().World))
}

func TestLevelData(t *testing.T) {
	m := NewManager(testPack(t, levelTwo))
	level := m.Current()

	data := level.LevelData()
	require.NotNil(t, data)
	assert.Equal(t, 280.0, data.Width)
	assert.Equal(t, 120.0, data.Height)
	assert.Equal(t, 200.0, data.Goal.X)

	x, y := level.Start()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)

	_, ok := components.Space.First(level.World)
	assert.True(t, ok)
}
