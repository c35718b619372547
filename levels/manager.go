package levels

import (
	"errors"
	"fmt"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems/factory"
	"github.com/yohamta/donburi"
)

var ErrLevelIndex = errors.New("level index out of range")

// Level is one built level. Its world exclusively owns the level's entities
// and collision space.
type Level struct {
	World     donburi.World
	Index     int
	Name      string
	Blueprint *leveldata.Blueprint
}

// Start is where the player spawns.
func (l *Level) Start() (x, y float64) {
	return l.Blueprint.Start.X, l.Blueprint.Start.Y
}

// Manager walks an ordered pack. The current index only moves through Next
// and SetCurrent; Reset rebuilds the current level from its blueprint.
type Manager struct {
	pack    *Pack
	current int
	level   *Level
}

func NewManager(pack *Pack) *Manager {
	return &Manager{pack: pack}
}

func (m *Manager) Len() int {
	return m.pack.Len()
}

func (m *Manager) Index() int {
	return m.current
}

// Current returns the current level, building it on first use.
func (m *Manager) Current() *Level {
	if m.level == nil {
		m.level = m.build(m.current)
	}
	return m.level
}

// Next advances to the following level. It returns false, leaving the
// current level untouched, when already at the last one.
func (m *Manager) Next() bool {
	if m.current >= m.pack.Len()-1 {
		return false
	}
	m.current++
	m.level = m.build(m.current)
	return true
}

// Reset discards the current level's world and rebuilds it.
func (m *Manager) Reset() error {
	if m.current < 0 || m.current >= m.pack.Len() {
		return fmt.Errorf("reset level %d: %w", m.current, ErrLevelIndex)
	}
	m.level = m.build(m.current)
	return nil
}

// SetCurrent jumps to level i and builds it.
func (m *Manager) SetCurrent(i int) error {
	if i < 0 || i >= m.pack.Len() {
		return fmt.Errorf("set level %d of %d: %w", i, m.pack.Len(), ErrLevelIndex)
	}
	m.current = i
	m.level = m.build(i)
	return nil
}

// Replace swaps in a reloaded pack, keeping the current index when it still
// exists and rebuilding the current level.
func (m *Manager) Replace(pack *Pack) {
	m.pack = pack
	if m.current >= pack.Len() {
		m.current = pack.Len() - 1
	}
	m.level = m.build(m.current)
}

func (m *Manager) build(i int) *Level {
	entry := m.pack.Levels[i]
	w := donburi.NewWorld()
	factory.CreateLevel(w, entry.Blueprint, i, entry.Name)
	return &Level{
		World:     w,
		Index:     i,
		Name:      entry.Name,
		Blueprint: entry.Blueprint,
	}
}

// LevelData returns the level singleton of l's world.
func (l *Level) LevelData() *components.LevelData {
	e, ok := components.Level.First(l.World)
	if !ok {
		return nil
	}
	return components.Level.Get(e)
}
