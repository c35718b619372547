// Package game runs a play session: it owns the player, steps the current
// level once per tick and moves through the level sequence.
package game

import (
	"log"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems/factory"
	"github.com/yohamta/donburi"
)

// Session is the state shared by the window and the headless runner.
type Session struct {
	levels *levels.Manager
	store  *systems.ProgressStore

	player  *donburi.Entry
	outcome systems.Outcome
	done    bool

	score     int // score carried into the current level
	collected int // collectibles taken in completed levels
	taken     int // collectibles taken in the current attempt

	events []messages.Event
}

// NewSession creates a session over m. store may be nil to disable saving.
func NewSession(m *levels.Manager, store *systems.ProgressStore) *Session {
	return &Session{levels: m, store: store}
}

// Start begins at the manager's current level with a fresh player.
func (s *Session) Start() {
	s.spawn()
}

// Continue resumes from the saved progress. A save pointing past the end of
// the pack starts at the last level.
func (s *Session) Continue() error {
	progress := s.store.Load()
	index := progress.LevelIndex
	if index >= s.levels.Len() {
		log.Printf("Warning: Saved level %d not in pack, starting at level %d", index+1, s.levels.Len())
		index = s.levels.Len() - 1
	}
	if err := s.levels.SetCurrent(index); err != nil {
		return err
	}
	s.collected = progress.Collected
	s.score = progress.Collected * cfg.Collectible.Value
	s.spawn()
	return nil
}

func (s *Session) spawn() {
	level := s.levels.Current()
	x, y := level.Start()
	size := level.Blueprint.TileSize - cfg.Player.SizeInset
	s.player = factory.CreatePlayer(level.World, x, y, size)
	components.Player.Get(s.player).Score = s.score
	s.outcome = systems.Playing
	s.taken = 0
}

// Tick applies one tick of input and steps the level. Once the level is won
// or lost the session holds that outcome until Advance or Restart.
func (s *Session) Tick(input components.PlayerInputData) systems.Outcome {
	if s.done || s.outcome != systems.Playing {
		return s.outcome
	}

	w := s.levels.Current().World
	components.PlayerInput.SetValue(s.player, input)
	s.outcome = systems.Step(w)

	for _, ev := range systems.DrainEvents(w) {
		if _, ok := ev.(messages.CollectedEvent); ok {
			s.taken++
		}
		s.events = append(s.events, ev)
	}

	if s.outcome == systems.Won {
		s.complete()
	}
	return s.outcome
}

// complete saves the finished level. The totals carried into the next level
// are only committed by Advance, so a restart replays from the level start.
func (s *Session) complete() {
	next := s.levels.Index() + 1
	if next >= s.levels.Len() {
		next = s.levels.Len() - 1
	}
	if err := s.store.Save(systems.SavedProgress{LevelIndex: next, Collected: s.collected + s.taken}); err != nil {
		log.Printf("Warning: Could not record level completion: %v", err)
	}
}

// Advance moves to the next level after a win. It returns false when the
// last level was just completed, which ends the session.
func (s *Session) Advance() bool {
	if s.outcome != systems.Won || s.done {
		return false
	}
	s.collected += s.taken
	s.taken = 0
	s.score = components.Player.Get(s.player).Score
	if !s.levels.Next() {
		s.done = true
		return false
	}
	s.spawn()
	return true
}

// Restart rebuilds the current level and the player, discarding this
// attempt's pickups even when the level was already won.
func (s *Session) Restart() error {
	if err := s.levels.Reset(); err != nil {
		return err
	}
	s.done = false
	s.spawn()
	return nil
}

// Reload swaps in an edited pack and restarts the current level.
func (s *Session) Reload(pack *levels.Pack) {
	s.levels.Replace(pack)
	s.done = false
	s.spawn()
}

// Events returns and clears the events gathered since the last call.
func (s *Session) Events() []messages.Event {
	events := s.events
	s.events = nil
	return events
}

func (s *Session) Outcome() systems.Outcome {
	return s.outcome
}

// Done reports whether every level has been completed.
func (s *Session) Done() bool {
	return s.done
}

func (s *Session) Level() *levels.Level {
	return s.levels.Current()
}

func (s *Session) Player() *donburi.Entry {
	return s.player
}

// LevelCount is the number of levels in the pack.
func (s *Session) LevelCount() int {
	return s.levels.Len()
}

// Progress is the record that would be saved now.
func (s *Session) Progress() systems.SavedProgress {
	return systems.SavedProgress{LevelIndex: s.levels.Index(), Collected: s.collected + s.taken}
}
