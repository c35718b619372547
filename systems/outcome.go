package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Outcome is the state of the level after a tick.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// EvaluateOutcome reports whether the player has lost (no health, or out of
// the level by more than the configured margin) or won (every collectible
// taken and standing in the goal).
func EvaluateOutcome(w donburi.World) Outcome {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return Playing
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return Playing
	}
	level := components.Level.Get(levelEntry)
	bounds := components.Bounds.Get(playerEntry)

	if components.Health.Get(playerEntry).Current <= 0 {
		return Lost
	}
	if bounds.Y > level.Height+cfg.Level.OutOfBounds || bounds.Y < -cfg.Level.OutOfBounds {
		return Lost
	}

	if RemainingCollectibles(w) == 0 && bounds.Overlaps(level.Goal) {
		return Won
	}
	return Playing
}

var collectibleQuery = donburi.NewQuery(filter.Contains(tags.Collectible))

// RemainingCollectibles counts collectibles still in the level.
func RemainingCollectibles(w donburi.World) int {
	return collectibleQuery.Count(w)
}
