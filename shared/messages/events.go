package messages

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
)

// Event is a gameplay notification for audio and particle collaborators.
// Nothing in the simulation consumes these.
type Event interface {
	isEvent()
}

// JumpedEvent is emitted when a jump request is honoured
type JumpedEvent struct {
	Dimension dimension.Dimension
	X, Y      float64 // Player centre
}

// DimensionShiftedEvent is emitted when a portal changes the player's dimension
type DimensionShiftedEvent struct {
	From dimension.Dimension
	To   dimension.Dimension
}

// CollectedEvent is emitted when a collectible is picked up
type CollectedEvent struct {
	Value int
	Score int // Score after pickup
}

// DamagedEvent is emitted when a hazard hurts the player
type DamagedEvent struct {
	Amount int
	Health int // Health after damage
}

// HealedEvent is emitted when a health powerup restores health
type HealedEvent struct {
	Amount int // Health actually restored
	Health int
}

// PowerupEvent is emitted for every powerup picked up
type PowerupEvent struct {
	Effect leveldata.Effect
}

func (JumpedEvent) isEvent()           {}
func (DimensionShiftedEvent) isEvent() {}
func (CollectedEvent) isEvent()        {}
func (DamagedEvent) isEvent()          {}
func (HealedEvent) isEvent()           {}
func (PowerupEvent) isEvent()          {}
