package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Dimension       dimension.Dimension
	CanJump         bool
	Score           int
	ShiftCooldown   int // Ticks before another portal is accepted
	Invincible      int // Ticks of damage immunity left
	Direction       float64
	SpeedMultiplier float64
	JumpMultiplier  float64

	// Walls this player passes through while Ethereal, and walls that pull
	// it while Magnetic. The level owns the entities.
	EtherealObjects map[donburi.Entity]struct{}
	MetalObjects    []donburi.Entity
}

// PassesThrough reports whether the player ignores wall e right now.
func (p *PlayerData) PassesThrough(e donburi.Entity) bool {
	if p.Dimension != dimension.Ethereal {
		return false
	}
	_, ok := p.EtherealObjects[e]
	return ok
}

var Player = donburi.NewComponentType[PlayerData]()
