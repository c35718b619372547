// Package leveldata turns level layouts into placement data. It has no
// dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
)

// Kind is the type of entity a layout cell produces.
type Kind int

const (
	KindWall Kind = iota
	KindEtherealWall
	KindMetalWall
	KindPlatform
	KindMovingPlatform
	KindPortal
	KindCollectible
	KindHazard
	KindPowerup
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindEtherealWall:
		return "ethereal wall"
	case KindMetalWall:
		return "metal wall"
	case KindPlatform:
		return "platform"
	case KindMovingPlatform:
		return "moving platform"
	case KindPortal:
		return "portal"
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	case KindPowerup:
		return "powerup"
	}
	return "unknown"
}

// Axis is the direction a moving platform oscillates along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Effect is what a powerup does when picked up.
type Effect int

const (
	EffectHealth Effect = iota
	EffectSpeed
	EffectJump
	EffectInvincibility
)

func (e Effect) String() string {
	switch e {
	case EffectHealth:
		return "health"
	case EffectSpeed:
		return "speed"
	case EffectJump:
		return "jump"
	case EffectInvincibility:
		return "invincibility"
	}
	return "unknown"
}

// Placement is one entity produced by a layout cell, or by a run of wall
// cells merged along a row.
type Placement struct {
	Kind   Kind
	Glyph  byte
	Col    int
	Row    int
	Span   int // Cells covered to the right, at least 1
	X, Y   float64
	Target dimension.Dimension // KindPortal
	Axis   Axis                // KindMovingPlatform
	Effect Effect              // KindPowerup
}

// Blueprint is a parsed level layout. It is immutable once returned.
type Blueprint struct {
	Cols       int
	Rows       int
	TileSize   float64
	Start      gamemath.Vec
	Goal       gamemath.Rect
	GoalMarked bool // Goal came from a marker rather than the corner default
	Placements []Placement
}

func (b *Blueprint) Width() float64  { return float64(b.Cols) * b.TileSize }
func (b *Blueprint) Height() float64 { return float64(b.Rows) * b.TileSize }

// Count returns the number of placements of kind k.
func (b *Blueprint) Count(k Kind) int {
	n := 0
	for _, p := range b.Placements {
		if p.Kind == k {
			n++
		}
	}
	return n
}
