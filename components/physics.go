package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	MaxSpeed float64 // Horizontal cap for the current dimension and powerups
	Gravity  float64
	Friction float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
