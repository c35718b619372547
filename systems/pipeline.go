package systems

import "github.com/yohamta/donburi"

// Pipeline is the fixed per-tick system order.
var Pipeline = []func(donburi.World){
	UpdatePlayer,
	UpdateMovingPlatforms,
	UpdatePhysics,
	UpdateCollisions,
	UpdateStates,
	UpdateInteractions,
	UpdateTimers,
}

// Step runs one tick of every system and reports the resulting outcome.
func Step(w donburi.World) Outcome {
	for _, system := range Pipeline {
		system(w)
	}
	return EvaluateOutcome(w)
}
