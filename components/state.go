package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
