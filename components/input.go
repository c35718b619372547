package components

import "github.com/yohamta/donburi"

// PlayerInputData holds this tick's intents. The app layer writes it before
// each update; the core never reads devices.
type PlayerInputData struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
