package components

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/yohamta/donburi"
)

// EventsData queues gameplay events for the app layer (singleton component).
type EventsData struct {
	Pending []messages.Event
}

var Events = donburi.NewComponentType[EventsData]()
