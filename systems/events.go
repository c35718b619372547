package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/yohamta/donburi"
)

// emit queues an event on the level's event singleton.
func emit(w donburi.World, ev messages.Event) {
	entry, ok := components.Events.First(w)
	if !ok {
		return
	}
	events := components.Events.Get(entry)
	events.Pending = append(events.Pending, ev)
}

// DrainEvents returns the events queued since the last call and clears the queue.
func DrainEvents(w donburi.World) []messages.Event {
	entry, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	pending := events.Pending
	events.Pending = nil
	return pending
}
