package game

import (
	"log"
	"sync"
	"time"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
)

// Loop drives a session at a fixed tick rate without a window.
type Loop struct {
	session  *Session
	tickRate int
	maxTicks int
	input    func(tick int) components.PlayerInputData
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick, when set, is called after every tick.
	OnTick func(tick int, outcome systems.Outcome)
}

// NewLoop creates a loop that stops after maxTicks ticks (0 runs until the
// level ends or Stop is called). input supplies each tick's intents; nil
// means no input.
func NewLoop(session *Session, tickRate, maxTicks int, input func(tick int) components.PlayerInputData) *Loop {
	return &Loop{
		session:  session,
		tickRate: tickRate,
		maxTicks: maxTicks,
		input:    input,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until the level is won or lost, the tick budget is
// spent, or Stop is called. It returns the outcome and the ticks run.
func (l *Loop) Run() (systems.Outcome, int) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	tick := 0
	for {
		select {
		case <-l.stopChan:
			log.Println("Game loop stopped")
			return l.session.Outcome(), tick
		case <-ticker.C:
			outcome := l.step(tick)
			tick++
			if outcome != systems.Playing || (l.maxTicks > 0 && tick >= l.maxTicks) {
				return outcome, tick
			}
		}
	}
}

// RunFast runs the same ticks as Run without waiting between them.
func (l *Loop) RunFast() (systems.Outcome, int) {
	tick := 0
	for {
		select {
		case <-l.stopChan:
			return l.session.Outcome(), tick
		default:
		}
		outcome := l.step(tick)
		tick++
		if outcome != systems.Playing || (l.maxTicks > 0 && tick >= l.maxTicks) {
			return outcome, tick
		}
	}
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) step(tick int) systems.Outcome {
	var in components.PlayerInputData
	if l.input != nil {
		in = l.input(tick)
	}
	outcome := l.session.Tick(in)
	if l.OnTick != nil {
		l.OnTick(tick, outcome)
	}
	return outcome
}
