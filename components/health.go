package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage reduces health, stopping at zero.
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal restores up to amount and returns how much was actually restored.
func (h *HealthData) Heal(amount int) int {
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

var Health = donburi.NewComponentType[HealthData]()
