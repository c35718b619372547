package config

// StateID identifies the player's movement state for drawing.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
	Jumping
	Falling
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	default:
		return "none"
	}
}
