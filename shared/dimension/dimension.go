// Package dimension defines the five dimensions a player can occupy and the
// physics profile each one imposes. It has no dependencies so both the
// simulation and the renderer can switch on it.
package dimension

import (
	"fmt"
	"strings"
)

// Dimension is a closed set of physics profiles. The zero value is Normal.
type Dimension int

const (
	Normal Dimension = iota
	Inverse
	Ethereal
	Time
	Magnetic
)

// Profile is the per-dimension physics derived from a Dimension.
type Profile struct {
	Gravity     float64
	MaxSpeedX   float64
	JumpImpulse float64 // Negative is upward
}

// All returns every dimension in declaration order.
func All() []Dimension {
	return []Dimension{Normal, Inverse, Ethereal, Time, Magnetic}
}

var profiles = [...]Profile{
	Normal:   {Gravity: 0.5, MaxSpeedX: 6.0, JumpImpulse: -32},
	Inverse:  {Gravity: -0.5, MaxSpeedX: 6.0, JumpImpulse: 28},
	Ethereal: {Gravity: 0.5, MaxSpeedX: 5.0, JumpImpulse: -36},
	Time:     {Gravity: 0.25, MaxSpeedX: 3.0, JumpImpulse: -18},
	Magnetic: {Gravity: 0.5, MaxSpeedX: 5.0, JumpImpulse: -34},
}

// Profile returns the physics profile for d. It panics on a value outside the
// declared set.
func (d Dimension) Profile() Profile {
	if !d.Valid() {
		panic(fmt.Sprintf("dimension: invalid value %d", int(d)))
	}
	return profiles[d]
}

// Valid reports whether d is one of the declared dimensions.
func (d Dimension) Valid() bool {
	return d >= Normal && d <= Magnetic
}

func (d Dimension) String() string {
	switch d {
	case Normal:
		return "normal"
	case Inverse:
		return "inverse"
	case Ethereal:
		return "ethereal"
	case Time:
		return "time"
	case Magnetic:
		return "magnetic"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// Parse returns the dimension named s, case-insensitively.
func Parse(s string) (Dimension, error) {
	for _, d := range All() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Normal, fmt.Errorf("unknown dimension %q", s)
}
