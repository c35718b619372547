package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileTable(t *testing.T) {
	tests := []struct {
		dim     Dimension
		gravity float64
		maxX    float64
		jump    float64
	}{
		{Normal, 0.5, 6.0, -32},
		{Inverse, -0.5, 6.0, 28},
		{Ethereal, 0.5, 5.0, -36},
		{Time, 0.25, 3.0, -18},
		{Magnetic, 0.5, 5.0, -34},
	}

	for _, tt := range tests {
		t.Run(tt.dim.String(), func(t *testing.T) {
			p := tt.dim.Profile()
			assert.Equal(t, tt.gravity, p.Gravity)
			assert.Equal(t, tt.maxX, p.MaxSpeedX)
			assert.Equal(t, tt.jump, p.JumpImpulse)
		})
	}
}

func TestInverseGravityNegatesNormal(t *testing.T) {
	assert.Equal(t, -Normal.Profile().Gravity, Inverse.Profile().Gravity)
	assert.Equal(t, Normal.Profile().MaxSpeedX, Inverse.Profile().MaxSpeedX)
}

func TestJumpOpposesGravity(t *testing.T) {
	for _, d := range All() {
		p := d.Profile()
		assert.Less(t, p.Gravity*p.JumpImpulse, 0.0, d.String())
	}
}

func TestProfilePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { Dimension(42).Profile() })
	assert.False(t, Dimension(-1).Valid())
}

func TestParse(t *testing.T) {
	for _, d := range All() {
		got, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := Parse("MAGNETIC")
	require.NoError(t, err)
	assert.Equal(t, Magnetic, got)

	_, err = Parse("warp")
	assert.Error(t, err)
}
