package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHold(t *testing.T) {
	tests := []struct {
		in   string
		want components.PlayerInputData
	}{
		{"", components.PlayerInputData{}},
		{"none", components.PlayerInputData{}},
		{"Right", components.PlayerInputData{MoveRight: true}},
		{"left", components.PlayerInputData{MoveLeft: true}},
		{"jump", components.PlayerInputData{Jump: true}},
	}
	for _, tt := range tests {
		got, err := parseHold(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseHold("up")
	assert.Error(t, err)
}

func TestDescribeBuiltInLevel(t *testing.T) {
	pack, err := load("", "")
	require.NoError(t, err)

	var out bytes.Buffer
	describe(&out, 0, pack.Levels[0], true)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3+15)
	assert.Equal(t, "Level 1: First Steps (20x15, tile 40)", lines[0])
	assert.Equal(t, "  start (120, 120)  goal (720, 40)", lines[1])
	assert.Contains(t, lines[2], "collectible: 1")
	assert.Contains(t, lines[2], ", platform: 3")
	assert.Equal(t, "  |####################|", lines[3])
	assert.Equal(t, "  |########PPP#########|", lines[17])
}

func TestLoadTMX(t *testing.T) {
	pack, err := load("", "../../shared/leveldata/testdata/room.tmx")
	require.NoError(t, err)
	require.Equal(t, 1, pack.Len())
	assert.Equal(t, "room.tmx", pack.Levels[0].Name)
}

func TestSimulate(t *testing.T) {
	pack, err := load("", "")
	require.NoError(t, err)
	m := levels.NewManager(pack)

	var out bytes.Buffer
	simulate(&out, m, 30, 60, false, dimension.Normal, components.PlayerInputData{})

	assert.Contains(t, out.String(), "after 30 ticks: playing")
	assert.Contains(t, out.String(), "dimension=normal")
}

func TestSimulateStartDimension(t *testing.T) {
	pack, err := load("", "")
	require.NoError(t, err)
	start, err := dimension.Parse("Inverse")
	require.NoError(t, err)

	var out bytes.Buffer
	simulate(&out, levels.NewManager(pack), 30, 60, false, start, components.PlayerInputData{})

	assert.Contains(t, out.String(), "after 30 ticks: playing")
	assert.Contains(t, out.String(), "dimension=inverse")
}
