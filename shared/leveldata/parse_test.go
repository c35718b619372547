package leveldata

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBorderedRoom(t *testing.T) {
	bp, err := Parse([]string{
		"#####",
		"#S  #",
		"#####",
	}, 40)
	require.NoError(t, err)

	assert.Equal(t, gamemath.Vec{X: 40, Y: 40}, bp.Start)
	require.Len(t, bp.Placements, 4)
	assert.Equal(t, 4, bp.Count(KindWall))

	type cell struct{ col, row, span int }
	var got []cell
	for _, p := range bp.Placements {
		got = append(got, cell{p.Col, p.Row, p.Span})
		if p.Row == 1 {
			assert.Contains(t, []int{0, 4}, p.Col, "walls inside the room")
		}
	}
	assert.ElementsMatch(t, []cell{{0, 0, 5}, {0, 1, 1}, {4, 1, 1}, {0, 2, 5}}, got)
}

func TestParseVocabulary(t *testing.T) {
	bp, err := Parse([]string{
		"#XWPM~NIETGCDHFJV?S*",
	}, 10)
	require.NoError(t, err)

	want := []struct {
		glyph byte
		kind  Kind
	}{
		{'#', KindWall},
		{'X', KindEtherealWall},
		{'W', KindMetalWall},
		{'P', KindPlatform},
		{'M', KindMovingPlatform},
		{'~', KindMovingPlatform},
		{'N', KindPortal},
		{'I', KindPortal},
		{'E', KindPortal},
		{'T', KindPortal},
		{'G', KindPortal},
		{'C', KindCollectible},
		{'D', KindHazard},
		{'H', KindPowerup},
		{'F', KindPowerup},
		{'J', KindPowerup},
		{'V', KindPowerup},
	}
	require.Len(t, bp.Placements, len(want))
	for i, w := range want {
		p := bp.Placements[i]
		assert.Equal(t, w.glyph, p.Glyph)
		assert.Equal(t, w.kind, p.Kind, string(w.glyph))
		assert.Equal(t, float64(i*10), p.X)
		assert.Equal(t, 0.0, p.Y)
	}

	assert.Equal(t, AxisVertical, bp.Placements[4].Axis)
	assert.Equal(t, AxisHorizontal, bp.Placements[5].Axis)

	targets := []dimension.Dimension{dimension.Normal, dimension.Inverse, dimension.Ethereal, dimension.Time, dimension.Magnetic}
	for i, d := range targets {
		assert.Equal(t, d, bp.Placements[6+i].Target)
	}

	effects := []Effect{EffectHealth, EffectSpeed, EffectJump, EffectInvincibility}
	for i, e := range effects {
		assert.Equal(t, e, bp.Placements[13+i].Effect)
	}

	assert.Equal(t, gamemath.Vec{X: 180, Y: 0}, bp.Start)
	assert.True(t, bp.GoalMarked)
	assert.Equal(t, gamemath.NewRect(190, 0, 10, 10), bp.Goal)
}

func TestParseGoalDefaultsToCorner(t *testing.T) {
	bp, err := Parse([]string{
		"##########",
		"#S       #",
		"##########",
	}, 40)
	require.NoError(t, err)
	assert.False(t, bp.GoalMarked)
	assert.Equal(t, gamemath.NewRect(320, 40, 40, 40), bp.Goal)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		tile int
		want error
	}{
		{"no rows", nil, 40, ErrEmpty},
		{"empty row", []string{""}, 40, ErrEmpty},
		{"bad tile", []string{"S"}, 0, ErrTileSize},
		{"ragged", []string{"#S#", "##"}, 40, ErrRaggedRows},
		{"no start", []string{"###", "# #"}, 40, ErrNoStart},
		{"two starts", []string{"S S"}, 40, ErrMultipleStarts},
		{"two goals", []string{"S**"}, 40, ErrMultipleGoals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp, err := Parse(tt.rows, tt.tile)
			assert.Nil(t, bp)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]string{"S  ", "  S"}, 40)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Row)
	assert.Equal(t, 2, perr.Col)
	assert.Contains(t, err.Error(), "row 1 col 2")
}

func TestParseUnknownGlyphsAreEmpty(t *testing.T) {
	bp, err := Parse([]string{"S?!abc#"}, 40)
	require.NoError(t, err)
	require.Len(t, bp.Placements, 1)
	assert.Equal(t, 6, bp.Placements[0].Col)
}

func TestGridRoundTrip(t *testing.T) {
	layouts := [][]string{
		{
			"####################",
			"#  S            *  #",
			"#  #   C    M      #",
			"#XXX   W  ~   PPP  #",
			"# NIETG DDD HFJV   #",
			"####################",
		},
		{
			"#####",
			"#S  #",
			"#####",
		},
	}

	for _, rows := range layouts {
		bp, err := Parse(rows, 40)
		require.NoError(t, err)

		got := bp.Grid()
		require.Len(t, got, len(rows))
		for y, row := range rows {
			want := []byte(row)
			for x, c := range want {
				if c == GlyphStart || c == GlyphGoal {
					want[x] = GlyphEmpty
				}
			}
			assert.Equal(t, string(want), got[y], "row %d", y)
		}

		again, err := Parse(withMarkers(got, bp), 40)
		require.NoError(t, err)
		assert.Equal(t, bp.Placements, again.Placements)
	}
}

// withMarkers writes the start and goal glyphs back into a serialized grid.
func withMarkers(rows []string, bp *Blueprint) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	put := func(v gamemath.Vec, c byte) {
		col, row := int(v.X/bp.TileSize), int(v.Y/bp.TileSize)
		b := []byte(out[row])
		b[col] = c
		out[row] = string(b)
	}
	put(bp.Start, GlyphStart)
	if bp.GoalMarked {
		put(gamemath.Vec{X: bp.Goal.X, Y: bp.Goal.Y}, GlyphGoal)
	}
	return out
}

func TestLoadTMX(t *testing.T) {
	bp, err := LoadTMX(os.DirFS("testdata"), "room.tmx")
	require.NoError(t, err)

	assert.Equal(t, 6, bp.Cols)
	assert.Equal(t, 4, bp.Rows)
	assert.Equal(t, 40.0, bp.TileSize)
	assert.Equal(t, gamemath.Vec{X: 40, Y: 40}, bp.Start)
	assert.Equal(t, gamemath.NewRect(160, 40, 40, 40), bp.Goal)
	assert.Equal(t, 1, bp.Count(KindCollectible))
	assert.Equal(t, []string{
		"######",
		"#  C #",
		"#    #",
		"######",
	}, bp.Grid())
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "missing.tmx")
	assert.Error(t, err)
}

func TestLoadTMXRejectsUnsupportedMaps(t *testing.T) {
	room, err := os.ReadFile("testdata/room.tmx")
	require.NoError(t, err)

	chunked := strings.Replace(string(room), `infinite="0"`, `infinite="1"`, 1)
	start := strings.Index(chunked, `<data encoding="csv">`)
	end := strings.Index(chunked, `</data>`)
	require.True(t, start >= 0 && end > start)
	chunked = chunked[:start] + `<data encoding="csv">
   <chunk x="0" y="0" width="2" height="2">
1,1,
1,2
   </chunk>
  ` + chunked[end:]

	fsys := fstest.MapFS{
		"tall.tmx":    {Data: []byte(strings.Replace(string(room), `tileheight="40" infinite`, `tileheight="32" infinite`, 1))},
		"chunked.tmx": {Data: []byte(chunked)},
	}

	_, err = LoadTMX(fsys, "tall.tmx")
	assert.ErrorIs(t, err, ErrTileShape)

	_, err = LoadTMX(fsys, "chunked.tmx")
	assert.Error(t, err)
}
