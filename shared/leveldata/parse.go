package leveldata

import (
	"strings"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
)

// Marker glyphs. They produce no entity and become spaces in Grid.
const (
	GlyphStart = 'S'
	GlyphGoal  = '*'
	GlyphEmpty = ' '
	GlyphWall  = '#'
)

// classify maps a layout glyph to the placement it produces. Unknown glyphs
// produce nothing.
func classify(c byte) (Placement, bool) {
	switch c {
	case GlyphWall:
		return Placement{Kind: KindWall}, true
	case 'X':
		return Placement{Kind: KindEtherealWall}, true
	case 'W':
		return Placement{Kind: KindMetalWall}, true
	case 'P':
		return Placement{Kind: KindPlatform}, true
	case 'M':
		return Placement{Kind: KindMovingPlatform, Axis: AxisVertical}, true
	case '~':
		return Placement{Kind: KindMovingPlatform, Axis: AxisHorizontal}, true
	case 'N':
		return Placement{Kind: KindPortal, Target: dimension.Normal}, true
	case 'I':
		return Placement{Kind: KindPortal, Target: dimension.Inverse}, true
	case 'E':
		return Placement{Kind: KindPortal, Target: dimension.Ethereal}, true
	case 'T':
		return Placement{Kind: KindPortal, Target: dimension.Time}, true
	case 'G':
		return Placement{Kind: KindPortal, Target: dimension.Magnetic}, true
	case 'C':
		return Placement{Kind: KindCollectible}, true
	case 'D':
		return Placement{Kind: KindHazard}, true
	case 'H':
		return Placement{Kind: KindPowerup, Effect: EffectHealth}, true
	case 'F':
		return Placement{Kind: KindPowerup, Effect: EffectSpeed}, true
	case 'J':
		return Placement{Kind: KindPowerup, Effect: EffectJump}, true
	case 'V':
		return Placement{Kind: KindPowerup, Effect: EffectInvincibility}, true
	}
	return Placement{}, false
}

// Parse interprets a row-major character grid. Rows are scanned top to bottom
// and columns left to right; a cell at (col, row) is placed at
// (col*tileSize, row*tileSize). Adjacent '#' cells in a row merge into one
// wall. Unknown glyphs are treated as empty space.
//
// A layout must carry exactly one start marker. Without a goal marker the goal
// sits one tile in from the top-right corner.
func Parse(rows []string, tileSize int) (*Blueprint, error) {
	if tileSize <= 0 {
		return nil, ErrTileSize
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ParseError{Row: i, Col: len(row), Err: ErrRaggedRows}
		}
	}

	tile := float64(tileSize)
	bp := &Blueprint{
		Cols:     cols,
		Rows:     len(rows),
		TileSize: tile,
	}

	foundStart := false
	for y, row := range rows {
		for x := 0; x < cols; x++ {
			c := row[x]
			switch c {
			case GlyphStart:
				if foundStart {
					return nil, &ParseError{Row: y, Col: x, Err: ErrMultipleStarts}
				}
				foundStart = true
				bp.Start = gamemath.Vec{X: float64(x) * tile, Y: float64(y) * tile}
				continue
			case GlyphGoal:
				if bp.GoalMarked {
					return nil, &ParseError{Row: y, Col: x, Err: ErrMultipleGoals}
				}
				bp.GoalMarked = true
				bp.Goal = gamemath.NewRect(float64(x)*tile, float64(y)*tile, tile, tile)
				continue
			}

			p, ok := classify(c)
			if !ok {
				continue
			}
			p.Glyph = c
			p.Col = x
			p.Row = y
			p.Span = 1
			if c == GlyphWall {
				for x+p.Span < cols && row[x+p.Span] == GlyphWall {
					p.Span++
				}
				x += p.Span - 1
			}
			p.X = float64(p.Col) * tile
			p.Y = float64(p.Row) * tile
			bp.Placements = append(bp.Placements, p)
		}
	}

	if !foundStart {
		return nil, ErrNoStart
	}
	if !bp.GoalMarked {
		bp.Goal = gamemath.NewRect(bp.Width()-2*tile, tile, tile, tile)
	}

	return bp, nil
}

// Grid serializes the blueprint back to rows. Markers are not reproduced, so
// a layout without start or goal glyphs round-trips exactly.
func (b *Blueprint) Grid() []string {
	cells := make([][]byte, b.Rows)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(string(GlyphEmpty), b.Cols))
	}
	for _, p := range b.Placements {
		for i := 0; i < p.Span; i++ {
			cells[p.Row][p.Col+i] = p.Glyph
		}
	}

	rows := make([]string, b.Rows)
	for y, row := range cells {
		rows[y] = string(row)
	}
	return rows
}
