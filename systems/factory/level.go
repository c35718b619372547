package factory

import (
	"fmt"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/archetypes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel populates w from a parsed layout: the level singleton, its
// collision space and one entity per placement, in layout order.
func CreateLevel(w donburi.World, bp *leveldata.Blueprint, index int, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Index:  index,
		Name:   name,
		Width:  bp.Width(),
		Height: bp.Height(),
		Start:  bp.Start,
		Goal:   bp.Goal,
	})

	tile := bp.TileSize
	cell := int(tile)
	CreateSpace(w, int(bp.Width()), int(bp.Height()), cell, cell)

	for _, p := range bp.Placements {
		switch p.Kind {
		case leveldata.KindWall:
			CreateWall(w, p.X, p.Y, float64(p.Span)*tile, tile, components.StaticBodyData{})
		case leveldata.KindEtherealWall:
			CreateWall(w, p.X, p.Y, tile, tile, components.StaticBodyData{Ethereal: true})
		case leveldata.KindMetalWall:
			CreateWall(w, p.X, p.Y, tile, tile, components.StaticBodyData{Metal: true})
		case leveldata.KindPlatform:
			CreatePlatform(w, p.X, p.Y, tile)
		case leveldata.KindMovingPlatform:
			CreateMovingPlatform(w, p.X, p.Y, tile*float64(cfg.Platform.MovingTiles), p.Axis)
		case leveldata.KindPortal:
			CreatePortal(w, p.X, p.Y, tile, p.Target)
		case leveldata.KindCollectible:
			CreateCollectible(w, p.X, p.Y, tile)
		case leveldata.KindHazard:
			CreateHazard(w, p.X, p.Y, tile, cfg.Hazard.Damage)
		case leveldata.KindPowerup:
			CreatePowerup(w, p.X, p.Y, tile, p.Effect)
		default:
			panic(fmt.Sprintf("factory: unhandled placement kind %v", p.Kind))
		}
	}

	return level
}
