package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LayoutLayer is the TMX tile layer read by LoadTMX.
const LayoutLayer = "layout"

// LoadTMX reads a Tiled map and parses its layout layer. Each tile's "glyph"
// property names the layout character it stands for; tiles without one, and
// empty cells, are empty space. Only finite maps with square tiles are
// accepted. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Blueprint, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrTileShape)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == LayoutLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, LayoutLayer)
	}
	// Infinite maps store chunks, which never fill the Width x Height grid.
	if len(layer.Tiles) != levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("load TMX %s: %d tiles for %dx%d: %w",
			tmxPath, len(layer.Tiles), levelMap.Width, levelMap.Height, ErrLayerSize)
	}

	rows := make([]string, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		row := make([]byte, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			row[x] = GlyphEmpty
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				continue
			}
			if glyph := tilesetTile.Properties.GetString("glyph"); glyph != "" {
				row[x] = glyph[0]
			}
		}
		rows[y] = string(row)
	}

	bp, err := Parse(rows, levelMap.TileWidth)
	if err != nil {
		return nil, fmt.Errorf("parse TMX %s: %w", tmxPath, err)
	}
	return bp, nil
}
