package scenes

import (
	"image/color"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/assets"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/gamemath"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var drawOp = &ebiten.DrawImageOptions{}

// drawLevel renders the goal and every level entity as coloured boxes, with
// sprites for pickups.
func drawLevel(screen *ebiten.Image, level *levels.Level, images *assets.Cache) {
	w := level.World
	if data := level.LevelData(); data != nil {
		fillRect(screen, data.Goal, cfg.Green)
	}

	tags.Wall.Each(w, func(e *donburi.Entry) {
		body := components.StaticBody.Get(e)
		c := cfg.Gray
		switch {
		case body.Ethereal:
			c = cfg.LightGray
		case body.Metal:
			c = cfg.Metal
		}
		fillRect(screen, components.Bounds.Get(e).Rect, c)
	})

	tags.Platform.Each(w, func(e *donburi.Entry) {
		fillRect(screen, components.Bounds.Get(e).Rect, cfg.Brown)
	})

	tags.Portal.Each(w, func(e *donburi.Entry) {
		tint := cfg.DimensionColor(components.Portal.Get(e).Target)
		drawSprite(screen, images.Image(assets.PortalImage, cfg.Level.TileSize), components.Bounds.Get(e).Rect, tint)
	})

	tags.Collectible.Each(w, func(e *donburi.Entry) {
		drawSprite(screen, images.Image(assets.CollectibleImage, cfg.Level.TileSize/2), components.Bounds.Get(e).Rect, cfg.White)
	})

	tags.Hazard.Each(w, func(e *donburi.Entry) {
		drawSprite(screen, images.Image(assets.HazardImage, cfg.Level.TileSize), components.Bounds.Get(e).Rect, cfg.White)
	})

	tags.Powerup.Each(w, func(e *donburi.Entry) {
		r := components.Bounds.Get(e).Rect
		c := r.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(r.W/3), cfg.Orange, false)
	})
}

// drawPlayer draws the player tinted by its dimension. It blinks while
// invincible and turns red while flash is running.
func drawPlayer(screen *ebiten.Image, player *donburi.Entry, images *assets.Cache, flash int) {
	if player == nil || !player.Valid() {
		return
	}
	data := components.Player.Get(player)
	if data.Invincible > 0 && (data.Invincible/4)%2 == 0 {
		return
	}

	tint := cfg.DimensionColor(data.Dimension)
	if flash > 0 {
		tint = cfg.Red
	}
	bounds := components.Bounds.Get(player).Rect
	size := int(bounds.W)
	drawSprite(screen, images.Image(assets.PlayerImage, size), bounds, tint)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawSprite stretches img over r and multiplies it by tint.
func drawSprite(screen, img *ebiten.Image, r gamemath.Rect, tint color.Color) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	drawOp.GeoM.Translate(r.X, r.Y)
	drawOp.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(img, drawOp)
}
