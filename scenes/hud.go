package scenes

import (
	"fmt"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/fonts"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// drawHUD renders level, score, health and dimension in the top-left corner.
func drawHUD(screen *ebiten.Image, session *game.Session) {
	player := session.Player()
	if player == nil || !player.Valid() {
		return
	}
	data := components.Player.Get(player)
	hp := components.Health.Get(player)
	level := session.Level()

	lines := []string{
		fmt.Sprintf("Level %d/%d: %s", level.Index+1, session.LevelCount(), level.Name),
		fmt.Sprintf("Score: %d", data.Score),
		fmt.Sprintf("Health: %d/%d", hp.Current, hp.Max),
		fmt.Sprintf("Dimension: %s", data.Dimension),
	}

	face := fonts.HUD.Get()
	margin := cfg.HUD.Margin
	height := cfg.HUD.LineHeight * float64(len(lines))
	vector.FillRect(screen, 0, 0, float32(260+margin), float32(height+margin*2), cfg.HUD.ShadeColor, false)

	for i, line := range lines {
		y := margin + cfg.HUD.LineHeight*float64(i+1) - 4
		c := cfg.HUD.TextColor
		if i == 3 {
			c = cfg.DimensionColor(data.Dimension)
		}
		text.Draw(screen, line, face, int(margin), int(y), c)
	}
}

// drawNotice shows a short message centred near the top of the screen.
func drawNotice(screen *ebiten.Image, msg string) {
	face := fonts.HUD.Get()
	width := float64(screen.Bounds().Dx())
	text.Draw(screen, msg, face, centerTextX(msg, face, width), 40, cfg.Yellow)
}

// drawOverlay dims the screen and shows a title with a hint under it.
func drawOverlay(screen *ebiten.Image, title, hint string) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2), cfg.White)

	hintFont := fonts.HUD.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+40, cfg.LightGray)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
