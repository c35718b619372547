package scenes

import (
	"fmt"

	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// CompleteScene is shown once the last level of the pack is won.
type CompleteScene struct {
	input  inputState
	score  int
	levels int
}

// NewCompleteScene creates the completion screen for a run that cleared
// levels levels with the given final score.
func NewCompleteScene(score, levels int) *CompleteScene {
	return &CompleteScene{score: score, levels: levels}
}

func (cs *CompleteScene) Update() error {
	cs.input.poll()
	if cs.input.justPressed(ActionConfirm) {
		return ebiten.Termination
	}
	return nil
}

func (cs *CompleteScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	drawOverlay(screen, "All levels complete!",
		fmt.Sprintf("%d levels, score %d. Press Enter to quit", cs.levels, cs.score))
}
