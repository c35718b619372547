package scenes

import (
	"fmt"
	"log"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/assets"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/game"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	damageFlashTicks = 20
	noticeTicks      = 90
)

// PlayScene runs the session: it feeds input to the simulation, reacts to
// level outcomes and draws the level with the HUD on top.
type PlayScene struct {
	sceneChanger SceneChanger
	session      *game.Session
	images       *assets.Cache
	input        inputState

	watcher  *levels.Watcher
	packPath string

	flash       int
	notice      string
	noticeTimer int
}

// NewPlayScene creates the play scene. watcher may be nil; when set, pack
// edits under packPath reload the level pack in place.
func NewPlayScene(sc SceneChanger, session *game.Session, images *assets.Cache, watcher *levels.Watcher, packPath string) *PlayScene {
	return &PlayScene{
		sceneChanger: sc,
		session:      session,
		images:       images,
		watcher:      watcher,
		packPath:     packPath,
	}
}

func (ps *PlayScene) Update() error {
	ps.input.poll()
	ps.checkReload()

	if ps.flash > 0 {
		ps.flash--
	}
	if ps.noticeTimer > 0 {
		ps.noticeTimer--
	}

	switch ps.session.Outcome() {
	case systems.Won:
		if !ps.input.justPressed(ActionConfirm) || ps.session.Advance() {
			break
		}
		if ps.session.Done() {
			ps.finish()
			return nil
		}
		log.Printf("Warning: Could not advance from level %d", ps.session.Level().Index+1)
	case systems.Lost:
		if ps.input.justPressed(ActionConfirm) || ps.input.justPressed(ActionRestart) {
			ps.restart()
		}
	default:
		if ps.input.justPressed(ActionRestart) {
			ps.restart()
			break
		}
		ps.session.Tick(ps.input.player())
	}

	for _, ev := range ps.session.Events() {
		ps.handleEvent(ev)
	}
	return nil
}

// finish hands over to the completion screen and releases the level images.
func (ps *PlayScene) finish() {
	score := 0
	if player := ps.session.Player(); player != nil && player.Valid() {
		score = components.Player.Get(player).Score
	}
	ps.images.Clear()

	// Enter is still held; carry the key state so it is not read as a new press.
	complete := NewCompleteScene(score, ps.session.LevelCount())
	complete.input = ps.input
	ps.sceneChanger.ChangeScene(complete)
}

func (ps *PlayScene) restart() {
	if err := ps.session.Restart(); err != nil {
		log.Printf("Warning: Could not restart level: %v", err)
	}
	ps.flash = 0
	ps.noticeTimer = 0
}

func (ps *PlayScene) handleEvent(ev messages.Event) {
	switch e := ev.(type) {
	case messages.DamagedEvent:
		ps.flash = damageFlashTicks
	case messages.DimensionShiftedEvent:
		ps.showNotice(fmt.Sprintf("Dimension: %s", e.To))
	case messages.PowerupEvent:
		ps.showNotice(fmt.Sprintf("Powerup: %s", e.Effect))
	}
}

func (ps *PlayScene) showNotice(s string) {
	ps.notice = s
	ps.noticeTimer = noticeTicks
}

// checkReload drains pending watch events and reloads the pack once if any
// arrived.
func (ps *PlayScene) checkReload() {
	if ps.watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case name, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				break drain
			}
			log.Printf("Level file changed: %s", name)
			changed = true
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				break drain
			}
			log.Printf("Warning: Level watch error: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	pack, err := levels.LoadPackFile(ps.packPath)
	if err != nil {
		log.Printf("Warning: Could not reload level pack: %v", err)
		return
	}
	ps.session.Reload(pack)
	ps.showNotice("Level pack reloaded")
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	level := ps.session.Level()
	drawLevel(screen, level, ps.images)
	drawPlayer(screen, ps.session.Player(), ps.images, ps.flash)
	drawHUD(screen, ps.session)

	if ps.noticeTimer > 0 {
		drawNotice(screen, ps.notice)
	}

	switch ps.session.Outcome() {
	case systems.Won:
		drawOverlay(screen, "Level complete!", "Press Enter to continue")
	case systems.Lost:
		drawOverlay(screen, "Game over", "Press Enter or R to try again")
	}
}
