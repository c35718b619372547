package main

import (
	"errors"
	"flag"
	"log"
	"path/filepath"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/assets"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/fonts"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/game"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/scenes"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "dimensional_shift_puzzle"

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(session *game.Session, watcher *levels.Watcher) *Game {
	fonts.LoadDefaults(config.HUD.FontSize, config.HUD.FontSize*2)

	g := &Game{}
	g.scene = scenes.NewPlayScene(g, session, assets.NewCache(), watcher, config.Debug.PackPath)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func loadPack() (*levels.Pack, error) {
	if config.Debug.PackPath == "" {
		return levels.DefaultPack()
	}
	return levels.LoadPackFile(config.Debug.PackPath)
}

func main() {
	flag.BoolVar(&config.Debug.Continue, "continue", false, "Resume from the saved level")
	flag.StringVar(&config.Debug.PackPath, "pack", "", "Level pack YAML file (default: built-in levels)")
	flag.BoolVar(&config.Debug.WatchPack, "watch", false, "Reload the level pack when it changes (requires -pack)")
	flag.Parse()

	pack, err := loadPack()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	store, err := systems.OpenProgressStore(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	session := game.NewSession(levels.NewManager(pack), store)
	if config.Debug.Continue {
		if err := session.Continue(); err != nil {
			log.Fatalf("Failed to resume: %v", err)
		}
	} else {
		session.Start()
	}

	var watcher *levels.Watcher
	if config.Debug.WatchPack {
		if config.Debug.PackPath == "" {
			log.Printf("Warning: -watch needs -pack, not watching")
		} else if watcher, err = levels.NewWatcher(filepath.Dir(config.Debug.PackPath)); err != nil {
			log.Printf("Warning: Could not watch level pack: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dimensional Shift Puzzle")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(session, watcher)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
