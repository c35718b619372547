// Command levelcheck validates level packs and Tiled maps and can run levels
// headless.
//
//	levelcheck                      check the built-in pack
//	levelcheck -pack my.yaml -grid  check a pack and print each layout
//	levelcheck -tmx room.tmx        check one Tiled map
//	levelcheck -level 3 -ticks 600 -hold right -realtime
//	levelcheck -level 2 -ticks 120 -dimension inverse
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/game"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/levels"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/dimension"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/systems"
)

func main() {
	packPath := flag.String("pack", "", "Level pack YAML file (default: built-in levels)")
	tmxPath := flag.String("tmx", "", "Check a single Tiled map instead of a pack")
	levelNum := flag.Int("level", 0, "Only check this level (1-based, 0 = all)")
	grid := flag.Bool("grid", false, "Print the canonical layout of each level")
	ticks := flag.Int("ticks", 0, "Simulate this many ticks per level (0 = validate only)")
	hold := flag.String("hold", "none", "Input held while simulating: none, left, right, jump")
	dim := flag.String("dimension", "normal", "Dimension the player starts the simulation in")
	realtime := flag.Bool("realtime", false, "Simulate at the game tick rate instead of as fast as possible")
	tickRate := flag.Int("tickrate", config.C.TPS, "Tick rate for -realtime")
	flag.Parse()

	input, err := parseHold(*hold)
	if err != nil {
		log.Fatalf("Invalid -hold: %v", err)
	}

	start, err := dimension.Parse(*dim)
	if err != nil {
		log.Fatalf("Invalid -dimension: %v", err)
	}

	pack, err := load(*packPath, *tmxPath)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	manager := levels.NewManager(pack)
	first, last := 0, pack.Len()-1
	if *levelNum > 0 {
		if *levelNum > pack.Len() {
			log.Fatalf("Level %d not in pack (%d levels)", *levelNum, pack.Len())
		}
		first, last = *levelNum-1, *levelNum-1
	}

	for i := first; i <= last; i++ {
		entry := pack.Levels[i]
		describe(os.Stdout, i, entry, *grid)

		if *ticks <= 0 {
			continue
		}
		if err := manager.SetCurrent(i); err != nil {
			log.Fatalf("Failed to build level %d: %v", i+1, err)
		}
		simulate(os.Stdout, manager, *ticks, *tickRate, *realtime, start, input)
	}
}

func load(packPath, tmxPath string) (*levels.Pack, error) {
	switch {
	case tmxPath != "":
		bp, err := leveldata.LoadTMX(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
		if err != nil {
			return nil, err
		}
		return &levels.Pack{Levels: []levels.Entry{{Name: filepath.Base(tmxPath), Blueprint: bp}}}, nil
	case packPath != "":
		return levels.LoadPackFile(packPath)
	}
	return levels.DefaultPack()
}

func parseHold(s string) (components.PlayerInputData, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return components.PlayerInputData{}, nil
	case "left":
		return components.PlayerInputData{MoveLeft: true}, nil
	case "right":
		return components.PlayerInputData{MoveRight: true}, nil
	case "jump":
		return components.PlayerInputData{Jump: true}, nil
	}
	return components.PlayerInputData{}, fmt.Errorf("unknown input %q", s)
}

var kinds = []leveldata.Kind{
	leveldata.KindWall,
	leveldata.KindEtherealWall,
	leveldata.KindMetalWall,
	leveldata.KindPlatform,
	leveldata.KindMovingPlatform,
	leveldata.KindPortal,
	leveldata.KindCollectible,
	leveldata.KindHazard,
	leveldata.KindPowerup,
}

func describe(out io.Writer, index int, entry levels.Entry, grid bool) {
	bp := entry.Blueprint
	fmt.Fprintf(out, "Level %d: %s (%dx%d, tile %g)\n", index+1, entry.Name, bp.Cols, bp.Rows, bp.TileSize)
	fmt.Fprintf(out, "  start (%g, %g)  goal (%g, %g)", bp.Start.X, bp.Start.Y, bp.Goal.X, bp.Goal.Y)
	if !bp.GoalMarked {
		fmt.Fprint(out, " [default]")
	}
	fmt.Fprintln(out)

	var counts []string
	for _, k := range kinds {
		if n := bp.Count(k); n > 0 {
			counts = append(counts, fmt.Sprintf("%s: %d", k, n))
		}
	}
	fmt.Fprintf(out, "  %s\n", strings.Join(counts, ", "))

	if grid {
		for _, row := range bp.Grid() {
			fmt.Fprintf(out, "  |%s|\n", row)
		}
	}
}

func simulate(out io.Writer, manager *levels.Manager, ticks, tickRate int, realtime bool, start dimension.Dimension, input components.PlayerInputData) {
	session := game.NewSession(manager, nil)
	session.Start()
	components.Player.Get(session.Player()).Dimension = start

	loop := game.NewLoop(session, tickRate, ticks, func(int) components.PlayerInputData {
		return input
	})

	var outcome systems.Outcome
	var ran int
	if realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		done := make(chan struct{})
		go func() {
			select {
			case <-sigChan:
				log.Println("Stopping simulation...")
				loop.Stop()
			case <-done:
			}
		}()
		outcome, ran = loop.Run()
		close(done)
		signal.Stop(sigChan)
	} else {
		outcome, ran = loop.RunFast()
	}

	player := session.Player()
	bounds := components.Bounds.Get(player)
	data := components.Player.Get(player)
	health := components.Health.Get(player)
	fmt.Fprintf(out, "  after %d ticks: %s at (%.1f, %.1f) dimension=%s score=%d health=%d events=%d\n",
		ran, outcome, bounds.X, bounds.Y, data.Dimension, data.Score, health.Current, len(session.Events()))
}
