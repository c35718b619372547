// Package levels loads level packs and manages the level sequence: building
// each level's world, advancing to the next one and rebuilding on reset.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"gopkg.in/yaml.v3"
)

// PackFile is the name of the built-in pack inside PackFS.
const PackFile = "pack.yaml"

//go:embed pack.yaml
var PackFS embed.FS

var (
	ErrNoLevels    = errors.New("pack has no levels")
	ErrLevelSource = errors.New("level needs exactly one of layout or tmx")
)

// PackSpec is the YAML shape of a level pack.
type PackSpec struct {
	TileSize int         `yaml:"tile_size"`
	Levels   []LevelSpec `yaml:"levels"`
}

// LevelSpec describes one level, either inline or as a Tiled map relative to
// the pack file.
type LevelSpec struct {
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout,omitempty"`
	TMX    string   `yaml:"tmx,omitempty"`
}

// Entry is a parsed level ready to be built.
type Entry struct {
	Name      string
	Blueprint *leveldata.Blueprint
}

// Pack is an ordered, validated set of levels.
type Pack struct {
	Levels []Entry
}

func (p *Pack) Len() int {
	return len(p.Levels)
}

// DefaultPack returns the built-in levels.
func DefaultPack() (*Pack, error) {
	return LoadPack(PackFS, PackFile)
}

// LoadPackFile loads a pack from disk. TMX references resolve against the
// pack's directory.
func LoadPackFile(filename string) (*Pack, error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	return LoadPack(os.DirFS(dir), base)
}

// LoadPack reads and validates the pack named name in fsys. Every level is
// parsed up front so a bad pack fails before anything is built.
func LoadPack(fsys fs.FS, name string) (*Pack, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}

	var spec PackSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if spec.TileSize == 0 {
		spec.TileSize = cfg.Level.TileSize
	}
	if len(spec.Levels) == 0 {
		return nil, fmt.Errorf("levels: %s: %w", name, ErrNoLevels)
	}

	pack := &Pack{Levels: make([]Entry, 0, len(spec.Levels))}
	for i, ls := range spec.Levels {
		bp, err := ls.blueprint(fsys, path.Dir(name), spec.TileSize)
		if err != nil {
			return nil, fmt.Errorf("levels: %s level %d (%s): %w", name, i+1, ls.Name, err)
		}
		levelName := ls.Name
		if levelName == "" {
			levelName = fmt.Sprintf("Level %d", i+1)
		}
		pack.Levels = append(pack.Levels, Entry{Name: levelName, Blueprint: bp})
	}
	return pack, nil
}

func (ls LevelSpec) blueprint(fsys fs.FS, dir string, tileSize int) (*leveldata.Blueprint, error) {
	switch {
	case len(ls.Layout) > 0 && ls.TMX == "":
		return leveldata.Parse(ls.Layout, tileSize)
	case len(ls.Layout) == 0 && ls.TMX != "":
		return leveldata.LoadTMX(fsys, path.Join(dir, ls.TMX))
	}
	return nil, ErrLevelSource
}
