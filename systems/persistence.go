package systems

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedProgress is the save record: the level to resume and how many
// collectibles have been picked up. It is stored as two newline-terminated
// integers.
type SavedProgress struct {
	LevelIndex int
	Collected  int
}

func (p SavedProgress) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d\n%d\n", p.LevelIndex, p.Collected)), nil
}

func (p *SavedProgress) UnmarshalText(data []byte) error {
	fields := strings.Fields(string(bytes.TrimSpace(data)))
	if len(fields) != 2 {
		return fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("level index: %w", err)
	}
	collected, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("collected: %w", err)
	}
	if level < 0 || collected < 0 {
		return errors.New("negative value")
	}
	p.LevelIndex = level
	p.Collected = collected
	return nil
}

// ItemStore is the key/value storage the progress record lives in.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ProgressStore reads and writes the save record.
type ProgressStore struct {
	items ItemStore
}

func NewProgressStore(items ItemStore) *ProgressStore {
	return &ProgressStore{items: items}
}

// OpenProgressStore opens the per-user data directory for appName.
func OpenProgressStore(appName string) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewProgressStore(m), nil
}

// Load returns the saved progress. Missing or malformed data yields the zero
// record so a broken save never blocks starting the game.
func (s *ProgressStore) Load() SavedProgress {
	if s == nil || s.items == nil {
		return SavedProgress{}
	}

	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return SavedProgress{}
	}
	if len(data) == 0 {
		return SavedProgress{}
	}

	var progress SavedProgress
	if err := progress.UnmarshalText(data); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return SavedProgress{}
	}
	return progress
}

// Save writes p, replacing any previous record.
func (s *ProgressStore) Save(p SavedProgress) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, _ := p.MarshalText()
	if err := s.items.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save game progress: %v", err)
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
