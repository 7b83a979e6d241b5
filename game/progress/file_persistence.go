package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

var ErrProgressNotFound = errors.New("progression not found")

// PersistedProgress is the on-disk shape of a player's progression. Only
// logical state is stored; the in-day yard state is deliberately ephemeral.
type PersistedProgress struct {
	Levels          map[string]int                     `json:"levels"`
	Coins           int                                `json:"coins"`
	Day             int                                `json:"day"`
	CompletedOrders map[string]engine.CompletionRecord `json:"completed_orders,omitempty"`
	Sequence        engine.SequenceConfig              `json:"sequence"`
}

// Persistence stores and retrieves progression registries by id.
type Persistence interface {
	Save(id string, reg *Registry) error
	Load(id string) (*Registry, error)
	Delete(id string) error
	Exists(id string) bool
	ListAll() ([]string, error)
}

// FilePersistence implements Persistence with one JSON file per id.
type FilePersistence struct {
	dir string
}

// NewFilePersistence creates a file-based progression store rooted at dir,
// creating the directory when missing.
func NewFilePersistence(dir string) (*FilePersistence, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create progress directory: %w", err)
	}
	return &FilePersistence{dir: dir}, nil
}

// Save writes the registry's progression to disk.
func (fp *FilePersistence) Save(id string, reg *Registry) error {
	if reg == nil {
		return fmt.Errorf("registry cannot be nil")
	}

	data := PersistedProgress{
		Levels:          reg.Levels(),
		Coins:           reg.Coins(),
		Day:             reg.Day(),
		CompletedOrders: reg.CompletedOrders(),
		Sequence:        reg.Sequence(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progression: %w", err)
	}

	if err := os.WriteFile(fp.filePath(id), jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write progression file: %w", err)
	}

	return nil
}

// Load reads a progression file into a fresh registry.
func (fp *FilePersistence) Load(id string) (*Registry, error) {
	jsonData, err := os.ReadFile(fp.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to read progression file: %w", err)
	}

	var data PersistedProgress
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progression: %w", err)
	}

	reg := NewRegistry()
	for key, level := range data.Levels {
		reg.SetInt(key, level)
	}
	reg.SetInt(KeyCoins, data.Coins)
	if data.Day > 0 {
		reg.SetInt(KeyDay, data.Day)
	}
	if len(data.CompletedOrders) > 0 {
		reg.SetCompletedOrders(data.CompletedOrders)
	}
	reg.SetSequence(data.Sequence)

	return reg, nil
}

// Delete removes a progression file.
func (fp *FilePersistence) Delete(id string) error {
	if !fp.Exists(id) {
		return ErrProgressNotFound
	}
	if err := os.Remove(fp.filePath(id)); err != nil {
		return fmt.Errorf("failed to remove progression file: %w", err)
	}
	return nil
}

// Exists reports whether a progression file is present for the id.
func (fp *FilePersistence) Exists(id string) bool {
	_, err := os.Stat(fp.filePath(id))
	return err == nil
}

// ListAll returns every persisted progression id.
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return ids, nil
}

func (fp *FilePersistence) filePath(id string) string {
	return filepath.Join(fp.dir, fmt.Sprintf("%s.json", id))
}
