// Package gamedata persists the player's {score, level, highScore} record
// as JSON text under a single fixed key. Failures are logged and never
// returned: a broken store degrades to "no saved data".
package gamedata

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/become-pm/internal/storage"
)

// Key is the storage key the record lives under.
const Key = "become-pm-game-data"

// GameData is the persisted record.
type GameData struct {
	Score     float64 `json:"score"`
	Level     int     `json:"level"`
	HighScore float64 `json:"highScore"`
}

// Repo reads and writes the record through a key-value store.
type Repo struct {
	kv     storage.KV
	logger *log.Logger
}

// New creates a repository over kv. A nil logger discards failures.
func New(kv storage.KV, logger *log.Logger) *Repo {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repo{kv: kv, logger: logger}
}

// Save stores data, replacing any previous record.
func (r *Repo) Save(data GameData) {
	raw, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("failed to save game data", "err", err)
		return
	}
	if err := r.kv.Set(Key, string(raw)); err != nil {
		r.logger.Error("failed to save game data", "err", err)
	}
}

// Load returns the stored record. ok is false when nothing is stored or
// the stored value cannot be read.
func (r *Repo) Load() (data GameData, ok bool) {
	raw, found, err := r.kv.Get(Key)
	if err != nil {
		r.logger.Error("failed to read game data", "err", err)
		return GameData{}, false
	}
	if !found || raw == "" {
		return GameData{}, false
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		r.logger.Error("failed to read game data", "err", err)
		return GameData{}, false
	}
	return data, true
}

// Clear removes the stored record.
func (r *Repo) Clear() {
	if err := r.kv.Remove(Key); err != nil {
		r.logger.Error("failed to clear game data", "err", err)
	}
}

// ErrNoData is returned by Require when nothing is stored.
var ErrNoData = errors.New("gamedata: no saved data")

// Require is Load for callers that want an error, such as the CLI.
func (r *Repo) Require() (GameData, error) {
	data, ok := r.Load()
	if !ok {
		return GameData{}, ErrNoData
	}
	return data, nil
}
