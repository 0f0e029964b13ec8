// Package gamestate owns the score, level and high score of one play
// session. It reads the stored record once on construction and writes it
// back on every score change.
package gamestate

import "github.com/vovakirdan/become-pm/internal/gamedata"

// Persister loads and saves the game record. *gamedata.Repo implements it.
type Persister interface {
	Load() (gamedata.GameData, bool)
	Save(gamedata.GameData)
}

// State is the score keeper. It is not safe for concurrent use; the host
// mutates it from the same goroutine that fires engine frames.
type State struct {
	score     float64
	level     int
	highScore float64
	store     Persister
}

// New creates a state at score 0, level 1, seeded with the stored high
// score if a record exists. A nil store disables persistence.
func New(store Persister) *State {
	s := &State{level: 1, store: store}
	if store != nil {
		if data, ok := store.Load(); ok {
			s.highScore = data.HighScore
		}
	}
	return s
}

// AddScore adds points, raises the high score when passed, and saves.
func (s *State) AddScore(points float64) {
	s.score += points
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.save()
}

// Score returns the current score.
func (s *State) Score() float64 {
	return s.score
}

// SetLevel sets the level, never below 1.
func (s *State) SetLevel(level int) {
	s.level = max(1, level)
}

// Level returns the current level.
func (s *State) Level() int {
	return s.level
}

// HighScore returns the best score seen, stored or current.
func (s *State) HighScore() float64 {
	return s.highScore
}

// IsRecord reports whether the current score matches or beats the high score.
func (s *State) IsRecord() bool {
	return s.score >= s.highScore
}

// GameData returns a snapshot of the record.
func (s *State) GameData() gamedata.GameData {
	return gamedata.GameData{
		Score:     s.score,
		Level:     s.level,
		HighScore: s.highScore,
	}
}

// Reset zeroes the score and level. The high score is kept and nothing is
// written.
func (s *State) Reset() {
	s.score = 0
	s.level = 1
}

func (s *State) save() {
	if s.store != nil {
		s.store.Save(s.GameData())
	}
}
