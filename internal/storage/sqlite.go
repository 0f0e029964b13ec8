// Package storage provides SQLite-based persistence for game data and
// play-session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is one finished play session.
type Session struct {
	ID        string // UUID
	ContentID string
	Score     float64
	Level     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated session statistics for one content.
type Stats struct {
	ContentID  string
	Sessions   int
	BestScore  float64
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// An empty path or MemoryPath opens an in-memory database.
func Open(dbPath string) (*Store, error) {
	memory := dbPath == "" || dbPath == MemoryPath
	if memory {
		dbPath = MemoryPath
	}

	if !memory {
		// Expand ~ to home directory
		if strings.HasPrefix(dbPath, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		// Create parent directories
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			content_id TEXT NOT NULL,
			score REAL NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_content ON sessions(content_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(content_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot remove key %q: %w", key, err)
	}
	return nil
}

// SaveSession records a finished session and returns its generated ID.
func (s *Store) SaveSession(contentID string, score float64, level int, duration time.Duration) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, content_id, score, level, duration_ms) VALUES (?, ?, ?, ?, ?)",
		id, contentID, score, level, duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return id, nil
}

// TopSessions retrieves the best N sessions, ordered by score descending.
// An empty contentID matches every content.
func (s *Store) TopSessions(contentID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, content_id, score, level, duration_ms, created_at
		 FROM sessions
		 WHERE ? = '' OR content_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		contentID, contentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ContentID, &e.Score, &e.Level, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// BestScore returns the highest session score for the content.
// Returns 0 if no sessions exist.
func (s *Store) BestScore(contentID string) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE content_id = ?",
		contentID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return score.Float64, nil
}

// ContentStats retrieves aggregated statistics for every content that has
// been played.
func (s *Store) ContentStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT content_id, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM sessions
		 GROUP BY content_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get content stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.ContentID, &st.Sessions, &st.BestScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.ContentID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes the session history. An empty contentID clears
// every content.
func (s *Store) ClearSessions(contentID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR content_id = ?", contentID, contentID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles the datetime forms the driver returns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
