// Package storage provides SQLite-based persistence for saved games and
// story completions. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ilyavolkan/tui-fable/internal/game"
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.fable/fable.db"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SaveEntry describes one saved game, without the full state blob.
type SaveEntry struct {
	ID        int64
	Slot      string
	StoryID   string
	Moves     int
	CreatedAt time.Time
}

// CompletionStats contains aggregated results for one story.
type CompletionStats struct {
	StoryID    string
	Count      int
	BestMoves  int
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL UNIQUE,
			story_id TEXT NOT NULL,
			state TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_saves_story_id ON saves(story_id);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			story_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_story_id ON completions(story_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(story_id, moves ASC);
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

// SaveGame writes a snapshot into the named slot, replacing any previous
// save in that slot.
func (s *Store) SaveGame(slot string, snap game.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (slot, story_id, state, moves, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   story_id = excluded.story_id,
		   state = excluded.state,
		   moves = excluded.moves,
		   created_at = CURRENT_TIMESTAMP`,
		slot, snap.Story, string(state), snap.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads the snapshot in the named slot. Returns nil, nil when the
// slot is empty.
func (s *Store) LoadGame(slot string) (*game.Snapshot, error) {
	var state string
	err := s.db.QueryRow("SELECT state FROM saves WHERE slot = ?", slot).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load save: %w", err)
	}

	var snap game.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return nil, fmt.Errorf("storage: corrupt save in slot %q: %w", slot, err)
	}
	return &snap, nil
}

// ListSaves returns all saved games, most recent first.
func (s *Store) ListSaves() ([]SaveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, slot, story_id, moves, created_at
		 FROM saves
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Slot, &e.StoryID, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSave removes the named slot. Deleting an empty slot is not an
// error.
func (s *Store) DeleteSave(slot string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// RecordCompletion records a finished playthrough.
// Returns the ID of the inserted record.
func (s *Store) RecordCompletion(storyID string, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (story_id, moves) VALUES (?, ?)",
		storyID, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestCompletion returns the lowest move count for the given story.
// Returns 0 if the story has never been completed.
func (s *Store) BestCompletion(storyID string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE story_id = ?",
		storyID,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best completion: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// GetCompletionStats retrieves aggregated results for a specific story.
func (s *Store) GetCompletionStats(storyID string) (*CompletionStats, error) {
	stats := &CompletionStats{StoryID: storyID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0)
		 FROM completions WHERE story_id = ?`,
		storyID,
	).Scan(&stats.Count, &stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get completion stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM completions WHERE story_id = ? ORDER BY created_at DESC LIMIT 1`,
		storyID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
