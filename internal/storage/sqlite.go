// Package storage provides SQLite-based persistence for level completions
// and suspended games. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pattern/internal/engine"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// CompletionEntry records one finished level: which variant, the seed that
// produced it and how many moves the solve took.
type CompletionEntry struct {
	ID        int64
	Variant   string
	Level     int
	Seed      int64
	Moves     int
	CreatedAt time.Time
}

// SessionEntry is one suspended game in the save-slot table.
type SessionEntry struct {
	Name      string
	Seed      int64
	Level     int
	Ops       string
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			level INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_variant ON completions(variant);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(variant, moves ASC);

		CREATE TABLE IF NOT EXISTS saved_games (
			name TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			level INTEGER NOT NULL,
			ops TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveCompletion records a finished level. Returns the inserted record ID.
func (s *Store) SaveCompletion(variant string, level int, seed int64, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (variant, level, seed, moves) VALUES (?, ?, ?, ?)",
		variant, level, seed, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestCompletions retrieves the lowest-move completions for a variant.
// Fewer moves rank higher.
func (s *Store) BestCompletions(variant string, limit int) ([]CompletionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, variant, level, seed, moves, created_at
		 FROM completions
		 WHERE variant = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []CompletionEntry
	for rows.Next() {
		var e CompletionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.Level, &e.Seed, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestMoves returns the lowest move count recorded for the variant.
// Returns 0 if no completion exists.
func (s *Store) BestMoves(variant string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE variant = ?",
		variant,
	).Scan(&moves)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	if !moves.Valid {
		return 0, nil
	}
	return int(moves.Int64), nil
}

// CompletionCount returns how many times the variant has been finished.
func (s *Store) CompletionCount(variant string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM completions WHERE variant = ?",
		variant,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count completions: %w", err)
	}
	return n, nil
}

// SaveGame upserts a suspended game into the named save slot.
func (s *Store) SaveGame(name string, sg engine.SavedGame) error {
	_, err := s.db.Exec(
		`INSERT INTO saved_games (name, seed, level, ops, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   seed = excluded.seed,
		   level = excluded.level,
		   ops = excluded.ops,
		   updated_at = CURRENT_TIMESTAMP`,
		name, sg.Seed, sg.Level, sg.Ops,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", name, err)
	}
	return nil
}

// LoadGame retrieves a save slot. The second return is false when the slot
// does not exist.
func (s *Store) LoadGame(name string) (engine.SavedGame, bool, error) {
	var sg engine.SavedGame
	err := s.db.QueryRow(
		"SELECT seed, level, ops FROM saved_games WHERE name = ?",
		name,
	).Scan(&sg.Seed, &sg.Level, &sg.Ops)
	if err == sql.ErrNoRows {
		return engine.SavedGame{}, false, nil
	}
	if err != nil {
		return engine.SavedGame{}, false, fmt.Errorf("storage: cannot load game %q: %w", name, err)
	}
	return sg, true, nil
}

// DeleteGame removes a save slot. Deleting a missing slot is not an error.
func (s *Store) DeleteGame(name string) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %q: %w", name, err)
	}
	return nil
}

// ListGames retrieves all save slots, most recently updated first.
func (s *Store) ListGames() ([]SessionEntry, error) {
	rows, err := s.db.Query(
		`SELECT name, seed, level, ops, updated_at
		 FROM saved_games
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list saved games: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.Seed, &e.Level, &e.Ops, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTimestamp handles both time.Time and string representations the
// driver may return.
func parseTimestamp(v any) time.Time {
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
