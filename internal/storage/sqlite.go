// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one saved simulation run: the batch size, the seed it was
// played with, and the roll-count summary of the batch.
type RunEntry struct {
	ID        int64
	Games     int
	Seed      int64
	LastRolls int // roll count of the final game, the benchmark's output
	MinRolls  int
	MaxRolls  int
	MeanRolls float64
	CreatedAt time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			games INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			last_rolls INTEGER NOT NULL,
			min_rolls INTEGER NOT NULL,
			max_rolls INTEGER NOT NULL,
			mean_rolls REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_min ON runs(min_rolls);
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

// SaveRun records a completed simulation run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (games, seed, last_rolls, min_rolls, max_rolls, mean_rolls)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Games, entry.Seed, entry.LastRolls, entry.MinRolls, entry.MaxRolls, entry.MeanRolls,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, games, seed, last_rolls, min_rolls, max_rolls, mean_rolls, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ShortestGame returns the fewest rolls observed in any saved run.
// Returns 0 if no runs exist.
func (s *Store) ShortestGame() (int, error) {
	var rolls sql.NullInt64
	err := s.db.QueryRow("SELECT MIN(min_rolls) FROM runs").Scan(&rolls)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query shortest game: %w", err)
	}
	if !rolls.Valid {
		return 0, nil
	}
	return int(rolls.Int64), nil
}

// LongestGame returns the most rolls observed in any saved run.
// Returns 0 if no runs exist.
func (s *Store) LongestGame() (int, error) {
	var rolls sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(max_rolls) FROM runs").Scan(&rolls)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest game: %w", err)
	}
	if !rolls.Valid {
		return 0, nil
	}
	return int(rolls.Int64), nil
}

// RunCount returns the number of saved runs.
func (s *Store) RunCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}

// ClearRuns deletes all saved runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Games, &e.Seed, &e.LastRolls, &e.MinRolls, &e.MaxRolls, &e.MeanRolls, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
