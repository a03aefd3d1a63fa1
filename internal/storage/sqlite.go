// Package storage provides SQLite-based persistence for the run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished play session on a level.
type Run struct {
	ID        int64
	LevelID   string
	Ticks     int
	Deaths    int
	Stomps    int
	AvgFPS    float64
	EndReason string // "quit", "restart", "disconnect"
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			stomps INTEGER NOT NULL DEFAULT 0,
			avg_fps REAL NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, deaths ASC, stomps DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (level_id, ticks, deaths, stomps, avg_fps, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Ticks, r.Deaths, r.Stomps, r.AvgFPS, r.EndReason,
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

const runColumns = `id, level_id, ticks, deaths, stomps, avg_fps, end_reason, created_at`

// RecentRuns retrieves the most recent runs, newest first. An empty
// levelID matches every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the run with the fewest deaths on a level, breaking ties
// by most stomps and then fewest ticks. Returns nil if the level has no runs.
func (s *Store) BestRun(levelID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY deaths ASC, stomps DESC, ticks ASC
		 LIMIT 1`,
		levelID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// LevelIDs returns every level with at least one recorded run, sorted.
func (s *Store) LevelIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT level_id FROM runs ORDER BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.LevelID, &r.Ticks, &r.Deaths, &r.Stomps, &r.AvgFPS, &r.EndReason, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
