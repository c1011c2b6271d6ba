// Package storage provides SQLite-based persistence for run history and the best score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished run. ID is a ULID, so IDs sort by creation time.
type Run struct {
	ID        string
	Score     int
	Coins     int
	Distance  float64
	Duration  time.Duration
	Preset    string
	Seed      int64
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
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			preset TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL
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

// SaveRun records a finished run and returns its ID.
// A zero CreatedAt is stamped with the current time; an empty ID gets a fresh ULID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.ID == "" {
		id, err := ulid.New(ulid.Timestamp(run.CreatedAt), ulid.DefaultEntropy())
		if err != nil {
			return "", fmt.Errorf("storage: cannot generate run id: %w", err)
		}
		run.ID = id.String()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, score, coins, distance, duration_ms, preset, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Score, run.Coins, run.Distance, run.Duration.Milliseconds(),
		run.Preset, run.Seed, run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best N runs, highest score first.
// Equal scores keep the earlier run first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, coins, distance, duration_ms, preset, seed, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, score, coins, distance, duration_ms, preset, seed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// RunByID retrieves a run by its ULID. It returns nil when no run matches.
func (s *Store) RunByID(id string) (*Run, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return nil, fmt.Errorf("storage: invalid run id %q: %w", id, err)
	}

	runs, err := s.queryRuns(
		`SELECT id, score, coins, distance, duration_ms, preset, seed, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.Score, &r.Coins, &r.Distance, &durationMS, &r.Preset, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest recorded run score, or 0 without runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes the run history. Best scores are kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Best returns the best score stored under key, or 0 if none.
func (s *Store) Best(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// RaiseBest stores score under key unless a higher value is already there.
func (s *Store) RaiseBest(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET score = MAX(score, excluded.score)`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over the run history.
type RunStats struct {
	Runs          int
	HighScore     int
	AvgScore      float64
	TotalCoins    int64
	TotalDistance float64
	LongestRun    time.Duration
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics over all recorded runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var longestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(coins), 0), COALESCE(SUM(distance), 0), COALESCE(MAX(duration_ms), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalCoins, &stats.TotalDistance, &longestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LongestRun = time.Duration(longestMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both driver-decoded and text datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
