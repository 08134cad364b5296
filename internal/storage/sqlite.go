// Package storage keeps the run log of the current session in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The log lives in an in-memory database and disappears with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection holding the run log.
type Store struct {
	db *sql.DB
}

// Run is a single finished run: from a spawn until the sphere fell.
type Run struct {
	ID        string
	Mode      string
	Seed      int64
	Distance  float64 // distance at death
	Duration  float64 // seconds alive
	CreatedAt time.Time
}

// Stats aggregates all runs of one mode.
type Stats struct {
	Runs      int
	Best      float64
	Average   float64
	TimeAlive float64
}

// Open opens the database named by dsn and runs migrations.
// An empty dsn means MemoryDSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a fresh, empty database.
	db.SetMaxOpenConns(1)

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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			distance REAL NOT NULL,
			duration REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(mode, distance DESC);
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

// SaveRun records a finished run. A missing ID or timestamp is filled in.
// Returns the stored run.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (id, mode, seed, distance, duration, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.Mode, r.Seed, r.Distance, r.Duration, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	r.CreatedAt = time.UnixMilli(r.CreatedAt.UnixMilli())
	return r, nil
}

// RecentRuns returns up to limit runs of the mode, newest first.
// An empty mode lists every mode.
func (s *Store) RecentRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, distance, duration, created_at
		 FROM runs
		 WHERE ? = '' OR mode = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		mode, mode, limit,
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

// BestRun returns the furthest run of the mode, or nil if none exists.
func (s *Store) BestRun(mode string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, mode, seed, distance, duration, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY distance DESC, seq ASC
		 LIMIT 1`,
		mode,
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

// Stats aggregates the runs of the mode. A mode without runs yields zero stats.
func (s *Store) Stats(mode string) (Stats, error) {
	var (
		st        Stats
		best, avg sql.NullFloat64
		alive     sql.NullFloat64
	)
	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(distance), AVG(distance), SUM(duration) FROM runs WHERE mode = ?",
		mode,
	).Scan(&st.Runs, &best, &avg, &alive)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = best.Float64
	st.Average = avg.Float64
	st.TimeAlive = alive.Float64
	return st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		created int64
	)
	if err := sc.Scan(&r.ID, &r.Mode, &r.Seed, &r.Distance, &r.Duration, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = time.UnixMilli(created)
	return r, nil
}
