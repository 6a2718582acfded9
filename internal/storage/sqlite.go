package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mindgym/internal/core"
)

// MemoryPath opens an in-memory SQLite database when passed to Open.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection for result persistence.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex // Serializes writes
	now func() time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
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
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if dbPath == MemoryPath {
		// Each connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if dbPath != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: cannot enable WAL: %w", err)
		}
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Every statement is idempotent.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS results (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			score REAL NOT NULL,
			variant TEXT NOT NULL DEFAULT '',
			created_ns INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_kind ON results(kind, variant)`,
		`CREATE INDEX IF NOT EXISTS idx_results_time ON results(kind, created_ns, seq)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordResult appends a finished round.
func (s *Store) RecordResult(kind core.Kind, score float64, variant string) (Result, error) {
	if err := checkResult(kind, score); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := Result{
		ID:        uuid.New().String(),
		Kind:      kind,
		Score:     score,
		Variant:   variant,
		CreatedAt: s.now(),
	}
	_, err := s.db.Exec(
		"INSERT INTO results (id, kind, score, variant, created_ns) VALUES (?, ?, ?, ?, ?)",
		r.ID, string(r.Kind), r.Score, r.Variant, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r, nil
}

// BestScore returns the best score for the kind, honoring its score order.
// The bool is false when no result matches.
func (s *Store) BestScore(kind core.Kind, variant string) (float64, bool, error) {
	agg := "MAX"
	if kind.Order() == core.LowerIsBetter {
		agg = "MIN"
	}

	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT "+agg+"(score) FROM results WHERE kind = ? AND (? = '*' OR variant = ?)",
		string(kind), variant, variant,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return best.Float64, true, nil
}

// History returns the matching results ordered by time, then insertion sequence.
func (s *Store) History(kind core.Kind, variant string, order Order) ([]Result, error) {
	dir := "ASC"
	if order == NewestFirst {
		dir = "DESC"
	}

	rows, err := s.db.Query(
		`SELECT id, kind, score, variant, created_ns
		 FROM results
		 WHERE kind = ? AND (? = '*' OR variant = ?)
		 ORDER BY created_ns `+dir+`, seq `+dir,
		string(kind), variant, variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var k string
		var ns int64
		if err := rows.Scan(&r.ID, &k, &r.Score, &r.Variant, &ns); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Kind = core.Kind(k)
		r.CreatedAt = time.Unix(0, ns)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats summarizes the matching results.
func (s *Store) Stats(kind core.Kind, variant string) (Stats, error) {
	results, err := s.History(kind, variant, Chronological)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(kind, results), nil
}

// Variants returns the distinct variant tags recorded for the kind.
func (s *Store) Variants(kind core.Kind) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT variant FROM results WHERE kind = ? ORDER BY variant",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// Clear deletes every result of the kind. Admin use only; play never calls it.
func (s *Store) Clear(kind core.Kind) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM results WHERE kind = ?", string(kind))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared rows: %w", err)
	}
	return n, nil
}

var (
	_ ScoreStore = (*Store)(nil)
	_ Clearer    = (*Store)(nil)
)
