// Package store provides SQLite-backed persistence for QA state snapshots.
//
// State is stored as a single JSON blob per storage key, mirroring a
// key-value store with a size quota: a snapshot larger than the configured
// limit is pruned (historical sessions trimmed to the most recent) and
// retried once before the save fails.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/avaldez/qatrail/internal/model"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// DefaultMaxBlobSize caps a serialized snapshot at 5 MiB, the ballpark of a
// browser localStorage quota.
const DefaultMaxBlobSize = 5 << 20

// keepSessions is how many historical sessions survive a quota prune.
const keepSessions = 10

// SQLiteStore persists QA state snapshots in a local SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	maxBlob int
}

// Option adjusts store construction.
type Option func(*SQLiteStore)

// WithMaxBlobSize overrides the snapshot size limit. Zero or negative keeps
// the default.
func WithMaxBlobSize(n int) Option {
	return func(s *SQLiteStore) {
		if n > 0 {
			s.maxBlob = n
		}
	}
}

// New opens (or creates) a SQLite database at dbPath.
// It auto-creates the parent directory (e.g. ~/.qatrail/) and runs
// schema migrations to ensure the database is up to date.
func New(dbPath string, opts ...Option) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for WAL mode simplicity.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, maxBlob: DefaultMaxBlobSize}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// migrate runs schema migrations up to the current version.
func (s *SQLiteStore) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("create version table: %w", err)
	}

	var ver int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&ver)
	if err == sql.ErrNoRows {
		ver = 0
	} else if err != nil {
		return fmt.Errorf("read version: %w", err)
	}

	if ver < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) migrateV1() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS qa_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`INSERT OR REPLACE INTO schema_version (version) VALUES (1)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate v1: %w", err)
		}
	}
	return nil
}

// Load reads the snapshot stored under key. A missing key or a blob that
// fails to decode or validate yields (nil, nil): corrupted persistence is
// treated as absent rather than fatal.
func (s *SQLiteStore) Load(key string) (*model.QAState, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM qa_state WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return Decode([]byte(raw))
}

// Save serializes state under key. A snapshot exceeding the size limit is
// pruned to the most recent historical sessions and retried once; if it
// still exceeds the limit the save fails.
func (s *SQLiteStore) Save(key string, state model.QAState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if len(blob) > s.maxBlob {
		pruned := state.Clone()
		pruned.TestSessions = recentSessions(pruned.TestSessions, keepSessions)
		blob, err = json.Marshal(pruned)
		if err != nil {
			return fmt.Errorf("encode pruned state: %w", err)
		}
		if len(blob) > s.maxBlob {
			return fmt.Errorf("state blob is %d bytes after pruning, limit %d", len(blob), s.maxBlob)
		}
	}

	_, err = s.db.Exec(`INSERT INTO qa_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(blob), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// recentSessions returns the n most-recently-started sessions, newest first.
func recentSessions(sessions []model.TestSession, n int) []model.TestSession {
	sorted := make([]model.TestSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Clear removes the snapshot stored under key. Returns true if a row was
// deleted.
func (s *SQLiteStore) Clear(key string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM qa_state WHERE key = ?", key)
	if err != nil {
		return false, fmt.Errorf("clear state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("clear state: %w", err)
	}
	return n > 0, nil
}

// UpdatedAt returns when the snapshot under key was last written, or the
// zero time when no snapshot exists.
func (s *SQLiteStore) UpdatedAt(key string) (time.Time, error) {
	var raw string
	err := s.db.QueryRow("SELECT updated_at FROM qa_state WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read updated_at: %w", err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return t, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
