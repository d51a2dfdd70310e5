// Package localstore is the device-local key-value store. It holds the
// canonical working copy of each user's generated plan plus the
// artifacts that never leave the device (per-sport WOD maps, milestone
// goals). Values are whole JSON documents written through on every
// mutation; the Postgres mirror is handled elsewhere and is never read
// during a running session.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed key-value store with change notification.
// All consumers share one Store instance, so a write from one feature
// surface is observable by every other without re-opening anything.
type Store struct {
	db *sql.DB

	mu       sync.Mutex
	watchers map[string][]chan struct{}
}

// Open opens (or creates) the store at path. SQLite is single-writer,
// so the pool is capped at one connection to avoid SQLITE_BUSY.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("localstore: create dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("localstore: exec %q: %w", p, err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS device_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: create schema: %w", err)
	}

	return &Store{
		db:       db,
		watchers: make(map[string][]chan struct{}),
	}, nil
}

// Get reads the value stored under key into dest. A missing key is not
// an error: Get reports found=false and leaves dest untouched.
func (s *Store) Get(key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM device_store WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore: get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("localstore: decode %s: %w", key, err)
	}
	return true, nil
}

// Put serializes value and writes it under key, replacing any previous
// value, then notifies watchers of that key.
func (s *Store) Put(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}

	query := `
		INSERT INTO device_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, string(encoded), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("localstore: put %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM device_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("localstore: delete %s: %w", key, err)
	}

	s.notify(key)
	return nil
}

// Watch returns a channel that receives a signal after every write or
// delete of key. The channel is buffered; a slow consumer coalesces
// signals instead of blocking writers.
func (s *Store) Watch(key string) <-chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers[key] = append(s.watchers[key], ch)
	s.mu.Unlock()

	return ch
}

func (s *Store) notify(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.watchers[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PlanKey is the store key for a user's generated plan.
func PlanKey(userID int64) string {
	return fmt.Sprintf("%d:generated_plan", userID)
}

// WODKey is the store key for a user's per-sport WOD map.
func WODKey(userID int64, sport string) string {
	return fmt.Sprintf("%d:wods:%s", userID, sport)
}

// GoalsKey is the store key for a user's milestone goals.
func GoalsKey(userID int64) string {
	return fmt.Sprintf("%d:user_goals", userID)
}
