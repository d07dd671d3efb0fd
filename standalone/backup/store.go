// Package backup keeps local snapshots of the preference store so settings
// survive a lost or corrupt prefs file.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register driver
)

// Snapshot is one saved copy of the preference values.
type Snapshot struct {
	ID        string
	CreatedAt time.Time
	Values    map[string]interface{}
}

// Store persists snapshots in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping backup db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	// Single writer: the backup worker
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("backup migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		data TEXT NOT NULL
	);`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a new snapshot of values and returns its id.
func (s *Store) Save(values map[string]interface{}) (string, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec("INSERT INTO snapshots (id, created_at, data) VALUES (?, ?, ?)",
		id, time.Now().UnixNano(), string(data))
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return id, nil
}

// Latest returns the most recently saved snapshot. ok is false when the
// store is empty.
func (s *Store) Latest() (snap Snapshot, ok bool, err error) {
	var created int64
	var data string
	row := s.db.QueryRow("SELECT id, created_at, data FROM snapshots ORDER BY rowid DESC LIMIT 1")
	if err := row.Scan(&snap.ID, &created, &data); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("failed to read latest snapshot: %w", err)
	}

	snap.CreatedAt = time.Unix(0, created)
	if err := json.Unmarshal([]byte(data), &snap.Values); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode snapshot %s: %w", snap.ID, err)
	}
	return snap, true, nil
}

// Count returns the number of stored snapshots.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}

// Prune deletes all but the newest keep snapshots.
func (s *Store) Prune(keep int) error {
	if keep < 1 {
		keep = 1
	}
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE rowid NOT IN (
		SELECT rowid FROM snapshots ORDER BY rowid DESC LIMIT ?
	)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return nil
}
