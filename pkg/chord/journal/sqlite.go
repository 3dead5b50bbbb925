package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists journal entries to SQLite.
// It is suitable for single-process use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite journal store.
// The path should be a file path (e.g., "./events.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT NOT NULL PRIMARY KEY,
			event TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			properties BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_entries_event
		ON entries(event)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Record implements Store.
func (s *SQLiteStore) Record(entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	fill(entry)
	props, err := json.Marshal(entry.Properties)
	if err != nil {
		return fmt.Errorf("marshal properties: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entries (id, event, recorded_at, properties)
		VALUES (?, ?, ?, ?)
	`, entry.ID, entry.Event, entry.RecordedAt.UTC().Format(time.RFC3339Nano), props)
	if err != nil {
		return fmt.Errorf("record entry: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *SQLiteStore) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	row := s.db.QueryRow(`
		SELECT id, event, recorded_at, properties FROM entries
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List implements Store.
func (s *SQLiteStore) List(event string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	query := `SELECT id, event, recorded_at, properties FROM entries ORDER BY recorded_at, id`
	args := []any{}
	if event != "" {
		query = `SELECT id, event, recorded_at, properties FROM entries WHERE event = ? ORDER BY recorded_at, id`
		args = append(args, event)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Purge implements Store.
func (s *SQLiteStore) Purge(before time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM entries WHERE recorded_at < ?
	`, before.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("purge entries: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

func scanEntry(scan func(dest ...any) error) (*Entry, error) {
	var entry Entry
	var recordedAt string
	var props []byte
	if err := scan(&entry.ID, &entry.Event, &recordedAt, &props); err != nil {
		return nil, err
	}
	entry.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
	if err := json.Unmarshal(props, &entry.Properties); err != nil {
		return nil, fmt.Errorf("unmarshal properties: %w", err)
	}
	return &entry, nil
}
