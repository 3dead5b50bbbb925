// Package journal records dispatched events locally for debugging.
//
// The journal is a diagnostic artifact, not a delivery mechanism: the
// client writes each emitted event after handing it to the CDP, failures
// are logged and ignored, and nothing is ever replayed. Two stores are
// provided: MemoryStore for tests and short-lived processes, SQLiteStore
// for inspecting a session after the fact.
package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors returned by stores.
var (
	// ErrNotFound is returned when a requested entry doesn't exist.
	ErrNotFound = errors.New("journal entry not found")

	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("journal store is closed")
)

// Entry is one recorded dispatch.
type Entry struct {
	// ID uniquely identifies the entry. Filled by the store when empty.
	ID string `json:"id"`

	// Event is the event name (for example, "Cart Viewed").
	Event string `json:"event"`

	// Properties is the payload as handed to the CDP, meta included.
	Properties map[string]any `json:"properties"`

	// RecordedAt is when the entry was written. Filled by the store when zero.
	RecordedAt time.Time `json:"recorded_at"`
}

// Store persists journal entries.
// Implementations are safe for concurrent use.
type Store interface {
	// Record writes an entry, assigning ID and RecordedAt when unset.
	Record(entry *Entry) error

	// Get retrieves an entry by ID.
	Get(id string) (*Entry, error)

	// List returns entries for an event name in recording order.
	// An empty event name returns all entries.
	List(event string) ([]*Entry, error)

	// Purge removes entries recorded before the cutoff.
	Purge(before time.Time) error

	// Close releases the store's resources.
	Close() error
}

// fill assigns the generated fields of an entry.
func fill(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}
}
