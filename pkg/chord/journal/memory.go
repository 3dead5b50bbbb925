package journal

import (
	"sync"
	"time"
)

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry
	closed  bool
}

// NewMemoryStore creates a new in-memory journal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*Entry)}
}

// Record implements Store.
func (s *MemoryStore) Record(entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	fill(entry)
	stored := cloneEntry(entry)
	s.entries = append(s.entries, stored)
	s.byID[stored.ID] = stored
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	entry, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneEntry(entry), nil
}

// List implements Store.
func (s *MemoryStore) List(event string) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var out []*Entry
	for _, entry := range s.entries {
		if event == "" || entry.Event == event {
			out = append(out, cloneEntry(entry))
		}
	}
	return out, nil
}

// Purge implements Store.
func (s *MemoryStore) Purge(before time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.RecordedAt.Before(before) {
			delete(s.byID, entry.ID)
			continue
		}
		kept = append(kept, entry)
	}
	s.entries = kept
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func cloneEntry(entry *Entry) *Entry {
	entryCopy := *entry
	if entry.Properties != nil {
		entryCopy.Properties = make(map[string]any, len(entry.Properties))
		for k, v := range entry.Properties {
			entryCopy.Properties[k] = v
		}
	}
	return &entryCopy
}
