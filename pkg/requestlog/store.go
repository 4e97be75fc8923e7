// Package requestlog captures recent onboarding API traffic for the
// control panel. The log is a bounded in-memory buffer: once full, the
// oldest entries are dropped.
package requestlog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries retained.
const DefaultCapacity = 50

// Entry is one captured request.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Method    string          `json:"method"`
	URL       string          `json:"url"`
	Body      json.RawMessage `json:"body,omitempty"`
}

// Store records and serves request entries.
type Store interface {
	Log(method, url string, body []byte)
	List() []Entry
	Clear()
	Count() int
}

// MemoryStore is a capacity-bounded in-memory Store. Safe for concurrent
// use.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	now      func() time.Time
}

// NewMemoryStore creates a store with the default capacity.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithCapacity(DefaultCapacity)
}

// NewMemoryStoreWithCapacity creates a store retaining at most capacity
// entries; non-positive values fall back to the default.
func NewMemoryStoreWithCapacity(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity, now: time.Now}
}

// Log appends an entry, evicting the oldest when at capacity. The body is
// kept only when it is valid JSON; anything else is dropped rather than
// corrupting the log payload.
func (s *MemoryStore) Log(method, url string, body []byte) {
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		Method:    method,
		URL:       url,
	}
	if len(body) > 0 && json.Valid(body) {
		entry.Body = json.RawMessage(body)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
}

// List returns the retained entries, newest first.
func (s *MemoryStore) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// Clear discards all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Count returns the number of retained entries.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
