package cache

import (
	"sync"
	"time"
)

// Memo is a small concurrency-safe TTL map. Provider adapters use one to
// avoid repeated upstream calls for the same skill set inside a TTL window.
// Entries are immutable once written.
type Memo[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoEntry[V]
	now     func() time.Time
}

type memoEntry[V any] struct {
	value    V
	storedAt time.Time
}

// NewMemo creates a Memo with the given freshness window.
func NewMemo[V any](ttl time.Duration) *Memo[V] {
	return &Memo[V]{
		ttl:     ttl,
		entries: make(map[string]memoEntry[V]),
		now:     time.Now,
	}
}

// Get returns the cached value when present and fresh.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok || m.now().Sub(entry.storedAt) > m.ttl {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores a value under key, replacing any previous entry.
func (m *Memo[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoEntry[V]{value: value, storedAt: m.now()}
}

// Len reports the number of entries, fresh or stale.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
