package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jonathan/opportunity-scout/internal/types"
)

// Store is the Result Cache contract. Implementations never surface errors:
// cache unavailability is a performance degradation, not a failure, so a
// broken backend reads as a miss and writes are best-effort.
type Store interface {
	// Get returns the cached result for key when present and fresh.
	Get(ctx context.Context, key string) (*types.DiscoveryResult, bool)
	// Set stores a result under key. Last writer wins; values for the same
	// key are computed from the same normalized input and interchangeable.
	Set(ctx context.Context, key string, result *types.DiscoveryResult)
}

// MemoryConfig holds lifecycle settings for the in-memory store.
type MemoryConfig struct {
	TTL       time.Duration // Freshness window for reads
	Retention time.Duration // Hard age limit enforced by the sweep
	SweepSpec string        // cron spec for the retention sweep, e.g. "@every 1h"
}

// DefaultMemoryConfig returns the shipped cache lifecycle settings.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		TTL:       time.Hour,
		Retention: 24 * time.Hour,
		SweepSpec: "@every 1h",
	}
}

// MemoryStore is the default in-process Result Cache. Entries are immutable
// once written; a periodic sweep removes anything older than the retention
// window independent of TTL, bounding memory growth even if reads stop.
type MemoryStore struct {
	mu      sync.RWMutex
	cfg     MemoryConfig
	entries map[string]storeEntry
	cron    *cron.Cron
	now     func() time.Time
}

type storeEntry struct {
	result   *types.DiscoveryResult
	storedAt time.Time
}

// NewMemoryStore creates a MemoryStore. Call StartSweeper to enable the
// background retention sweep.
func NewMemoryStore(cfg MemoryConfig) *MemoryStore {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultMemoryConfig().TTL
	}
	if cfg.Retention == 0 {
		cfg.Retention = DefaultMemoryConfig().Retention
	}
	if cfg.SweepSpec == "" {
		cfg.SweepSpec = DefaultMemoryConfig().SweepSpec
	}
	return &MemoryStore{
		cfg:     cfg,
		entries: make(map[string]storeEntry),
		now:     time.Now,
	}
}

// Get returns the cached result when present and inside the TTL window.
func (s *MemoryStore) Get(_ context.Context, key string) (*types.DiscoveryResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || s.now().Sub(entry.storedAt) > s.cfg.TTL {
		return nil, false
	}
	return entry.result, true
}

// Set stores a result under key.
func (s *MemoryStore) Set(_ context.Context, key string, result *types.DiscoveryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = storeEntry{result: result, storedAt: s.now()}
}

// Sweep removes entries older than the retention window and returns how many
// were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.cfg.Retention)
	removed := 0
	for key, entry := range s.entries {
		if entry.storedAt.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries, fresh or stale.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StartSweeper schedules the retention sweep on the configured cron spec.
func (s *MemoryStore) StartSweeper() error {
	if s.cron != nil {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(s.cfg.SweepSpec, func() {
		if removed := s.Sweep(); removed > 0 {
			log.Printf("[cache] retention sweep removed %d entries", removed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	s.cron = c
	return nil
}

// StopSweeper stops the background sweep.
func (s *MemoryStore) StopSweeper() {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// SweeperRunning reports whether the retention sweep is scheduled.
func (s *MemoryStore) SweeperRunning() bool {
	return s.cron != nil
}
