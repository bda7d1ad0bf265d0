package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a MemoryCache built by NewMemoryCache.
const DefaultMaxEntries = 256

// MemoryCache is an in-process Service. Expired entries are dropped when
// read and swept on every write. Once maxEntries live entries are held, a
// write of a new key evicts the oldest stored entry.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	maxEntries int
	seq        uint64
	now        func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
	seq       uint64
}

// NewMemoryCache returns an empty in-memory cache holding at most
// DefaultMaxEntries entries.
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithLimit(DefaultMaxEntries)
}

// NewMemoryCacheWithLimit returns an empty in-memory cache holding at most
// maxEntries entries. Non-positive limits fall back to DefaultMaxEntries.
func NewMemoryCacheWithLimit(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok || !m.now().Before(entry.expiresAt) {
		return nil, ErrMiss
	}
	return append([]byte(nil), entry.value...), nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := checkTTL(ttl); err != nil {
		return fmt.Errorf("memory cache set %q: %w", key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.data {
		if !now.Before(e.expiresAt) {
			delete(m.data, k)
		}
	}
	if _, ok := m.data[key]; !ok {
		for len(m.data) >= m.maxEntries {
			m.evictOldest()
		}
	}

	m.seq++
	m.data[key] = memoryEntry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
		seq:       m.seq,
	}
	return nil
}

// evictOldest removes the entry written longest ago. Callers hold mu.
func (m *MemoryCache) evictOldest() {
	var (
		oldest string
		seq    uint64
		found  bool
	)
	for k, e := range m.data {
		if !found || e.seq < seq {
			oldest, seq, found = k, e.seq, true
		}
	}
	delete(m.data, oldest)
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
