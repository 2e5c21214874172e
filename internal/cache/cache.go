package cache

import (
	"slices"
	"sync"
)

// Memo is a thread-safe map with a soft size limit. When an insertion
// pushes it past the limit, the least recently used quarter is evicted.
type Memo[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      uint64
	hits      uint64
	misses    uint64
}

type entry[V any] struct {
	value V
	atime uint64
}

// New creates a Memo holding roughly softLimit entries.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Memo[K, V] {
	return &Memo[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: max(softLimit, 0),
	}
}

// GetOrCreate returns the value for key, calling create on a miss.
// create runs under the lock, so it is called at most once per key
// between evictions and must not call back into m.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tick++
	if e, ok := m.entries[key]; ok {
		m.hits++
		e.atime = m.tick
		return e.value
	}
	m.misses++
	value := create()
	m.store(key, value)
	return value
}

// Stats reports lookup counters.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Len: len(m.entries), Hits: m.hits, Misses: m.misses}
}

// Stats holds Memo counters.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// store must be called with m.mu held.
func (m *Memo[K, V]) store(key K, value V) {
	m.tick++
	m.entries[key] = &entry[V]{value: value, atime: m.tick}
	if m.softLimit > 0 && len(m.entries) > m.softLimit {
		m.evictOldest()
	}
}

// evictOldest trims the map to three quarters of the soft limit.
func (m *Memo[K, V]) evictOldest() {
	target := max(m.softLimit*3/4, 1)
	n := len(m.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   K
		atime uint64
	}
	all := make([]aged, 0, len(m.entries))
	for k, e := range m.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, a := range all[:n] {
		delete(m.entries, a.key)
	}
}
