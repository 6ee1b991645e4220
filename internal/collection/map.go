package collection

import "sync"

// SyncMap is a mutex-guarded generic map with an optional size cap. With a
// cap, updates to existing keys always land but new entries are dropped
// once the map is full; lookups never fail for capacity reasons.
type SyncMap[K comparable, V any] struct {
	m        map[K]V
	capacity int
	mux      sync.RWMutex
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok && m.capacity > 0 && len(m.m) >= m.capacity {
		return
	}
	m.m[k] = v
}

func (m *SyncMap[K, V]) Delete(k K) {
	m.mux.Lock()
	defer m.mux.Unlock()
	delete(m.m, k)
}

func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

func (m *SyncMap[K, V]) Range(f func(key K, value V) bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	for k, v := range m.m {
		if !f(k, v) {
			return
		}
	}
}

// NewSyncMap creates a SyncMap; capacity <= 0 means unbounded.
func NewSyncMap[K comparable, V any](capacity int) *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V), capacity: capacity}
}
