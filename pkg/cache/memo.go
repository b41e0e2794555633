package cache

import "sync"

// Memo is a thread-safe append-only map from keys to lazily built values.
type Memo[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewMemo creates an empty Memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{items: make(map[K]V)}
}

// Get returns the value stored for key.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// GetOrCreate returns the value for key, building and storing it with build
// on a miss. If another goroutine stored a value first, that value is
// returned and the freshly built one is dropped.
func (m *Memo[K, V]) GetOrCreate(key K, build func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.items[key]; ok {
		return existing, nil
	}
	m.items[key] = v
	return v, nil
}

// Len returns the number of stored entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
