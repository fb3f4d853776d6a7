package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, V any] struct {
	mux sync.RWMutex
	m   map[K]V
}

// New creates a new instance of Map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Get retrieves an item by key, zero value when absent
func (r *Map[K, V]) Get(key K) V {
	v, _ := r.Lookup(key)
	return v
}

// Lookup retrieves an item by key and reports its presence
func (r *Map[K, V]) Lookup(key K) (V, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// GetOrCreate returns the item stored under key, creating it with fn when
// absent. fn runs under the write lock.
func (r *Map[K, V]) GetOrCreate(key K, fn func() V) V {
	if v, ok := r.Lookup(key); ok {
		return v
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[key]; ok {
		return v
	}
	v := fn()
	r.m[key] = v
	return v
}

// Set adds or updates an item by key
func (r *Map[K, V]) Set(key K, value V) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Delete removes an item by key
func (r *Map[K, V]) Delete(key K) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Len returns number of stored items
func (r *Map[K, V]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns a slice of all keys
func (r *Map[K, V]) Keys() []K {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]K, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	return ret
}
