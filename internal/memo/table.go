// Package memo provides the lookup tables used to memoize step and pitch lookups
package memo

import (
	"errors"
	"fmt"
	"sync"
)

// ErrReadOnly is returned when a caller tries to write into a lookup table
var ErrReadOnly = errors.New("lookup table is read-only")

// Table memoizes values by key. It is safe for concurrent use.
type Table[K comparable, V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty table. The name only shows up in errors.
func New[K comparable, V any](name string) *Table[K, V] {
	return &Table[K, V]{
		name:    name,
		entries: make(map[K]V),
	}
}

// Lookup returns the cached value for key or computes, stores and returns it
func (t *Table[K, V]) Lookup(key K, compute func() V) V {
	t.mu.RLock()
	if v, ok := t.entries[key]; ok {
		t.mu.RUnlock()
		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := t.entries[key]; ok {
		return v
	}

	v := compute()
	t.entries[key] = v
	return v
}

// Get returns the cached value for key, if any
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of cached entries
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Keys returns the cached keys. Order is unspecified.
func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// View returns a read-only handle on the table
func (t *Table[K, V]) View() View[K, V] {
	return View[K, V]{table: t}
}

// View is a read-only handle on a Table
type View[K comparable, V any] struct {
	table *Table[K, V]
}

// Get returns the cached value for key, if any
func (v View[K, V]) Get(key K) (V, bool) {
	if v.table == nil {
		var zero V
		return zero, false
	}
	return v.table.Get(key)
}

// Len returns the number of cached entries
func (v View[K, V]) Len() int {
	if v.table == nil {
		return 0
	}
	return v.table.Len()
}

// Keys returns the cached keys. Order is unspecified.
func (v View[K, V]) Keys() []K {
	if v.table == nil {
		return nil
	}
	return v.table.Keys()
}

// Set always fails: entries are derived state and only the owner fills them
func (v View[K, V]) Set(key K, _ V) error {
	name := "table"
	if v.table != nil && v.table.name != "" {
		name = v.table.name
	}
	return fmt.Errorf("%w: cannot set %s[%v]", ErrReadOnly, name, key)
}
