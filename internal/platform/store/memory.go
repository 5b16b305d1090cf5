package store

import (
	"context"
	"sync"

	perr "lexis/internal/platform/errors"
)

// Memory is a mutex-guarded keyed collection that preserves insertion order.
// It is the only shared mutable state in the process; all access goes through
// its methods so isolation is enforced in one place
type Memory struct {
	mu    sync.RWMutex
	index map[string]int // key -> position in entries
	keys  []string       // insertion order
	vals  []any          // parallel to keys
}

// NewMemory returns an empty Memory presized to capacity
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 64
	}
	return &Memory{
		index: make(map[string]int, capacity),
		keys:  make([]string, 0, capacity),
		vals:  make([]any, 0, capacity),
	}
}

// Insert adds val under key, failing with a duplicate key error when key exists
func (m *Memory) Insert(_ context.Context, key string, val any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[key]; ok {
		return perr.DuplicateKeyf("key %q already present", key)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	return nil
}

// Get returns the value stored under key
func (m *Memory) Get(_ context.Context, key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

// Delete removes and returns the value stored under key
func (m *Memory) Delete(_ context.Context, key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	val := m.vals[i]
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	// reindex everything after the removed slot
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return val, true
}

// Snapshot returns a copy of all values in insertion order.
// The returned slice is detached: later mutations do not affect it
func (m *Memory) Snapshot(_ context.Context) []any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]any, len(m.vals))
	copy(out, m.vals)
	return out
}

// Len returns the current number of entries
func (m *Memory) Len(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

// Ping implements the Pinger seam; an in-process map is always ready
func (m *Memory) Ping(context.Context) error { return nil }
