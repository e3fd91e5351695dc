// Package iht implements the bounded index hash table: a capacity-limited
// mapping from tile coordinate vectors to dense integer indices.
//
// Indices are assigned in first-seen order (the first distinct vector gets
// 0, the next 1, and so on), so a fresh table hands out exactly
// {0, ..., capacity-1} before it fills. Once full the table never grows and
// never evicts: further distinct vectors are reduced by a deterministic
// content hash into [0, capacity) instead, which may collide with assigned
// slots. Degradation is observable via OverflowCount but is never an error.
package iht

import (
	"sync"

	"github.com/hupe1980/tilecode/hashing"
)

// IHT is a bounded index hash table. It is safe for concurrent use: the
// check-presence/assign-next-index sequence runs as one guarded
// transaction per lookup.
type IHT struct {
	mu       sync.RWMutex
	m        map[string]uint32
	capacity uint32
	overflow uint64
	strategy hashing.Strategy
}

// New creates an empty table with the given fixed capacity.
// capacity must be >= 1; callers validate.
func New(capacity uint32) *IHT {
	return NewWithStrategy(capacity, hashing.Default)
}

// NewWithStrategy creates an empty table whose overflow fallback uses the
// given hash strategy instead of the default content hash.
func NewWithStrategy(capacity uint32, strategy hashing.Strategy) *IHT {
	if strategy == nil {
		strategy = hashing.Default
	}
	return &IHT{
		m:        make(map[string]uint32),
		capacity: capacity,
		strategy: strategy,
	}
}

// GetIndex returns the index for coords, inserting it if the table still
// has room. The returned value is always in [0, capacity).
//
// Present vectors keep the index they were assigned, forever. Absent
// vectors get the next dense index while count < capacity; once the table
// is full they are hashed into [0, capacity) without being inserted, so
// distinct overfull vectors may collide (the same vector always re-hashes
// to the same index).
func (t *IHT) GetIndex(coords []int64) uint32 {
	key := string(hashing.Key(coords))

	t.mu.Lock()
	defer t.mu.Unlock()

	if idx, ok := t.m[key]; ok {
		return idx
	}

	if uint32(len(t.m)) < t.capacity {
		idx := uint32(len(t.m))
		t.m[key] = idx
		return idx
	}

	t.overflow++
	return t.strategy.Index(coords, t.capacity)
}

// Peek returns the stored index for coords without mutating the table and
// without taking the overflow path: absent vectors report ok=false whether
// or not the table is full.
func (t *IHT) Peek(coords []int64) (uint32, bool) {
	key := string(hashing.Key(coords))

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.m[key]
	return idx, ok
}

// Count returns the number of distinct vectors assigned so far.
func (t *IHT) Count() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return uint32(len(t.m))
}

// Capacity returns the fixed capacity.
func (t *IHT) Capacity() uint32 { return t.capacity }

// Full reports whether every slot has been assigned.
func (t *IHT) Full() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return uint32(len(t.m)) >= t.capacity
}

// OverflowCount returns how many lookups were served by the collision
// fallback instead of a dedicated slot.
func (t *IHT) OverflowCount() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.overflow
}

// Stats is a snapshot of table occupancy.
type Stats struct {
	Count         uint32
	Capacity      uint32
	OverflowCount uint64
	Full          bool
}

// Stats returns a consistent snapshot of the table's occupancy counters.
func (t *IHT) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Stats{
		Count:         uint32(len(t.m)),
		Capacity:      t.capacity,
		OverflowCount: t.overflow,
		Full:          uint32(len(t.m)) >= t.capacity,
	}
}
