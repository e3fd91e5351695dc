// Package hashing reduces tile coordinate vectors to bounded integer
// indices.
//
// The default is a stable content hash (FarmHash64 over the little-endian
// encoding of the elements): a pure function of element values and order,
// with no per-process randomness, so indices reproduce across runs. The
// legacy UNH strategy reproduces the historical random-table scheme for
// callers that depend on it; its table is an explicitly constructed,
// seeded value rather than process-global state.
package hashing

import (
	"encoding/binary"
	"math/rand"

	farmhash "github.com/leemcloughlin/gofarmhash"
)

// Strategy reduces a coordinate vector to an index in [0, size).
// Implementations must be deterministic: same vector and size, same index,
// within and across runs.
type Strategy interface {
	Index(coords []int64, size uint32) uint32
}

// Default is the content-hash strategy used when no other is selected.
var Default Strategy = FarmHash{}

// FarmHash is the stateless content-hash strategy.
type FarmHash struct{}

// Index implements Strategy.
func (FarmHash) Index(coords []int64, size uint32) uint32 {
	return Index(coords, size)
}

// Index returns a deterministic content hash of coords reduced to
// [0, size). size must be > 0. Collisions are expected by design whenever
// size is smaller than the number of distinct vectors ever hashed.
func Index(coords []int64, size uint32) uint32 {
	return uint32(farmhash.Hash64(Key(coords)) % uint64(size))
}

// Key returns the canonical byte encoding of a coordinate vector: each
// element as a little-endian uint64, in order. Two vectors are equal iff
// their keys are byte-equal.
func Key(coords []int64) []byte {
	buf := make([]byte, 8*len(coords))
	for i, c := range coords {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(c))
	}
	return buf
}

const (
	unhTableSize = 2048
	unhTableMask = unhTableSize - 1
	unhIncrement = 449
)

// UNH is the legacy random-table hash ("hash UNH"): each coordinate element
// selects an entry of a 2048-slot table of random integers, the entries are
// summed with wraparound, and the sum is reduced mod size.
//
// The table is built once from a seeded PRNG, so two UNH instances with the
// same seed produce identical indices across runs.
type UNH struct {
	table [unhTableSize]int64
	seed  int64
}

// NewUNH builds a UNH strategy from seed.
func NewUNH(seed int64) *UNH {
	u := &UNH{seed: seed}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility, not crypto
	for i := range u.table {
		var v int64
		for range 8 {
			v = v<<8 | rng.Int63()&0xff
		}
		u.table[i] = v
	}
	return u
}

// Seed returns the seed the table was built from.
func (u *UNH) Seed() int64 { return u.seed }

// Index implements Strategy.
func (u *UNH) Index(coords []int64, size uint32) uint32 {
	var sum int64
	for i, c := range coords {
		// AND with the mask keeps the slot in [0, 2048) even for
		// negative elements.
		slot := (c + int64(i)*unhIncrement) & unhTableMask
		sum += u.table[slot]
	}

	r := sum % int64(size)
	if r < 0 {
		r += int64(size)
	}
	return uint32(r)
}
