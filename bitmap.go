package tilecode

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ActiveSet accumulates activated tile indices into a Roaring Bitmap.
// It wraps the official roaring implementation.
// Useful for tracking sparse feature activity across many points, e.g. to
// size a weight vector or to measure how much two points generalize.
//
// ActiveSet is not safe for concurrent use.
type ActiveSet struct {
	rb *roaring.Bitmap
}

// NewActiveSet creates a new empty active set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{
		rb: roaring.New(),
	}
}

// Add adds the given indices to the set (typically one Tiles result).
func (s *ActiveSet) Add(indices ...uint32) {
	s.rb.AddMany(indices)
}

// Contains checks if an index is in the set.
func (s *ActiveSet) Contains(index uint32) bool {
	return s.rb.Contains(index)
}

// IsEmpty returns true if the set is empty.
func (s *ActiveSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of distinct indices in the set.
func (s *ActiveSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Overlap returns how many indices the two sets share. For two single-point
// activation sets this is the number of tilings in which the points fall
// into the same tile.
func (s *ActiveSet) Overlap(other *ActiveSet) uint64 {
	return s.rb.AndCardinality(other.rb)
}

// Clone returns a deep copy of the set.
func (s *ActiveSet) Clone() *ActiveSet {
	return &ActiveSet{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending index order.
func (s *ActiveSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToArray returns the indices in ascending order.
func (s *ActiveSet) ToArray() []uint32 {
	return s.rb.ToArray()
}
