package hashing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Deterministic(t *testing.T) {
	coords := []int64{3, -7, 0, 42}

	first := Index(coords, 2048)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Index(coords, 2048))
	}
}

func TestIndex_RangeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) //nolint:gosec

	for _, size := range []uint32{1, 2, 32, 2048, 1 << 20} {
		for i := 0; i < 1000; i++ {
			coords := []int64{rng.Int63() - rng.Int63(), rng.Int63() - rng.Int63(), int64(i)}
			idx := Index(coords, size)
			require.Less(t, idx, size)
		}
	}
}

func TestIndex_OrderSensitive(t *testing.T) {
	// The hash is a function of value AND order.
	a := Index([]int64{1, 2, 3}, 1<<20)
	b := Index([]int64{3, 2, 1}, 1<<20)
	assert.NotEqual(t, a, b)
}

func TestIndex_SizeOne(t *testing.T) {
	assert.Equal(t, uint32(0), Index([]int64{-5, 9}, 1))
}

func TestKey_Equality(t *testing.T) {
	assert.Equal(t, Key([]int64{1, -2, 3}), Key([]int64{1, -2, 3}))
	assert.NotEqual(t, Key([]int64{1, 2}), Key([]int64{2, 1}))
	assert.Len(t, Key([]int64{1, 2, 3}), 24)
}

func TestUNH_SameSeedReproduces(t *testing.T) {
	a := NewUNH(42)
	b := NewUNH(42)

	rng := rand.New(rand.NewSource(7)) //nolint:gosec
	for i := 0; i < 500; i++ {
		coords := []int64{rng.Int63() - rng.Int63(), int64(i), -int64(i)}
		require.Equal(t, a.Index(coords, 4096), b.Index(coords, 4096))
	}
}

func TestUNH_DifferentSeedsDiverge(t *testing.T) {
	a := NewUNH(1)
	b := NewUNH(2)

	diverged := false
	for i := int64(0); i < 100; i++ {
		if a.Index([]int64{i, i * 3}, 1<<16) != b.Index([]int64{i, i * 3}, 1<<16) {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestUNH_RangeBound(t *testing.T) {
	u := NewUNH(99)

	for _, size := range []uint32{1, 3, 32, 1 << 20} {
		for q := int64(-500); q < 500; q++ {
			idx := u.Index([]int64{q, -q, q * 31}, size)
			require.Less(t, idx, size)
		}
	}
}

func TestUNH_Seed(t *testing.T) {
	assert.Equal(t, int64(1234), NewUNH(1234).Seed())
}

func TestUNH_ImplementsStrategy(t *testing.T) {
	var _ Strategy = NewUNH(0)
	var _ Strategy = FarmHash{}
	assert.NotNil(t, Default)
}
