package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamIsDeterministic(t *testing.T) {
	a := NewStream(DEFAULT_STREAM_SEED)
	b := NewStream(DEFAULT_STREAM_SEED)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextUint64(), b.NextUint64(), "streams with equal seeds diverged at step %d", i)
	}
}

func TestStreamSeedsDiffer(t *testing.T) {
	a := NewStream(DEFAULT_STREAM_SEED)
	b := NewStream(DEFAULT_STREAM_SEED + 1)
	diverged := false
	for i := 0; i < 10; i++ {
		if a.NextUint64() != b.NextUint64() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "streams with different seeds produced identical prefixes")
}

func TestStreamBounds(t *testing.T) {
	s := NewStream(DEFAULT_STREAM_SEED)
	for i := 0; i < 1000; i++ {
		v := s.NextInt64n(37)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(37))
	}
	for i := 0; i < 1000; i++ {
		f := s.NextFloat64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestPermutation(t *testing.T) {
	n := 1000
	perm := Permutation(DEFAULT_STREAM_SEED, n)
	assert.Equal(t, n, len(perm))

	seen := make([]bool, n)
	for _, v := range perm {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, n)
		assert.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
	}

	again := Permutation(DEFAULT_STREAM_SEED, n)
	assert.Equal(t, perm, again, "permutation is not deterministic")

	other := Permutation(DEFAULT_STREAM_SEED+1, n)
	assert.NotEqual(t, perm, other, "different seeds produced the same permutation")
}

func TestPermutationSmall(t *testing.T) {
	assert.Equal(t, []int{}, Permutation(DEFAULT_STREAM_SEED, 0))
	assert.Equal(t, []int{0}, Permutation(DEFAULT_STREAM_SEED, 1))
}
