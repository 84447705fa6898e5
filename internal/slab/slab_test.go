package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassFor(t *testing.T) {
	cases := map[int]int{
		0:                 1,
		1:                 1,
		2:                 2,
		3:                 4,
		5:                 8,
		8:                 8,
		9:                 16,
		maxClassWords:     maxClassWords,
		maxClassWords + 1: maxClassWords + 1,
	}
	for in, want := range cases {
		assert.Equal(t, want, ClassFor(in), "ClassFor(%d)", in)
	}
}

func TestGetLenMatchesClass(t *testing.T) {
	p := New()
	for _, w := range []int{1, 2, 5, 100, 4096} {
		s := p.Get(w)
		require.Equal(t, ClassFor(w), len(s))
		require.GreaterOrEqual(t, len(s), w)
	}
}

func TestRecycleSameClass(t *testing.T) {
	p := New()
	s := p.Get(5)
	p.Put(s)

	st := p.Stats()
	require.Equal(t, int64(1), st.Allocs)
	require.Equal(t, int64(1), st.Frees)
	require.Equal(t, int64(0), st.InUse)

	s2 := p.Get(6) // same class as 5
	require.Equal(t, len(s), len(s2))
	require.Equal(t, int64(1), p.Stats().Recycled)
}

func TestOversizeBypassesFreelist(t *testing.T) {
	p := New()
	s := p.Get(maxClassWords + 1)
	require.Equal(t, maxClassWords+1, len(s))
	p.Put(s)

	st := p.Stats()
	assert.Equal(t, int64(1), st.Frees)
	assert.Equal(t, uint64(0), p.Get(maxClassWords+1)[0]) // fresh, zeroed
	assert.Equal(t, int64(0), p.Stats().Recycled)
}

func TestFreelistBounded(t *testing.T) {
	p := New()
	slabs := make([][]uint64, classCap+10)
	for i := range slabs {
		slabs[i] = make([]uint64, 8)
	}
	for _, s := range slabs {
		p.Put(s)
	}
	p.mu.Lock()
	n := p.classes[8].Length()
	p.mu.Unlock()
	require.Equal(t, classCap, n)
}
