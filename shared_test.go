package bytespan

import (
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refCount(a AllocSlice) uint32 {
	return payloadHeader(a.ptr).refs.Load()
}

func addrOf(s Slice) uintptr {
	return uintptr(unsafe.Pointer(s.ptr))
}

func TestAllocateReleaseRoundTrip(t *testing.T) {
	before := Stats()
	a, err := New(32)
	require.NoError(t, err)
	require.False(t, a.IsNull())
	require.Equal(t, 32, a.Len())
	require.Equal(t, uint32(1), refCount(a))

	a.Release()
	after := Stats()
	assert.Equal(t, before.Frees+1, after.Frees)
	assert.Equal(t, before.Allocs+1, after.Allocs)
}

func TestRetainBalancedByRelease(t *testing.T) {
	const k = 7
	a, err := New(16)
	require.NoError(t, err)

	for i := 0; i < k; i++ {
		a.Retain()
	}
	require.Equal(t, uint32(k+1), refCount(a))

	before := Stats()
	for i := 0; i < k; i++ {
		a.Release()
		assert.Equal(t, before.Frees, Stats().Frees, "freed before last release")
	}
	require.Equal(t, uint32(1), refCount(a))
	a.Release()
	assert.Equal(t, before.Frees+1, Stats().Frees)
}

func TestZeroSizeAllocation(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	// success with size 0 still has a real payload pointer, so it is
	// distinguishable from the failure return
	require.False(t, a.IsNull())
	require.Zero(t, a.Len())
	require.Equal(t, uint32(1), refCount(a))
	assert.NotPanics(t, a.Release)
}

func TestAllocationFailureReported(t *testing.T) {
	_, err := New(-1)
	require.ErrorIs(t, err, ErrSizeOutOfRange)

	a, err := New(maxPayload + 1)
	require.ErrorIs(t, err, ErrSizeOutOfRange)
	assert.True(t, a.IsNull())
}

func TestMaxPayloadSlabArithmetic(t *testing.T) {
	// every admissible size must survive the word-count arithmetic even
	// where int is 32 bits, and the resulting slab must hold the header
	// plus the payload
	require.LessOrEqual(t, int64(headerSize)+int64(maxPayload)+7, int64(math.MaxInt32))
	words := slabWords(maxPayload)
	require.Positive(t, words)
	require.GreaterOrEqual(t, int64(words)*8, int64(headerSize)+int64(maxPayload))
}

func TestPayloadAlignment(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 9, 100, 4096} {
		a, err := New(size)
		require.NoError(t, err)
		assert.Zero(t, addrOf(a.Slice)&alignMask, "payload for size %d misaligned", size)
		a.Release()
	}
}

func TestMisalignedHandleIsFatal(t *testing.T) {
	buf := new([16]byte)
	assert.Panics(t, func() { retainPayload(&buf[1]) })
	assert.Panics(t, func() { releasePayload(&buf[1]) })
}

func TestNilPayloadNoOps(t *testing.T) {
	assert.NotPanics(t, func() { retainPayload(nil) })
	assert.NotPanics(t, func() { releasePayload(nil) })
}

func TestConcurrentRetainRelease(t *testing.T) {
	const (
		goroutines = 8
		rounds     = 2000
	)
	a, err := New(64)
	require.NoError(t, err)
	before := Stats()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				a.Retain()
				a.Release()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint32(1), refCount(a))
	require.Equal(t, before.Frees, Stats().Frees)
	a.Release()
	assert.Equal(t, before.Frees+1, Stats().Frees)
}
