package bytespan

import (
	"errors"
	"math"
	"unsafe"

	"github.com/rawbytedev/bytespan/internal/slab"
)

// ErrSizeOutOfRange reports an allocation request the shared-buffer
// layout cannot represent.
var ErrSizeOutOfRange = errors.New("allocation size out of range")

// maxPayload must fit the header's 32-bit size field, and
// headerSize+maxPayload+7 must still fit int on 32-bit platforms so the
// slab word count cannot overflow.
const maxPayload = math.MaxInt32 - headerSize - 7

var slabs = slab.New()

// PoolStats aggregates shared-buffer allocation and recycling counters.
type PoolStats struct {
	Allocs   int64
	Frees    int64
	Recycled int64
	InUse    int64
}

// Stats reports allocation and recycling counters for the shared-buffer
// slab pool.
func Stats() PoolStats { return PoolStats(slabs.Stats()) }

// newShared reserves one slab holding a header followed by size payload
// bytes and returns the header plus the payload address. The reference
// count starts at 1; the payload is uninitialized.
func newShared(size int) (*header, *byte, error) {
	if size < 0 || size > maxPayload {
		return nil, nil, ErrSizeOutOfRange
	}
	s := slabs.Get(slabWords(size))
	h := (*header)(unsafe.Pointer(unsafe.SliceData(s)))
	h.refs.Store(1)
	h.size = uint32(size)
	h.setMagic()
	p := (*byte)(unsafe.Add(unsafe.Pointer(h), headerSize))
	return h, p, nil
}

// retainPayload adds one ownership unit to the buffer owning p.
// No-op on nil.
func retainPayload(p *byte) {
	if p == nil {
		return
	}
	payloadHeader(p).refs.Add(1)
}

// releasePayload drops one ownership unit from the buffer owning p.
// The atomic decrement reaching zero is the sole authority for the free
// decision, so the slab is recycled exactly once even under concurrent
// releases. No-op on nil.
func releasePayload(p *byte) {
	if p == nil {
		return
	}
	h := payloadHeader(p)
	if h.refs.Add(^uint32(0)) == 0 {
		slabs.Put(unsafe.Slice((*uint64)(unsafe.Pointer(h)), slabWords(int(h.size))))
	}
}

// payloadHeader recovers the owning header from a payload address by
// fixed-offset subtraction; the header layout places the payload last.
// A misaligned address means p was never a shared-buffer payload, a
// caller bug the core cannot safely continue past.
func payloadHeader(p *byte) *header {
	if uintptr(unsafe.Pointer(p))&alignMask != 0 {
		panic("bytespan: misaligned shared buffer payload")
	}
	return (*header)(unsafe.Add(unsafe.Pointer(p), -headerSize))
}

// slabWords is the slab length backing a payload of the given size.
// Deriving it from the size alone lets release find the slab class
// without storing it in the header. At least one payload byte is always
// reserved so the payload pointer stays inside the slab allocation.
func slabWords(size int) int {
	if size == 0 {
		size = 1
	}
	return slab.ClassFor((headerSize + size + 7) / 8)
}
