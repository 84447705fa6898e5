// Package slab recycles the word-aligned allocations backing shared
// buffers. Slabs are []uint64 so their base address is 8-byte aligned,
// which is what gives payloads their alignment guarantee.
package slab

import (
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

const (
	// maxClassWords caps the pooled classes; larger slabs go straight
	// to the allocator and back to the GC.
	maxClassWords = 1 << 16
	// classCap bounds each per-class freelist.
	classCap = 64
)

// Stats aggregates allocation and reuse counters.
type Stats struct {
	Allocs   int64
	Frees    int64
	Recycled int64
	InUse    int64
}

// Pool hands out slabs by power-of-two word-count class.
type Pool struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue

	allocs   atomic.Int64
	frees    atomic.Int64
	recycled atomic.Int64
	inUse    atomic.Int64
}

func New() *Pool {
	return &Pool{classes: make(map[int]*queue.Queue)}
}

// ClassFor rounds words up to its allocation class: the next power of
// two, or the exact count for oversized requests that bypass the pool.
func ClassFor(words int) int {
	if words <= 1 {
		return 1
	}
	if words > maxClassWords {
		return words
	}
	return 1 << bits.Len(uint(words-1))
}

// Get returns a slab of len ClassFor(words). Contents are not zeroed;
// recycled slabs carry whatever the previous owner left behind.
func (p *Pool) Get(words int) []uint64 {
	n := ClassFor(words)
	p.allocs.Add(1)
	p.inUse.Add(1)
	if n <= maxClassWords {
		p.mu.Lock()
		if q := p.classes[n]; q != nil && q.Length() > 0 {
			s := q.Remove().([]uint64)
			p.mu.Unlock()
			p.recycled.Add(1)
			return s
		}
		p.mu.Unlock()
	}
	return make([]uint64, n)
}

// Put recycles a slab previously returned by Get. The free is counted
// even when the slab is too large to pool.
func (p *Pool) Put(s []uint64) {
	p.frees.Add(1)
	p.inUse.Add(-1)
	n := len(s)
	if n == 0 || n > maxClassWords || n&(n-1) != 0 {
		return
	}
	p.mu.Lock()
	q := p.classes[n]
	if q == nil {
		q = queue.New()
		p.classes[n] = q
	}
	if q.Length() < classCap {
		q.Add(s)
	}
	p.mu.Unlock()
}

func (p *Pool) Stats() Stats {
	return Stats{
		Allocs:   p.allocs.Load(),
		Frees:    p.frees.Load(),
		Recycled: p.recycled.Load(),
		InUse:    p.inUse.Load(),
	}
}
