//go:build detectcopies

package bytespan

import (
	"log"
	"os"
	"sync/atomic"
	"unsafe"
)

// Diagnostic header layout: the magic tag sits in the word directly
// before the payload so warnIfShared can probe it from a raw payload
// pointer.
type header struct {
	refs  atomic.Uint32
	size  uint32
	_     uint32
	magic uint32
}

const headerSize = 16

const sharedMagic = 0xdecade55

func (h *header) setMagic() { h.magic = sharedMagic }

// warnIfShared reports deep copies of payloads that already belong to a
// shared buffer and could have been retained instead. It reads the word
// before p, outside the nominal bounds of the input slice, so this build
// must never be combined with race- or sanitizer-instrumented builds.
func warnIfShared(p *byte) {
	addr := uintptr(unsafe.Pointer(p))
	if addr&alignMask != 0 {
		return
	}
	// Reading before p must not cross into the previous page.
	if int(addr&uintptr(os.Getpagesize()-1)) < 4 {
		return
	}
	if *(*uint32)(unsafe.Add(unsafe.Pointer(p), -4)) == sharedMagic {
		log.Printf("bytespan: copying existing shared payload at %p", p)
	}
}
