//go:build !detectcopies

package bytespan

import "sync/atomic"

// header is the control block of a shared buffer. The payload follows
// immediately, so headerSize doubles as the payload offset.
type header struct {
	refs atomic.Uint32
	size uint32
}

const headerSize = 8

func (h *header) setMagic() {}

// warnIfShared is active only in detectcopies builds.
func warnIfShared(p *byte) {}
