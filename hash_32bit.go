//go:build !(amd64 || arm64 || arm64be || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || loong64 || sparc64 || wasm)

package bytespan

import "encoding/binary"

// 32-bit platforms use the wyhash32 variant with a fixed seed.
const hashSeed32 = 0x91BAC172

func hashBytes(b []byte) uint32 {
	return wyhash32(b, hashSeed32)
}

func wymix32(a, b *uint32) {
	c := uint64(*a^0x53c5ca59) * uint64(*b^0x74743c1b)
	*a = uint32(c)
	*b = uint32(c >> 32)
}

func wyr24(p []byte, k uint32) uint32 {
	return uint32(p[0])<<16 | uint32(p[k>>1])<<8 | uint32(p[k-1])
}

func wyhash32(p []byte, seed uint32) uint32 {
	i := len(p)
	see1 := uint32(i)
	wymix32(&seed, &see1)
	for ; i > 8; i -= 8 {
		seed ^= binary.LittleEndian.Uint32(p)
		see1 ^= binary.LittleEndian.Uint32(p[4:])
		wymix32(&seed, &see1)
		p = p[8:]
	}
	if i >= 4 {
		seed ^= binary.LittleEndian.Uint32(p)
		see1 ^= binary.LittleEndian.Uint32(p[i-4:])
	} else if i > 0 {
		seed ^= wyr24(p, uint32(i))
	}
	wymix32(&seed, &see1)
	wymix32(&seed, &see1)
	return seed ^ see1
}
