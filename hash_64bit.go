//go:build amd64 || arm64 || arm64be || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || loong64 || sparc64 || wasm

package bytespan

import "github.com/zeebo/wyhash"

// Platforms with 64-bit addressing hash with wyhash, seed 0, truncated
// to 32 bits.
func hashBytes(b []byte) uint32 {
	return uint32(wyhash.Hash(b, 0))
}
