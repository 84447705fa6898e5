//go:build !bytespan_embedded

package bytespan

// Shared-buffer payload addresses are 8-byte aligned on standard builds.
// The alignment is what lets retain/release reject pointers that were
// never shared-buffer payloads.
const alignMask = 0x07
