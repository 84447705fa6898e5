//go:build bytespan_embedded

package bytespan

// Constrained builds narrow the payload alignment requirement to 4 bytes.
const alignMask = 0x03
