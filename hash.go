package bytespan

// Hash returns a 32-bit non-cryptographic hash of the viewed bytes.
// Deterministic for a given byte sequence within one build. 32-bit and
// 64-bit builds select different algorithm variants and need not agree;
// hash values must not be persisted or shared across processes.
func (s Slice) Hash() uint32 {
	return hashBytes(s.Bytes())
}

// Hash hashes a raw byte slice with the platform's selected variant.
func Hash(b []byte) uint32 {
	return hashBytes(b)
}
