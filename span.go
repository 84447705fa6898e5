package bytespan

import (
	"bytes"
	"unsafe"
)

// Slice is a non-owning view of a byte range: a pointer plus a length.
// The zero value is the null slice. Two slices are independent values
// even when they alias the same memory.
type Slice struct {
	ptr  *byte
	size int
}

// Null is the null slice.
var Null = Slice{}

// Wrap returns a view over b without copying. Wrap(nil) is the null slice.
func Wrap(b []byte) Slice {
	if b == nil {
		return Slice{}
	}
	return Slice{ptr: unsafe.SliceData(b), size: len(b)}
}

// FromString returns a view over the bytes of s without copying.
// The returned view must never be mutated.
func FromString(s string) Slice {
	if len(s) == 0 {
		return Slice{}
	}
	return Slice{ptr: unsafe.StringData(s), size: len(s)}
}

// Of builds a view over its arguments.
func Of(b ...byte) Slice {
	return Wrap(b)
}

// IsNull reports whether the view has no backing pointer.
func (s Slice) IsNull() bool { return s.ptr == nil }

// Len returns the number of viewed bytes. A null pointer reports 0
// regardless of the stored length.
func (s Slice) Len() int {
	if s.ptr == nil {
		return 0
	}
	return s.size
}

// Bytes returns the viewed bytes without copying, or nil for the null
// slice.
func (s Slice) Bytes() []byte {
	if s.ptr == nil {
		return nil
	}
	return unsafe.Slice(s.ptr, s.size)
}

// String copies the viewed bytes into a new string.
func (s Slice) String() string { return string(s.Bytes()) }

// UnsafeString returns the viewed bytes as a string sharing the same
// memory. Only valid while the backing bytes stay alive and unmutated.
func (s Slice) UnsafeString() string {
	if s.ptr == nil {
		return ""
	}
	return unsafe.String(s.ptr, s.size)
}

// At returns the byte at index i.
func (s Slice) At(i int) byte { return s.Bytes()[i] }

// UpTo returns the view of the first n bytes of s.
func (s Slice) UpTo(n int) Slice { return Wrap(s.Bytes()[:n]) }

// From returns the view of s starting at byte n.
func (s Slice) From(n int) Slice { return Wrap(s.Bytes()[n:]) }

// Equal reports whether a and b view the same length and bytes. Null and
// zero-length slices are equal to each other.
func Equal(a, b Slice) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Equal reports whether s and o view equal bytes.
func (s Slice) Equal(o Slice) bool { return Equal(s, o) }

// Compare orders a and b bytewise over their common prefix, then by
// length, so a proper prefix sorts first. Returns -1, 0 or +1. The
// ordering is total and fit for use as a sort or key comparator.
func Compare(a, b Slice) int {
	ab, bb := a.Bytes(), b.Bytes()
	switch {
	case len(ab) == len(bb):
		return bytes.Compare(ab, bb)
	case len(ab) < len(bb):
		if c := bytes.Compare(ab, bb[:len(ab)]); c != 0 {
			return c
		}
		return -1
	default:
		if c := bytes.Compare(ab[:len(bb)], bb); c != 0 {
			return c
		}
		return 1
	}
}

// Compare orders s against o; see the package-level Compare.
func (s Slice) Compare(o Slice) int { return Compare(s, o) }

// HasPrefix reports whether s starts with p.
func (s Slice) HasPrefix(p Slice) bool {
	return bytes.HasPrefix(s.Bytes(), p.Bytes())
}

// HasSuffix reports whether s ends with p.
func (s Slice) HasSuffix(p Slice) bool {
	return bytes.HasSuffix(s.Bytes(), p.Bytes())
}

// IndexByte returns the index of the first occurrence of c, or -1.
func (s Slice) IndexByte(c byte) int {
	return bytes.IndexByte(s.Bytes(), c)
}

// Contains reports whether sub occurs within s.
func (s Slice) Contains(sub Slice) bool {
	return bytes.Contains(s.Bytes(), sub.Bytes())
}

// CopyToCString copies s into dst as a NUL-terminated C string,
// truncating to len(dst)-1 content bytes. It reports whether the whole
// slice fit. len(dst) must be at least 1; violating that is a contract
// violation, not a recoverable error.
func (s Slice) CopyToCString(dst []byte) bool {
	if len(dst) == 0 {
		panic("bytespan: CopyToCString with empty destination")
	}
	n := copy(dst[:len(dst)-1], s.Bytes())
	dst[n] = 0
	return n == s.Len()
}
