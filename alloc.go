package bytespan

// AllocSlice is an owning slice: its pointer, when non-null, is the
// payload of a reference-counted shared buffer. It has the same shape
// as a plain Slice; the difference is purely that the holder is
// responsible for Retain/Release. Copying the value does not add an
// ownership unit, and neither does taking a Slice view of it.
type AllocSlice struct {
	Slice
}

// New allocates a shared buffer of size uninitialized bytes and returns
// an owning slice holding its single ownership unit. New(0) succeeds
// with a non-null payload pointer, so success is always distinguishable
// from the error return.
func New(size int) (AllocSlice, error) {
	_, p, err := newShared(size)
	if err != nil {
		return AllocSlice{}, err
	}
	return AllocSlice{Slice{ptr: p, size: size}}, nil
}

// Copy deep-copies s into a fresh shared buffer. The result never
// aliases s, even when s already points into a shared buffer; callers
// that want aliasing should retain the owner instead. A null slice
// copies to a null slice without allocating.
func Copy(s Slice) (AllocSlice, error) {
	if s.ptr == nil {
		return AllocSlice{}, nil
	}
	warnIfShared(s.ptr)
	a, err := New(s.size)
	if err != nil {
		return AllocSlice{}, err
	}
	copy(a.Bytes(), s.Bytes())
	return a, nil
}

// CopyString deep-copies the bytes of s into an owning slice.
func CopyString(s string) (AllocSlice, error) {
	return Copy(FromString(s))
}

// Retain adds one ownership unit and returns the same slice.
func (a AllocSlice) Retain() AllocSlice {
	retainPayload(a.ptr)
	return a
}

// Release drops one ownership unit. The buffer is recycled exactly once,
// when the last unit is dropped; the slice must not be used afterwards.
func (a AllocSlice) Release() {
	releasePayload(a.ptr)
}

// View returns the non-owning view of a. The view does not retain.
func (a AllocSlice) View() Slice { return a.Slice }
