// Package bytespan provides the byte-range primitives underneath a binary
// encoding: a non-owning view type (Slice) with comparison, hashing and
// copy operations, and an owning variant (AllocSlice) backed by an
// atomically reference-counted shared buffer.
//
// A Slice is just {pointer, length}; it never owns the memory it views.
// An AllocSlice has the same shape, but its pointer is the payload of a
// shared buffer and the holder is responsible for Retain/Release. Views
// taken from an AllocSlice do not retain.
//
// The core never interprets the bytes it carries. Concurrent retain and
// release on the same buffer are safe; concurrent mutation of payload
// bytes is the caller's problem.
package bytespan
