// Package document provides the Document interface abstraction, used by
// code that wants to work against "some text document" without binding
// to the rope package's richer panic-and-split API directly — an OT
// layer or a plugin host, for instance, that should be free to swap in
// a trivial string-backed implementation for tests.
package document

// Document represents an immutable text document.
// All operations that modify the document return a new Document instance.
type Document interface {
	// Length returns the number of characters (Unicode code points) in the document.
	Length() int

	// Slice returns a substring from start to end (exclusive).
	// The indices are character positions (not byte positions).
	// Panics if indices are out of bounds.
	Slice(start, end int) string

	// String returns the complete document content as a string.
	String() string

	// Bytes returns the complete document content as a byte slice.
	Bytes() []byte

	// Clone creates a copy of the document.
	// For immutable implementations, this may return the same instance.
	Clone() Document
}
