package model

// IDMaxLen is the maximum byte length of a BPMN identifier, inherited from
// the Zeebe engine's historical constraint.
const IDMaxLen = 255

// ID is an immutable byte-string identifier. Every identifier and textual
// attribute that is later hashed, compared, or written to the msgpack
// header encoding is treated as a byte string: equality is bytewise, never
// collation- or locale-aware. Converting a Go string to []byte and back is
// exact, which is what lets Key() double as both a map key and a
// display value without any encoding surprises.
type ID []byte

// Empty reports whether the identifier carries no bytes.
func (id ID) Empty() bool { return len(id) == 0 }

// Len returns the number of bytes in the identifier.
func (id ID) Len() int { return len(id) }

// String renders the identifier for diagnostics and debugging.
func (id ID) String() string { return string(id) }

// Key returns a value suitable for use as a Go map key. string([]byte) is a
// byte-for-byte copy, so two IDs with equal bytes always produce equal keys.
func (id ID) Key() string { return string(id) }

// Equal reports bytewise equality with another identifier.
func (id ID) Equal(other ID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}
