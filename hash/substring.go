package hash

import "github.com/cespare/xxhash/v2"

// Anchor selects which end of a key a substring Window is measured from.
type Anchor uint8

const (
	// AnchorLeft measures Offset from the start of the key.
	AnchorLeft Anchor = iota
	// AnchorRight measures Offset from the end of the key.
	AnchorRight
)

// Window describes the byte range a LeftSubstringHash/RightSubstringHash
// container hashes instead of the full key, per spec.md §4.2 and §4.4.
type Window struct {
	Anchor Anchor
	Offset int
	Length int
}

// Slice extracts the window's bytes from key. It reports false if key is
// too short for the window to exist at all — the container treats that as
// an immediate lookup miss rather than an error, matching spec.md §4.4's
// "rejecting keys shorter than the window at lookup time".
func (w Window) Slice(key []byte) ([]byte, bool) {
	switch w.Anchor {
	case AnchorLeft:
		end := w.Offset + w.Length
		if end > len(key) {
			return nil, false
		}
		return key[w.Offset:end], true
	case AnchorRight:
		need := w.Offset + w.Length
		if need > len(key) {
			return nil, false
		}
		start := len(key) - need
		return key[start : start+w.Length], true
	default:
		return nil, false
	}
}

// Hash hashes the window's bytes with xxhash, or reports false if the
// window does not fit in key.
func (w Window) Hash(key []byte) (uint64, bool) {
	b, ok := w.Slice(key)
	if !ok {
		return 0, false
	}
	return xxhash.Sum64(b), true
}

// Bytes hashes key in full with xxhash, with no substring window
// narrowing the input.
func Bytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}
