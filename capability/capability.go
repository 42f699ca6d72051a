// Package capability defines the small vocabulary of key capabilities that
// gates which specialized container the analyzer is allowed to choose.
//
// Go has no trait objects, so capabilities are expressed as generic type
// constraints rather than runtime-queried interfaces. A concrete key type
// K satisfies a capability by satisfying its constraint; the analyzer
// package picks among container variants entirely at the type-parameter
// level plus a runtime data scan, never by probing K at runtime.
//
// Capabilities compose through their type sets rather than a class
// hierarchy: every Scalar type is also Ordered and Hashable, and Text
// (the ~string part of LengthBearing) is Hashable. The ~[]byte half of
// LengthBearing is not comparable, so it is not Hashable in Go.
package capability

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Scalar is a key whose identity is an integer position: convertible to a
// signed 128-bit range conceptually, ordered, and hashable as itself via
// the passthrough hasher. Go's lack of a native int128 means the analyzer
// works in int64 positions; a key span that overflows int64 comes out
// non-positive and the scalar path then picks ScalarHash.
//
//	Scalar ⊂ Ordered ⊂ Hashable
type Scalar interface {
	constraints.Integer
}

// Ordered is any key with a total order consistent with equality. This is
// an alias for the standard library's cmp.Ordered rather than a redefinition
// of it, matching how the rest of the ecosystem treats it.
type Ordered = cmp.Ordered

// Hashable is any key with equality and (via a caller-supplied function,
// see keyset.NewHashMap) a hash function consistent with it: k1 == k2
// implies hash(k1) == hash(k2).
// In Go, "has equality" is exactly comparable.
type Hashable interface {
	comparable
}

// LengthBearing is a key usable as a byte-like sequence with a cheap
// length: strings and byte slices (or any named type built on them).
// It is the capability's full conceptual shape per spec.md §4.1; see
// Text for the narrower constraint the containers actually use.
type LengthBearing interface {
	~string | ~[]byte
}

// Text is LengthBearing narrowed to the comparable case: Go's comparable
// constraint excludes slice types outright, and every container in this
// module compares keys with ==, so the string-path variants (LengthHash,
// LeftSubstringHash, RightSubstringHash) are generic over Text rather
// than the broader LengthBearing. A caller holding []byte keys converts
// with string(b) first, the same adjustment idiomatic Go code already
// makes to use byte slices as map keys. See DESIGN.md.
type Text interface {
	~string
}

// Bytes returns k's byte representation. LengthBearing is constrained to
// ~string | ~[]byte, both of which convert to []byte without copying
// semantics that change program behavior (a copy is made, as with any
// string([]byte) round trip, but the bytes are identical).
func Bytes[K LengthBearing](k K) []byte {
	return []byte(k)
}

// Int64 converts a Scalar key to its int64 position. Unsigned values above
// math.MaxInt64 wrap to negative positions; the conversion stays
// one-to-one, so a position still identifies exactly one key.
func Int64[K Scalar](k K) int64 {
	return int64(k)
}
