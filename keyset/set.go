package keyset

import (
	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/capability"
)

// none is the zero-size value Set stores against every member, so a Set
// gets the full benefit of whichever variant the analyzer picked with no
// per-element value storage — the same trick package sets' HashSet plays
// over a HashMap.
type none = struct{}

// Set is a frozen-keyset Set: the Map contract with values erased.
// Internally it is a Map[K, none]; every Set operation below is defined
// purely in terms of Map's Len/ContainsKey/Entries, so it works
// uniformly across whichever variant backs either operand (spec.md
// §4.5's "defined in terms of iteration and membership queries").
type Set[K comparable] struct {
	m *Map[K, none]
}

func setOf[K comparable](m *Map[K, none]) *Set[K] { return &Set[K]{m: m} }

// NewScalarSet builds a Set for a Scalar key type.
func NewScalarSet[K capability.Scalar](members []K, t ...analyzer.Thresholds) *Set[K] {
	return setOf(NewScalarMap(toMembership(members), t...))
}

// NewOrderedSet builds a Set for an Ordered key type with no Scalar or
// Text capability.
func NewOrderedSet[K capability.Ordered](members []K, t ...analyzer.Thresholds) *Set[K] {
	return setOf(NewOrderedMap(toMembership(members), t...))
}

// NewStringSet builds a Set for a ~string key type.
func NewStringSet[K capability.Text](members []K, t ...analyzer.Thresholds) *Set[K] {
	return setOf(NewStringMap(toMembership(members), t...))
}

// NewHashSet builds a Set for an arbitrary comparable key type, given a
// hasher consistent with K's equality (see NewHashMap).
func NewHashSet[K comparable](members []K, hasher func(K) uint64, t ...analyzer.Thresholds) *Set[K] {
	return setOf(NewHashMap(toMembership(members), hasher, t...))
}

func toMembership[K comparable](members []K) map[K]none {
	out := make(map[K]none, len(members))
	for _, k := range members {
		out[k] = none{}
	}
	return out
}

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether Len() == 0.
func (s *Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Contains reports whether key is a member.
func (s *Set[K]) Contains(key K) bool { return s.m.ContainsKey(key) }

// Plan reports the analyzer decision backing this Set.
func (s *Set[K]) Plan() analyzer.Plan { return s.m.Plan() }

// Members returns every member, in storage order.
func (s *Set[K]) Members() []K { return s.m.Keys() }

// Equal reports whether s and other hold the same members, independent
// of which variant backs either one.
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.m.Equal(other.m, func(a, b none) bool { return true })
}

// IsSubset reports whether every member of s is also a member of other.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	for _, e := range s.m.Entries() {
		if !other.Contains(e.Key) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is also a member of s.
func (s *Set[K]) IsSuperset(other *Set[K]) bool { return other.IsSubset(s) }

// IsDisjoint reports whether s and other share no members.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	for _, e := range s.m.Entries() {
		if other.Contains(e.Key) {
			return false
		}
	}
	return true
}

// Union returns a plain slice holding every member of s or other (or
// both), each exactly once. It does not build a new frozen Set — the
// union of two arbitrary Sets isn't known until runtime, so there's no
// single capability tier to analyze it against; callers needing a
// queryable Set over the result build one with whichever New*Set fits
// K, e.g. keyset.NewOrderedSet(keyset.Union(a, b)).
func Union[K comparable](a, b *Set[K]) []K {
	out := make([]K, 0, a.Len()+b.Len())
	out = append(out, a.Members()...)
	for _, e := range b.m.Entries() {
		if !a.Contains(e.Key) {
			out = append(out, e.Key)
		}
	}
	return out
}

// Intersection returns every member present in both a and b.
func Intersection[K comparable](a, b *Set[K]) []K {
	var out []K
	for _, e := range a.m.Entries() {
		if b.Contains(e.Key) {
			out = append(out, e.Key)
		}
	}
	return out
}

// Difference returns every member of a not present in b (a \ b).
func Difference[K comparable](a, b *Set[K]) []K {
	var out []K
	for _, e := range a.m.Entries() {
		if !b.Contains(e.Key) {
			out = append(out, e.Key)
		}
	}
	return out
}

// SymmetricDifference returns every member present in exactly one of a, b.
func SymmetricDifference[K comparable](a, b *Set[K]) []K {
	out := Difference(a, b)
	out = append(out, Difference(b, a)...)
	return out
}
