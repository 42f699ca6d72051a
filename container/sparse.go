package container

import "github.com/gokeyset/keyset/capability"

// SparseScalarLookup handles a scalar key set dense enough to be worth a
// position table but with real gaps: a presence-bitmapped index of
// length span, each occupied position pointing into the entries array.
type SparseScalarLookup[K capability.Scalar, V any] struct {
	baseOffset int64
	entries    []Entry[K, V]
	index      []int
	present    presenceSet
}

// NewSparseScalarLookup builds the variant. span is max-min+1 and must
// match len(index) = span (spec.md §3 invariant 4).
func NewSparseScalarLookup[K capability.Scalar, V any](entries []Entry[K, V], baseOffset int64, span int) *SparseScalarLookup[K, V] {
	index := make([]int, span)
	present := newPresenceSet(span)
	for i, e := range entries {
		pos := capability.Int64(e.Key) - baseOffset
		index[pos] = i
		present.mark(int(pos))
	}
	return &SparseScalarLookup[K, V]{
		baseOffset: baseOffset,
		entries:    entries,
		index:      index,
		present:    present,
	}
}

func (s *SparseScalarLookup[K, V]) Len() int { return len(s.entries) }

func (s *SparseScalarLookup[K, V]) lookup(key K) (int, bool) {
	pos := capability.Int64(key) - s.baseOffset
	if pos < 0 || pos >= int64(len(s.index)) {
		return 0, false
	}
	if !s.present.has(int(pos)) {
		return 0, false
	}
	i := s.index[pos]
	if s.entries[i].Key != key {
		// Paranoia check: a correctly built table can't reach this.
		return 0, false
	}
	return i, true
}

func (s *SparseScalarLookup[K, V]) Get(key K) (V, bool) {
	i, ok := s.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return s.entries[i].Value, true
}

func (s *SparseScalarLookup[K, V]) GetKeyValue(key K) (K, V, bool) {
	i, ok := s.lookup(key)
	if !ok {
		var zero V
		return key, zero, false
	}
	return s.entries[i].Key, s.entries[i].Value, true
}

func (s *SparseScalarLookup[K, V]) GetMut(key K) (*V, bool) {
	i, ok := s.lookup(key)
	if !ok {
		return nil, false
	}
	return &s.entries[i].Value, true
}

func (s *SparseScalarLookup[K, V]) Entries() []Entry[K, V] { return s.entries }
