package container

import (
	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/hash"
)

// ScalarHash handles a scalar key set too sparse for SparseScalarLookup
// to pay off: a classic hash table, but keyed with the passthrough hash
// (the key's own integer value) rather than a general-purpose hasher,
// since the key already is an integer.
type ScalarHash[K capability.Scalar, V any] struct {
	tableSize int
	chains    []Chain
	entries   []Entry[K, V]
}

// NewScalarHash builds the variant. entries is consumed and reordered in
// place (grouped by slot); callers should not reuse the slice passed in.
func NewScalarHash[K capability.Scalar, V any](entries []Entry[K, V], tableSize int) *ScalarHash[K, V] {
	slots := make([]int, len(entries))
	for i, e := range entries {
		slots[i] = slotOf(e.Key, tableSize)
	}
	sortBySlot(entries, slots)
	return &ScalarHash[K, V]{
		tableSize: tableSize,
		chains:    buildChains(slots, tableSize),
		entries:   entries,
	}
}

func slotOf[K capability.Scalar](key K, tableSize int) int {
	return int(hash.Passthrough(capability.Int64(key)) % uint64(tableSize))
}

func (s *ScalarHash[K, V]) Len() int { return len(s.entries) }

func (s *ScalarHash[K, V]) chainFor(key K) Chain {
	return s.chains[slotOf(key, s.tableSize)]
}

func (s *ScalarHash[K, V]) Get(key K) (V, bool) {
	c := s.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return s.entries[i].Value, true
		}
	}
	var zero V
	return zero, false
}

func (s *ScalarHash[K, V]) GetKeyValue(key K) (K, V, bool) {
	c := s.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return s.entries[i].Key, s.entries[i].Value, true
		}
	}
	var zero V
	return key, zero, false
}

func (s *ScalarHash[K, V]) GetMut(key K) (*V, bool) {
	c := s.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return &s.entries[i].Value, true
		}
	}
	return nil, false
}

func (s *ScalarHash[K, V]) Entries() []Entry[K, V] { return s.entries }
