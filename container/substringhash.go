package container

import (
	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/hash"
)

// SubstringHash backs both LeftSubstringHash and RightSubstringHash: the
// two differ only in which end of the key the window is anchored to,
// carried in the stored hash.Window. A query key shorter than the window
// demands cannot match anything and is rejected before hashing
// (spec.md §4.4).
type SubstringHash[K capability.Text, V any] struct {
	tableSize int
	window    hash.Window
	chains    []Chain
	entries   []Entry[K, V]
}

// NewSubstringHash builds the variant. Every entry's key must be long
// enough for window to fit — the analyzer only picks this variant when
// that holds for the whole key set (spec.md §4.3 step 3b computes window
// against min_key_len).
func NewSubstringHash[K capability.Text, V any](entries []Entry[K, V], tableSize int, window hash.Window) *SubstringHash[K, V] {
	slots := make([]int, len(entries))
	for i, e := range entries {
		slots[i] = substringSlot(e.Key, tableSize, window)
	}
	sortBySlot(entries, slots)
	return &SubstringHash[K, V]{
		tableSize: tableSize,
		window:    window,
		chains:    buildChains(slots, tableSize),
		entries:   entries,
	}
}

func substringSlot[K capability.Text](key K, tableSize int, w hash.Window) int {
	h, ok := w.Hash(capability.Bytes(key))
	if !ok {
		// Construction-time keys always fit their own analyzed window;
		// this only fires for a malformed plan.
		return -1
	}
	return int(h % uint64(tableSize))
}

func (s *SubstringHash[K, V]) Len() int { return len(s.entries) }

func (s *SubstringHash[K, V]) chainFor(key K) (Chain, bool) {
	slot := substringSlot(key, s.tableSize, s.window)
	if slot < 0 {
		return Chain{}, false
	}
	return s.chains[slot], true
}

func (s *SubstringHash[K, V]) Get(key K) (V, bool) {
	var zero V
	c, ok := s.chainFor(key)
	if !ok {
		return zero, false
	}
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return s.entries[i].Value, true
		}
	}
	return zero, false
}

func (s *SubstringHash[K, V]) GetKeyValue(key K) (K, V, bool) {
	var zero V
	c, ok := s.chainFor(key)
	if !ok {
		return key, zero, false
	}
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return s.entries[i].Key, s.entries[i].Value, true
		}
	}
	return key, zero, false
}

func (s *SubstringHash[K, V]) GetMut(key K) (*V, bool) {
	c, ok := s.chainFor(key)
	if !ok {
		return nil, false
	}
	for i := c.Begin; i < c.End; i++ {
		if s.entries[i].Key == key {
			return &s.entries[i].Value, true
		}
	}
	return nil, false
}

func (s *SubstringHash[K, V]) Entries() []Entry[K, V] { return s.entries }
