package container

import (
	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/hash"
)

// LengthHash slots string keys by their byte length, comparing the full
// key on a chain hit. It wins when the key set's length distribution
// already discriminates almost every pair (spec.md §4.3 step 3a).
type LengthHash[K capability.Text, V any] struct {
	tableSize int
	chains    []Chain
	entries   []Entry[K, V]
}

func NewLengthHash[K capability.Text, V any](entries []Entry[K, V], tableSize int) *LengthHash[K, V] {
	slots := make([]int, len(entries))
	for i, e := range entries {
		slots[i] = lengthSlot(e.Key, tableSize)
	}
	sortBySlot(entries, slots)
	return &LengthHash[K, V]{
		tableSize: tableSize,
		chains:    buildChains(slots, tableSize),
		entries:   entries,
	}
}

func lengthSlot[K capability.Text](key K, tableSize int) int {
	return int(hash.Length(capability.Bytes(key)) % uint64(tableSize))
}

func (l *LengthHash[K, V]) Len() int { return len(l.entries) }

func (l *LengthHash[K, V]) chainFor(key K) Chain {
	return l.chains[lengthSlot(key, l.tableSize)]
}

func (l *LengthHash[K, V]) Get(key K) (V, bool) {
	c := l.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if l.entries[i].Key == key {
			return l.entries[i].Value, true
		}
	}
	var zero V
	return zero, false
}

func (l *LengthHash[K, V]) GetKeyValue(key K) (K, V, bool) {
	c := l.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if l.entries[i].Key == key {
			return l.entries[i].Key, l.entries[i].Value, true
		}
	}
	var zero V
	return key, zero, false
}

func (l *LengthHash[K, V]) GetMut(key K) (*V, bool) {
	c := l.chainFor(key)
	for i := c.Begin; i < c.End; i++ {
		if l.entries[i].Key == key {
			return &l.entries[i].Value, true
		}
	}
	return nil, false
}

func (l *LengthHash[K, V]) Entries() []Entry[K, V] { return l.entries }
