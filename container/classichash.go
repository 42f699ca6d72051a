package container

import (
	"encoding/binary"

	"github.com/gokeyset/keyset/hash"
)

// ClassicHash is the terminal fallback of spec.md §4.3: a key type with
// no Scalar, Text, or Ordered capability the analyzer can exploit, only
// equality and a caller-supplied hash function (package keyset's
// NewHashMap). The caller's raw hash is re-mixed through the seeded
// default hasher so two ClassicHash instances in one process still share
// the "fixed random seed per process" property spec.md §4.2 asks for,
// even though the raw hash itself came from outside this module.
type ClassicHash[K comparable, V any] struct {
	tableSize int
	seed      uint64
	hasher    func(K) uint64
	chains    []Chain
	entries   []Entry[K, V]
}

func NewClassicHash[K comparable, V any](entries []Entry[K, V], tableSize int, seed uint64, hasher func(K) uint64) *ClassicHash[K, V] {
	slots := make([]int, len(entries))
	for i, e := range entries {
		slots[i] = classicSlot(e.Key, tableSize, seed, hasher)
	}
	sortBySlot(entries, slots)
	return &ClassicHash[K, V]{
		tableSize: tableSize,
		seed:      seed,
		hasher:    hasher,
		chains:    buildChains(slots, tableSize),
		entries:   entries,
	}
}

func classicSlot[K comparable](key K, tableSize int, seed uint64, hasher func(K) uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], hasher(key))
	return int(hash.Default(seed, buf[:]) % uint64(tableSize))
}

func (c *ClassicHash[K, V]) Len() int { return len(c.entries) }

func (c *ClassicHash[K, V]) chainFor(key K) Chain {
	return c.chains[classicSlot(key, c.tableSize, c.seed, c.hasher)]
}

func (c *ClassicHash[K, V]) Get(key K) (V, bool) {
	chain := c.chainFor(key)
	for i := chain.Begin; i < chain.End; i++ {
		if c.entries[i].Key == key {
			return c.entries[i].Value, true
		}
	}
	var zero V
	return zero, false
}

func (c *ClassicHash[K, V]) GetKeyValue(key K) (K, V, bool) {
	chain := c.chainFor(key)
	for i := chain.Begin; i < chain.End; i++ {
		if c.entries[i].Key == key {
			return c.entries[i].Key, c.entries[i].Value, true
		}
	}
	var zero V
	return key, zero, false
}

func (c *ClassicHash[K, V]) GetMut(key K) (*V, bool) {
	chain := c.chainFor(key)
	for i := chain.Begin; i < chain.End; i++ {
		if c.entries[i].Key == key {
			return &c.entries[i].Value, true
		}
	}
	return nil, false
}

func (c *ClassicHash[K, V]) Entries() []Entry[K, V] { return c.entries }
