// Package container implements the eleven specialized lookup layouts of
// spec.md §4.4. Each variant consumes an entries array and (for the
// hash-family variants) plan parameters from package analyzer, and
// exposes the same read interface — Len, Get, GetKeyValue, GetMut,
// Entries — so package keyset can dispatch to whichever one the analyzer
// picked without knowing which it is.
//
// Every variant resolves collisions within a slot by a linear scan over a
// contiguous range of the entries array (spec.md §4.4's "collisions
// within a chain are resolved by linear scan"); none of them use Go's
// built-in map or a linked bucket list, since spec.md's invariant 5
// requires a [begin, end) array range per slot.
package container

import (
	"sort"

	"github.com/gokeyset/keyset/capability"
)

// Entry is a stored (key, value) pair, or a bare key for sets (V =
// struct{}). Entries live contiguously in an array indexed by slot
// position; iteration order is that storage order, per spec.md §3.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Chain is a contiguous range [Begin, End) into an entries array, holding
// every entry that landed in one hash-table slot. spec.md §3 calls this
// the "collision chain"; the hash table itself is an array of Chains
// indexed by slot.
type Chain struct {
	Begin, End int
}

// Lookup is the read contract every variant in this package implements.
// Package keyset stores a Lookup[K, V] as the active arm of its dispatch
// shell.
type Lookup[K comparable, V any] interface {
	Len() int
	Get(key K) (V, bool)
	GetKeyValue(key K) (K, V, bool)
	GetMut(key K) (*V, bool)
	Entries() []Entry[K, V]
}

// buildChains groups already-slotted entries into per-slot [begin, end)
// ranges. entries must already be sorted by slot (ascending); slots holds
// the slot index parallel to entries. This is the construction-time
// counterpart to every hash-family variant's Get: the table is built once
// here, then Get only ever does the O(chain length) linear scan.
func buildChains(slots []int, tableSize int) []Chain {
	chains := make([]Chain, tableSize)
	i := 0
	for slot := 0; slot < tableSize; slot++ {
		begin := i
		for i < len(slots) && slots[i] == slot {
			i++
		}
		chains[slot] = Chain{Begin: begin, End: i}
	}
	return chains
}

// sortBySlot stable-sorts entries and their parallel slots by slot index,
// so that every chain occupies a contiguous range of the final entries
// array (spec.md invariant 5). Stability isn't load-bearing for
// correctness (within a chain, order is otherwise unspecified) but keeps
// construction deterministic given a deterministic input order.
func sortBySlot[K any, V any](entries []Entry[K, V], slots []int) {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return slots[idx[a]] < slots[idx[b]] })

	sortedEntries := make([]Entry[K, V], len(entries))
	sortedSlots := make([]int, len(slots))
	for newPos, oldPos := range idx {
		sortedEntries[newPos] = entries[oldPos]
		sortedSlots[newPos] = slots[oldPos]
	}
	copy(entries, sortedEntries)
	copy(slots, sortedSlots)
}

// sortEntriesByKey sorts entries ascending by key in place, for the
// ordered-family variants (OrderedScan, BinarySearch, and the sorted
// array EytzingerSearch builds from).
func sortEntriesByKey[K capability.Ordered, V any](entries []Entry[K, V]) {
	sort.Slice(entries, func(a, b int) bool { return entries[a].Key < entries[b].Key })
}
