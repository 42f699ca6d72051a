package container

import "github.com/gokeyset/keyset/capability"

// EytzingerSearch stores entries sorted ascending by key, plus a second
// array that lays the same entries out in Eytzinger (implicit
// level-order binary tree) order: the root at position 0, its children
// at 1 and 2, and so on, the same layout a binary heap uses. Walking
// that layout root-to-leaf visits memory sequentially instead of
// jumping across the whole array the way BinarySearch's midpoint
// bisection does, so once a key set is large enough that probes miss
// cache the Eytzinger walk keeps paying off where bisection stalls on
// cache misses (spec.md §4.3's T_eytz threshold).
type EytzingerSearch[K capability.Ordered, V any] struct {
	sorted []Entry[K, V] // ascending by Key, for Entries()
	layout []int         // layout[i] = index into sorted at Eytzinger position i
}

func NewEytzingerSearch[K capability.Ordered, V any](entries []Entry[K, V]) *EytzingerSearch[K, V] {
	sortEntriesByKey(entries)
	layout := make([]int, len(entries))
	next := 0
	fillEytzingerLayout(layout, 0, &next)
	return &EytzingerSearch[K, V]{sorted: entries, layout: layout}
}

// fillEytzingerLayout walks the implicit binary tree rooted at i
// in-order, assigning each visited position the next sorted index in
// ascending order — the standard construction that turns a sorted array
// into Eytzinger order in a single pass.
func fillEytzingerLayout(layout []int, i int, next *int) {
	if i >= len(layout) {
		return
	}
	fillEytzingerLayout(layout, 2*i+1, next)
	layout[i] = *next
	*next++
	fillEytzingerLayout(layout, 2*i+2, next)
}

func (e *EytzingerSearch[K, V]) Len() int { return len(e.sorted) }

// find returns the index into e.sorted of key, or -1.
func (e *EytzingerSearch[K, V]) find(key K) int {
	i := 0
	for i < len(e.layout) {
		idx := e.layout[i]
		switch {
		case e.sorted[idx].Key == key:
			return idx
		case key < e.sorted[idx].Key:
			i = 2*i + 1
		default:
			i = 2*i + 2
		}
	}
	return -1
}

func (e *EytzingerSearch[K, V]) Get(key K) (V, bool) {
	if idx := e.find(key); idx >= 0 {
		return e.sorted[idx].Value, true
	}
	var zero V
	return zero, false
}

func (e *EytzingerSearch[K, V]) GetKeyValue(key K) (K, V, bool) {
	if idx := e.find(key); idx >= 0 {
		return e.sorted[idx].Key, e.sorted[idx].Value, true
	}
	var zero V
	return key, zero, false
}

func (e *EytzingerSearch[K, V]) GetMut(key K) (*V, bool) {
	if idx := e.find(key); idx >= 0 {
		return &e.sorted[idx].Value, true
	}
	return nil, false
}

func (e *EytzingerSearch[K, V]) Entries() []Entry[K, V] { return e.sorted }
