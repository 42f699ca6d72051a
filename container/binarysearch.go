package container

import "github.com/gokeyset/keyset/capability"

// BinarySearch stores entries sorted ascending by key and probes with a
// standard binary search. spec.md §4.3 picks this variant over
// OrderedScan once the key count clears T_small, and over
// EytzingerSearch below T_eytz — the cache-layout win of Eytzinger order
// only pays for itself once probes no longer fit comfortably in a few
// cache lines.
type BinarySearch[K capability.Ordered, V any] struct {
	entries []Entry[K, V] // sorted ascending by Key
}

func NewBinarySearch[K capability.Ordered, V any](entries []Entry[K, V]) *BinarySearch[K, V] {
	sortEntriesByKey(entries)
	return &BinarySearch[K, V]{entries: entries}
}

func (b *BinarySearch[K, V]) Len() int { return len(b.entries) }

// find returns the index of key in b.entries, or -1.
func (b *BinarySearch[K, V]) find(key K) int {
	lo, hi := 0, len(b.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case b.entries[mid].Key == key:
			return mid
		case b.entries[mid].Key < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1
}

func (b *BinarySearch[K, V]) Get(key K) (V, bool) {
	if i := b.find(key); i >= 0 {
		return b.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (b *BinarySearch[K, V]) GetKeyValue(key K) (K, V, bool) {
	if i := b.find(key); i >= 0 {
		return b.entries[i].Key, b.entries[i].Value, true
	}
	var zero V
	return key, zero, false
}

func (b *BinarySearch[K, V]) GetMut(key K) (*V, bool) {
	if i := b.find(key); i >= 0 {
		return &b.entries[i].Value, true
	}
	return nil, false
}

func (b *BinarySearch[K, V]) Entries() []Entry[K, V] { return b.entries }
