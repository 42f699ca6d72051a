package container

import "github.com/gokeyset/keyset/capability"

// OrderedScan stores entries sorted ascending by key and scans from the
// front, stopping as soon as a stored key exceeds the query — cheaper in
// practice than LinearScan for key sets just past LinearScan's size
// threshold, since a miss exits early instead of touching every entry.
type OrderedScan[K capability.Ordered, V any] struct {
	entries []Entry[K, V] // sorted ascending by Key
}

// NewOrderedScan sorts entries ascending by key and takes ownership of
// the slice.
func NewOrderedScan[K capability.Ordered, V any](entries []Entry[K, V]) *OrderedScan[K, V] {
	sortEntriesByKey(entries)
	return &OrderedScan[K, V]{entries: entries}
}

func (o *OrderedScan[K, V]) Len() int { return len(o.entries) }

func (o *OrderedScan[K, V]) Get(key K) (V, bool) {
	for _, e := range o.entries {
		if e.Key == key {
			return e.Value, true
		}
		if e.Key > key {
			break
		}
	}
	var zero V
	return zero, false
}

func (o *OrderedScan[K, V]) GetKeyValue(key K) (K, V, bool) {
	for _, e := range o.entries {
		if e.Key == key {
			return e.Key, e.Value, true
		}
		if e.Key > key {
			break
		}
	}
	var zero V
	return key, zero, false
}

func (o *OrderedScan[K, V]) GetMut(key K) (*V, bool) {
	for i := range o.entries {
		if o.entries[i].Key == key {
			return &o.entries[i].Value, true
		}
		if o.entries[i].Key > key {
			break
		}
	}
	return nil, false
}

func (o *OrderedScan[K, V]) Entries() []Entry[K, V] { return o.entries }
