package container

import "github.com/gokeyset/keyset/capability"

// DenseScalarLookup is the cheapest variant: keys cover their min..max
// interval with no gaps, so the key set degenerates to a plain array
// indexed by key - baseOffset. No keys are stored at all; they're
// reconstructed from the index on demand (spec.md §4.4).
type DenseScalarLookup[K capability.Scalar, V any] struct {
	baseOffset int64
	values     []V
}

// NewDenseScalarLookup builds the variant from entries whose keys form
// the closed interval [baseOffset, baseOffset+len(entries)-1]
// (spec.md §3 invariant 4). Callers (package keyset, via the analyzer)
// are responsible for only choosing this variant when that holds.
func NewDenseScalarLookup[K capability.Scalar, V any](entries []Entry[K, V], baseOffset int64) *DenseScalarLookup[K, V] {
	values := make([]V, len(entries))
	for _, e := range entries {
		idx := capability.Int64(e.Key) - baseOffset
		values[idx] = e.Value
	}
	return &DenseScalarLookup[K, V]{baseOffset: baseOffset, values: values}
}

func (d *DenseScalarLookup[K, V]) Len() int { return len(d.values) }

func (d *DenseScalarLookup[K, V]) Get(key K) (V, bool) {
	idx := capability.Int64(key) - d.baseOffset
	if idx < 0 || idx >= int64(len(d.values)) {
		var zero V
		return zero, false
	}
	return d.values[idx], true
}

func (d *DenseScalarLookup[K, V]) GetKeyValue(key K) (K, V, bool) {
	v, ok := d.Get(key)
	return key, v, ok
}

func (d *DenseScalarLookup[K, V]) GetMut(key K) (*V, bool) {
	idx := capability.Int64(key) - d.baseOffset
	if idx < 0 || idx >= int64(len(d.values)) {
		return nil, false
	}
	return &d.values[idx], true
}

func (d *DenseScalarLookup[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(d.values))
	for i, v := range d.values {
		out[i] = Entry[K, V]{Key: K(d.baseOffset + int64(i)), Value: v}
	}
	return out
}
