package analyzer

import "github.com/gokeyset/keyset/capability"

// AnalyzeScalar implements spec.md §4.3's scalar path for a deduplicated
// key set of a Scalar type. Unlike the Ordered-only and generic-Hashable
// paths, the scalar structural checks (dense, sparse) are cheap (O(n))
// regardless of n, so this path applies no size-threshold shortcut at
// all — this is why boundary scenario (b), a 3-key dense map, picks
// DenseScalarLookup and scenario (c), 3 sparse keys, picks ScalarHash,
// rather than LinearScan.
func AnalyzeScalar[K capability.Scalar](keys []K, t Thresholds) Plan {
	n := len(keys)
	if n == 0 {
		return Plan{Variant: LinearScan}
	}

	min64, max64 := capability.Int64(keys[0]), capability.Int64(keys[0])
	for _, k := range keys[1:] {
		v := capability.Int64(k)
		if v < min64 {
			min64 = v
		}
		if v > max64 {
			max64 = v
		}
	}
	span := max64 - min64 + 1

	if span == int64(n) {
		return Plan{
			Variant:    DenseScalarLookup,
			BaseOffset: min64,
		}
	}

	if span > 0 && span/int64(n) <= int64(t.SparseRatio) {
		return Plan{
			Variant:    SparseScalarLookup,
			BaseOffset: min64,
			TableSize:  int(span),
		}
	}

	return Plan{
		Variant:   ScalarHash,
		TableSize: tableSizeFor(n, t.LoadTarget),
		Slot:      SlotFunction{Kind: SlotIdentity},
	}
}
