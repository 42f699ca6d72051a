package analyzer

import "github.com/gokeyset/keyset/hash"

// AnalyzeHashable implements the terminal fallback of spec.md §4.3: a key
// type with no Scalar, LengthBearing, or Ordered capability at all — only
// equality and an externally supplied hash function. Go's comparable
// constraint gives no way to derive a hash for an arbitrary struct type,
// so unlike the other entry points this one takes only the key count;
// the caller's hasher goes to the container instead, see
// keyset.NewHashMap.
func AnalyzeHashable(n int, t Thresholds) Plan {
	if n <= t.SmallLinear {
		return Plan{Variant: LinearScan}
	}
	return Plan{
		Variant:    ClassicHash,
		TableSize:  tableSizeFor(n, t.LoadTarget),
		Slot:       SlotFunction{Kind: SlotFullBytes},
		HasherSeed: hash.ProcessSeed(),
	}
}
