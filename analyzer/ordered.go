package analyzer

import "github.com/gokeyset/keyset/capability"

// AnalyzeOrdered implements spec.md §4.3's step 4 ("Ordered path") for a
// key type that has a total order but none of the cheaper structural
// wins (Scalar, LengthBearing) apply to — for example a plain float64
// key set. It is also what package keyset falls through to for ~string
// keys once the length-hash and substring-hash checks in AnalyzeString
// have both failed their collision budget, since a string always has a
// natural order even when it isn't a good length/substring-hash
// candidate (boundary scenario (e): 256 random strings land here and
// pick EytzingerSearch).
func AnalyzeOrdered[K capability.Ordered](keys []K, t Thresholds) Plan {
	n := len(keys)
	if n <= t.SmallOrdered {
		return Plan{Variant: OrderedScan}
	}
	if n <= t.EytzingerThreshold {
		return Plan{Variant: BinarySearch}
	}
	return Plan{Variant: EytzingerSearch}
}
