package analyzer

import "github.com/gokeyset/keyset/hash"

// AnalyzeString implements spec.md §4.3's string path (step 3) for
// ~string keys, falling through to the Ordered path (step 4) when
// neither LengthHash nor a substring hash clears its collision budget —
// a plain string always has a natural order (boundary scenario (e)'s 256
// random strings land here and pick EytzingerSearch).
//
// spec.md's LengthBearing capability also names byte slices, but Go's
// comparable constraint — which every container in this module requires
// of K, matching the built-in map's own restriction — excludes slice
// types outright. A []byte "key" is therefore out of reach for a generic
// Map the same way it is for a built-in map[[]byte]V; callers with byte
// slices convert with string(b) first, exactly as idiomatic Go code
// already does to use bytes as map keys. See DESIGN.md.
func AnalyzeString[K ~string](keys []K, t Thresholds) Plan {
	if len(keys) == 0 {
		return Plan{Variant: LinearScan}
	}
	b := toBytes(keys)
	if plan, ok := tryLengthAndSubstring(b, t); ok {
		return plan
	}
	return AnalyzeOrdered(keys, t)
}

func toBytes[K ~string](keys []K) [][]byte {
	b := make([][]byte, len(keys))
	for i, k := range keys {
		b[i] = []byte(k)
	}
	return b
}

// tryLengthAndSubstring runs spec.md §4.3 steps 3a and 3b in order,
// returning the first that clears its collision budget.
func tryLengthAndSubstring(keys [][]byte, t Thresholds) (Plan, bool) {
	if plan, ok := lengthHashCandidate(keys, t); ok {
		return plan, true
	}
	return substringCandidate(keys, t)
}

// lengthHashCandidate evaluates spec.md §4.3 step 3a: slot keys by byte
// length and accept if the worst chain and total collisions both clear
// budget.
func lengthHashCandidate(keys [][]byte, t Thresholds) (Plan, bool) {
	n := len(keys)
	tableSize := tableSizeFor(n, t.LoadTarget)
	slots := make([]int, n)
	for i, k := range keys {
		slots[i] = int(hash.Length(k)) % tableSize
	}
	maxChain, collisions := slotStats(slots, tableSize)
	if maxChain <= t.chainBudget(n) && collisions <= int(float64(n)*t.LengthCollisionPct) {
		return Plan{
			Variant:   LengthHash,
			TableSize: tableSize,
			Slot:      SlotFunction{Kind: SlotLength},
		}, true
	}
	return Plan{}, false
}

// substringCandidate evaluates spec.md §4.3 step 3b: search anchored
// windows for the cheapest one, bounded to SubstringWindowBudget
// candidates so analysis stays O(n*W) even for long keys.
func substringCandidate(keys [][]byte, t Thresholds) (Plan, bool) {
	n := len(keys)
	minLen := len(keys[0])
	for _, k := range keys[1:] {
		if len(k) < minLen {
			minLen = len(k)
		}
	}
	if minLen == 0 {
		return Plan{}, false
	}

	tableSize := tableSizeFor(n, t.LoadTarget)
	var (
		bestPlan  Plan
		bestCost  int
		bestFound bool
		tried     int
	)

	anchors := [...]hash.Anchor{hash.AnchorLeft, hash.AnchorRight}
	slots := make([]int, n)
search:
	for _, anchor := range anchors {
		for length := 1; length <= minLen; length++ {
			for offset := 0; offset <= minLen-length; offset++ {
				if tried >= t.SubstringWindowBudget {
					break search
				}
				tried++

				w := hash.Window{Anchor: anchor, Offset: offset, Length: length}
				for i, k := range keys {
					h, _ := w.Hash(k) // fits: offset+length <= minLen <= len(k)
					slots[i] = int(h % uint64(tableSize))
				}
				_, collisions := slotStats(slots, tableSize)
				if !bestFound || collisions < bestCost {
					variant := LeftSubstringHash
					if anchor == hash.AnchorRight {
						variant = RightSubstringHash
					}
					bestPlan = Plan{
						Variant:   variant,
						TableSize: tableSize,
						Slot:      SlotFunction{Kind: SlotSubstring, Window: w},
					}
					bestCost = collisions
					bestFound = true
				}
			}
		}
	}

	if bestFound && bestCost <= int(float64(n)*t.SubstringCollisionPct) {
		return bestPlan, true
	}
	return Plan{}, false
}

// slotStats buckets pre-computed slot indices and reports the longest
// chain and the total number of collisions (entries beyond the first in
// their slot).
func slotStats(slots []int, tableSize int) (maxChain, collisions int) {
	counts := make([]int, tableSize)
	for _, s := range slots {
		counts[s]++
	}
	for _, c := range counts {
		if c > maxChain {
			maxChain = c
		}
		if c > 1 {
			collisions += c - 1
		}
	}
	return maxChain, collisions
}
