// Package analyzer implements the pure function at the heart of this
// module: given a deduplicated key set (plus, via which entry point is
// called, its capability set), it produces an implementation Plan telling
// the constructor which of the eleven container variants to build and
// with what parameters.
//
// The analyzer never touches values, never allocates a container, and
// never mutates its input. It is called both at runtime (package keyset)
// and, via package literal, at code-generation time — the same function
// either way, per spec.md §9's "compile-time vs. runtime analysis" note.
package analyzer

import "github.com/gokeyset/keyset/hash"

// Variant identifies one of the eleven specialized container layouts a
// Plan can select. The zero value is DenseScalarLookup, which is never
// produced for an uninitialized Plan in practice (every analyzer entry
// point sets Variant explicitly) but keeps an accidental zero-value Plan
// from silently claiming to be, say, a hash table.
type Variant uint8

const (
	DenseScalarLookup Variant = iota
	SparseScalarLookup
	ScalarHash
	LengthHash
	LeftSubstringHash
	RightSubstringHash
	LinearScan
	OrderedScan
	BinarySearch
	EytzingerSearch
	ClassicHash
)

func (v Variant) String() string {
	switch v {
	case DenseScalarLookup:
		return "DenseScalarLookup"
	case SparseScalarLookup:
		return "SparseScalarLookup"
	case ScalarHash:
		return "ScalarHash"
	case LengthHash:
		return "LengthHash"
	case LeftSubstringHash:
		return "LeftSubstringHash"
	case RightSubstringHash:
		return "RightSubstringHash"
	case LinearScan:
		return "LinearScan"
	case OrderedScan:
		return "OrderedScan"
	case BinarySearch:
		return "BinarySearch"
	case EytzingerSearch:
		return "EytzingerSearch"
	case ClassicHash:
		return "ClassicHash"
	default:
		return "Variant(unknown)"
	}
}

// SlotKind distinguishes the shape of a Plan's slot function, per
// spec.md §3's "identity / length / unused" enumeration plus the
// substring-window case.
type SlotKind uint8

const (
	SlotUnused SlotKind = iota
	SlotIdentity
	SlotLength
	SlotSubstring
	SlotFullBytes
)

// SlotFunction is the plan field spec.md §3 calls slot_function: either
// unused (scan/search variants don't hash), identity (passthrough, for
// ScalarHash), length (for LengthHash), a substring window, or a
// full-key hash (for ClassicHash).
type SlotFunction struct {
	Kind   SlotKind
	Window hash.Window // meaningful only when Kind == SlotSubstring
}

// Plan is the analyzer's output and the constructor's input, per
// spec.md §3.
type Plan struct {
	Variant    Variant
	TableSize  int // power of two, or 0 for non-hash variants
	Slot       SlotFunction
	BaseOffset int64  // DenseScalarLookup / SparseScalarLookup: min key
	HasherSeed uint64 // ClassicHash: siphash key material
}

// Thresholds collects the analyzer's tunable constants. spec.md §9 treats
// their exact values as an open question and asks tests to pin relative
// orderings, not absolute numbers; DefaultThresholds is the value this
// module ships with, but the analyzer entry points all accept an explicit
// Thresholds so callers (and tests) can vary them.
type Thresholds struct {
	SmallLinear  int // T_small for LinearScan
	SmallOrdered int // T_small for OrderedScan
	SparseRatio  int // R_sparse: span/n at or below this prefers SparseScalarLookup

	LengthChainMax     int     // C_max baseline, scaled up logarithmically for n > 64
	LengthCollisionPct float64 // P_len
	SubstringCollisionPct float64 // P_sub
	SubstringWindowBudget int   // bounds the O(n*W) substring search for large n

	EytzingerThreshold int // T_eytz
	LoadTarget          float64
}

// DefaultThresholds returns the values this module tunes the analyzer to.
// They match the approximate magnitudes spec.md §4.3 gives for each
// constant ("≈ 4", "≈ 8", ...).
func DefaultThresholds() Thresholds {
	return Thresholds{
		SmallLinear:           4,
		SmallOrdered:          8,
		SparseRatio:           4,
		LengthChainMax:        4,
		LengthCollisionPct:    0.20,
		SubstringCollisionPct: 0.20,
		SubstringWindowBudget: 32,
		EytzingerThreshold:    64,
		LoadTarget:            0.75,
	}
}

// chainBudget scales LengthChainMax logarithmically above n=64, per
// spec.md §4.3(a): "worst chain length ≤ C_max (≈4 for n ≤ 64, scaled
// logarithmically above)".
func (t Thresholds) chainBudget(n int) int {
	if n <= 64 {
		return t.LengthChainMax
	}
	extra := 0
	for m := n; m > 64; m >>= 1 {
		extra++
	}
	return t.LengthChainMax + extra
}

// nextPow2 returns the smallest power of two >= n, with a floor of 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// tableSizeFor returns the classic-hash table size for n entries at the
// given load target, per spec.md §4.3 step 5.
func tableSizeFor(n int, loadTarget float64) int {
	if n == 0 {
		return 1
	}
	want := float64(n) / loadTarget
	return nextPow2(int(want) + 1)
}
