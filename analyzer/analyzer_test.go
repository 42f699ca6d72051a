package analyzer_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gokeyset/keyset/analyzer"
)

// TestAnalyzeScalar_Dense covers boundary scenario (b): a contiguous
// scalar key set picks DenseScalarLookup with the right base offset,
// regardless of its size being below every small-n shortcut threshold.
func TestAnalyzeScalar_Dense(t *testing.T) {
	plan := analyzer.AnalyzeScalar([]int{10, 11, 12}, analyzer.DefaultThresholds())
	if plan.Variant != analyzer.DenseScalarLookup {
		t.Fatalf("got %s, want DenseScalarLookup", plan.Variant)
	}
	if plan.BaseOffset != 10 {
		t.Fatalf("got base offset %d, want 10", plan.BaseOffset)
	}
}

// TestAnalyzeScalar_Sparse covers boundary scenario (c): span/n above
// SparseRatio rejects both Dense and Sparse in favor of ScalarHash.
func TestAnalyzeScalar_Sparse(t *testing.T) {
	plan := analyzer.AnalyzeScalar([]int{1, 2, 100}, analyzer.DefaultThresholds())
	if plan.Variant != analyzer.ScalarHash {
		t.Fatalf("got %s, want ScalarHash", plan.Variant)
	}
}

func TestAnalyzeScalar_Empty(t *testing.T) {
	plan := analyzer.AnalyzeScalar([]int{}, analyzer.DefaultThresholds())
	if plan.Variant != analyzer.LinearScan {
		t.Fatalf("got %s, want LinearScan", plan.Variant)
	}
}

// TestAnalyzeString_LengthOrSubstring covers boundary scenario (d):
// names sharing a byte length still resolve to either LengthHash or a
// substring hash, never to LinearScan/OrderedScan, since the string path
// always attempts its structural wins first.
func TestAnalyzeString_LengthOrSubstring(t *testing.T) {
	plan := analyzer.AnalyzeString([]string{"Alice", "Bob", "Sandy", "Tom"}, analyzer.DefaultThresholds())
	switch plan.Variant {
	case analyzer.LengthHash, analyzer.LeftSubstringHash, analyzer.RightSubstringHash:
	default:
		t.Fatalf("got %s, want LengthHash or a substring hash", plan.Variant)
	}
}

// TestAnalyzeString_FallsThroughToOrdered covers boundary scenario (e):
// a large random string set, none of whose length/substring windows
// discriminate well, falls through to the Ordered path and picks
// EytzingerSearch once n clears EytzingerThreshold.
func TestAnalyzeString_FallsThroughToOrdered(t *testing.T) {
	rng := rand.NewPCG(1, 2)
	r := rand.New(rng)
	keys := make([]string, 256)
	for i := range keys {
		keys[i] = fmt.Sprintf("%032x", r.Uint64())
	}
	plan := analyzer.AnalyzeString(keys, analyzer.DefaultThresholds())
	if plan.Variant != analyzer.EytzingerSearch {
		t.Fatalf("got %s, want EytzingerSearch", plan.Variant)
	}
}

func TestAnalyzeOrdered_Thresholds(t *testing.T) {
	th := analyzer.DefaultThresholds()

	small := make([]float64, th.SmallOrdered)
	for i := range small {
		small[i] = float64(i)
	}
	if plan := analyzer.AnalyzeOrdered(small, th); plan.Variant != analyzer.OrderedScan {
		t.Fatalf("got %s, want OrderedScan at n=%d", plan.Variant, len(small))
	}

	mid := make([]float64, th.SmallOrdered+1)
	for i := range mid {
		mid[i] = float64(i)
	}
	if plan := analyzer.AnalyzeOrdered(mid, th); plan.Variant != analyzer.BinarySearch {
		t.Fatalf("got %s, want BinarySearch at n=%d", plan.Variant, len(mid))
	}

	big := make([]float64, th.EytzingerThreshold+1)
	for i := range big {
		big[i] = float64(i)
	}
	if plan := analyzer.AnalyzeOrdered(big, th); plan.Variant != analyzer.EytzingerSearch {
		t.Fatalf("got %s, want EytzingerSearch at n=%d", plan.Variant, len(big))
	}
}

func TestAnalyzeHashable_Thresholds(t *testing.T) {
	th := analyzer.DefaultThresholds()
	if plan := analyzer.AnalyzeHashable(th.SmallLinear, th); plan.Variant != analyzer.LinearScan {
		t.Fatalf("got %s, want LinearScan", plan.Variant)
	}
	if plan := analyzer.AnalyzeHashable(th.SmallLinear+1, th); plan.Variant != analyzer.ClassicHash {
		t.Fatalf("got %s, want ClassicHash", plan.Variant)
	}
}
