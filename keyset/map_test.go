package keyset_test

import (
	"testing"

	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/container"
	"github.com/gokeyset/keyset/keyset"
	"github.com/gokeyset/keyset/proptest"
)

// TestScalarMap_Dense covers boundary scenario (b) from spec.md §8.
func TestScalarMap_Dense(t *testing.T) {
	m := keyset.NewScalarMap(map[int]string{10: "a", 11: "b", 12: "c"})
	if v := m.Plan().Variant; v != analyzer.DenseScalarLookup {
		t.Fatalf("got variant %s, want DenseScalarLookup", v)
	}
	if v, ok := m.Get(11); !ok || v != "b" {
		t.Fatalf("Get(11) = %v, %v; want b, true", v, ok)
	}
	if _, ok := m.Get(9); ok {
		t.Fatalf("Get(9) should be absent")
	}
	if _, ok := m.Get(13); ok {
		t.Fatalf("Get(13) should be absent")
	}
}

// TestScalarMap_Sparse covers boundary scenario (c).
func TestScalarMap_Sparse(t *testing.T) {
	m := keyset.NewScalarMap(map[int]string{1: "a", 2: "b", 100: "c"})
	if v := m.Plan().Variant; v != analyzer.ScalarHash {
		t.Fatalf("got variant %s, want ScalarHash", v)
	}
	for k, want := range map[int]string{1: "a", 2: "b", 100: "c"} {
		v, ok := m.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%d) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
	if _, ok := m.Get(50); ok {
		t.Fatalf("Get(50) should be absent")
	}
}

func TestScalarMap_Empty(t *testing.T) {
	m := keyset.NewScalarMap(map[int]string{})
	if !m.IsEmpty() {
		t.Fatalf("expected empty map")
	}
	if m.ContainsKey(0) {
		t.Fatalf("contains_key(0) on an empty map should be false")
	}
}

// TestStringMap_LengthOrSubstring covers boundary scenario (d).
func TestStringMap_LengthOrSubstring(t *testing.T) {
	source := map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4}
	m := keyset.NewStringMap(source)
	for k, want := range source {
		v, ok := m.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%q) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
	if _, ok := m.Get("Eve"); ok {
		t.Fatalf("Get(Eve) should be absent")
	}
}

// TestStringMap_DisjointMut covers boundary scenario (f).
func TestStringMap_DisjointMut(t *testing.T) {
	m := keyset.NewStringMap(map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4})

	if _, ok := m.GetDisjointMut("Alice", "Alice"); ok {
		t.Fatalf("GetDisjointMut with a duplicate key should fail")
	}

	refs, ok := m.GetDisjointMut("Alice", "Bob")
	if !ok {
		t.Fatalf("GetDisjointMut(Alice, Bob) should succeed")
	}
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	*refs[0] = 100
	if v, _ := m.Get("Alice"); v != 100 {
		t.Fatalf("Get(Alice) = %d after mutation, want 100", v)
	}
}

func TestHashMap_ArbitraryStruct(t *testing.T) {
	keys := proptest.RandomUUIDKeys(12)
	m := map[uuidKey]int{}
	for i, k := range keys {
		m[uuidKey(k)] = i
	}
	hm := keyset.NewHashMap(m, func(k uuidKey) uint64 { return proptest.FNVHasher()(k) })
	if hm.Plan().Variant != analyzer.ClassicHash {
		t.Fatalf("got variant %s, want ClassicHash", hm.Plan().Variant)
	}
	for k, want := range m {
		v, ok := hm.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%v) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
}

type uuidKey = [16]byte

func TestDeterminism(t *testing.T) {
	source := map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4}
	build := func() *keyset.Map[string, int] { return keyset.NewStringMap(source) }
	proptest.Determinism(build, []string{"Alice", "Bob", "Sandy", "Tom", "Eve"}, func(a, b int) bool { return a == b }).Run(t)
}

func TestValueMutabilityProperty(t *testing.T) {
	m := keyset.NewScalarMap(map[int]string{1: "a", 2: "b", 3: "c"})
	proptest.ValueMutability(m, 2, "z", func(a, b string) bool { return a == b }).Run(t)
}

func TestPlanCorrectnessProperty(t *testing.T) {
	source := map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4}
	m := keyset.NewStringMap(source)
	proptest.PlanCorrectness(m, source, []string{"Eve", "Frank", "Gina"}, func(a, b int) bool { return a == b }).Run(t)
}

func TestDisjointMutSoundnessProperty(t *testing.T) {
	m := keyset.NewScalarMap(map[int]string{1: "a", 2: "b", 3: "c"})
	proptest.DisjointMutSoundness(m, []int{1, 2, 3}, []int{1, 1}, []int{1, 99}).Run(t)
}

func TestRoundTripProperty(t *testing.T) {
	m := keyset.NewStringMap(map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4})
	proptest.RoundTrip(m, []string{"Alice", "Bob", "Sandy", "Tom"}, []string{"Eve", "Frank"}).Run(t)
}

// TestVariantIndependenceProperty forces the same scalar entries onto
// two different variants via the direct-plan path and checks they
// agree on every observable query, per spec.md §8 property 3.
func TestVariantIndependenceProperty(t *testing.T) {
	denseEntries := []container.Entry[int, string]{
		{Key: 10, Value: "a"},
		{Key: 11, Value: "b"},
		{Key: 12, Value: "c"},
	}
	densePlan := analyzer.Plan{Variant: analyzer.DenseScalarLookup, BaseOffset: 10}
	dense := keyset.NewScalarMapFromPlan(densePlan, denseEntries)

	hashEntries := []container.Entry[int, string]{
		{Key: 10, Value: "a"},
		{Key: 11, Value: "b"},
		{Key: 12, Value: "c"},
	}
	hashPlan := analyzer.Plan{Variant: analyzer.ScalarHash, TableSize: 8}
	hashed := keyset.NewScalarMapFromPlan(hashPlan, hashEntries)

	proptest.VariantIndependence(dense, hashed, []int{10, 11, 12, 9, 13}, func(a, b string) bool { return a == b }).Run(t)
}
