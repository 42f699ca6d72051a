// Package proptest implements the seven testable properties of
// spec.md §8 as reusable Runners, generalizing the Runner/Generator
// closure-over-testing.T pattern package adt/adttest uses for its own
// abstract data type simulators. Every property here is phrased against
// the keyset.Map/keyset.Set contract rather than one concrete variant,
// so the same Runner exercises any of the eleven specialized containers
// package keyset's constructors might have picked.
package proptest

import (
	"hash/fnv"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gokeyset/keyset/keyset"
)

// Runner is a single property check, closed over whatever fixture it
// needs; call Run(t) from inside a *testing.T subtest.
type Runner func(t *testing.T)

func (r Runner) Run(t *testing.T) { t.Helper(); r(t) }

// RandomUUIDKeys generates n distinct uuid.UUID values — the canonical
// stand-in for "an arbitrary comparable struct type with no Scalar,
// Text, or Ordered capability", used to exercise the fully generic
// Hashable path (AnalyzeHashable / ClassicHash / keyset.NewHashMap)
// without the test needing to invent its own opaque key type.
func RandomUUIDKeys(n int) []uuid.UUID {
	keys := make([]uuid.UUID, n)
	for i := range keys {
		keys[i] = uuid.New()
	}
	return keys
}

// FNVHasher is a caller-supplied hasher consistent with uuid.UUID's
// equality, suitable for keyset.NewHashMap / keyset.NewHashSet in tests
// exercising the generic Hashable path. FNV-1a is not the module's
// default hasher (package hash's seeded siphash is) — it stands in for
// "whatever hash function the caller already has lying around", which
// is exactly the scenario NewHashMap's hasher parameter exists for.
func FNVHasher() func(uuid.UUID) uint64 {
	return func(id uuid.UUID) uint64 {
		h := fnv.New64a()
		h.Write(id[:])
		return h.Sum64()
	}
}

// RandSample returns a pseudo-random size in roughly [8, 64) — the same
// "small but not trivially small" sample width package adt/adttest's
// simulators use, handy for building fuzzed fixtures in callers' tests.
func RandSample() int { return max(8, rand.IntN(64)) }

// RoundTrip checks spec.md §8 property 1: contains(q) iff q is a member
// of the original key set, for every present key and a disjoint sample
// of absent ones.
func RoundTrip[K comparable, V any](m *keyset.Map[K, V], present []K, absent []K) Runner {
	return func(t *testing.T) {
		t.Helper()
		for _, k := range present {
			assert.True(t, m.ContainsKey(k), "expected %v present", k)
		}
		for _, k := range absent {
			assert.False(t, m.ContainsKey(k), "expected %v absent", k)
		}
	}
}

// Determinism checks spec.md §8 property 2: two Maps built from the
// same deduplicated input return equal results for every query and
// iterate the same sequence — build is called twice and must not reuse
// state between calls.
func Determinism[K comparable, V any](build func() *keyset.Map[K, V], queries []K, valuesEqual func(a, b V) bool) Runner {
	return func(t *testing.T) {
		t.Helper()
		a, b := build(), build()
		assert.Equal(t, a.Len(), b.Len())
		for _, k := range queries {
			va, oka := a.Get(k)
			vb, okb := b.Get(k)
			assert.Equal(t, oka, okb, "presence mismatch for %v", k)
			if oka && okb {
				assert.True(t, valuesEqual(va, vb), "value mismatch for %v: %v vs %v", k, va, vb)
			}
		}
		assert.True(t, a.Equal(b, valuesEqual))
		if diff := cmp.Diff(a.Keys(), b.Keys()); diff != "" {
			t.Errorf("iteration order differs between two builds from the same input (-a +b):\n%s", diff)
		}
	}
}

// VariantIndependence checks spec.md §8 property 3: for any two Maps
// holding the same content but forced onto different variants (the
// caller builds both, e.g. with two different plans), the observable
// Map/Set contract agrees.
func VariantIndependence[K comparable, V any](a, b *keyset.Map[K, V], queries []K, valuesEqual func(a, b V) bool) Runner {
	return func(t *testing.T) {
		t.Helper()
		assert.Equal(t, a.Len(), b.Len(), "variant mismatch changed Len")
		for _, k := range queries {
			va, oka := a.Get(k)
			vb, okb := b.Get(k)
			assert.Equal(t, oka, okb, "variant mismatch on presence of %v", k)
			if oka && okb {
				assert.True(t, valuesEqual(va, vb), "variant mismatch on value of %v", k)
			}
		}
		assert.True(t, a.Equal(b, valuesEqual), "Map.Equal disagreed across variants")
	}
}

// ValueMutability checks spec.md §8 property 4: after GetMut(k).set(v'),
// Get(k) == v' and the key set is unchanged.
func ValueMutability[K comparable, V any](m *keyset.Map[K, V], key K, newValue V, valuesEqual func(a, b V) bool) Runner {
	return func(t *testing.T) {
		t.Helper()
		before := m.Len()
		ref, ok := m.GetMut(key)
		if !assert.True(t, ok, "expected %v present for mutation", key) {
			return
		}
		*ref = newValue
		got, ok := m.Get(key)
		assert.True(t, ok)
		assert.True(t, valuesEqual(got, newValue))
		assert.Equal(t, before, m.Len(), "mutation changed key population")
	}
}

// DisjointMutSoundness checks spec.md §8 property 5: GetDisjointMut
// succeeds iff every requested key is present and the keys are pairwise
// distinct; otherwise it returns absent and no references escape.
func DisjointMutSoundness[K comparable, V any](m *keyset.Map[K, V], distinctPresent []K, withDuplicate []K, withAbsent []K) Runner {
	return func(t *testing.T) {
		t.Helper()

		refs, ok := m.GetDisjointMut(distinctPresent...)
		if assert.True(t, ok) {
			assert.Len(t, refs, len(distinctPresent))
			for _, r := range refs {
				assert.NotNil(t, r)
			}
		}

		_, ok = m.GetDisjointMut(withDuplicate...)
		assert.False(t, ok, "expected duplicate keys to be rejected")

		_, ok = m.GetDisjointMut(withAbsent...)
		assert.False(t, ok, "expected an absent key to be rejected")
	}
}

// SetAlgebraLaws checks spec.md §8 property 6's four set-algebra
// identities against arbitrary Sets a and b.
func SetAlgebraLaws[K comparable](a, b *keyset.Set[K]) Runner {
	return func(t *testing.T) {
		t.Helper()

		union1 := asSet(keyset.Union(a, b))
		union2 := asSet(keyset.Union(b, a))
		assert.ElementsMatch(t, toSlice(union1), toSlice(union2), "A ∪ B must equal B ∪ A")

		selfInter := keyset.Intersection(a, a)
		assert.ElementsMatch(t, a.Members(), selfInter, "A ∩ A must equal A")

		aMembers := a.Members()
		unionAB := asSet(keyset.Union(a, b))
		for _, k := range aMembers {
			assert.True(t, unionAB[k], "A ⊆ A ∪ B violated for %v", k)
		}

		diffAB := keyset.Difference(a, b)
		for _, k := range diffAB {
			assert.False(t, b.Contains(k), "(A \\ B) ∩ B must be empty, found %v", k)
		}
	}
}

func asSet[K comparable](keys []K) map[K]bool {
	out := make(map[K]bool, len(keys))
	for _, k := range keys {
		out[k] = true
	}
	return out
}

func toSlice[K comparable](m map[K]bool) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// PlanCorrectness checks spec.md §8 property 7: the analyzer's chosen
// variant agrees with a plain linear scan over the original entries, on
// every key plus a fuzzed sample of non-keys.
func PlanCorrectness[K comparable, V any](m *keyset.Map[K, V], reference map[K]V, nonKeys []K, valuesEqual func(a, b V) bool) Runner {
	return func(t *testing.T) {
		t.Helper()
		for k, want := range reference {
			got, ok := m.Get(k)
			assert.True(t, ok, "variant %s lost key %v", m.Plan().Variant, k)
			assert.True(t, valuesEqual(got, want), "variant %s returned wrong value for %v", m.Plan().Variant, k)
		}
		for _, k := range nonKeys {
			if _, present := reference[k]; present {
				continue
			}
			_, ok := m.Get(k)
			assert.False(t, ok, "variant %s returned a false positive for %v", m.Plan().Variant, k)
		}
	}
}
