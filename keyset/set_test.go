package keyset_test

import (
	"sort"
	"testing"

	"github.com/gokeyset/keyset/keyset"
	"github.com/gokeyset/keyset/proptest"
)

func TestSetOperations(t *testing.T) {
	a := keyset.NewOrderedSet([]int{1, 2, 3, 4})
	b := keyset.NewOrderedSet([]int{3, 4, 5, 6})

	union := keyset.Union(a, b)
	sort.Ints(union)
	want := []int{1, 2, 3, 4, 5, 6}
	if len(union) != len(want) {
		t.Fatalf("Union = %v, want %v", union, want)
	}
	for i := range want {
		if union[i] != want[i] {
			t.Fatalf("Union = %v, want %v", union, want)
		}
	}

	inter := keyset.Intersection(a, b)
	sort.Ints(inter)
	if len(inter) != 2 || inter[0] != 3 || inter[1] != 4 {
		t.Fatalf("Intersection = %v, want [3 4]", inter)
	}

	diff := keyset.Difference(a, b)
	sort.Ints(diff)
	if len(diff) != 2 || diff[0] != 1 || diff[1] != 2 {
		t.Fatalf("Difference = %v, want [1 2]", diff)
	}

	symDiff := keyset.SymmetricDifference(a, b)
	sort.Ints(symDiff)
	wantSym := []int{1, 2, 5, 6}
	if len(symDiff) != len(wantSym) {
		t.Fatalf("SymmetricDifference = %v, want %v", symDiff, wantSym)
	}

	if !a.IsSubset(keyset.NewOrderedSet([]int{1, 2, 3, 4, 5})) {
		t.Fatalf("a should be a subset of {1,2,3,4,5}")
	}
	if a.IsSubset(b) {
		t.Fatalf("a should not be a subset of b")
	}
	if a.IsDisjoint(b) {
		t.Fatalf("a and b share members, should not be disjoint")
	}

	c := keyset.NewOrderedSet([]int{100, 200})
	if !a.IsDisjoint(c) {
		t.Fatalf("a and c share no members, should be disjoint")
	}
}

func TestSetAlgebraLawsProperty(t *testing.T) {
	a := keyset.NewStringSet([]string{"alpha", "beta", "gamma"})
	b := keyset.NewStringSet([]string{"beta", "gamma", "delta"})
	proptest.SetAlgebraLaws(a, b).Run(t)
}

func TestSetEquality(t *testing.T) {
	a := keyset.NewScalarSet([]int{1, 2, 3})
	b := keyset.NewScalarSet([]int{3, 2, 1})
	if !a.Equal(b) {
		t.Fatalf("sets with the same members built in different orders should be equal")
	}
	c := keyset.NewScalarSet([]int{1, 2})
	if a.Equal(c) {
		t.Fatalf("sets with different members should not be equal")
	}
}
