package container_test

import (
	"testing"

	"github.com/gokeyset/keyset/container"
	"github.com/gokeyset/keyset/hash"
)

func entriesOf[V any](pairs map[string]V) []container.Entry[string, V] {
	out := make([]container.Entry[string, V], 0, len(pairs))
	for k, v := range pairs {
		out = append(out, container.Entry[string, V]{Key: k, Value: v})
	}
	return out
}

func TestDenseScalarLookup(t *testing.T) {
	entries := []container.Entry[int, string]{
		{Key: 10, Value: "a"},
		{Key: 11, Value: "b"},
		{Key: 12, Value: "c"},
	}
	d := container.NewDenseScalarLookup(entries, 10)

	if v, ok := d.Get(11); !ok || v != "b" {
		t.Fatalf("Get(11) = %v, %v; want b, true", v, ok)
	}
	if _, ok := d.Get(9); ok {
		t.Fatalf("Get(9) should be absent")
	}
	if _, ok := d.Get(13); ok {
		t.Fatalf("Get(13) should be absent")
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
}

func TestSparseScalarLookup(t *testing.T) {
	entries := []container.Entry[int, string]{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
		{Key: 100, Value: "c"},
	}
	s := container.NewSparseScalarLookup(entries, 1, 100)

	for _, want := range entries {
		v, ok := s.Get(want.Key)
		if !ok || v != want.Value {
			t.Fatalf("Get(%d) = %v, %v; want %v, true", want.Key, v, ok, want.Value)
		}
	}
	if _, ok := s.Get(50); ok {
		t.Fatalf("Get(50) should be absent")
	}
}

func TestScalarHash(t *testing.T) {
	entries := []container.Entry[int, string]{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
		{Key: 100, Value: "c"},
	}
	sh := container.NewScalarHash(entries, 8)
	for _, want := range entries {
		v, ok := sh.Get(want.Key)
		if !ok || v != want.Value {
			t.Fatalf("Get(%d) = %v, %v; want %v, true", want.Key, v, ok, want.Value)
		}
	}
	if _, ok := sh.Get(50); ok {
		t.Fatalf("Get(50) should be absent")
	}
}

func TestLengthHash(t *testing.T) {
	entries := entriesOf(map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4})
	lh := container.NewLengthHash(entries, 8)
	for k, want := range map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4} {
		v, ok := lh.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%q) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
	if _, ok := lh.Get("Eve"); ok {
		t.Fatalf("Get(Eve) should be absent")
	}
}

func TestSubstringHash(t *testing.T) {
	entries := entriesOf(map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4})
	window := hash.Window{Anchor: hash.AnchorLeft, Offset: 0, Length: 1}
	sh := container.NewSubstringHash(entries, 8, window)
	for k, want := range map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4} {
		v, ok := sh.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%q) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
	if _, ok := sh.Get(""); ok {
		t.Fatalf("Get(\"\") (too short for window) should be absent")
	}
}

func TestLinearScan(t *testing.T) {
	entries := entriesOf(map[string]int{"a": 1, "b": 2})
	ls := container.NewLinearScan(entries)
	if v, ok := ls.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := ls.Get("z"); ok {
		t.Fatalf("Get(z) should be absent")
	}
}

func TestOrderedScan(t *testing.T) {
	entries := entriesOf(map[string]int{"banana": 2, "apple": 1, "cherry": 3})
	os := container.NewOrderedScan(entries)
	for k, want := range map[string]int{"apple": 1, "banana": 2, "cherry": 3} {
		v, ok := os.Get(k)
		if !ok || v != want {
			t.Fatalf("Get(%q) = %v, %v; want %v, true", k, v, ok, want)
		}
	}
	if _, ok := os.Get("date"); ok {
		t.Fatalf("Get(date) should be absent")
	}

	got := os.Entries()
	for i := 1; i < len(got); i++ {
		if got[i-1].Key > got[i].Key {
			t.Fatalf("Entries() not sorted ascending: %v", got)
		}
	}
}

func TestBinarySearch(t *testing.T) {
	n := 50
	entries := make([]container.Entry[int, int], n)
	for i := range entries {
		entries[i] = container.Entry[int, int]{Key: i * 2, Value: i}
	}
	bs := container.NewBinarySearch(entries)
	for i := 0; i < n; i++ {
		v, ok := bs.Get(i * 2)
		if !ok || v != i {
			t.Fatalf("Get(%d) = %v, %v; want %v, true", i*2, v, ok, i)
		}
		if _, ok := bs.Get(i*2 + 1); ok {
			t.Fatalf("Get(%d) should be absent", i*2+1)
		}
	}
}

func TestEytzingerSearch(t *testing.T) {
	n := 200
	entries := make([]container.Entry[int, int], n)
	for i := range entries {
		entries[i] = container.Entry[int, int]{Key: i, Value: i * i}
	}
	es := container.NewEytzingerSearch(entries)
	if es.Len() != n {
		t.Fatalf("Len() = %d, want %d", es.Len(), n)
	}
	for i := 0; i < n; i++ {
		v, ok := es.Get(i)
		if !ok || v != i*i {
			t.Fatalf("Get(%d) = %v, %v; want %v, true", i, v, ok, i*i)
		}
	}
	if _, ok := es.Get(-1); ok {
		t.Fatalf("Get(-1) should be absent")
	}
	if _, ok := es.Get(n); ok {
		t.Fatalf("Get(%d) should be absent", n)
	}

	got := es.Entries()
	for i := 1; i < len(got); i++ {
		if got[i-1].Key > got[i].Key {
			t.Fatalf("Entries() not sorted ascending: %v", got)
		}
	}
}

func TestClassicHash(t *testing.T) {
	type point struct{ x, y int }
	hasher := func(p point) uint64 { return uint64(p.x)*31 + uint64(p.y) }

	entries := []container.Entry[point, string]{
		{Key: point{1, 1}, Value: "a"},
		{Key: point{2, 2}, Value: "b"},
		{Key: point{3, 3}, Value: "c"},
	}
	ch := container.NewClassicHash(entries, 8, 0xdeadbeef, hasher)
	for _, want := range entries {
		v, ok := ch.Get(want.Key)
		if !ok || v != want.Value {
			t.Fatalf("Get(%v) = %v, %v; want %v, true", want.Key, v, ok, want.Value)
		}
	}
	if _, ok := ch.Get(point{9, 9}); ok {
		t.Fatalf("Get({9,9}) should be absent")
	}
}

func TestGetMutDoesNotAliasAcrossEntries(t *testing.T) {
	entries := []container.Entry[int, int]{{Key: 1, Value: 10}, {Key: 2, Value: 20}}
	ls := container.NewLinearScan(entries)
	ref, ok := ls.GetMut(1)
	if !ok {
		t.Fatalf("GetMut(1) should succeed")
	}
	*ref = 99
	v, _ := ls.Get(1)
	if v != 99 {
		t.Fatalf("Get(1) = %d after mutation, want 99", v)
	}
	v2, _ := ls.Get(2)
	if v2 != 20 {
		t.Fatalf("Get(2) = %d, want unaffected 20", v2)
	}
}
