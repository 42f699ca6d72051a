// Package keyset is the dispatch shell of spec.md §4.5: it runs the
// analyzer over a caller's key set, builds whichever of the eleven
// container variants the resulting Plan names, and wraps it behind a
// single Map or Set type so callers never need to know which variant
// they got.
//
// Four constructors correspond to the four capability tiers a key type
// can offer (package capability): NewScalarMap, NewOrderedMap,
// NewStringMap, NewHashMap. Go's generics are resolved at compile time,
// so — unlike a runtime capability probe — the tier is chosen by which
// constructor the caller calls, not by inspecting K.
package keyset

import (
	"sort"

	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/container"
)

// Map is a frozen-keyset associative container: the key population is
// fixed at construction (by whichever New*Map built it), but values may
// still be mutated through GetMut / GetDisjointMut / ValuesMut.
type Map[K comparable, V any] struct {
	lookup container.Lookup[K, V]
	plan   analyzer.Plan
}

// Plan reports the analyzer decision this Map was built from. Tests use
// this to assert variant selection; ordinary callers don't need it.
func (m *Map[K, V]) Plan() analyzer.Plan { return m.plan }

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int { return m.lookup.Len() }

// IsEmpty reports whether Len() == 0.
func (m *Map[K, V]) IsEmpty() bool { return m.lookup.Len() == 0 }

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.lookup.Get(key)
	return ok
}

// Get returns key's value, or (zero, false) if absent. Like every read
// operation in this module, it is total: absence is a result, never an
// error (spec.md §7).
func (m *Map[K, V]) Get(key K) (V, bool) { return m.lookup.Get(key) }

// GetKeyValue is Get plus the matched key, useful when K's equality
// doesn't imply byte-identity (e.g. query by a borrowed form of K).
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) { return m.lookup.GetKeyValue(key) }

// GetMut returns a mutable reference to key's value, or (nil, false) if
// absent.
func (m *Map[K, V]) GetMut(key K) (*V, bool) { return m.lookup.GetMut(key) }

// GetDisjointMut resolves every key to a mutable reference in one call.
// It reports ok = false — and returns no references at all — if any key
// is missing or any two keys coincide; per spec.md §7, a disjoint-mut
// conflict is a result, never a panic, so callers can't observe aliased
// mutable references to the same value.
func (m *Map[K, V]) GetDisjointMut(keys ...K) (refs []*V, ok bool) {
	seen := make(map[K]struct{}, len(keys))
	out := make([]*V, len(keys))
	for i, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, false
		}
		seen[k] = struct{}{}
		v, found := m.lookup.GetMut(k)
		if !found {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Entries returns every stored (key, value) pair in the container's
// storage order. That order is deterministic for a given Map built from
// the same deduplicated input (spec.md §8 property 2) but carries no
// meaning across variants — don't depend on it matching insertion order.
func (m *Map[K, V]) Entries() []container.Entry[K, V] { return m.lookup.Entries() }

// Keys returns every stored key, in storage order.
func (m *Map[K, V]) Keys() []K {
	entries := m.lookup.Entries()
	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns every stored value, in storage order.
func (m *Map[K, V]) Values() []V {
	entries := m.lookup.Entries()
	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values
}

// ValuesMut returns a mutable reference to every stored value, in
// storage order.
func (m *Map[K, V]) ValuesMut() []*V {
	entries := m.lookup.Entries()
	values := make([]*V, len(entries))
	for i, e := range entries {
		// GetMut points into the variant's own storage; Entries may be a
		// copy (DenseScalarLookup rebuilds it on every call).
		values[i], _ = m.lookup.GetMut(e.Key)
	}
	return values
}

// Equal reports whether m and other hold the same set of key-value
// pairs, independent of which of the eleven variants backs either one
// (spec.md §6's "equality ... independent of chosen variant").
func (m *Map[K, V]) Equal(other *Map[K, V], valuesEqual func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for _, e := range m.lookup.Entries() {
		v, ok := other.Get(e.Key)
		if !ok || !valuesEqual(e.Value, v) {
			return false
		}
	}
	return true
}

func thresholdsOrDefault(t []analyzer.Thresholds) analyzer.Thresholds {
	if len(t) > 0 {
		return t[0]
	}
	return analyzer.DefaultThresholds()
}

func entriesFor[K comparable, V any](keys []K, m map[K]V) []container.Entry[K, V] {
	entries := make([]container.Entry[K, V], len(keys))
	for i, k := range keys {
		entries[i] = container.Entry[K, V]{Key: k, Value: m[k]}
	}
	return entries
}

// NewScalarMap builds a Map from m, running the analyzer's Scalar path
// (spec.md §4.3 step 2): dense, then sparse, then ScalarHash. An
// optional Thresholds overrides the default tunables (tests use this to
// pin relative threshold orderings per spec.md §9).
func NewScalarMap[K capability.Scalar, V any](m map[K]V, t ...analyzer.Thresholds) *Map[K, V] {
	keys := scalarKeysSorted(m)
	plan := analyzer.AnalyzeScalar(keys, thresholdsOrDefault(t))
	entries := entriesFor(keys, m)
	return &Map[K, V]{lookup: buildScalarLookup(plan, entries), plan: plan}
}

func scalarKeysSorted[K capability.Scalar, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func buildScalarLookup[K capability.Scalar, V any](plan analyzer.Plan, entries []container.Entry[K, V]) container.Lookup[K, V] {
	switch plan.Variant {
	case analyzer.DenseScalarLookup:
		return container.NewDenseScalarLookup(entries, plan.BaseOffset)
	case analyzer.SparseScalarLookup:
		return container.NewSparseScalarLookup(entries, plan.BaseOffset, plan.TableSize)
	case analyzer.ScalarHash:
		return container.NewScalarHash(entries, plan.TableSize)
	default:
		return container.NewLinearScan(entries)
	}
}

// NewOrderedMap builds a Map from m for an Ordered key type with no
// Scalar or Text capability to exploit (spec.md §4.3 step 4) — a
// float64-keyed map is the typical caller.
func NewOrderedMap[K capability.Ordered, V any](m map[K]V, t ...analyzer.Thresholds) *Map[K, V] {
	keys := orderedKeysSorted(m)
	plan := analyzer.AnalyzeOrdered(keys, thresholdsOrDefault(t))
	entries := entriesFor(keys, m)
	return &Map[K, V]{lookup: buildOrderedLookup(plan, entries), plan: plan}
}

func orderedKeysSorted[K capability.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func buildOrderedLookup[K capability.Ordered, V any](plan analyzer.Plan, entries []container.Entry[K, V]) container.Lookup[K, V] {
	switch plan.Variant {
	case analyzer.OrderedScan:
		return container.NewOrderedScan(entries)
	case analyzer.BinarySearch:
		return container.NewBinarySearch(entries)
	case analyzer.EytzingerSearch:
		return container.NewEytzingerSearch(entries)
	default:
		return container.NewLinearScan(entries)
	}
}

// NewStringMap builds a Map from m for a ~string key type, running the
// analyzer's string path (spec.md §4.3 step 3): LengthHash, then
// LeftSubstringHash/RightSubstringHash, falling through to the Ordered
// path (OrderedScan/BinarySearch/EytzingerSearch) when neither clears its
// collision budget.
func NewStringMap[K capability.Text, V any](m map[K]V, t ...analyzer.Thresholds) *Map[K, V] {
	keys := orderedKeysSorted(m)
	plan := analyzer.AnalyzeString(keys, thresholdsOrDefault(t))
	entries := entriesFor(keys, m)
	return &Map[K, V]{lookup: buildStringLookup(plan, entries), plan: plan}
}

func buildStringLookup[K capability.Text, V any](plan analyzer.Plan, entries []container.Entry[K, V]) container.Lookup[K, V] {
	switch plan.Variant {
	case analyzer.LengthHash:
		return container.NewLengthHash(entries, plan.TableSize)
	case analyzer.LeftSubstringHash, analyzer.RightSubstringHash:
		return container.NewSubstringHash(entries, plan.TableSize, plan.Slot.Window)
	case analyzer.OrderedScan:
		return container.NewOrderedScan(entries)
	case analyzer.BinarySearch:
		return container.NewBinarySearch(entries)
	case analyzer.EytzingerSearch:
		return container.NewEytzingerSearch(entries)
	default:
		return container.NewLinearScan(entries)
	}
}

// NewHashMap builds a Map from m for an arbitrary comparable key type
// with no Scalar, Text, or Ordered capability — the terminal fallback of
// spec.md §4.3. Go gives no way to derive a hash for an arbitrary
// comparable type, so the caller supplies one; it must be consistent
// with K's equality (k1 == k2 implies hasher(k1) == hasher(k2)), the
// same contract the standard library's own hash/maphash-based code
// asks of callers.
//
// Entries are ordered by hasher output before construction so that two
// Maps built from equal input produce the same iteration order
// (spec.md §8 property 2); this is only a canonical tiebreak, not a
// claim that the hash is collision-free.
func NewHashMap[K comparable, V any](m map[K]V, hasher func(K) uint64, t ...analyzer.Thresholds) *Map[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return hasher(keys[i]) < hasher(keys[j]) })

	plan := analyzer.AnalyzeHashable(len(keys), thresholdsOrDefault(t))
	entries := entriesFor(keys, m)

	var lookup container.Lookup[K, V]
	switch plan.Variant {
	case analyzer.ClassicHash:
		lookup = container.NewClassicHash(entries, plan.TableSize, plan.HasherSeed, hasher)
	default:
		lookup = container.NewLinearScan(entries)
	}
	return &Map[K, V]{lookup: lookup, plan: plan}
}
