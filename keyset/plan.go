package keyset

import (
	"fmt"

	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/container"
)

// DuplicatePlanKeys is the panic value for a Plan*Map constructor
// handed non-deduplicated entries. spec.md §7 treats this as an
// internal, debug-build-only assertion — the analyzer's own entry
// points never produce a plan from non-deduplicated input, so this only
// fires against a hand-built entries slice.
type DuplicatePlanKeys struct {
	Key any
}

func (e DuplicatePlanKeys) Error() string {
	return fmt.Sprintf("keyset: duplicate key %v in plan entries", e.Key)
}

// PlanInvariantViolation is the panic value for the direct-plan
// construction path (spec.md §6's literal-initialization interface):
// the caller supplied a Plan that does not match its entries, e.g. a
// DenseScalarLookup plan whose entries don't cover a contiguous
// [BaseOffset, BaseOffset+n) range.
type PlanInvariantViolation struct {
	Reason string
}

func (e PlanInvariantViolation) Error() string {
	return "keyset: plan invariant violated: " + e.Reason
}

// NewScalarMapFromPlan builds a Map directly from a caller-supplied plan
// and entries, bypassing the analyzer entirely. This is the path
// package literal and cmd/keysetgen use: a plan computed once (at
// generator-run time) and baked into generated source, which then calls
// this constructor against a static entries array instead of paying
// analysis cost again at program startup.
//
// It panics with PlanInvariantViolation if entries don't satisfy plan,
// and with DuplicatePlanKeys if entries aren't deduplicated — both are
// programming errors in the generator, never a condition the analyzer's
// own output can trigger.
func NewScalarMapFromPlan[K capability.Scalar, V any](plan analyzer.Plan, entries []container.Entry[K, V]) *Map[K, V] {
	assertDeduplicated(entries)
	assertScalarPlan(plan, entries)
	return &Map[K, V]{lookup: buildScalarLookup(plan, entries), plan: plan}
}

// NewStringMapFromPlan is NewScalarMapFromPlan's counterpart for the
// string path's variants (LengthHash, the substring hashes, and the
// Ordered-family fallbacks).
func NewStringMapFromPlan[K capability.Text, V any](plan analyzer.Plan, entries []container.Entry[K, V]) *Map[K, V] {
	assertDeduplicated(entries)
	return &Map[K, V]{lookup: buildStringLookup(plan, entries), plan: plan}
}

func assertDeduplicated[K comparable, V any](entries []container.Entry[K, V]) {
	seen := make(map[K]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			panic(DuplicatePlanKeys{Key: e.Key})
		}
		seen[e.Key] = struct{}{}
	}
}

func assertScalarPlan[K capability.Scalar, V any](plan analyzer.Plan, entries []container.Entry[K, V]) {
	switch plan.Variant {
	case analyzer.DenseScalarLookup:
		for _, e := range entries {
			idx := capability.Int64(e.Key) - plan.BaseOffset
			if idx < 0 || idx >= int64(len(entries)) {
				panic(PlanInvariantViolation{Reason: "DenseScalarLookup key outside [base_offset, base_offset+len)"})
			}
		}
	case analyzer.SparseScalarLookup:
		for _, e := range entries {
			idx := capability.Int64(e.Key) - plan.BaseOffset
			if idx < 0 || idx >= int64(plan.TableSize) {
				panic(PlanInvariantViolation{Reason: "SparseScalarLookup key outside declared span"})
			}
		}
	}
}
