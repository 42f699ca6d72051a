// Package literal is the pure-function entry point spec.md §6 names for
// the literal-initialization collaborator: a token-transforming build
// step (a proc-macro in spirit, a go:generate-driven code generator in
// this module's Go realization — see cmd/keysetgen) that needs the
// analyzer's decision at compile time instead of at program startup.
//
// Nothing here does any work of its own. spec.md §9 is explicit that
// compile-time and runtime analysis share one analyzer function, "no
// duplicated logic" — this package exists only so an external
// collaborator has a narrow, stable import surface instead of reaching
// into package analyzer's full API.
package literal

import (
	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/capability"
)

// Plan is analyzer.Plan, re-exported so callers of this package don't
// need a second import.
type Plan = analyzer.Plan

// Thresholds is analyzer.Thresholds, re-exported for the same reason.
type Thresholds = analyzer.Thresholds

// DefaultThresholds is analyzer.DefaultThresholds, re-exported.
func DefaultThresholds() Thresholds { return analyzer.DefaultThresholds() }

// AnalyzeScalar computes the plan for a deduplicated Scalar key set.
func AnalyzeScalar[K capability.Scalar](keys []K, t Thresholds) Plan {
	return analyzer.AnalyzeScalar(keys, t)
}

// AnalyzeOrdered computes the plan for a deduplicated Ordered key set
// with no Scalar or Text capability.
func AnalyzeOrdered[K capability.Ordered](keys []K, t Thresholds) Plan {
	return analyzer.AnalyzeOrdered(keys, t)
}

// AnalyzeString computes the plan for a deduplicated ~string key set.
func AnalyzeString[K capability.Text](keys []K, t Thresholds) Plan {
	return analyzer.AnalyzeString(keys, t)
}

// AnalyzeHashable computes the plan for a deduplicated key set of n
// arbitrary comparable keys with a caller-supplied hasher.
func AnalyzeHashable(n int, t Thresholds) Plan {
	return analyzer.AnalyzeHashable(n, t)
}
