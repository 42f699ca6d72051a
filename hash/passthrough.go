package hash

// Passthrough returns k unchanged as its own hash, widened to uint64. It
// backs ScalarHash (spec.md §4.4): when keys are already small integers,
// hashing them is wasted work — the integer value itself is already a
// perfectly good (if adversary-exploitable) hash.
func Passthrough(k int64) uint64 {
	return uint64(k)
}
