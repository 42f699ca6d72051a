// Package hash provides the hash primitives the analyzer and the
// hash-family containers are built on: a seeded default hasher for
// collision-resistant variants, and three cheap discriminators
// (passthrough, length, substring) that variants use instead when the key
// distribution lets them skip hashing the whole key.
//
// None of these are cryptographic. Per spec.md §4.2, callers whose keys
// could be chosen by an adversary should not rely on this package for
// protection; siphash raises the bar past a naive multiplicative hash, but
// this package makes no resistance guarantee.
package hash

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/dchest/siphash"
)

// processSeed is sourced once per process from crypto/rand, giving every
// instance constructed in the same process the same default-hasher
// behavior without making that behavior predictable across processes.
var (
	processSeedOnce sync.Once
	processSeed     uint64
)

// fallbackSeed is used only if crypto/rand is unavailable (e.g. certain
// restricted sandboxes). It is fixed so behavior stays deterministic
// within a process even in that degraded mode.
const fallbackSeed = 0x9e3779b97f4a7c15

// ProcessSeed returns the process-lifetime seed for Default. It is
// exported so the analyzer can stamp it into a Plan's HasherSeed field at
// construction time; Default itself always takes its seed explicitly.
func ProcessSeed() uint64 {
	processSeedOnce.Do(func() {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			processSeed = fallbackSeed
			return
		}
		processSeed = binary.LittleEndian.Uint64(buf[:])
	})
	return processSeed
}

// keyPair expands a single plan seed into the two 64-bit keys siphash
// wants. Plan.HasherSeed is one uint64 (spec.md's data model names a
// single "hasher_seed" field); this mixes in a fixed odd constant for the
// second key so two different seeds never collide on k1.
func keyPair(seed uint64) (k0, k1 uint64) {
	return seed, seed ^ fallbackSeed
}

// Default hashes an arbitrary byte sequence with siphash-2-4, keyed by
// seed. Used by ClassicHash, the fallback variant for key sets none of the
// cheaper discriminators fit.
func Default(seed uint64, key []byte) uint64 {
	k0, k1 := keyPair(seed)
	return siphash.Hash(k0, k1, key)
}
