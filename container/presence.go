package container

import "math/bits"

// presenceSet is a fixed-size bitmap marking which positions in a
// [0, span) range are occupied, backing SparseScalarLookup's index
// validity check — a single bit test rather than a branch on a magic
// "absent" index.
//
// It only needs mark/has/count over a range fixed at construction time,
// not a general-purpose set (no Union/Intersection/Del), so it stores
// words directly rather than wrapping a general BitSet type.
type presenceSet struct {
	words []uint64
}

// newPresenceSet allocates a presenceSet able to mark positions
// [0, span).
func newPresenceSet(span int) presenceSet {
	n := max(1, (span+63)/64)
	return presenceSet{words: make([]uint64, n)}
}

// mark records pos as occupied.
func (p presenceSet) mark(pos int) {
	p.words[pos/64] |= 1 << (pos % 64)
}

// has reports whether pos was marked.
func (p presenceSet) has(pos int) bool {
	return p.words[pos/64]&(1<<(pos%64)) != 0
}

// count returns the number of marked positions.
func (p presenceSet) count() int {
	n := 0
	for _, w := range p.words {
		n += bits.OnesCount64(w)
	}
	return n
}
