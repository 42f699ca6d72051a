package keyset

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over m's (key, value) pairs, in storage
// order. spec.md §6 names plain iteration as part of the Map contract;
// All is the range-over-func shape of that, for `for k, v := range
// m.All()` callers.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.lookup.Entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// keySeq adapts Entries into an iter.Seq[K], the shape Set.All exposes.
func (m *Map[K, V]) keySeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.lookup.Entries() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// String renders m as "[key:value key:value ...]" in storage order.
func (m *Map[K, V]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, e := range m.lookup.Entries() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%v:%v", e.Key, e.Value)
	}
	buf.WriteByte(']')
	return buf.String()
}

// All returns an iterator over s's members, in storage order.
func (s *Set[K]) All() iter.Seq[K] { return s.m.keySeq() }

// String renders s as "[member member ...]" in storage order.
func (s *Set[K]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for i, e := range s.m.lookup.Entries() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%v", e.Key)
	}
	buf.WriteByte(']')
	return buf.String()
}
