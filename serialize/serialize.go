// Package serialize implements the entry-marshaling half of spec.md
// §6's external-interfaces list: a way to get a frozen Map's contents
// into and out of a human-editable text format, independent of which of
// the eleven variants happens to back it (a serialized Map carries no
// variant tag — only entries — so deserializing and rebuilding with any
// New*Map constructor is free to land on a different variant).
//
// It is deliberately a thin codec with no container-selection policy:
// Unmarshal produces a plain Go map, never a keyset.Map directly,
// leaving the analyzer decision to whichever New*Map call the caller
// makes next.
package serialize

import (
	"sigs.k8s.io/yaml"

	"github.com/gokeyset/keyset/capability"
	"github.com/gokeyset/keyset/keyset"
)

// MarshalMap renders m as a YAML mapping keyed by m's own text keys.
// sigs.k8s.io/yaml round-trips through encoding/json under the hood, so
// V's fields follow ordinary `json:"..."` struct tags.
func MarshalMap[K capability.Text, V any](m *keyset.Map[K, V]) ([]byte, error) {
	plain := make(map[K]V, m.Len())
	for _, e := range m.Entries() {
		plain[e.Key] = e.Value
	}
	return yaml.Marshal(plain)
}

// UnmarshalMap parses a YAML mapping into a plain map[K]V, ready to pass
// to keyset.NewStringMap (or NewScalarMapFromPlan-style reconstruction
// by the literal-initialization collaborator).
func UnmarshalMap[K capability.Text, V any](data []byte) (map[K]V, error) {
	var plain map[K]V
	if err := yaml.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

// Entry is the wire shape for a single (key, value) pair, used by
// EncodeEntries/DecodeEntries for key types YAML can't use directly as
// a mapping key (Scalar keys, or the fully generic Hashable case).
type Entry[K any, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// EncodeEntries renders m's entries as a YAML sequence of {key, value}
// records, the serialization shape for Scalar- or Hashable-keyed Maps
// that have no natural YAML mapping-key representation.
func EncodeEntries[K comparable, V any](m *keyset.Map[K, V]) ([]byte, error) {
	src := m.Entries()
	out := make([]Entry[K, V], len(src))
	for i, e := range src {
		out[i] = Entry[K, V]{Key: e.Key, Value: e.Value}
	}
	return yaml.Marshal(out)
}

// DecodeEntries parses a YAML sequence of {key, value} records back
// into a plain map[K]V.
func DecodeEntries[K comparable, V any](data []byte) (map[K]V, error) {
	var records []Entry[K, V]
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	plain := make(map[K]V, len(records))
	for _, r := range records {
		plain[r.Key] = r.Value
	}
	return plain, nil
}
