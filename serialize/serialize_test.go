package serialize_test

import (
	"testing"

	"github.com/gokeyset/keyset/keyset"
	"github.com/gokeyset/keyset/serialize"
)

func TestMarshalUnmarshalMapRoundTrips(t *testing.T) {
	source := map[string]int{"Alice": 1, "Bob": 2, "Sandy": 3, "Tom": 4}
	m := keyset.NewStringMap(source)

	data, err := serialize.MarshalMap(m)
	if err != nil {
		t.Fatalf("MarshalMap: %v", err)
	}

	got, err := serialize.UnmarshalMap[string, int](data)
	if err != nil {
		t.Fatalf("UnmarshalMap: %v", err)
	}

	if len(got) != len(source) {
		t.Fatalf("got %d entries, want %d", len(got), len(source))
	}
	for k, want := range source {
		if v, ok := got[k]; !ok || v != want {
			t.Fatalf("got[%q] = %v, %v; want %v, true", k, v, ok, want)
		}
	}
}

func TestEncodeDecodeEntriesRoundTrips(t *testing.T) {
	source := map[int]string{1: "a", 2: "b", 100: "c"}
	m := keyset.NewScalarMap(source)

	data, err := serialize.EncodeEntries(m)
	if err != nil {
		t.Fatalf("EncodeEntries: %v", err)
	}

	got, err := serialize.DecodeEntries[int, string](data)
	if err != nil {
		t.Fatalf("DecodeEntries: %v", err)
	}

	if len(got) != len(source) {
		t.Fatalf("got %d entries, want %d", len(got), len(source))
	}
	for k, want := range source {
		if v, ok := got[k]; !ok || v != want {
			t.Fatalf("got[%d] = %v, %v; want %v, true", k, v, ok, want)
		}
	}
}
