package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fixture is the YAML shape a caller hands this tool: a key/value
// literal set plus enough type information to emit a Go source file
// that builds the matching Map at compile time — the build-script
// interface spec.md §6 describes, realized as a go:generate step.
type fixture struct {
	Package   string         `yaml:"package"`
	VarName   string         `yaml:"varname"`
	KeyType   string         `yaml:"keytype"`   // "string" or "int64"
	ValueType string         `yaml:"valuetype"` // emitted verbatim as a Go type
	Entries   []fixtureEntry `yaml:"entries"`
}

type fixtureEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"` // emitted verbatim as a Go expression
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if f.Package == "" {
		f.Package = "generated"
	}
	if f.VarName == "" {
		return nil, fmt.Errorf("fixture: varname is required")
	}
	switch f.KeyType {
	case "string", "int64":
	default:
		return nil, fmt.Errorf("fixture: keytype must be \"string\" or \"int64\", got %q", f.KeyType)
	}
	if f.ValueType == "" {
		f.ValueType = "string"
	}
	seen := make(map[string]struct{}, len(f.Entries))
	for _, e := range f.Entries {
		if _, dup := seen[e.Key]; dup {
			return nil, fmt.Errorf("fixture: duplicate key %q", e.Key)
		}
		seen[e.Key] = struct{}{}
	}
	return &f, nil
}
