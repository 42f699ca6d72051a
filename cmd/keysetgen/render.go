package main

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/hash"
	"github.com/gokeyset/keyset/literal"
)

// planResult carries an analyzer.Plan and enough side information to
// drive the source template — the template itself never imports
// package analyzer's internals, it only ever sees this flattened shape.
type planResult struct {
	f          *fixture
	plan       analyzer.Plan
	constructor string // keyset.New*MapFromPlan
}

func analyzeFixture(f *fixture) (*planResult, error) {
	t := literal.DefaultThresholds()
	switch f.KeyType {
	case "string":
		keys := make([]string, len(f.Entries))
		for i, e := range f.Entries {
			keys[i] = e.Key
		}
		return &planResult{f: f, plan: literal.AnalyzeString(keys, t), constructor: "NewStringMapFromPlan"}, nil
	case "int64":
		keys := make([]int64, len(f.Entries))
		for i, e := range f.Entries {
			v, err := strconv.ParseInt(e.Key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("key %q is not a valid int64: %w", e.Key, err)
			}
			keys[i] = v
		}
		return &planResult{f: f, plan: literal.AnalyzeScalar(keys, t), constructor: "NewScalarMapFromPlan"}, nil
	default:
		return nil, fmt.Errorf("unsupported keytype %q", f.KeyType)
	}
}

// planLiteral renders plan as a Go source expression of type
// analyzer.Plan — the generated file constructs its Plan as a literal
// rather than calling the analyzer again, so the generated binary never
// needs to re-run analysis (spec.md §9's whole point for this
// collaborator).
func planLiteral(p analyzer.Plan) string {
	var slot string
	switch p.Slot.Kind {
	case analyzer.SlotSubstring:
		anchor := "hash.AnchorLeft"
		if p.Slot.Window.Anchor == hash.AnchorRight {
			anchor = "hash.AnchorRight"
		}
		slot = fmt.Sprintf("analyzer.SlotFunction{Kind: analyzer.SlotSubstring, Window: hash.Window{Anchor: %s, Offset: %d, Length: %d}}",
			anchor, p.Slot.Window.Offset, p.Slot.Window.Length)
	default:
		slot = fmt.Sprintf("analyzer.SlotFunction{Kind: analyzer.SlotKind(%d)}", p.Slot.Kind)
	}
	return fmt.Sprintf(
		"analyzer.Plan{Variant: analyzer.Variant(%d), TableSize: %d, Slot: %s, BaseOffset: %d, HasherSeed: %d}",
		p.Variant, p.TableSize, slot, p.BaseOffset, p.HasherSeed,
	)
}

const sourceTemplate = `// Code generated by keysetgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/gokeyset/keyset/analyzer"
	"github.com/gokeyset/keyset/container"
	"github.com/gokeyset/keyset/hash"
	"github.com/gokeyset/keyset/keyset"
)

// Reference hash so the import is used even when the plan has no substring window.
var _ = hash.AnchorLeft

var {{.VarName}} = keyset.{{.Constructor}}[{{.KeyType}}, {{.ValueType}}](
	{{.PlanLiteral}},
	[]container.Entry[{{.KeyType}}, {{.ValueType}}]{
{{- range .Entries}}
		{Key: {{.Key}}, Value: {{.Value}}},
{{- end}}
	},
)
`

type templateData struct {
	Package     string
	VarName     string
	Constructor string
	KeyType     string
	ValueType   string
	PlanLiteral string
	Entries     []templateEntry
}

type templateEntry struct {
	Key   string
	Value string
}

func render(r *planResult) ([]byte, error) {
	data := templateData{
		Package:     r.f.Package,
		VarName:     r.f.VarName,
		Constructor: r.constructor,
		KeyType:     r.f.KeyType,
		ValueType:   r.f.ValueType,
		PlanLiteral: planLiteral(r.plan),
	}
	for _, e := range r.f.Entries {
		key := e.Key
		if r.f.KeyType == "string" {
			key = strconv.Quote(key)
		}
		data.Entries = append(data.Entries, templateEntry{Key: key, Value: e.Value})
	}

	tmpl, err := template.New("keysetgen").Parse(sourceTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}
