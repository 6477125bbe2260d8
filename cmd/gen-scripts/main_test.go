package main

import (
	"strings"
	"testing"
)

const sampleSource = `package scripts

import "inspect3d/internal/engine"

// Patrol walks an object between waypoints.
type Patrol struct {
	engine.BaseComponent
	Target engine.GameObjectRef // Object to walk toward
	Speed  float32              // World units per second
	Loops  int
	label  string
}
`

func TestParseScriptFields(t *testing.T) {
	script, err := parseScript(sampleSource)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if script.Name != "Patrol" {
		t.Errorf("Name = %q, want Patrol", script.Name)
	}
	if len(script.Fields) != 3 {
		t.Fatalf("fields = %d, want 3 (embedded and unexported skipped)", len(script.Fields))
	}

	target := script.Fields[0]
	if target.Name != "Target" || target.Type != "GameObjectRef" || target.Prop != "target" {
		t.Errorf("Target field = %+v", target)
	}
	if target.Tooltip != "Object to walk toward" {
		t.Errorf("Target tooltip = %q", target.Tooltip)
	}

	speed := script.Fields[1]
	if speed.Type != "float32" || speed.Prop != "speed" || speed.Tooltip != "World units per second" {
		t.Errorf("Speed field = %+v", speed)
	}

	loops := script.Fields[2]
	if loops.Prop != "loops" || loops.Tooltip != "" {
		t.Errorf("Loops field = %+v", loops)
	}
	if loops.Line == 0 {
		t.Errorf("field line not captured")
	}
}

func TestParseScriptSkipsForeignTypes(t *testing.T) {
	source := `package scripts

import rl "github.com/gen2brain/raylib-go/raylib"

type Beam struct {
	Color rl.Color
	Width float32
}
`
	script, err := parseScript(source)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if len(script.Fields) != 1 || script.Fields[0].Name != "Width" {
		t.Errorf("fields = %+v, want only Width", script.Fields)
	}
}

func TestParseScriptNoStruct(t *testing.T) {
	_, err := parseScript("package scripts\n\nfunc Helper() {}\n")
	if err == nil || !strings.Contains(err.Error(), "no struct definition") {
		t.Errorf("err = %v, want no-struct error", err)
	}
}

func TestTagFields(t *testing.T) {
	script, err := parseScript(sampleSource)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	tagged := tagFields(sampleSource, script.Fields)

	if !strings.Contains(tagged, "`edit:\"order=1,tooltip=Object to walk toward\"` // Object to walk toward") {
		t.Errorf("ref field not tagged with order and tooltip:\n%s", tagged)
	}
	if !strings.Contains(tagged, "`edit:\"order=3\"`") {
		t.Errorf("comment-less field missing its order tag:\n%s", tagged)
	}
	if strings.Contains(tagged, "label  string `edit") {
		t.Errorf("unexported field was tagged:\n%s", tagged)
	}
}

func TestTooltipDropsCommas(t *testing.T) {
	source := "package scripts\n\ntype S struct {\n\tSpeed float32 // Units per second, roughly\n}\n"
	script, err := parseScript(source)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	// The edit tag format separates options with commas.
	if got := script.Fields[0].Tooltip; got != "Units per second roughly" {
		t.Errorf("Tooltip = %q, want the comma stripped", got)
	}
}

func TestTagFieldsLeavesExistingTags(t *testing.T) {
	source := "package scripts\n\ntype S struct {\n\tSpeed float32 `json:\"speed\"`\n}\n"
	script, err := parseScript(source)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if got := tagFields(source, script.Fields); got != source {
		t.Errorf("line with an existing tag was rewritten:\n%s", got)
	}
}

func TestEmitScript(t *testing.T) {
	script, err := parseScript(sampleSource)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	out := emitScript(script, sampleSource, "patrol.go")

	first, _, _ := strings.Cut(out, "\n")
	if !strings.HasPrefix(first, "// Code generated by gen-scripts") || !strings.HasSuffix(first, "DO NOT EDIT.") {
		t.Errorf("generated header = %q", first)
	}
	// A GameObjectRef field routes registration through the metadata form.
	if !strings.Contains(out, "engine.RegisterScriptWithMetadata(\"Patrol\", patrolFactory, patrolSerializer, patrolApplier, patrolFieldTypes)") {
		t.Errorf("metadata registration missing:\n%s", out)
	}
	if !strings.Contains(out, "\"target\": \"GameObjectRef\",") {
		t.Errorf("field types map missing the ref entry:\n%s", out)
	}
	if !strings.Contains(out, "script.Target = engine.GameObjectRef{UID: uint64(v)}") {
		t.Errorf("factory does not rebuild the ref from a UID:\n%s", out)
	}
	if !strings.Contains(out, "\"target\": float64(s.Target.UID),") {
		t.Errorf("serializer does not flatten the ref to a UID:\n%s", out)
	}
	if !strings.Contains(out, "case \"loops\":") {
		t.Errorf("applier missing a plain field:\n%s", out)
	}
}

func TestEmitScriptPlainRegistration(t *testing.T) {
	source := "package scripts\n\ntype Spin struct {\n\tSpeed float32\n}\n"
	script, err := parseScript(source)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	out := emitScript(script, source, "spin.go")
	if !strings.Contains(out, "engine.RegisterScriptWithApplier(\"Spin\", spinFactory, spinSerializer, spinApplier)") {
		t.Errorf("plain registration missing:\n%s", out)
	}
	if strings.Contains(out, "FieldTypes") {
		t.Errorf("field types emitted without a ref field:\n%s", out)
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Speed":     "speed",
		"StopDist":  "stop_dist",
		"TargetRef": "target_ref",
		"name":      "name",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConvFor(t *testing.T) {
	cases := []struct {
		fieldType string
		goType    string
		conv      string
	}{
		{"float32", "float64", "float32(%s)"},
		{"float64", "float64", "%s"},
		{"int", "float64", "int(%s)"},
		{"bool", "bool", "%s"},
		{"string", "string", "%s"},
		{"GameObjectRef", "float64", "engine.GameObjectRef{UID: uint64(%s)}"},
	}
	for _, c := range cases {
		goType, conv := convFor(c.fieldType)
		if goType != c.goType || conv != c.conv {
			t.Errorf("convFor(%s) = %q, %q, want %q, %q", c.fieldType, goType, conv, c.goType, c.conv)
		}
	}
}

func TestContentHashDiffers(t *testing.T) {
	if contentHash([]byte("a")) == contentHash([]byte("b")) {
		t.Errorf("different sources hash equal")
	}
	// The version constant rides the hash so a generator bump
	// invalidates every cached output.
	if genVersion == "" {
		t.Errorf("generator version constant must not be empty")
	}
}
