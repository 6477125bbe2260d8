package meta

import (
	"fmt"
	"reflect"
	"sort"
)

// typeEditors maps a type to the name of its custom editor. This is the
// Go stand-in for a custom-editor attribute on the type declaration.
var typeEditors = map[reflect.Type]string{}

// RegisterTypeEditor declares that values of type t are edited by the
// named custom editor. Registering twice for the same type panics, the
// same way the script registry treats duplicate names.
func RegisterTypeEditor(t reflect.Type, editor string) {
	t = indirect(t)
	if prev, exists := typeEditors[t]; exists {
		panic(fmt.Sprintf("meta: editor for %s already registered as %q", t, prev))
	}
	typeEditors[t] = editor
	delete(descCache, t) // descriptor may be cached without the editor
}

// EditorFor resolves the custom editor name for t, walking every embedded
// base type depth-first the way attribute lookup walks a class hierarchy.
// Returns "" when neither t nor any base declares one.
func EditorFor(t reflect.Type) string {
	seen := map[reflect.Type]bool{}
	var walk func(t reflect.Type) string
	walk = func(t reflect.Type) string {
		if t == nil || seen[t] {
			return ""
		}
		seen[t] = true
		if name, ok := typeEditors[t]; ok {
			return name
		}
		for _, base := range Describe(t).Bases {
			if name := walk(base); name != "" {
				return name
			}
		}
		return ""
	}
	return walk(indirect(t))
}

// Enum describes a registered enum type: a closed set of values with
// display names, rendered as a dropdown instead of a raw number.
type Enum struct {
	Type    reflect.Type
	Options []EnumOption
}

type EnumOption struct {
	Value any
	Name  string
}

var enums = map[reflect.Type]*Enum{}

// RegisterEnum registers the display names of an enum's values. All keys
// must share one type.
func RegisterEnum(values map[any]string) {
	var t reflect.Type
	e := &Enum{}
	for v, name := range values {
		vt := reflect.TypeOf(v)
		if t == nil {
			t = vt
		} else if t != vt {
			panic(fmt.Sprintf("meta: mixed enum value types %s and %s", t, vt))
		}
		e.Options = append(e.Options, EnumOption{Value: v, Name: name})
	}
	if t == nil {
		return
	}
	sort.Slice(e.Options, func(i, j int) bool {
		return enumRank(e.Options[i].Value) < enumRank(e.Options[j].Value)
	})
	e.Type = t
	enums[t] = e
}

// EnumOf returns the registered enum for t, if any.
func EnumOf(t reflect.Type) (*Enum, bool) {
	e, ok := enums[indirect(t)]
	return e, ok
}

func enumRank(v any) int64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	}
	return 0
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
