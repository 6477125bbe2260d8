package inspect

import (
	"reflect"

	"inspect3d/internal/meta"
)

// Factory creates a fresh, uninitialized editor node.
type Factory func() Editor

// Registry maps value types to the editors that render them. Resolution
// never fails: anything unmatched falls back to the generic reflective
// editor, so every value stays displayable.
type Registry struct {
	byType   map[reflect.Type]Factory
	named    map[string]Factory
	refTypes map[reflect.Type]bool
}

func NewRegistry() *Registry {
	return &Registry{
		byType:   map[reflect.Type]Factory{},
		named:    map[string]Factory{},
		refTypes: map[reflect.Type]bool{},
	}
}

// AddType binds an editor factory to the type of sample.
func (r *Registry) AddType(sample any, f Factory) {
	r.byType[indirectType(reflect.TypeOf(sample))] = f
}

// AddNamed registers an editor under a name, the target of edit-tag and
// type-level editor attributes.
func (r *Registry) AddNamed(name string, f Factory) {
	r.named[name] = f
}

// Named returns the factory registered under name, nil if absent.
func (r *Registry) Named(name string) Factory {
	return r.named[name]
}

// AddReference marks sample's type as an engine-object reference, edited
// with the reference picker whenever the surface allows one.
func (r *Registry) AddReference(sample any) {
	r.refTypes[indirectType(reflect.TypeOf(sample))] = true
}

// Resolve picks the editor for a container. Resolution order, first
// match wins:
//  1. explicit override supplied by the caller
//  2. property declared as interface with a concrete runtime value:
//     resolve by the concrete type (folded into container.Type)
//  3. reference-picker shortcut for engine-object types when allowed
//  4. editor declared for the type or any base type
//  5. built-in specializations: enum, slice/array, map
//  6. the generic reflective editor
func (r *Registry) Resolve(values *ValueContainer, canUseReferencePicker bool, override Factory) Editor {
	if override != nil {
		return override()
	}
	t := values.Type()
	if t == nil {
		return &GenericEditor{}
	}
	t = indirectType(t)

	if canUseReferencePicker && r.refTypes[t] {
		return &ReferenceEditor{}
	}

	if name := meta.EditorFor(t); name != "" {
		if f := r.named[name]; f != nil {
			return f()
		}
	}
	if f := r.byType[t]; f != nil {
		return f()
	}

	if _, ok := meta.EnumOf(t); ok {
		return &EnumEditor{}
	}
	switch t.Kind() {
	case reflect.Bool:
		return &BoolEditor{}
	case reflect.String:
		return &StringEditor{}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &NumberEditor{}
	case reflect.Slice, reflect.Array:
		return &SliceEditor{}
	case reflect.Map:
		return &MapEditor{}
	}

	return &GenericEditor{}
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
