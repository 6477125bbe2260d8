// Package meta provides ordered member descriptors for editable types.
// It is the reflection layer the property inspector is built on: every
// struct the editor can show goes through Describe, which returns the
// members in display order with their getters, setters and edit tags.
package meta

import (
	"fmt"
	"reflect"
)

// Member describes one editable member of a struct type.
type Member struct {
	Name     string       // exported field name
	Order    int          // explicit display order from the edit tag; 0 = unset
	Index    int          // declaration index, tie-breaker for Order
	Type     reflect.Type // declared field type
	Tooltip  string       // hover text from the edit tag
	Hidden   bool         // shown nowhere, still serialized
	ReadOnly bool         // rejects writes in the inspector
	Editor   string       // named custom editor from the edit tag, "" if none

	owner reflect.Type // the struct type the field path is rooted at
	path  []int        // reflect field index path from the owning struct
}

// resolve maps the member onto sv's own type. A multi-selection can mix
// concrete types, so the field path rooted at the described type must
// never be indexed into a different struct. When sv is another type, the
// member resolves by name and type against that type's own descriptor;
// nil means the instance has no such member.
func (m *Member) resolve(sv reflect.Value) *Member {
	if m.owner == nil || sv.Type() == m.owner {
		return m
	}
	for _, other := range Describe(sv.Type()).Members {
		if other.Name == m.Name && other.Type == m.Type {
			return other
		}
	}
	return nil
}

// Get reads the member from owner. A nil owner, or an owner of a type
// that lacks the member, yields nil instead of panicking so multi-select
// containers can tolerate missing instances.
func (m *Member) Get(owner any) any {
	sv, ok := structValue(owner)
	if !ok {
		return nil
	}
	mm := m.resolve(sv)
	if mm == nil {
		return nil
	}
	return sv.FieldByIndex(mm.path).Interface()
}

// Set writes value to the member on owner, converting between
// compatible numeric kinds (the inspector edits every number as float64).
func (m *Member) Set(owner any, value any) error {
	sv, ok := structValue(owner)
	if !ok {
		return fmt.Errorf("meta: set %s on nil owner", m.Name)
	}
	mm := m.resolve(sv)
	if mm == nil {
		return fmt.Errorf("meta: %s has no member %s", sv.Type(), m.Name)
	}
	fv := sv.FieldByIndex(mm.path)
	if !fv.CanSet() {
		return fmt.Errorf("meta: member %s is not settable", m.Name)
	}
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(fv.Type()):
		fv.Set(rv)
	case rv.Type().ConvertibleTo(fv.Type()):
		fv.Set(rv.Convert(fv.Type()))
	default:
		return fmt.Errorf("meta: cannot assign %s to member %s (%s)", rv.Type(), m.Name, fv.Type())
	}
	return nil
}

// Addr returns a pointer to the member's storage inside owner, so nested
// struct members stay addressable when the editor tree recurses into them.
// Returns nil when the owner is nil or the field cannot be addressed.
func (m *Member) Addr(owner any) any {
	sv, ok := structValue(owner)
	if !ok {
		return nil
	}
	mm := m.resolve(sv)
	if mm == nil {
		return nil
	}
	fv := sv.FieldByIndex(mm.path)
	if !fv.CanAddr() {
		return nil
	}
	return fv.Addr().Interface()
}

// structValue unwraps owner down to an addressable struct value.
func structValue(owner any) (reflect.Value, bool) {
	if owner == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(owner)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}
