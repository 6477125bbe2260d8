// Package inspect implements the reflective property-editor core of the
// editor: value containers for multi-object editing, the editor registry,
// the generic layout builder, the undo-batching sync bridge and the
// prefab diff/revert engine. The raylib widget layer in internal/game
// renders the trees this package builds.
package inspect

import (
	"fmt"
	"reflect"

	"inspect3d/internal/meta"
)

// Accessor reads and writes one value slot inside an owner: a struct
// member, a slice element or a map entry. Containers use accessors to
// pull values from and push values to each selected instance.
type Accessor interface {
	Name() string
	Type() reflect.Type
	Get(owner any) any
	Set(owner any, value any) error
	// Addr returns a pointer into the owner's storage for the slot, so
	// nested editors can keep writing through it. Nil when unaddressable.
	Addr(owner any) any
}

// memberAccessor adapts a meta.Member descriptor.
type memberAccessor struct {
	m *meta.Member
}

// MemberAccessor wraps a struct member descriptor as an Accessor.
func MemberAccessor(m *meta.Member) Accessor { return memberAccessor{m} }

func (a memberAccessor) Name() string              { return a.m.Name }
func (a memberAccessor) Type() reflect.Type        { return a.m.Type }
func (a memberAccessor) Get(owner any) any         { return a.m.Get(owner) }
func (a memberAccessor) Set(owner, value any) error { return a.m.Set(owner, value) }
func (a memberAccessor) Addr(owner any) any        { return a.m.Addr(owner) }

// indexAccessor addresses one element of a slice or array member.
type indexAccessor struct {
	index int
	elem  reflect.Type
}

// IndexAccessor addresses element index of a slice-typed owner.
func IndexAccessor(index int, elem reflect.Type) Accessor {
	return indexAccessor{index: index, elem: elem}
}

func (a indexAccessor) Name() string       { return fmt.Sprintf("[%d]", a.index) }
func (a indexAccessor) Type() reflect.Type { return a.elem }

func (a indexAccessor) Get(owner any) any {
	sv, ok := sliceValue(owner)
	if !ok || a.index >= sv.Len() {
		return nil
	}
	return sv.Index(a.index).Interface()
}

func (a indexAccessor) Set(owner, value any) error {
	sv, ok := sliceValue(owner)
	if !ok || a.index >= sv.Len() {
		return fmt.Errorf("inspect: index %d out of range", a.index)
	}
	return assign(sv.Index(a.index), value)
}

func (a indexAccessor) Addr(owner any) any {
	sv, ok := sliceValue(owner)
	if !ok || a.index >= sv.Len() || !sv.Index(a.index).CanAddr() {
		return nil
	}
	return sv.Index(a.index).Addr().Interface()
}

// mapKeyAccessor addresses one entry of a map member. Map values are not
// addressable, so Set goes through a copy-and-store.
type mapKeyAccessor struct {
	key  any
	elem reflect.Type
}

// MapKeyAccessor addresses the entry under key of a map-typed owner.
func MapKeyAccessor(key any, elem reflect.Type) Accessor {
	return mapKeyAccessor{key: key, elem: elem}
}

func (a mapKeyAccessor) Name() string       { return fmt.Sprintf("%v", a.key) }
func (a mapKeyAccessor) Type() reflect.Type { return a.elem }

func (a mapKeyAccessor) Get(owner any) any {
	mv, ok := mapValue(owner)
	if !ok {
		return nil
	}
	v := mv.MapIndex(reflect.ValueOf(a.key))
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

func (a mapKeyAccessor) Set(owner, value any) error {
	mv, ok := mapValue(owner)
	if !ok {
		return fmt.Errorf("inspect: set %v on non-map owner", a.key)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(a.elem) {
		if !rv.Type().ConvertibleTo(a.elem) {
			return fmt.Errorf("inspect: cannot store %s under key %v", rv.Type(), a.key)
		}
		rv = rv.Convert(a.elem)
	}
	mv.SetMapIndex(reflect.ValueOf(a.key), rv)
	return nil
}

func (a mapKeyAccessor) Addr(owner any) any { return nil }

func sliceValue(owner any) (reflect.Value, bool) {
	rv, ok := deref(owner)
	if !ok || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return reflect.Value{}, false
	}
	return rv, true
}

func mapValue(owner any) (reflect.Value, bool) {
	rv, ok := deref(owner)
	if !ok || rv.Kind() != reflect.Map || rv.IsNil() {
		return reflect.Value{}, false
	}
	return rv, true
}

func deref(owner any) (reflect.Value, bool) {
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
	return rv, true
}

func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(dst.Type()):
		dst.Set(rv)
	case rv.Type().ConvertibleTo(dst.Type()):
		dst.Set(rv.Convert(dst.Type()))
	default:
		return fmt.Errorf("inspect: cannot assign %s to %s", rv.Type(), dst.Type())
	}
	return nil
}
