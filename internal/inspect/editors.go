package inspect

import (
	"fmt"
	"reflect"
	"sort"

	"inspect3d/internal/meta"
)

// Mixed is the placeholder widgets render when the selected instances
// disagree on a value.
const Mixed = "—"

// BoolEditor edits bool members as a checkbox.
type BoolEditor struct {
	EditorBase
}

// Checked returns the displayed state; mixed is true when the selection
// disagrees, in which case the checkbox renders indeterminate.
func (e *BoolEditor) Checked() (value, mixed bool) {
	if e.Values().HasDifferentValues() {
		return false, true
	}
	v, _ := e.Values().Value().(bool)
	return v, false
}

// Toggle flips the displayed state. On a mixed selection the first click
// aligns every instance to true.
func (e *BoolEditor) Toggle() {
	value, mixed := e.Checked()
	if mixed {
		e.SetValue(true)
		return
	}
	e.SetValue(!value)
}

// StringEditor edits string members as a text box.
type StringEditor struct {
	EditorBase
}

// Text returns what the text box shows: the shared value, or the mixed
// placeholder when the selection disagrees.
func (e *StringEditor) Text() string {
	if e.Values().HasDifferentValues() {
		return Mixed
	}
	v, _ := e.Values().Value().(string)
	return v
}

// Commit applies the typed text as a discrete edit.
func (e *StringEditor) Commit(text string) {
	if text == Mixed {
		return
	}
	e.SetValue(text)
}

// NumberEditor edits every numeric kind. Widgets work in float64 and the
// member setter converts back to the declared kind on write.
type NumberEditor struct {
	EditorBase
}

// Float returns the displayed value; ok is false when the selection is
// mixed or entirely null, in which case the field shows the placeholder.
func (e *NumberEditor) Float() (v float64, ok bool) {
	if e.Values().HasDifferentValues() || e.Values().HasNull() {
		return 0, false
	}
	return toFloat(e.Values().Value())
}

// Display is the text the field renders.
func (e *NumberEditor) Display() string {
	v, ok := e.Float()
	if !ok {
		return Mixed
	}
	return fmt.Sprintf("%g", v)
}

// Commit applies a typed value as a discrete edit.
func (e *NumberEditor) Commit(v float64) {
	e.SetValue(v)
}

// Scrub applies one step of a drag gesture. All steps sharing token
// coalesce into a single undo action; EndGesture on mouse release seals it.
func (e *NumberEditor) Scrub(v float64, token any) {
	e.SetValueWithToken(v, token)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// EnumEditor renders a registered enum as a dropdown.
type EnumEditor struct {
	EditorBase

	enum *meta.Enum
}

func (e *EnumEditor) Initialize() {
	e.enum, _ = meta.EnumOf(e.Values().Type())
}

// Options returns the dropdown labels in registered value order.
func (e *EnumEditor) Options() []string {
	if e.enum == nil {
		return nil
	}
	names := make([]string, len(e.enum.Options))
	for i, opt := range e.enum.Options {
		names[i] = opt.Name
	}
	return names
}

// Current returns the selected option index, -1 when the selection is
// mixed or the value is outside the registered set.
func (e *EnumEditor) Current() int {
	if e.enum == nil || e.Values().HasDifferentValues() {
		return -1
	}
	v := e.Values().Value()
	for i, opt := range e.enum.Options {
		if reflect.DeepEqual(opt.Value, v) {
			return i
		}
	}
	return -1
}

// Select applies option i as a discrete edit.
func (e *EnumEditor) Select(i int) {
	if e.enum == nil || i < 0 || i >= len(e.enum.Options) {
		return
	}
	e.SetValue(e.enum.Options[i].Value)
}

// ReferenceEditor edits engine-object reference members. It renders the
// target's name and accepts drop/pick assignment; it never recurses into
// the target, that is what the hierarchy view is for.
type ReferenceEditor struct {
	EditorBase
}

// DisplayName is the label the picker slot shows.
func (e *ReferenceEditor) DisplayName() string {
	if e.Values().HasDifferentValues() {
		return Mixed
	}
	v := e.Values().Value()
	if isNil(v) {
		return "(none)"
	}
	if name := objectName(v); name != "" {
		return name
	}
	return reflect.TypeOf(v).String()
}

// Assign points every instance at target; nil clears the reference.
func (e *ReferenceEditor) Assign(target any) {
	e.SetValue(target)
}

// objectName pulls a Name string field or GetName method off a referenced
// object without binding this package to the engine's concrete types.
func objectName(v any) string {
	if n, ok := v.(interface{ GetName() string }); ok {
		return n.GetName()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}
	f := rv.FieldByName("Name")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}

// SliceEditor edits slice and array members, one child editor per
// element. Structural changes (append, remove, diverging lengths) go
// through the rebuild path rather than patching children in place.
type SliceEditor struct {
	EditorBase

	length int // element count the layout was built for, -1 when mixed
}

func (e *SliceEditor) Initialize() {
	if e.Layout() != nil {
		e.Layout().Kind = LayoutGroup
	}
	e.length = e.commonLength()
	if e.length < 0 {
		return // diverging lengths render as a mixed placeholder
	}
	elem := indirectType(e.Values().Type()).Elem()
	for i := 0; i < e.length; i++ {
		acc := IndexAccessor(i, elem)
		ec := e.Values().Child(acc)
		child := e.Presenter().Registry.Resolve(ec, true, nil)
		e.SpawnChild(child, ec, e.Layout().Field(acc.Name(), ""))
	}
}

func (e *SliceEditor) Refresh() {
	e.RefreshChildren()
	e.Values().Refresh()
	if e.commonLength() != e.length {
		e.Presenter().RequestRebuild()
	}
}

// Mixed reports whether the instances' lengths diverge, which disables
// element editing until the selection agrees.
func (e *SliceEditor) Mixed() bool { return e.length < 0 }

// Len is the element count the editor was built for.
func (e *SliceEditor) Len() int {
	if e.length < 0 {
		return 0
	}
	return e.length
}

// Append grows every instance by one zero element, one undo action.
func (e *SliceEditor) Append() {
	if e.Mixed() || indirectType(e.Values().Type()).Kind() != reflect.Slice {
		return
	}
	elem := indirectType(e.Values().Type()).Elem()
	e.Transact(func() {
		for i := 0; i < e.Values().Len(); i++ {
			cur := e.Values().ValueAt(i)
			if cur == nil {
				continue
			}
			grown := reflect.Append(reflect.ValueOf(cur), reflect.Zero(elem))
			if err := e.Values().SetAt(i, grown.Interface()); err != nil {
				fmt.Printf("inspect: append failed: %v\n", err)
			}
		}
	})
	e.Presenter().RequestRebuild()
}

// Remove deletes element index from every instance, one undo action.
func (e *SliceEditor) Remove(index int) {
	if e.Mixed() || index < 0 || index >= e.length ||
		indirectType(e.Values().Type()).Kind() != reflect.Slice {
		return
	}
	e.Transact(func() {
		for i := 0; i < e.Values().Len(); i++ {
			cur := e.Values().ValueAt(i)
			if isNil(cur) {
				continue
			}
			rv := reflect.ValueOf(cur)
			shrunk := reflect.AppendSlice(
				rv.Slice(0, index),
				rv.Slice(index+1, rv.Len()),
			)
			if err := e.Values().SetAt(i, shrunk.Interface()); err != nil {
				fmt.Printf("inspect: remove failed: %v\n", err)
			}
		}
	})
	e.Presenter().RequestRebuild()
}

// commonLength returns the shared element count, -1 when the instances
// disagree or no instance carries the value. A typed nil slice counts as
// length zero, only a missing owner is skipped.
func (e *SliceEditor) commonLength() int {
	length := -1
	for i := 0; i < e.Values().Len(); i++ {
		v := e.Values().ValueAt(i)
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			continue
		}
		n := rv.Len()
		if length == -1 {
			length = n
		} else if length != n {
			return -1
		}
	}
	return length
}

// MapEditor edits map members, one child per key. Keys are the sorted
// union across instances; a key missing from an instance shows as null
// there. Key set changes trigger a rebuild.
type MapEditor struct {
	EditorBase

	keys []string
}

func (e *MapEditor) Initialize() {
	if e.Layout() != nil {
		e.Layout().Kind = LayoutGroup
	}
	e.keys = e.keyUnion()
	mt := indirectType(e.Values().Type())
	if mt.Kind() != reflect.Map || mt.Key().Kind() != reflect.String {
		e.keys = nil // only string-keyed maps get per-entry editors
		return
	}
	for _, k := range e.keys {
		acc := MapKeyAccessor(k, mt.Elem())
		kc := e.Values().Child(acc)
		child := e.Presenter().Registry.Resolve(kc, true, nil)
		e.SpawnChild(child, kc, e.Layout().Field(k, ""))
	}
}

func (e *MapEditor) Refresh() {
	e.RefreshChildren()
	e.Values().Refresh()
	cur := e.keyUnion()
	if len(cur) != len(e.keys) {
		e.Presenter().RequestRebuild()
		return
	}
	for i := range cur {
		if cur[i] != e.keys[i] {
			e.Presenter().RequestRebuild()
			return
		}
	}
}

// Keys returns the keys the layout was built for.
func (e *MapEditor) Keys() []string { return e.keys }

// Put stores a zero value under key in every instance, one undo action.
func (e *MapEditor) Put(key string) {
	mt := indirectType(e.Values().Type())
	if mt.Kind() != reflect.Map || key == "" {
		return
	}
	e.Transact(func() {
		for i := 0; i < e.Values().Len(); i++ {
			cur := e.Values().ValueAt(i)
			mv := reflect.ValueOf(cur)
			if isNil(cur) {
				mv = reflect.MakeMap(mt)
			}
			mv.SetMapIndex(reflect.ValueOf(key), reflect.Zero(mt.Elem()))
			if err := e.Values().SetAt(i, mv.Interface()); err != nil {
				fmt.Printf("inspect: put failed: %v\n", err)
			}
		}
	})
	e.Presenter().RequestRebuild()
}

// DeleteKey removes key from every instance, one undo action.
func (e *MapEditor) DeleteKey(key string) {
	mt := indirectType(e.Values().Type())
	if mt.Kind() != reflect.Map {
		return
	}
	e.Transact(func() {
		for i := 0; i < e.Values().Len(); i++ {
			cur := e.Values().ValueAt(i)
			if isNil(cur) {
				continue
			}
			mv := reflect.ValueOf(cur)
			mv.SetMapIndex(reflect.ValueOf(key), reflect.Value{})
			if err := e.Values().SetAt(i, mv.Interface()); err != nil {
				fmt.Printf("inspect: delete failed: %v\n", err)
			}
		}
	})
	e.Presenter().RequestRebuild()
}

func (e *MapEditor) keyUnion() []string {
	set := map[string]bool{}
	for i := 0; i < e.Values().Len(); i++ {
		v := e.Values().ValueAt(i)
		if isNil(v) {
			continue
		}
		mv := reflect.ValueOf(v)
		if mv.Kind() != reflect.Map || mv.Type().Key().Kind() != reflect.String {
			continue
		}
		for _, k := range mv.MapKeys() {
			set[k.String()] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
