package inspect

import (
	"fmt"
	"reflect"
)

// ValueContainer holds the current value of one property across every
// selected instance: entry i belongs to selected object i. Containers
// form a chain mirroring the editor tree; child containers pull through
// their accessor from the parent's instances. UI widgets never mutate a
// container directly, only the owning editor's SetValue does.
type ValueContainer struct {
	parent   *ValueContainer
	accessor Accessor
	declared reflect.Type

	values []any
	ref    []any // reference snapshot values, nil when no reference attached
	hasRef bool
}

// NewSelection builds the top-level container over the selected objects.
// Objects are expected to be pointers into the scene; nil entries are
// tolerated and flagged, never dereferenced.
func NewSelection(objects ...any) *ValueContainer {
	c := &ValueContainer{values: append([]any(nil), objects...)}
	for _, o := range objects {
		if o != nil {
			c.declared = reflect.TypeOf(o)
			break
		}
	}
	return c
}

// Child builds the container for one member/element of this container's
// instances, pulling the initial values immediately.
func (c *ValueContainer) Child(acc Accessor) *ValueContainer {
	child := &ValueContainer{
		parent:   c,
		accessor: acc,
		declared: acc.Type(),
		values:   make([]any, c.Len()),
		hasRef:   c.hasRef,
	}
	if c.hasRef {
		child.ref = make([]any, c.Len())
	}
	child.Refresh()
	child.refreshReference()
	return child
}

func (c *ValueContainer) Len() int      { return len(c.values) }
func (c *ValueContainer) Values() []any { return c.values }

// ValueAt returns the cached value for instance i.
func (c *ValueContainer) ValueAt(i int) any {
	if i < 0 || i >= len(c.values) {
		return nil
	}
	return c.values[i]
}

// Value returns the first non-nil value, the one widgets display.
func (c *ValueContainer) Value() any {
	for _, v := range c.values {
		if !isNil(v) {
			return v
		}
	}
	return nil
}

// HasNull reports whether any instance is missing the value.
func (c *ValueContainer) HasNull() bool {
	for _, v := range c.values {
		if isNil(v) {
			return true
		}
	}
	return false
}

// HasDifferentValues reports whether the instances disagree.
func (c *ValueContainer) HasDifferentValues() bool {
	for i := 1; i < len(c.values); i++ {
		if !reflect.DeepEqual(c.values[0], c.values[i]) {
			return true
		}
	}
	return false
}

// HasDifferentTypes reports whether the non-nil instances have diverging
// concrete types.
func (c *ValueContainer) HasDifferentTypes() bool {
	var t reflect.Type
	for _, v := range c.values {
		if isNil(v) {
			continue
		}
		vt := reflect.TypeOf(v)
		if t == nil {
			t = vt
		} else if t != vt {
			return true
		}
	}
	return false
}

// DeclaredType is the static type of the property, nil for an untyped
// top-level selection of nils.
func (c *ValueContainer) DeclaredType() reflect.Type { return c.declared }

// Type resolves the type editors should be built for: the concrete type
// of the current value when the property is declared as an interface.
func (c *ValueContainer) Type() reflect.Type {
	if c.declared != nil && c.declared.Kind() != reflect.Interface {
		return c.declared
	}
	if v := c.Value(); v != nil {
		return reflect.TypeOf(v)
	}
	return c.declared
}

// ownerFor resolves the owner instance a child accessor operates on,
// preferring addressable storage so edits write through to the object.
func (c *ValueContainer) ownerFor(i int) any {
	if c.parent == nil {
		return c.ValueAt(i)
	}
	parentOwner := c.parent.ownerFor(i)
	if isNil(parentOwner) {
		return nil
	}
	if addr := c.accessor.Addr(parentOwner); !isNil(addr) {
		return addr
	}
	return c.accessor.Get(parentOwner)
}

func (c *ValueContainer) refOwnerFor(i int) any {
	if c.parent == nil {
		if i < 0 || i >= len(c.ref) {
			return nil
		}
		return c.ref[i]
	}
	parentOwner := c.parent.refOwnerFor(i)
	if isNil(parentOwner) {
		return nil
	}
	if addr := c.accessor.Addr(parentOwner); !isNil(addr) {
		return addr
	}
	return c.accessor.Get(parentOwner)
}

// Refresh re-pulls every entry from the live instances and reports
// whether anything changed since the last pull. Top-level containers hold
// the objects themselves and never change here.
func (c *ValueContainer) Refresh() bool {
	if c.parent == nil {
		return false
	}
	changed := false
	for i := range c.values {
		owner := c.parent.ownerFor(i)
		var v any
		if !isNil(owner) {
			v = c.accessor.Get(owner)
		}
		if !reflect.DeepEqual(c.values[i], v) {
			c.values[i] = v
			changed = true
		}
	}
	return changed
}

// Set writes value to every instance and re-pulls the cache. Instances
// with a missing owner are skipped, not failed.
func (c *ValueContainer) Set(value any) error {
	var firstErr error
	for i := range c.values {
		if err := c.SetAt(i, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SetAt writes value to instance i only.
func (c *ValueContainer) SetAt(i int, value any) error {
	if c.parent == nil {
		return fmt.Errorf("inspect: top-level selection is not assignable")
	}
	owner := c.parent.ownerFor(i)
	if isNil(owner) {
		return nil
	}
	if err := c.accessor.Set(owner, value); err != nil {
		return err
	}
	c.values[i] = c.accessor.Get(owner)
	return nil
}

// AttachReference attaches reference objects (prefab defaults) to a
// top-level container; child containers pull their reference values
// through the same accessor chain. Length must match the selection.
func (c *ValueContainer) AttachReference(refs []any) {
	if c.parent != nil || len(refs) != len(c.values) {
		return
	}
	c.ref = append([]any(nil), refs...)
	c.hasRef = true
}

// detachReference drops the reference side of this container, so its
// children build referenceless. Used when the live and reference sides
// structurally diverge and member-wise comparison stops being meaningful.
func (c *ValueContainer) detachReference() {
	c.ref = nil
	c.hasRef = false
}

// HasReference reports whether a reference snapshot is attached upstream.
func (c *ValueContainer) HasReference() bool { return c.hasRef }

// RefValueAt returns the reference-side value for instance i.
func (c *ValueContainer) RefValueAt(i int) any {
	if !c.hasRef || i < 0 || i >= len(c.ref) {
		return nil
	}
	return c.ref[i]
}

// refreshReference re-pulls the reference values; the reference side only
// changes when the prefab itself is edited, after which the tree is
// rebuilt anyway.
func (c *ValueContainer) refreshReference() {
	if !c.hasRef || c.parent == nil {
		return
	}
	for i := range c.ref {
		owner := c.parent.refOwnerFor(i)
		if isNil(owner) {
			c.ref[i] = nil
			continue
		}
		c.ref[i] = c.accessor.Get(owner)
	}
}

// ModifiedFromReference reports whether any instance's live value differs
// from its reference value. Always false without a reference.
func (c *ValueContainer) ModifiedFromReference() bool {
	if !c.hasRef {
		return false
	}
	for i := range c.values {
		if !reflect.DeepEqual(c.values[i], c.RefValueAt(i)) {
			return true
		}
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
