package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"inspect3d/internal/engine"
)

// RegisterBuiltinEditors wires the engine-aware editors into a registry.
// The widget layer calls this once per presenter.
func RegisterBuiltinEditors(r *Registry) {
	r.AddType(&engine.GameObject{}, func() Editor { return &GameObjectEditor{} })
	r.AddType(engine.Transform{}, func() Editor { return &TransformEditor{} })
	r.AddType(rl.Vector3{}, func() Editor { return &Vector3Editor{} })
	r.AddReference(&engine.GameObject{})
}

// Vector3Editor renders a vector as one row of three scrub fields.
type Vector3Editor struct {
	GenericEditor
}

func (e *Vector3Editor) Initialize() {
	e.GenericEditor.Initialize()
	if e.Layout() != nil {
		e.Layout().Kind = LayoutRow
	}
}

// TransformEditor is the generic struct editor plus the reset shortcut
// the transform section's context menu offers.
type TransformEditor struct {
	GenericEditor
}

// Reset restores the identity transform on every instance as one action.
func (e *TransformEditor) Reset() {
	e.Transact(func() {
		identity := engine.Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
		if err := e.Values().Set(identity); err != nil {
			fmt.Printf("inspect: transform reset failed: %v\n", err)
		}
	})
}

// GameObjectEditor is the root editor for a selection of scene objects.
// It renders the declared members generically and appends the components
// list as a synthetic section. When every selected object links to the
// same-kind prefab it attaches the prefab defaults as the reference side
// for diff and revert.
type GameObjectEditor struct {
	GenericEditor

	components *ComponentsEditor
}

func (e *GameObjectEditor) Initialize() {
	e.attachPrefabReference()
	e.Synthetic = func(g *GenericEditor) {
		ce := &ComponentsEditor{}
		g.SpawnChild(ce, g.Values(), g.Layout().Group("Components", ""))
		e.components = ce
	}
	e.GenericEditor.Initialize()
}

// Components exposes the synthetic components section.
func (e *GameObjectEditor) Components() *ComponentsEditor { return e.components }

// attachPrefabReference resolves the default instance of each selected
// object's prefab link and attaches them as the container's reference
// side. Objects without a link, or without a resolvable default, leave
// the selection unreferenced.
func (e *GameObjectEditor) attachPrefabReference() {
	p := e.Presenter()
	if p == nil || p.Defaults == nil {
		return
	}
	values := e.Values()
	refs := make([]any, values.Len())
	for i := 0; i < values.Len(); i++ {
		obj, ok := values.ValueAt(i).(*engine.GameObject)
		if !ok || obj == nil || !obj.Prefab.IsLinked() {
			return
		}
		def, ok := p.Defaults.DefaultInstance(obj.Prefab)
		if !ok {
			return
		}
		refs[i] = def
	}
	values.AttachReference(refs)
}

// componentAccessor addresses one attached component by index. Components
// are pointers, so nested member editors write through the Get result and
// Addr stays nil.
type componentAccessor struct {
	index int
}

func (a componentAccessor) Name() string { return fmt.Sprintf("Components[%d]", a.index) }

func (a componentAccessor) Type() reflect.Type {
	return reflect.TypeOf((*engine.Component)(nil)).Elem()
}

func (a componentAccessor) Get(owner any) any {
	obj, ok := owner.(*engine.GameObject)
	if !ok || obj == nil {
		return nil
	}
	cs := obj.Components()
	if a.index >= len(cs) {
		return nil
	}
	return cs[a.index]
}

func (a componentAccessor) Set(owner, value any) error {
	return fmt.Errorf("inspect: components change through add and remove, not assignment")
}

func (a componentAccessor) Addr(owner any) any { return nil }

// ComponentsEditor is the synthetic section listing the selection's
// attached components, one child editor per slot. It shares the
// selection container with its parent. Component sets are structural:
// add and remove run as single undo actions followed by a rebuild, and
// a drifted set detected on refresh also rebuilds.
type ComponentsEditor struct {
	EditorBase

	signature string
	mixed     bool
}

func (e *ComponentsEditor) Initialize() {
	e.signature, e.mixed = e.componentSignature()
	if e.mixed {
		return
	}
	first, ok := e.firstObject()
	if !ok {
		return
	}
	for i, c := range first.Components() {
		cc := e.Values().Child(componentAccessor{index: i})
		if cc.HasReference() && reflect.TypeOf(cc.RefValueAt(0)) != reflect.TypeOf(cc.ValueAt(0)) {
			// The prefab default has a different component in this slot;
			// member-wise comparison would be nonsense.
			cc.detachReference()
		}
		child := e.Presenter().Registry.Resolve(cc, false, nil)
		e.SpawnChild(child, cc, e.Layout().Group(componentTitle(c), ""))
		if cc.HasDifferentTypes() {
			child.Base().MarkReadOnly()
		}
	}
}

func (e *ComponentsEditor) Refresh() {
	e.RefreshChildren()
	if sig, _ := e.componentSignature(); sig != e.signature {
		e.Presenter().RequestRebuild()
	}
}

// Mixed reports whether the selected objects carry diverging component
// sets, in which case the section renders a placeholder instead of slots.
func (e *ComponentsEditor) Mixed() bool { return e.mixed }

// AddScript attaches a fresh instance of the named registered script to
// every selected object, as one undo action, then rebuilds.
func (e *ComponentsEditor) AddScript(name string) {
	e.Transact(func() {
		for _, obj := range e.objects() {
			c := engine.CreateScript(name, map[string]any{})
			if c == nil {
				fmt.Printf("inspect: unknown script %q\n", name)
				return
			}
			obj.AddComponent(c)
		}
	})
	e.Presenter().RequestRebuild()
}

// AddBuiltin attaches a fresh instance of the named built-in component
// type to every selected object, as one undo action, then rebuilds.
func (e *ComponentsEditor) AddBuiltin(typeName string) {
	e.Transact(func() {
		for _, obj := range e.objects() {
			c := engine.CreateComponent(typeName)
			if c == nil {
				fmt.Printf("inspect: unknown component type %q\n", typeName)
				return
			}
			obj.AddComponent(c)
		}
	})
	e.Presenter().RequestRebuild()
}

// Remove detaches component slot i from every selected object, as one
// undo action, then rebuilds.
func (e *ComponentsEditor) Remove(i int) {
	if e.mixed {
		return
	}
	e.Transact(func() {
		for _, obj := range e.objects() {
			obj.RemoveComponentByIndex(i)
		}
	})
	e.Presenter().RequestRebuild()
}

// AddedScripts lists component types attached to the live objects but
// absent from their prefab defaults. Empty without a reference.
func (e *ComponentsEditor) AddedScripts() []string {
	live, ref, ok := e.typeSets()
	if !ok {
		return nil
	}
	return missingFrom(live, ref)
}

// RemovedScripts lists component types the prefab defaults carry but the
// live objects no longer do.
func (e *ComponentsEditor) RemovedScripts() []string {
	live, ref, ok := e.typeSets()
	if !ok {
		return nil
	}
	return missingFrom(ref, live)
}

func (e *ComponentsEditor) typeSets() (live, ref map[string]int, ok bool) {
	if !e.Values().HasReference() {
		return nil, nil, false
	}
	first, found := e.firstObject()
	if !found {
		return nil, nil, false
	}
	refObj, isObj := e.Values().RefValueAt(0).(*engine.GameObject)
	if !isObj || refObj == nil {
		return nil, nil, false
	}
	return typeCounts(first), typeCounts(refObj), true
}

func typeCounts(obj *engine.GameObject) map[string]int {
	counts := map[string]int{}
	for _, c := range obj.Components() {
		counts[componentTitle(c)]++
	}
	return counts
}

// missingFrom returns the types a has more of than b, one entry per
// missing instance. Names are sorted so the overrides list does not
// reorder between frames.
func missingFrom(a, b map[string]int) []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	var out []string
	for _, name := range names {
		for extra := a[name] - b[name]; extra > 0; extra-- {
			out = append(out, name)
		}
	}
	return out
}

// componentSignature fingerprints the selection's component sets. Mixed
// is true when the objects disagree, which suspends slot editing.
func (e *ComponentsEditor) componentSignature() (sig string, mixed bool) {
	var first string
	for i, obj := range e.objects() {
		var names []string
		for _, c := range obj.Components() {
			names = append(names, componentTitle(c))
		}
		s := strings.Join(names, ";")
		if i == 0 {
			first = s
		} else if s != first {
			return "mixed", true
		}
	}
	return first, false
}

func (e *ComponentsEditor) objects() []*engine.GameObject {
	var objs []*engine.GameObject
	for i := 0; i < e.Values().Len(); i++ {
		if obj, ok := e.Values().ValueAt(i).(*engine.GameObject); ok && obj != nil {
			objs = append(objs, obj)
		}
	}
	return objs
}

func (e *ComponentsEditor) firstObject() (*engine.GameObject, bool) {
	objs := e.objects()
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// componentTitle is the display name of a component slot: the registered
// script name when the component is a script, otherwise the type name.
func componentTitle(c engine.Component) string {
	if name, _, ok := engine.SerializeScript(c); ok {
		return name
	}
	return engine.ComponentTypeName(c)
}
