package inspect

import (
	"fmt"

	"inspect3d/internal/engine"
)

// DiffNode is one entry of the prefab-override tree: a property whose
// live value differs from the prefab default, or a component the live
// objects added or removed relative to it. Interior nodes group their
// children's overrides; leaves carry a revert action.
type DiffNode struct {
	Label    string
	Editor   Editor // nil for structural placeholders
	Added    bool   // component attached live, absent from the default
	Removed  bool   // component the default carries but the live objects lost
	Children []*DiffNode

	revert func()
}

// Revert undoes this node's overrides, restoring the reference state. A
// leaf runs its captured revert action (one undo transaction); interior
// nodes revert their children. Reverted entries vanish from the next
// ComputeDiff.
func (n *DiffNode) Revert() {
	if n == nil {
		return
	}
	if n.revert != nil {
		n.revert()
		return
	}
	for _, c := range n.Children {
		c.Revert()
	}
}

// ComputeDiff walks an initialized editor tree and returns its override
// tree against the attached reference, pruned of unmodified branches.
// Nil when nothing is overridden or no reference is attached. Computing
// a diff reads state only, so calling it twice yields the same tree.
func ComputeDiff(root Editor) *DiffNode {
	return diffEditor(root)
}

func diffEditor(ed Editor) *DiffNode {
	b := ed.Base()
	node := &DiffNode{Label: diffLabel(b), Editor: ed}

	for _, child := range b.children {
		if d := diffEditor(child); d != nil {
			node.Children = append(node.Children, d)
		}
	}
	if ce, ok := ed.(*ComponentsEditor); ok {
		node.Children = append(node.Children, structuralDiffs(ce)...)
	}
	if len(node.Children) > 0 {
		return node
	}

	// Leaf: compare the live values against the reference side. The
	// top-level container holds the objects themselves and is never a
	// value leaf.
	if b.values == nil || b.values.parent == nil {
		return nil
	}
	b.values.Refresh()
	if !b.values.ModifiedFromReference() {
		return nil
	}
	node.revert = func() { b.RevertToReference() }
	return node
}

func diffLabel(b *EditorBase) string {
	if b.layout != nil && b.layout.Title != "" {
		return b.layout.Title
	}
	if b.values != nil && b.values.accessor != nil {
		return b.values.accessor.Name()
	}
	return ""
}

// structuralDiffs builds the added/removed component placeholders of a
// components section, each with a revert that puts the set back in line
// with the prefab default.
func structuralDiffs(ce *ComponentsEditor) []*DiffNode {
	var nodes []*DiffNode
	for _, name := range ce.AddedScripts() {
		name := name
		nodes = append(nodes, &DiffNode{
			Label:  name,
			Added:  true,
			revert: func() { ce.revertAdded(name) },
		})
	}
	for _, name := range ce.RemovedScripts() {
		name := name
		nodes = append(nodes, &DiffNode{
			Label:   name,
			Removed: true,
			revert:  func() { ce.revertRemoved(name) },
		})
	}
	return nodes
}

// revertAdded removes the last live component titled name from every
// selected object, one undo action, then rebuilds the layout.
func (e *ComponentsEditor) revertAdded(name string) {
	e.Transact(func() {
		for _, obj := range e.objects() {
			cs := obj.Components()
			for i := len(cs) - 1; i >= 0; i-- {
				if componentTitle(cs[i]) == name {
					obj.RemoveComponentByIndex(i)
					break
				}
			}
		}
	})
	e.Presenter().RequestRebuild()
}

// revertRemoved re-attaches the named component from the prefab default
// to every selected object, one undo action, then rebuilds the layout.
func (e *ComponentsEditor) revertRemoved(name string) {
	e.Transact(func() {
		for i, obj := range e.objects() {
			ref, ok := e.Values().RefValueAt(i).(*engine.GameObject)
			if !ok || ref == nil {
				continue
			}
			c := cloneComponent(ref, name)
			if c == nil {
				fmt.Printf("inspect: default for %q has no component %q\n", obj.Name, name)
				continue
			}
			obj.AddComponent(c)
		}
	})
	e.Presenter().RequestRebuild()
}

// cloneComponent builds a fresh copy of ref's component titled name,
// through the script registry for scripts and the component registry
// plus state transfer for built-ins.
func cloneComponent(ref *engine.GameObject, name string) engine.Component {
	for _, c := range ref.Components() {
		if componentTitle(c) != name {
			continue
		}
		if script, props, ok := engine.SerializeScript(c); ok {
			return engine.CreateScript(script, props)
		}
		fresh := engine.CreateComponent(engine.ComponentTypeName(c))
		if fresh == nil {
			return nil
		}
		if src, ok := c.(engine.Stater); ok {
			if dst, ok := fresh.(engine.Stater); ok {
				dst.SetState(src.State())
			}
		}
		return fresh
	}
	return nil
}
