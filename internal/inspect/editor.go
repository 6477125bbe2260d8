package inspect

import (
	"fmt"
)

// Editor is one node of the property-editor tree. Concrete editors embed
// EditorBase and override the lifecycle methods they care about.
//
// Lifecycle: the framework populates the base (presenter, parent, values,
// layout), then calls Initialize, which builds children and widget state.
// Refresh runs every frame tick, children before parents. Deinitialize
// tears the subtree down and force-closes any open undo transaction.
type Editor interface {
	Base() *EditorBase
	Initialize()
	Refresh()
	Deinitialize()
}

// EditorBase carries the tree plumbing shared by every editor node.
type EditorBase struct {
	presenter *Presenter
	parent    Editor
	self      Editor
	children  []Editor
	values    *ValueContainer
	layout    *Layout

	sync     *SyncPoint // non-nil only on sync-point nodes (usually the root)
	modified bool       // a dirty signal passed through this node since the last ack
	readOnly bool       // member-level readonly attribute
}

func (b *EditorBase) Base() *EditorBase         { return b }
func (b *EditorBase) Presenter() *Presenter     { return b.presenter }
func (b *EditorBase) Parent() Editor            { return b.parent }
func (b *EditorBase) Children() []Editor        { return b.children }
func (b *EditorBase) Values() *ValueContainer   { return b.values }
func (b *EditorBase) Layout() *Layout           { return b.layout }

// Initialize is the leaf default: no children to build.
func (b *EditorBase) Initialize() {}

// Refresh is the leaf default: re-pull the container and flag changes so
// ancestors' aggregates see them.
func (b *EditorBase) Refresh() {
	if b.values != nil && b.values.Refresh() {
		b.modified = true
	}
}

// Deinitialize tears down children (children first), detaches them and
// force-closes an open transaction so it can never leak.
func (b *EditorBase) Deinitialize() {
	for i := len(b.children) - 1; i >= 0; i-- {
		b.children[i].Deinitialize()
	}
	b.children = nil
	if b.sync != nil {
		b.sync.Close()
	}
}

// initEditor populates ed's base and runs its Initialize.
func initEditor(ed Editor, p *Presenter, parent Editor, values *ValueContainer, layout *Layout) {
	base := ed.Base()
	base.presenter = p
	base.parent = parent
	base.self = ed
	base.values = values
	base.layout = layout
	if layout != nil {
		layout.Editor = ed
	}
	ed.Initialize()
}

// SpawnChild creates and initializes a child editor under this node.
func (b *EditorBase) SpawnChild(child Editor, values *ValueContainer, layout *Layout) Editor {
	initEditor(child, b.presenter, b.self, values, layout)
	b.children = append(b.children, child)
	return child
}

// RefreshChildren runs the per-tick refresh over the subtree, children
// before this node's own aggregate.
func (b *EditorBase) RefreshChildren() {
	for _, c := range b.children {
		c.Refresh()
	}
}

// MarkReadOnly pins the node read-only regardless of session features.
func (b *EditorBase) MarkReadOnly() { b.readOnly = true }

// ReadOnly reports whether edits through this node are rejected, either
// by a member attribute or by the session running read-only.
func (b *EditorBase) ReadOnly() bool {
	return b.readOnly || (b.presenter != nil && b.presenter.Features.ReadOnly)
}

// Modified reports whether a dirty signal passed through since the last
// acknowledgment; ancestor surfaces use it to refresh labels and change
// indicators.
func (b *EditorBase) Modified() bool { return b.modified }

// AckModified clears the modified flag after the surface reacted to it.
func (b *EditorBase) AckModified() { b.modified = false }

// SetValue applies a discrete edit: the undo transaction opens and closes
// within this call.
func (b *EditorBase) SetValue(value any) {
	b.SetValueWithToken(value, nil)
}

// SetValueWithToken applies an edit under an opaque gesture token.
// Repeated calls with the same token coalesce into one undo transaction;
// a different (or nil) token first closes the in-flight transaction.
// With undo disabled the edit applies directly, no bookkeeping.
func (b *EditorBase) SetValueWithToken(value any, token any) {
	if b.ReadOnly() {
		return
	}
	sp := b.findSyncPoint()
	if sp != nil {
		sp.BeginEdit(token)
	}
	if err := b.values.Set(value); err != nil {
		fmt.Printf("inspect: set value failed: %v\n", err)
	}
	if sp != nil && token == nil {
		sp.CloseEdit()
	}
	b.NotifyModified()
}

// SetValueAt applies a discrete edit to a single selected instance.
func (b *EditorBase) SetValueAt(i int, value any) {
	if b.ReadOnly() {
		return
	}
	sp := b.findSyncPoint()
	if sp != nil {
		sp.BeginEdit(nil)
	}
	if err := b.values.SetAt(i, value); err != nil {
		fmt.Printf("inspect: set value failed: %v\n", err)
	}
	if sp != nil {
		sp.CloseEdit()
	}
	b.NotifyModified()
}

// Transact runs fn inside one discrete undo transaction, so a structural
// edit touching several instances still lands as a single action.
func (b *EditorBase) Transact(fn func()) {
	if b.ReadOnly() {
		return
	}
	sp := b.findSyncPoint()
	if sp != nil {
		sp.BeginEdit(nil)
	}
	fn()
	if sp != nil {
		sp.CloseEdit()
	}
	b.NotifyModified()
}

// EndGesture releases the current edit token (mouse-up on a drag),
// closing the coalesced undo transaction.
func (b *EditorBase) EndGesture() {
	if sp := b.findSyncPoint(); sp != nil {
		sp.CloseEdit()
	}
}

// NotifyModified propagates a modified notification up the editor tree.
func (b *EditorBase) NotifyModified() {
	b.modified = true
	if b.parent != nil {
		b.parent.Base().NotifyModified()
	}
}

// RevertToReference restores every instance to its reference value as one
// discrete undoable edit. No-op without an attached reference.
func (b *EditorBase) RevertToReference() {
	if !b.values.HasReference() {
		return
	}
	sp := b.findSyncPoint()
	if sp != nil {
		sp.BeginEdit(nil)
	}
	for i := 0; i < b.values.Len(); i++ {
		if err := b.values.SetAt(i, b.values.RefValueAt(i)); err != nil {
			fmt.Printf("inspect: revert failed: %v\n", err)
		}
	}
	if sp != nil {
		sp.CloseEdit()
	}
	b.NotifyModified()
}

// findSyncPoint walks up the tree to the nearest node carrying one.
// Returns nil when undo is disabled for the session.
func (b *EditorBase) findSyncPoint() *SyncPoint {
	if b.presenter == nil || b.presenter.Undo == nil {
		return nil
	}
	for node := b; node != nil; {
		if node.sync != nil {
			return node.sync
		}
		if node.parent == nil {
			return nil
		}
		node = node.parent.Base()
	}
	return nil
}
