package inspect

import (
	"fmt"

	"inspect3d/internal/meta"
)

// GenericEditor is the reflective fallback editor: it enumerates the
// visible members of the container's type in display order and spawns a
// child editor per member. Specialized editors embed it and hook
// Intercept (substitute a dedicated editor for a member) and Synthetic
// (append pseudo-members the type does not declare).
type GenericEditor struct {
	EditorBase

	// Intercept lets embedders substitute an editor for a member,
	// keyed by the member's declared numeric order. Nil result falls
	// through to normal resolution.
	Intercept func(m *meta.Member) Factory
	// Synthetic runs after the declared members are built, so embedders
	// can append pseudo-member editors (an actor's scripts list).
	Synthetic func(g *GenericEditor)

	shape string
}

func (g *GenericEditor) Initialize() {
	if g.Layout() != nil {
		g.Layout().Kind = LayoutGroup
	}
	values := g.Values()
	info := meta.Describe(values.Type())
	mixedTypes := values.HasDifferentTypes()
	for _, m := range info.Members {
		if m.Hidden {
			continue
		}
		var override Factory
		if g.Intercept != nil {
			override = g.Intercept(m)
		}
		if override == nil && m.Editor != "" {
			override = g.Presenter().Registry.Named(m.Editor)
		}
		mc := values.Child(MemberAccessor(m))
		child := g.Presenter().Registry.Resolve(mc, true, override)
		g.SpawnChild(child, mc, g.Layout().Field(m.Name, m.Tooltip))
		// Across a mixed-type selection, a member absent on some instance
		// pulls nil there; it is shown but must not write.
		if m.ReadOnly || (mixedTypes && mc.HasNull() && !values.HasNull()) {
			child.Base().MarkReadOnly()
		}
	}
	if g.Synthetic != nil {
		g.Synthetic(g)
	}
	g.shape = g.captureShape()
}

// Refresh runs children first, then checks whether the container's shape
// still matches the built layout; a mismatch requests a full rebuild, the
// universal recovery path.
func (g *GenericEditor) Refresh() {
	g.RefreshChildren()
	g.Values().Refresh()
	if g.captureShape() != g.shape {
		g.Presenter().RequestRebuild()
	}
}

// captureShape fingerprints what the layout was built from: the resolved
// type, the instance count and which instances are null. Value changes
// don't alter the shape; type swaps and appearing/disappearing instances
// do.
func (g *GenericEditor) captureShape() string {
	values := g.Values()
	t := values.Type()
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	nulls := make([]byte, values.Len())
	for i := range nulls {
		nulls[i] = '0'
		if isNil(values.ValueAt(i)) {
			nulls[i] = '1'
		}
	}
	return fmt.Sprintf("%s/%d/%s/%v", name, values.Len(), nulls, values.HasDifferentTypes())
}

// memberChild returns the child editor built for the named member, used
// by embedders and the diff engine.
func (g *GenericEditor) memberChild(name string) Editor {
	for _, c := range g.Children() {
		base := c.Base()
		if base.values != nil && base.values.accessor != nil && base.values.accessor.Name() == name {
			return c
		}
	}
	return nil
}
