package engine

// ObjectState is a full editable-state snapshot of a GameObject, captured
// before an edit gesture and restored on undo. Component state goes
// through the script registry for scripts and the Stater interface for
// built-in components; components supporting neither are skipped.
type ObjectState struct {
	Name       string
	Tags       []string
	Active     bool
	Transform  Transform
	Components []ComponentState
}

type ComponentState struct {
	Type   string // registry name; script name for scripts
	Script bool
	Props  map[string]any
}

// StateID identifies the object across snapshots.
func (g *GameObject) StateID() uint64 { return g.UID }

// CaptureState snapshots the object's editable state.
func (g *GameObject) CaptureState() (any, error) {
	state := ObjectState{
		Name:      g.Name,
		Tags:      append([]string(nil), g.Tags...),
		Active:    g.Active,
		Transform: g.Transform,
	}
	for _, c := range g.components {
		if name, props, ok := SerializeScript(c); ok {
			state.Components = append(state.Components, ComponentState{Type: name, Script: true, Props: props})
			continue
		}
		if st, ok := c.(Stater); ok {
			state.Components = append(state.Components, ComponentState{Type: ComponentTypeName(c), Props: st.State()})
		}
	}
	return state, nil
}

// RestoreState applies a previously captured snapshot. When the component
// list still has the same shape the state is applied in place; otherwise
// the whole component list is rebuilt from the registries.
func (g *GameObject) RestoreState(raw any) error {
	state, ok := raw.(ObjectState)
	if !ok {
		if p, isPtr := raw.(*ObjectState); isPtr {
			state = *p
		} else {
			return nil
		}
	}
	g.Name = state.Name
	g.Tags = append([]string(nil), state.Tags...)
	g.Active = state.Active
	g.Transform = state.Transform

	if g.componentShapeMatches(state.Components) {
		idx := 0
		for _, c := range g.components {
			if _, _, isScript := SerializeScript(c); isScript {
				for k, v := range state.Components[idx].Props {
					ApplyScriptProperty(c, k, v)
				}
				idx++
			} else if st, ok := c.(Stater); ok {
				st.SetState(state.Components[idx].Props)
				idx++
			}
		}
		return nil
	}

	// Shape changed: rebuild the component list from the snapshot.
	for i := len(g.components) - 1; i >= 0; i-- {
		g.RemoveComponentByIndex(i)
	}
	for _, cs := range state.Components {
		var c Component
		if cs.Script {
			c = CreateScript(cs.Type, cs.Props)
		} else if c = CreateComponent(cs.Type); c != nil {
			if st, ok := c.(Stater); ok {
				st.SetState(cs.Props)
			}
		}
		if c != nil {
			g.AddComponent(c)
		}
	}
	return nil
}

// componentShapeMatches reports whether the live component list lines up
// one-to-one with the snapshotted one.
func (g *GameObject) componentShapeMatches(states []ComponentState) bool {
	stateful := make([]Component, 0, len(g.components))
	for _, c := range g.components {
		if _, _, ok := SerializeScript(c); ok {
			stateful = append(stateful, c)
			continue
		}
		if _, ok := c.(Stater); ok {
			stateful = append(stateful, c)
		}
	}
	if len(stateful) != len(states) {
		return false
	}
	for i, c := range stateful {
		cs := states[i]
		if cs.Script {
			name, _, ok := SerializeScript(c)
			if !ok || name != cs.Type {
				return false
			}
		} else if ComponentTypeName(c) != cs.Type {
			return false
		}
	}
	return true
}
