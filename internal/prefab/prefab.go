// Package prefab stores reusable object definitions as YAML files and
// turns them into scene instances. The store doubles as the inspector's
// default provider: the cached default instance of a prefab is the
// reference side of the override diff.
package prefab

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"inspect3d/internal/engine"
)

// Definition is the on-disk shape of a prefab.
type Definition struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Active     *bool          `yaml:"active,omitempty"` // nil means active
	Transform  TransformDef   `yaml:"transform,omitempty"`
	Components []ComponentDef `yaml:"components,omitempty"`
}

type TransformDef struct {
	Position Vec3  `yaml:"position,omitempty"`
	Rotation Vec3  `yaml:"rotation,omitempty"`
	Scale    *Vec3 `yaml:"scale,omitempty"` // nil means unit scale
}

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// ComponentDef describes one attached component: a registered script
// (Script set) or a built-in component type (Type set).
type ComponentDef struct {
	Script string         `yaml:"script,omitempty"`
	Type   string         `yaml:"type,omitempty"`
	Props  map[string]any `yaml:"props,omitempty"`
}

func (v Vec3) vector() rl.Vector3 { return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

func fromVector(v rl.Vector3) Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// build constructs a fresh GameObject from the definition. The prefab
// link is left for the caller: instances get a fresh instance id, the
// cached default stays unlinked.
func (d *Definition) build() *engine.GameObject {
	obj := engine.NewGameObject(d.Name)
	obj.Tags = append([]string(nil), d.Tags...)
	if d.Active != nil {
		obj.Active = *d.Active
	}
	obj.Transform.Position = d.Transform.Position.vector()
	obj.Transform.Rotation = d.Transform.Rotation.vector()
	if d.Transform.Scale != nil {
		obj.Transform.Scale = d.Transform.Scale.vector()
	}
	for _, cd := range d.Components {
		if c := cd.build(); c != nil {
			obj.AddComponent(c)
		}
	}
	return obj
}

func (cd ComponentDef) build() engine.Component {
	props := normalizeProps(cd.Props)
	if cd.Script != "" {
		return engine.CreateScript(cd.Script, props)
	}
	c := engine.CreateComponent(cd.Type)
	if c == nil {
		return nil
	}
	if st, ok := c.(engine.Stater); ok {
		st.SetState(props)
	}
	return c
}

// capture converts a live object back into a definition, the apply-to-
// prefab path. Components without a serializer are dropped, the same
// rule scene saving follows.
func capture(obj *engine.GameObject) *Definition {
	d := &Definition{
		Name: obj.Name,
		Tags: append([]string(nil), obj.Tags...),
		Transform: TransformDef{
			Position: fromVector(obj.Transform.Position),
			Rotation: fromVector(obj.Transform.Rotation),
		},
	}
	if !obj.Active {
		active := false
		d.Active = &active
	}
	if s := obj.Transform.Scale; s.X != 1 || s.Y != 1 || s.Z != 1 {
		scale := fromVector(s)
		d.Transform.Scale = &scale
	}
	for _, c := range obj.Components() {
		if name, props, ok := engine.SerializeScript(c); ok {
			d.Components = append(d.Components, ComponentDef{Script: name, Props: props})
			continue
		}
		if st, ok := c.(engine.Stater); ok {
			d.Components = append(d.Components, ComponentDef{Type: engine.ComponentTypeName(c), Props: st.State()})
		}
	}
	return d
}

// normalizeProps aligns YAML-decoded values with what script factories
// expect: every number arrives as float64, nested maps keyed by string.
func normalizeProps(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case map[string]any:
		return normalizeProps(t)
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	}
	return v
}
