package world

import (
	"encoding/json"
	"fmt"
	"os"

	"inspect3d/internal/engine"
	"inspect3d/internal/prefab"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneFile is the on-disk scene format. Component state goes through
// the same registries the undo snapshots use, so anything the inspector
// can edit round-trips.
type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string         `json:"name"`
	Tags       []string       `json:"tags,omitempty"`
	Active     *bool          `json:"active,omitempty"`
	Prefab     string         `json:"prefab,omitempty"`
	Position   [3]float32     `json:"position"`
	Rotation   [3]float32     `json:"rotation,omitempty"`
	Scale      [3]float32     `json:"scale,omitempty"`
	Components []ComponentDef `json:"components,omitempty"`
}

type ComponentDef struct {
	Script string         `json:"script,omitempty"`
	Type   string         `json:"type,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
}

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, def := range sf.Objects {
		g := engine.NewGameObject(def.Name)
		g.Tags = def.Tags
		if def.Active != nil {
			g.Active = *def.Active
		}
		g.Transform.Position = vec(def.Position)
		g.Transform.Rotation = vec(def.Rotation)
		if def.Scale == [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		} else {
			g.Transform.Scale = vec(def.Scale)
		}
		if def.Prefab != "" {
			g.Prefab = engine.PrefabLink{
				PrefabID:   def.Prefab,
				InstanceID: prefab.NextInstanceID(),
			}
		}
		for _, cd := range def.Components {
			if c := buildComponent(cd); c != nil {
				g.AddComponent(c)
			}
		}
		w.Scene.AddGameObject(g)
	}

	w.ScenePath = path
	return nil
}

func (w *World) SaveScene(path string) error {
	var sf SceneFile
	for _, g := range w.Scene.GameObjects {
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Prefab:   g.Prefab.PrefabID,
			Position: arr(g.Transform.Position),
			Rotation: arr(g.Transform.Rotation),
			Scale:    arr(g.Transform.Scale),
		}
		if !g.Active {
			active := false
			def.Active = &active
		}
		for _, c := range g.Components() {
			if cd, ok := captureComponent(c); ok {
				def.Components = append(def.Components, cd)
			}
		}
		sf.Objects = append(sf.Objects, def)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	w.ScenePath = path
	return nil
}

func buildComponent(cd ComponentDef) engine.Component {
	if cd.Script != "" {
		return engine.CreateScript(cd.Script, cd.Props)
	}
	c := engine.CreateComponent(cd.Type)
	if c == nil {
		return nil
	}
	if st, ok := c.(engine.Stater); ok && cd.Props != nil {
		st.SetState(cd.Props)
	}
	return c
}

func captureComponent(c engine.Component) (ComponentDef, bool) {
	if name, props, ok := engine.SerializeScript(c); ok {
		return ComponentDef{Script: name, Props: props}, true
	}
	if st, ok := c.(engine.Stater); ok {
		return ComponentDef{Type: engine.ComponentTypeName(c), Props: st.State()}, true
	}
	return ComponentDef{}, false
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
