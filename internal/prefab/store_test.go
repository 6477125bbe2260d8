package prefab

import (
	"os"
	"path/filepath"
	"testing"

	"inspect3d/internal/engine"
)

type spinner struct {
	engine.BaseComponent
	Speed float32
}

type glow struct {
	engine.BaseComponent
	Radius float64
}

func (g *glow) State() map[string]any { return map[string]any{"radius": g.Radius} }

func (g *glow) SetState(props map[string]any) {
	if v, ok := props["radius"].(float64); ok {
		g.Radius = v
	}
}

func init() {
	engine.RegisterScript("Spinner",
		func(props map[string]any) engine.Component {
			s := &spinner{}
			if v, ok := props["speed"].(float64); ok {
				s.Speed = float32(v)
			}
			return s
		},
		func(c engine.Component) map[string]any {
			s, ok := c.(*spinner)
			if !ok {
				return nil
			}
			return map[string]any{"speed": float64(s.Speed)}
		})
	engine.RegisterComponentType("glow", func() engine.Component { return &glow{} })
}

const crateYAML = `name: crate
tags: [physics]
transform:
  position: {x: 1, y: 2, z: 3}
components:
  - script: Spinner
    props:
      speed: 4
  - type: glow
    props:
      radius: 2.5
`

func writePrefab(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write prefab: %v", err)
	}
	return path
}

func loadedStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	writePrefab(t, dir, "crate.yaml", crateYAML)
	s := NewStore(dir)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, dir
}

func TestLoadAndInstantiate(t *testing.T) {
	s, _ := loadedStore(t)

	if ids := s.IDs(); len(ids) != 1 || ids[0] != "crate.yaml" {
		t.Fatalf("IDs = %v", ids)
	}

	obj, err := s.Instantiate("crate.yaml")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if obj.Name != "crate" || !obj.HasTag("physics") || !obj.Active {
		t.Errorf("instance header = %q %v active=%v", obj.Name, obj.Tags, obj.Active)
	}
	if obj.Transform.Position.Y != 2 {
		t.Errorf("Position.Y = %v, want 2", obj.Transform.Position.Y)
	}
	if obj.Transform.Scale.X != 1 {
		t.Errorf("omitted scale = %v, want unit", obj.Transform.Scale)
	}
	if obj.Prefab.PrefabID != "crate.yaml" || obj.Prefab.InstanceID == 0 {
		t.Errorf("prefab link = %+v", obj.Prefab)
	}
	if len(obj.Components()) != 2 {
		t.Fatalf("components = %d, want 2", len(obj.Components()))
	}
	if sp := obj.Components()[0].(*spinner); sp.Speed != 4 {
		t.Errorf("Spinner.Speed = %v, want 4 (yaml int normalized)", sp.Speed)
	}
	if gl := obj.Components()[1].(*glow); gl.Radius != 2.5 {
		t.Errorf("glow.Radius = %v, want 2.5", gl.Radius)
	}

	other, _ := s.Instantiate("crate.yaml")
	if other.Prefab.InstanceID == obj.Prefab.InstanceID {
		t.Errorf("instance ids not unique")
	}
	if other.UID == obj.UID {
		t.Errorf("object uids not unique")
	}
}

func TestInstantiateUnknown(t *testing.T) {
	s, _ := loadedStore(t)
	if _, err := s.Instantiate("missing.yaml"); err == nil {
		t.Fatalf("expected an error for an unknown prefab")
	}
}

func TestDefaultInstanceCached(t *testing.T) {
	s, _ := loadedStore(t)

	obj, _ := s.Instantiate("crate.yaml")
	first, ok := s.DefaultInstance(obj.Prefab)
	if !ok {
		t.Fatalf("no default for a loaded prefab")
	}
	second, _ := s.DefaultInstance(obj.Prefab)
	if first != second {
		t.Errorf("default instance not cached")
	}
	if first == obj {
		t.Errorf("default aliases the live instance")
	}
	if _, ok := s.DefaultInstance(engine.PrefabLink{}); ok {
		t.Errorf("unlinked object resolved a default")
	}
}

func TestApplyInstanceRoundTrip(t *testing.T) {
	s, dir := loadedStore(t)

	obj, _ := s.Instantiate("crate.yaml")
	obj.Name = "heavy crate"
	obj.Transform.Position.X = 9
	obj.Components()[0].(*spinner).Speed = 11

	if err := s.ApplyInstance(obj); err != nil {
		t.Fatalf("ApplyInstance: %v", err)
	}

	// The store picks the change up immediately.
	def, _ := s.DefaultInstance(obj.Prefab)
	if def.Name != "heavy crate" || def.Transform.Position.X != 9 {
		t.Errorf("default after apply = %q %v", def.Name, def.Transform.Position)
	}

	// A fresh store reading the file sees it too.
	reread := NewStore(dir)
	if err := reread.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	fresh, err := reread.Instantiate("crate.yaml")
	if err != nil {
		t.Fatalf("Instantiate after apply: %v", err)
	}
	if fresh.Components()[0].(*spinner).Speed != 11 {
		t.Errorf("applied script prop not persisted: %v", fresh.Components()[0].(*spinner).Speed)
	}
}

func TestApplyUnlinked(t *testing.T) {
	s, _ := loadedStore(t)
	if err := s.ApplyInstance(engine.NewGameObject("loose")); err == nil {
		t.Fatalf("expected an error applying an unlinked object")
	}
}

func TestPollReloadsPendingFiles(t *testing.T) {
	s, dir := loadedStore(t)

	path := writePrefab(t, dir, "crate.yaml", "name: renamed crate\n")
	s.mu.Lock()
	s.pending[path] = true
	s.mu.Unlock()

	ids := s.Poll()
	if len(ids) != 1 || ids[0] != "crate.yaml" {
		t.Fatalf("Poll = %v, want [crate.yaml]", ids)
	}
	def, _ := s.Get("crate.yaml")
	if def.Name != "renamed crate" {
		t.Errorf("reload kept the old definition: %q", def.Name)
	}
	if again := s.Poll(); len(again) != 0 {
		t.Errorf("second Poll = %v, want empty", again)
	}
}
