package engine

import (
	"reflect"
	"testing"
)

// statefulComp is a built-in style component with Stater support.
type statefulComp struct {
	BaseComponent
	Radius float32
}

func (c *statefulComp) State() map[string]any {
	return map[string]any{"radius": float64(c.Radius)}
}

func (c *statefulComp) SetState(props map[string]any) {
	if v, ok := props["radius"].(float64); ok {
		c.Radius = float32(v)
	}
}

func TestCaptureRestoreInPlace(t *testing.T) {
	obj := NewGameObject("Thing")
	obj.Tags = []string{"a"}
	comp := &statefulComp{Radius: 2}
	obj.AddComponent(comp)

	raw, err := obj.CaptureState()
	if err != nil {
		t.Fatal(err)
	}

	obj.Name = "Renamed"
	obj.Transform.Position.X = 9
	comp.Radius = 5

	if err := obj.RestoreState(raw); err != nil {
		t.Fatal(err)
	}
	if obj.Name != "Thing" {
		t.Errorf("Name = %q, want Thing", obj.Name)
	}
	if obj.Transform.Position.X != 0 {
		t.Errorf("Position.X = %v, want 0", obj.Transform.Position.X)
	}
	if comp.Radius != 2 {
		t.Errorf("Radius = %v, want 2 (restored in place)", comp.Radius)
	}
	if GetComponent[*statefulComp](obj) != comp {
		t.Error("in-place restore must not replace the component instance")
	}
}

func TestRestoreRebuildsOnShapeChange(t *testing.T) {
	prev := componentRegistry
	componentRegistry = map[string]ComponentFactory{}
	defer func() { componentRegistry = prev }()
	RegisterComponentType("statefulComp", func() Component { return &statefulComp{} })

	obj := NewGameObject("Thing")
	obj.AddComponent(&statefulComp{Radius: 3})

	raw, err := obj.CaptureState()
	if err != nil {
		t.Fatal(err)
	}

	// Component removed after the snapshot: restore must rebuild.
	obj.RemoveComponentByIndex(0)
	if err := obj.RestoreState(raw); err != nil {
		t.Fatal(err)
	}

	restored := GetComponent[*statefulComp](obj)
	if restored == nil {
		t.Fatal("component not rebuilt from snapshot")
	}
	if restored.Radius != 3 {
		t.Errorf("rebuilt Radius = %v, want 3", restored.Radius)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	obj := NewGameObject("Thing")
	obj.Tags = []string{"x"}
	comp := &statefulComp{Radius: 1}
	obj.AddComponent(comp)

	raw, _ := obj.CaptureState()

	obj.Tags[0] = "mutated"
	comp.Radius = 99

	state := raw.(ObjectState)
	if state.Tags[0] != "x" {
		t.Error("snapshot tags alias the live slice")
	}
	if state.Components[0].Props["radius"] != float64(1) {
		t.Error("snapshot props alias the live component")
	}
}

func TestCaptureStateDeepEqualStability(t *testing.T) {
	obj := NewGameObject("Thing")
	obj.AddComponent(&statefulComp{Radius: 4})

	a, _ := obj.CaptureState()
	b, _ := obj.CaptureState()
	if !reflect.DeepEqual(a, b) {
		t.Error("two captures of unchanged state should be deep-equal")
	}
}
