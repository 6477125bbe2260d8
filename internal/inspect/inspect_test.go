package inspect

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"inspect3d/internal/engine"
	"inspect3d/internal/undo"
)

// mover is the test script used across the package tests.
type mover struct {
	engine.BaseComponent
	Speed  float32
	Target string
}

func init() {
	engine.RegisterScriptWithApplier("Mover",
		func(props map[string]any) engine.Component {
			m := &mover{}
			if v, ok := props["speed"].(float64); ok {
				m.Speed = float32(v)
			}
			if v, ok := props["target"].(string); ok {
				m.Target = v
			}
			return m
		},
		func(c engine.Component) map[string]any {
			m, ok := c.(*mover)
			if !ok {
				return nil
			}
			return map[string]any{"speed": float64(m.Speed), "target": m.Target}
		},
		func(c engine.Component, prop string, value any) bool {
			m, ok := c.(*mover)
			if !ok {
				return false
			}
			switch prop {
			case "speed":
				if v, ok := value.(float64); ok {
					m.Speed = float32(v)
					return true
				}
			case "target":
				if v, ok := value.(string); ok {
					m.Target = v
					return true
				}
			}
			return false
		})
}

type staticDefaults map[string]*engine.GameObject

func (d staticDefaults) DefaultInstance(link engine.PrefabLink) (*engine.GameObject, bool) {
	g, ok := d[link.PrefabID]
	return g, ok
}

func newTestPresenter() *Presenter {
	p := NewPresenter(undo.NewStack(), nil)
	RegisterBuiltinEditors(p.Registry)
	return p
}

// child finds the direct child editor bound to the named member.
func child(t *testing.T, ed Editor, name string) Editor {
	t.Helper()
	for _, c := range ed.Base().Children() {
		b := c.Base()
		if b.values != nil && b.values.accessor != nil && b.values.accessor.Name() == name {
			return c
		}
	}
	t.Fatalf("no child editor for member %q", name)
	return nil
}

func positionX(t *testing.T, root *Root) *NumberEditor {
	t.Helper()
	tr := child(t, root.Editor(), "Transform")
	pos := child(t, tr, "Position")
	x, ok := child(t, pos, "X").(*NumberEditor)
	if !ok {
		t.Fatalf("Position.X did not resolve to a NumberEditor")
	}
	return x
}

func TestGameObjectLayoutOrder(t *testing.T) {
	p := newTestPresenter()
	root := NewRoot(p, "Inspector", engine.NewGameObject("player"))
	defer root.Dispose()

	want := []string{"Name", "Tags", "Active", "Transform", "Components"}
	kids := root.Layout().Children
	if len(kids) != len(want) {
		t.Fatalf("layout children = %d, want %d", len(kids), len(want))
	}
	for i, title := range want {
		if kids[i].Title != title {
			t.Errorf("layout[%d] = %q, want %q", i, kids[i].Title, title)
		}
	}
	if kids[3].Kind != LayoutGroup {
		t.Errorf("Transform layout kind = %v, want group", kids[3].Kind)
	}
	if got := kids[3].Children[0].Path; got != "Inspector.Transform.Position" {
		t.Errorf("position path = %q", got)
	}
}

func TestDiscreteEditRecordsOneAction(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	name := child(t, root.Editor(), "Name").(*StringEditor)
	name.Commit("renamed")

	if obj.Name != "renamed" {
		t.Fatalf("Name = %q, want renamed", obj.Name)
	}
	if p.Undo.Len() != 1 {
		t.Fatalf("undo len = %d, want 1", p.Undo.Len())
	}
	if err := p.Undo.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if obj.Name != "player" {
		t.Errorf("after undo Name = %q, want player", obj.Name)
	}
	if err := p.Undo.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if obj.Name != "renamed" {
		t.Errorf("after redo Name = %q, want renamed", obj.Name)
	}
}

func TestIdenticalEditRecordsNothing(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	child(t, root.Editor(), "Name").(*StringEditor).Commit("player")
	if p.Undo.Len() != 0 {
		t.Errorf("undo len = %d after no-op edit, want 0", p.Undo.Len())
	}
}

func TestScrubCoalescesIntoOneAction(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	x := positionX(t, root)
	x.Scrub(1, "drag:Position.X")
	x.Scrub(2, "drag:Position.X")
	x.Scrub(3, "drag:Position.X")
	root.EndGesture()

	if obj.Transform.Position.X != 3 {
		t.Fatalf("Position.X = %v, want 3", obj.Transform.Position.X)
	}
	if p.Undo.Len() != 1 {
		t.Fatalf("undo len = %d, want 1 coalesced action", p.Undo.Len())
	}
	if err := p.Undo.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if obj.Transform.Position.X != 0 {
		t.Errorf("after undo Position.X = %v, want initial 0", obj.Transform.Position.X)
	}
}

func TestTokenChangeClosesPreviousGesture(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	x := positionX(t, root)
	x.Scrub(1, "drag:Position.X")
	x.Scrub(2, "drag:Position.X")
	x.Scrub(5, "drag:Position.Y") // different gesture, same field for simplicity
	root.EndGesture()

	if p.Undo.Len() != 2 {
		t.Fatalf("undo len = %d, want 2 (token change split)", p.Undo.Len())
	}
	p.Undo.Undo()
	if obj.Transform.Position.X != 2 {
		t.Errorf("after one undo X = %v, want 2", obj.Transform.Position.X)
	}
	p.Undo.Undo()
	if obj.Transform.Position.X != 0 {
		t.Errorf("after two undos X = %v, want 0", obj.Transform.Position.X)
	}
}

func TestRefreshPicksUpExternalChange(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	name := child(t, root.Editor(), "Name").(*StringEditor)
	root.Refresh()
	if name.Base().Modified() {
		t.Fatalf("modified after refresh with no changes")
	}

	obj.Name = "script-renamed"
	root.Refresh()
	if name.Text() != "script-renamed" {
		t.Errorf("Text = %q, want script-renamed", name.Text())
	}
	if !name.Base().Modified() {
		t.Errorf("external change did not mark the editor modified")
	}
	name.Base().AckModified()
	root.Refresh()
	if name.Base().Modified() {
		t.Errorf("modified again with nothing changed")
	}
}

func TestMultiSelectMixedAndAlign(t *testing.T) {
	p := newTestPresenter()
	a := engine.NewGameObject("a")
	b := engine.NewGameObject("b")
	root := NewRoot(p, "Inspector", a, b)
	defer root.Dispose()

	name := child(t, root.Editor(), "Name").(*StringEditor)
	if name.Text() != Mixed {
		t.Fatalf("Text = %q, want mixed placeholder", name.Text())
	}
	name.Commit("both")
	if a.Name != "both" || b.Name != "both" {
		t.Fatalf("Commit did not apply to the whole selection: %q / %q", a.Name, b.Name)
	}
	if p.Undo.Len() != 1 {
		t.Fatalf("undo len = %d, want 1 atomic multi-object action", p.Undo.Len())
	}
	p.Undo.Undo()
	if a.Name != "a" || b.Name != "b" {
		t.Errorf("undo did not restore both objects: %q / %q", a.Name, b.Name)
	}
}

type wideShape struct {
	Label string
	Mass  float64
	Drag  float64
}

type narrowShape struct {
	Label string
}

func TestDivergentTypeSelection(t *testing.T) {
	p := newTestPresenter()
	w := &wideShape{Label: "a", Mass: 2}
	n := &narrowShape{Label: "a"}
	root := NewRoot(p, "Inspector", w, n)
	defer root.Dispose()

	if !root.Values().HasDifferentTypes() {
		t.Fatalf("diverging selection types not flagged")
	}
	root.Refresh()

	// Members missing on one instance render, but read-only.
	mass := child(t, root.Editor(), "Mass")
	if !mass.Base().ReadOnly() {
		t.Errorf("member absent on one instance is editable")
	}
	mass.Base().SetValue(9.0)
	if w.Mass != 2 {
		t.Errorf("read-only member applied an edit: %v", w.Mass)
	}

	// Overlapping members stay editable across both types.
	label := child(t, root.Editor(), "Label").(*StringEditor)
	if label.Base().ReadOnly() {
		t.Fatalf("overlapping member marked read-only")
	}
	label.Commit("both")
	if w.Label != "both" || n.Label != "both" {
		t.Errorf("overlapping edit missed an instance: %q / %q", w.Label, n.Label)
	}
}

func TestNilInstanceTolerated(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj, (*engine.GameObject)(nil))
	defer root.Dispose()

	name := child(t, root.Editor(), "Name").(*StringEditor)
	if !name.Values().HasNull() {
		t.Fatalf("HasNull = false with a nil instance selected")
	}
	name.Commit("ok")
	if obj.Name != "ok" {
		t.Errorf("edit skipped the live instance: %q", obj.Name)
	}
}

func TestComponentShapeChangeTriggersRebuild(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	before := root.Editor()
	obj.AddComponent(&mover{Speed: 1}) // external structural change
	root.Refresh()

	if root.Editor() == before {
		t.Fatalf("shape change did not rebuild the tree")
	}
	comps := root.Layout().Children[4]
	if len(comps.Children) != 1 || comps.Children[0].Title != "Mover" {
		t.Errorf("rebuilt components section = %+v, want one Mover slot", comps.Children)
	}
}

func TestAddAndRemoveScriptAreUndoable(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	ge := root.Editor().(*GameObjectEditor)
	ge.Components().AddScript("Mover")
	root.Refresh() // consume the rebuild request

	if len(obj.Components()) != 1 {
		t.Fatalf("components = %d, want 1", len(obj.Components()))
	}
	if p.Undo.Len() != 1 {
		t.Fatalf("undo len = %d, want 1", p.Undo.Len())
	}
	if err := p.Undo.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(obj.Components()) != 0 {
		t.Errorf("undo did not detach the script, components = %d", len(obj.Components()))
	}
}

func TestOverrideListStableOrder(t *testing.T) {
	live := map[string]int{"Zeta": 2, "Alpha": 1, "Mover": 1}
	ref := map[string]int{"Zeta": 1}

	want := []string{"Alpha", "Mover", "Zeta"}
	// Map iteration order varies; the list must not.
	for i := 0; i < 8; i++ {
		got := missingFrom(live, ref)
		if len(got) != len(want) {
			t.Fatalf("missingFrom = %v, want %v", got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("missingFrom = %v, want %v", got, want)
			}
		}
	}
}

func TestReadOnlySessionRejectsEdits(t *testing.T) {
	p := newTestPresenter()
	p.Features.ReadOnly = true
	obj := engine.NewGameObject("player")
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	child(t, root.Editor(), "Name").(*StringEditor).Commit("nope")
	if obj.Name != "player" {
		t.Errorf("read-only session applied an edit: %q", obj.Name)
	}
	if p.Undo.Len() != 0 {
		t.Errorf("read-only session recorded an undo action")
	}
}

func TestTransformReset(t *testing.T) {
	p := newTestPresenter()
	obj := engine.NewGameObject("player")
	obj.Transform.Position = rl.Vector3{X: 4, Y: 5, Z: 6}
	obj.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	root := NewRoot(p, "Inspector", obj)
	defer root.Dispose()

	child(t, root.Editor(), "Transform").(*TransformEditor).Reset()

	want := engine.Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
	if obj.Transform != want {
		t.Fatalf("Transform = %+v, want identity", obj.Transform)
	}
	if p.Undo.Len() != 1 {
		t.Errorf("undo len = %d, want 1", p.Undo.Len())
	}
}
