package engine

import "testing"

func TestSceneAddAndRemove(t *testing.T) {
	scene := NewScene("Yard")
	crate := NewGameObject("Crate")
	lamp := NewGameObject("Lamp")

	scene.AddGameObject(crate)
	scene.AddGameObject(lamp)
	if len(scene.GameObjects) != 2 {
		t.Fatalf("objects = %d, want 2", len(scene.GameObjects))
	}
	if crate.Scene != scene {
		t.Errorf("AddGameObject did not set the scene back reference")
	}

	scene.RemoveGameObject(crate)
	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != lamp {
		t.Errorf("wrong object removed: %v", scene.GameObjects)
	}
	if scene.FindByUID(crate.UID) != nil {
		t.Errorf("removed object still resolvable by UID")
	}
	if crate.Scene != nil {
		t.Errorf("removed object keeps its scene back reference")
	}
}

func TestSceneLookups(t *testing.T) {
	scene := NewScene("Yard")
	crate := NewGameObject("Crate")
	crate.Tags = []string{"Prop"}
	lamp := NewGameObject("Lamp")
	lamp.Tags = []string{"Prop", "Light"}
	lamp.Prefab = PrefabLink{PrefabID: "lamp.yaml", InstanceID: 1}
	scene.AddGameObject(crate)
	scene.AddGameObject(lamp)

	if scene.FindByUID(lamp.UID) != lamp {
		t.Errorf("FindByUID missed the lamp")
	}
	if scene.FindByUID(999999) != nil {
		t.Errorf("FindByUID matched a stale UID")
	}
	if scene.FindByName("Crate") != crate || scene.FindByName("Ghost") != nil {
		t.Errorf("FindByName mismatch")
	}
	if got := scene.FindByTag("Prop"); len(got) != 2 {
		t.Errorf("FindByTag(Prop) = %d objects, want 2", len(got))
	}
	if got := scene.FindByTag("Enemy"); len(got) != 0 {
		t.Errorf("FindByTag matched an absent tag: %v", got)
	}
	if got := scene.FindByPrefab("lamp.yaml"); len(got) != 1 || got[0] != lamp {
		t.Errorf("FindByPrefab = %v, want the lamp", got)
	}
}

func TestSceneRemoveTakesChildren(t *testing.T) {
	scene := NewScene("Yard")
	rig := NewGameObject("Rig")
	wheel := NewGameObject("Wheel")
	scene.AddGameObject(rig)
	scene.AddGameObject(wheel)
	rig.AddChild(wheel)

	scene.RemoveGameObject(rig)

	if len(scene.GameObjects) != 0 {
		t.Errorf("objects = %d after removing the parent, want 0", len(scene.GameObjects))
	}
	if scene.FindByUID(wheel.UID) != nil {
		t.Errorf("child still resolvable after parent removal")
	}
}

func TestSceneStartAndUpdateFanOut(t *testing.T) {
	scene := NewScene("Yard")
	obj := NewGameObject("Crate")
	c := &ticker{}
	obj.AddComponent(c)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Start()
	if c.starts != 1 {
		t.Errorf("starts = %d, want 1", c.starts)
	}
	scene.Update(0.016)
	if c.updates != 1 {
		t.Errorf("updates = %d, want 1", c.updates)
	}
}

func TestSceneToleratesNilUIDMap(t *testing.T) {
	scene := NewScene("Yard")
	scene.uidMap = nil

	obj := NewGameObject("Crate")
	scene.AddGameObject(obj)

	if scene.FindByUID(obj.UID) != obj {
		t.Errorf("AddGameObject did not rebuild the UID index")
	}
}
