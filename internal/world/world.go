// Package world owns the live scene being edited: the object list, its
// link back to the prefab store, and scene file persistence.
package world

import (
	"fmt"

	"inspect3d/internal/engine"
	"inspect3d/internal/prefab"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type World struct {
	Scene     *engine.Scene
	Store     *prefab.Store
	ScenePath string
}

func New(store *prefab.Store) *World {
	return &World{
		Scene: engine.NewScene("Main"),
		Store: store,
	}
}

// Instantiate spawns a prefab instance at the given position and adds it
// to the scene.
func (w *World) Instantiate(prefabID string, pos rl.Vector3) (*engine.GameObject, error) {
	g, err := w.Store.Instantiate(prefabID)
	if err != nil {
		return nil, err
	}
	g.Transform.Position = pos
	w.Scene.AddGameObject(g)
	return g, nil
}

// Duplicate deep-copies an object through its editable-state snapshot.
// The copy keeps the prefab link, so overrides survive duplication.
func (w *World) Duplicate(src *engine.GameObject) *engine.GameObject {
	state, err := src.CaptureState()
	if err != nil {
		return nil
	}
	g := engine.NewGameObject(src.Name)
	if err := g.RestoreState(state); err != nil {
		return nil
	}
	g.Name = uniqueName(w.Scene, src.Name)
	if src.Prefab.IsLinked() {
		g.Prefab = engine.PrefabLink{
			PrefabID:   src.Prefab.PrefabID,
			InstanceID: prefab.NextInstanceID(),
		}
	}
	w.Scene.AddGameObject(g)
	return g
}

// UniqueName returns base, suffixed with a counter when the scene already
// has an object by that name.
func (w *World) UniqueName(base string) string {
	return uniqueName(w.Scene, base)
}

func (w *World) Remove(g *engine.GameObject) {
	w.Scene.RemoveGameObject(g)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func uniqueName(scene *engine.Scene, base string) string {
	taken := map[string]bool{}
	for _, g := range scene.GameObjects {
		taken[g.Name] = true
	}
	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s (%d)", base, i)
		if !taken[name] {
			return name
		}
	}
}

// ReloadPrefabs drains pending prefab file changes and reports the ids
// whose default instances changed. Called once per frame.
func (w *World) ReloadPrefabs() []string {
	return w.Store.Poll()
}
