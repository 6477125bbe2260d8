package game

import (
	"log"

	"inspect3d/internal/cache"
	"inspect3d/internal/components"
	"inspect3d/internal/engine"
	"inspect3d/internal/prefab"
	"inspect3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultScenePath = "assets/scenes/main.scene"
	prefabDir        = "assets/prefabs"
	cacheFile        = ".editor_cache.json"
)

// Game owns the editor process: window, prefab store, scene and the
// editor session on top of them.
type Game struct {
	World  *world.World
	Editor *Editor

	store *prefab.Store
	cache *cache.Cache
}

func New() *Game {
	store := prefab.NewStore(prefabDir)
	if err := store.Load(); err != nil {
		log.Printf("prefab load: %v", err)
	}
	if err := store.Watch(); err != nil {
		log.Printf("prefab watch: %v", err)
	}

	return &Game{
		World: world.New(store),
		store: store,
		cache: cache.Load(cacheFile),
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)

	prefs := LoadEditorPrefs()
	winW, winH := 1280, 720
	if prefs != nil && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		winW, winH = prefs.WindowWidth, prefs.WindowHeight
	}
	rl.InitWindow(int32(winW), int32(winH), "inspect3d")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.SetExitKey(0) // Escape cancels text input, it must not close the window

	initRayguiStyle()

	scenePath := defaultScenePath
	if prefs != nil && prefs.ScenePath != "" {
		scenePath = prefs.ScenePath
	}
	if err := g.World.LoadScene(scenePath); err != nil {
		log.Printf("scene load: %v", err)
		g.World.ScenePath = scenePath
	}
	g.World.Scene.Start()

	g.Editor = NewEditor(g.World, g.cache)
	g.Editor.ApplyPrefs(prefs)

	for !rl.WindowShouldClose() {
		deltaTime := rl.GetFrameTime()
		g.Editor.Update(deltaTime)
		g.handleViewportPick()
		g.Draw()
	}

	g.Editor.SavePrefs()
	if err := g.cache.Save(); err != nil {
		log.Printf("cache save: %v", err)
	}
	g.store.Close()
}

// handleViewportPick selects objects by clicking them in the 3D view.
func (g *Game) handleViewportPick() {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	if g.Editor.mouseInPanel() || g.Editor.draggingPrefab {
		return
	}

	cam := g.Editor.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)

	var hit *engine.GameObject
	hitDist := float32(0)
	for _, obj := range g.World.Scene.GameObjects {
		col := rl.GetRayCollisionBox(ray, objectBounds(obj))
		if col.Hit && (hit == nil || col.Distance < hitDist) {
			hit = obj
			hitDist = col.Distance
		}
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	if hit == nil {
		if !ctrl {
			g.Editor.Select()
		}
		return
	}
	if g.Editor.pickingRef != nil {
		g.Editor.pickingRef.Assign(hit)
		g.Editor.pickingRef = nil
		return
	}
	if ctrl {
		g.Editor.toggleSelect(hit)
	} else {
		g.Editor.Select(hit)
	}
}

// objectBounds approximates an object's extent for picking and markers,
// using its box collider when it has one.
func objectBounds(obj *engine.GameObject) rl.BoundingBox {
	size := obj.Transform.Scale
	if bc := engine.GetComponent[*components.BoxCollider](obj); bc != nil {
		size = rl.Vector3{X: bc.Size.X * size.X, Y: bc.Size.Y * size.Y, Z: bc.Size.Z * size.Z}
	}
	half := rl.Vector3Scale(size, 0.5)
	return rl.BoundingBox{
		Min: rl.Vector3Subtract(obj.Transform.Position, half),
		Max: rl.Vector3Add(obj.Transform.Position, half),
	}
}

func (g *Game) Draw() {
	camera := g.Editor.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	rl.DrawGrid(40, 1.0)

	for _, obj := range g.World.Scene.GameObjects {
		if !obj.Active {
			continue
		}
		bounds := objectBounds(obj)
		size := rl.Vector3Subtract(bounds.Max, bounds.Min)

		color := rl.Gray
		if obj.Prefab.IsLinked() {
			color = rl.NewColor(130, 170, 255, 255)
		}
		if g.Editor.selected(obj) {
			color = colorAccent
		}
		rl.DrawCubeWiresV(obj.Transform.Position, size, color)

		if pl := engine.GetComponent[*components.PointLight](obj); pl != nil {
			rl.DrawSphereWires(obj.Transform.Position, pl.Radius, 8, 8, rl.NewColor(pl.Color.R, pl.Color.G, pl.Color.B, 120))
		}
		if sc := engine.GetComponent[*components.SphereCollider](obj); sc != nil {
			rl.DrawSphereWires(rl.Vector3Add(obj.Transform.Position, sc.Offset), sc.Radius, 8, 8, rl.Green)
		}
	}
	rl.EndMode3D()

	g.Editor.DrawUI()
	rl.EndDrawing()
}
