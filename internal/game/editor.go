package game

import (
	"fmt"
	"math"

	"inspect3d/internal/cache"
	"inspect3d/internal/engine"
	"inspect3d/internal/inspect"
	"inspect3d/internal/undo"
	"inspect3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type EditorCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
}

// Editor is the scene editing session: the fly camera, the selection and
// the inspector tree built over it.
type Editor struct {
	world     *world.World
	presenter *inspect.Presenter
	undoStack *undo.Stack
	cache     *cache.Cache

	camera    EditorCamera
	selection []*engine.GameObject
	root      *inspect.Root

	// Hierarchy panel
	hierarchyScroll   int32
	lastHierarchyClick float64
	lastClickedObject  *engine.GameObject

	// Inspector panel
	inspectorScroll      int32
	showAddComponentMenu bool
	addComponentScroll   int32

	// Float field editing state
	activeInputID     string  // layout path of the field being typed into
	inputTextValue    string  // current text being edited
	fieldDragging     bool    // true if drag-scrubbing a field
	fieldDragID       string  // layout path of the field being scrubbed
	fieldDragStartX   float32 // mouse X when drag started
	fieldDragStartVal float64 // value when drag started
	fieldHoveredAny   bool    // true if any float field is hovered this frame

	// Prefab override popup
	showOverrides bool
	diff          *inspect.DiffNode

	// Reference picking: armed by clicking a reference slot, resolved by
	// the next hierarchy click.
	pickingRef *inspect.ReferenceEditor

	// Prefab browser
	showPrefabBrowser   bool
	prefabBrowserScroll int32
	draggingPrefab      bool
	draggedPrefabID     string

	// Save feedback
	statusMsg     string
	statusMsgTime float64

	// Panel sizing
	hierarchyWidth int32
	inspectorWidth int32
	resizingPanel  int // 0=none, 1=hierarchy, 2=inspector
	resizeStartX   float32
	resizeStartW   int32
}

func NewEditor(w *world.World, c *cache.Cache) *Editor {
	stack := undo.NewStack()
	p := inspect.NewPresenter(stack, c)
	p.Defaults = w.Store
	inspect.RegisterBuiltinEditors(p.Registry)

	return &Editor{
		world:     w,
		presenter: p,
		undoStack: stack,
		cache:     c,
		camera: EditorCamera{
			Position:  rl.Vector3{X: 10, Y: 10, Z: 10},
			Yaw:       -135,
			Pitch:     -30,
			MoveSpeed: 10.0,
		},
		hierarchyWidth: 210,
		inspectorWidth: 340,
	}
}

// Select replaces the selection and rebuilds the inspector session.
func (e *Editor) Select(objs ...*engine.GameObject) {
	if e.root != nil {
		e.root.Dispose()
		e.root = nil
	}
	e.selection = objs
	e.showOverrides = false
	e.diff = nil
	e.pickingRef = nil
	e.showAddComponentMenu = false
	if len(objs) == 0 {
		return
	}
	anys := make([]any, len(objs))
	for i, o := range objs {
		anys[i] = o
	}
	e.root = inspect.NewRoot(e.presenter, "Inspector", anys...)
}

// toggleSelect adds or removes one object from the selection (ctrl-click).
func (e *Editor) toggleSelect(g *engine.GameObject) {
	for i, s := range e.selection {
		if s == g {
			next := append([]*engine.GameObject(nil), e.selection[:i]...)
			next = append(next, e.selection[i+1:]...)
			e.Select(next...)
			return
		}
	}
	e.Select(append(append([]*engine.GameObject(nil), e.selection...), g)...)
}

func (e *Editor) selected(g *engine.GameObject) bool {
	for _, s := range e.selection {
		if s == g {
			return true
		}
	}
	return false
}

func (e *Editor) Update(deltaTime float32) {
	// Prefab files edited outside the editor: reload and rebuild so the
	// inspector's reference side reflects the new defaults.
	if reloaded := e.world.ReloadPrefabs(); len(reloaded) > 0 {
		if e.root != nil {
			e.root.Rebuild()
		}
		e.flash(fmt.Sprintf("Reloaded %d prefab(s)", len(reloaded)))
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	isEditingText := e.activeInputID != ""

	// Ctrl+Z / Ctrl+Y: undo, redo
	if ctrl && rl.IsKeyPressed(rl.KeyZ) && e.undoStack.CanUndo() {
		if err := e.undoStack.Undo(); err != nil {
			e.flash(fmt.Sprintf("Undo failed: %v", err))
		} else {
			e.flash("Undo")
		}
	}
	if ctrl && rl.IsKeyPressed(rl.KeyY) && e.undoStack.CanRedo() {
		if err := e.undoStack.Redo(); err != nil {
			e.flash(fmt.Sprintf("Redo failed: %v", err))
		} else {
			e.flash("Redo")
		}
	}

	// Ctrl+S: save scene
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		if err := e.world.SaveScene(e.world.ScenePath); err != nil {
			e.flash(fmt.Sprintf("Save failed: %v", err))
		} else {
			e.flash("Scene saved!")
		}
	}

	// Ctrl+D: duplicate selection
	if ctrl && rl.IsKeyPressed(rl.KeyD) && len(e.selection) > 0 {
		var dups []*engine.GameObject
		for _, src := range e.selection {
			if dup := e.world.Duplicate(src); dup != nil {
				dups = append(dups, dup)
			}
		}
		e.Select(dups...)
	}

	// Ctrl+C / Ctrl+V: copy and paste object state through the clipboard
	if ctrl && rl.IsKeyPressed(rl.KeyC) && len(e.selection) > 0 {
		e.copySelection()
	}
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		e.pasteClipboard()
	}

	// Ctrl+Backspace: delete selection
	if ctrl && rl.IsKeyPressed(rl.KeyBackspace) && len(e.selection) > 0 {
		n := len(e.selection)
		for _, g := range e.selection {
			e.world.Remove(g)
		}
		e.Select()
		e.flash(fmt.Sprintf("Deleted %d object(s)", n))
	}

	// Tab: toggle prefab browser
	if rl.IsKeyPressed(rl.KeyTab) && !isEditingText {
		e.showPrefabBrowser = !e.showPrefabBrowser
	}

	// Camera: right-click + drag to look, right-click + WASD to fly
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		e.camera.Yaw += mouseDelta.X * 0.1
		e.camera.Pitch -= mouseDelta.Y * 0.1
		if e.camera.Pitch > 89 {
			e.camera.Pitch = 89
		}
		if e.camera.Pitch < -89 {
			e.camera.Pitch = -89
		}

		forward, right := e.getDirections()
		speed := e.camera.MoveSpeed * deltaTime

		if rl.IsKeyDown(rl.KeyW) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			e.camera.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			e.camera.Position.Y -= speed
		}
	}

	// Scroll wheel + Shift adjusts fly speed
	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		e.camera.MoveSpeed += scroll * 2.0
		if e.camera.MoveSpeed < 1.0 {
			e.camera.MoveSpeed = 1.0
		}
		if e.camera.MoveSpeed > 100.0 {
			e.camera.MoveSpeed = 100.0
		}
	}

	e.world.Update(deltaTime)

	// Per-frame inspector pass: pick up external changes, rebuild on
	// shape drift. The release of a scrub seals the coalesced action.
	if e.root != nil {
		e.root.Refresh()
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			e.root.EndGesture()
		}
	}
}

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(e.camera.Yaw) * math.Pi / 180
	pitchRad := float64(e.camera.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	forward, _ := e.getDirections()
	target := rl.Vector3Add(e.camera.Position, forward)
	return rl.Camera3D{
		Position:   e.camera.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

func (e *Editor) flash(msg string) {
	e.statusMsg = msg
	e.statusMsgTime = rl.GetTime()
}

// DrawUI draws the editor overlay: top bar, hierarchy panel (left),
// inspector panel (right), prefab browser (bottom).
func (e *Editor) DrawUI() {
	// Top bar - dark with subtle border
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), 36, colorBgDark)
	rl.DrawRectangle(0, 35, int32(rl.GetScreenWidth()), 1, colorBorder)

	drawTextEx(editorFontBold, "EDITOR", 12, 7, 22, colorAccent)

	helpText := "Ctrl+S: Save  |  Ctrl+Z: Undo  |  Ctrl+D: Duplicate  |  Tab: Prefabs"
	drawTextEx(editorFont, helpText, 115, 9, 18, colorTextMuted)
	drawTextEx(editorFontMono, fmt.Sprintf("Speed: %.0f", e.camera.MoveSpeed), int32(rl.GetScreenWidth())-130, 9, 18, colorTextMuted)

	// Undo depth indicator
	if e.undoStack.Len() > 0 {
		drawTextEx(editorFontMono, fmt.Sprintf("Undo: %d", e.undoStack.Len()), int32(rl.GetScreenWidth())-240, 9, 18, colorTextMuted)
	}

	// Status message flash (below top bar)
	if e.statusMsg != "" && rl.GetTime()-e.statusMsgTime < 2.0 {
		color := colorOverride
		if e.statusMsg != "Scene saved!" && e.statusMsg != "Undo" && e.statusMsg != "Redo" {
			color = colorAccentLight
		}
		drawTextEx(editorFontBold, e.statusMsg, int32(rl.GetScreenWidth()/2)-50, 47, 16, color)
	}

	// Reset field hover tracking for this frame
	e.fieldHoveredAny = false

	e.drawHierarchy()
	e.drawInspector()

	if e.showPrefabBrowser {
		e.drawPrefabBrowser()
	}

	e.handlePanelResize()

	// Set cursor based on state
	if e.resizingPanel > 0 || e.isOverPanelEdge() {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else if e.fieldHoveredAny || e.fieldDragging {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// isOverPanelEdge checks if mouse is over a resizable panel edge
func (e *Editor) isOverPanelEdge() bool {
	mousePos := rl.GetMousePosition()
	screenH := float32(rl.GetScreenHeight())
	screenW := float32(rl.GetScreenWidth())

	hierEdge := float32(e.hierarchyWidth)
	if mousePos.X >= hierEdge-2 && mousePos.X <= hierEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
		return true
	}

	inspEdge := screenW - float32(e.inspectorWidth)
	if mousePos.X >= inspEdge-2 && mousePos.X <= inspEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
		return true
	}

	return false
}

// handlePanelResize handles drag-to-resize for panels
func (e *Editor) handlePanelResize() {
	mousePos := rl.GetMousePosition()
	screenW := int32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && e.resizingPanel == 0 {
		hierEdge := float32(e.hierarchyWidth)
		inspEdge := float32(screenW) - float32(e.inspectorWidth)

		if mousePos.X >= hierEdge-2 && mousePos.X <= hierEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
			e.resizingPanel = 1
			e.resizeStartX = mousePos.X
			e.resizeStartW = e.hierarchyWidth
		} else if mousePos.X >= inspEdge-2 && mousePos.X <= inspEdge+2 && mousePos.Y > 36 && mousePos.Y < screenH {
			e.resizingPanel = 2
			e.resizeStartX = mousePos.X
			e.resizeStartW = e.inspectorWidth
		}
	}

	if e.resizingPanel > 0 && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := int32(mousePos.X - e.resizeStartX)

		if e.resizingPanel == 1 {
			newW := e.resizeStartW + delta
			if newW < 150 {
				newW = 150
			} else if newW > 400 {
				newW = 400
			}
			e.hierarchyWidth = newW
		} else if e.resizingPanel == 2 {
			newW := e.resizeStartW - delta
			if newW < 260 {
				newW = 260
			} else if newW > 520 {
				newW = 520
			}
			e.inspectorWidth = newW
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		e.resizingPanel = 0
	}
}

// mouseInPanel returns true if the mouse is over a UI panel.
func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	if m.X <= float32(e.hierarchyWidth) && m.Y >= 36 && m.Y <= screenH {
		return true
	}
	if m.X >= screenW-float32(e.inspectorWidth) && m.Y >= 36 && m.Y <= screenH {
		return true
	}
	if m.Y <= 36 {
		return true
	}
	if e.showPrefabBrowser && m.Y >= screenH-150 && m.X > float32(e.hierarchyWidth) && m.X < screenW-float32(e.inspectorWidth) {
		return true
	}
	return false
}
