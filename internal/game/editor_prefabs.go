package game

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawPrefabBrowser draws the prefab palette at the bottom of the screen.
// Click-drag a prefab into the viewport to spawn an instance.
func (e *Editor) drawPrefabBrowser() {
	panelH := int32(150)
	panelY := int32(rl.GetScreenHeight()) - panelH
	panelX := e.hierarchyWidth
	panelW := int32(rl.GetScreenWidth()) - e.hierarchyWidth - e.inspectorWidth

	// Background with border
	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, panelW, 1, colorBorder)

	mousePos := rl.GetMousePosition()

	drawTextEx(editorFontBold, "Prefabs", panelX+12, panelY+6, 16, colorTextSecondary)
	drawTextEx(editorFont, "drag into the scene to spawn", panelX+90, panelY+8, 13, colorTextMuted)

	ids := e.world.Store.IDs()

	// Grid layout
	itemW := int32(80)
	itemH := int32(85)
	startX := panelX + 10
	startY := panelY + 30
	cols := (panelW - 20) / (itemW + 8)
	if cols < 1 {
		cols = 1
	}

	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	if mouseInPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		scroll := rl.GetMouseWheelMove()
		e.prefabBrowserScroll -= int32(scroll * 30)
		if e.prefabBrowserScroll < 0 {
			e.prefabBrowserScroll = 0
		}
	}

	rl.BeginScissorMode(panelX, panelY+24, panelW, panelH-24)

	for i, id := range ids {
		col := int32(i) % cols
		row := int32(i) / cols

		x := startX + col*(itemW+8)
		y := startY + row*(itemH+8) - e.prefabBrowserScroll

		if y+itemH < panelY+24 || y > panelY+panelH {
			continue
		}

		itemHovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+itemW) &&
			mousePos.Y >= float32(y) && mousePos.Y <= float32(y+itemH)

		bgColor := colorBgElement
		if e.draggingPrefab && e.draggedPrefabID == id {
			bgColor = colorAccent
		} else if itemHovered {
			bgColor = colorBgHover
		}
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(itemW), Height: float32(itemH)}, 0.15, 4, bgColor)

		drawPrefabIcon(x, y, itemW)

		// Name without extension, truncated
		name := strings.TrimSuffix(strings.TrimSuffix(id, ".yaml"), ".yml")
		if len(name) > 10 {
			name = name[:9] + "…"
		}
		textW := rl.MeasureText(name, 13)
		drawTextEx(editorFont, name, x+(itemW-textW)/2, y+itemH-18, 13, colorTextSecondary)

		if itemHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.draggingPrefab {
			e.draggingPrefab = true
			e.draggedPrefabID = id
		}
	}

	rl.EndScissorMode()

	// Clamp scroll
	rows := (int32(len(ids)) + cols - 1) / cols
	maxScroll := rows*(itemH+8) - (panelH - 30)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.prefabBrowserScroll > maxScroll {
		e.prefabBrowserScroll = maxScroll
	}

	if len(ids) == 0 {
		drawTextEx(editorFont, "No prefabs in assets/prefabs/", panelX+20, panelY+60, 16, colorTextMuted)
	}

	// Drag indicator follows the cursor
	if e.draggingPrefab {
		drawTextEx(editorFont, e.draggedPrefabID, int32(mousePos.X)+10, int32(mousePos.Y)-8, 14, colorAccentLight)
	}

	// Drop: release over the viewport spawns an instance on the ground plane
	if e.draggingPrefab && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if !e.mouseInPanel() {
			pos := e.dropPosition(mousePos)
			if obj, err := e.world.Instantiate(e.draggedPrefabID, pos); err != nil {
				e.flash(fmt.Sprintf("Spawn failed: %v", err))
			} else {
				e.Select(obj)
				e.flash(fmt.Sprintf("Spawned %s", obj.Name))
			}
		}
		e.draggingPrefab = false
		e.draggedPrefabID = ""
	}
}

// dropPosition projects the mouse onto the ground plane, falling back to
// a point in front of the camera for rays that never cross it.
func (e *Editor) dropPosition(mousePos rl.Vector2) rl.Vector3 {
	cam := e.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(mousePos, cam)
	if ray.Direction.Y < -0.001 {
		t := -ray.Position.Y / ray.Direction.Y
		if t > 0 && t < 500 {
			return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
		}
	}
	forward, _ := e.getDirections()
	return rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, 8))
}

// drawPrefabIcon draws the cube glyph used for prefab tiles.
func drawPrefabIcon(x, y, itemW int32) {
	iconSize := int32(42)
	iconX := x + (itemW-iconSize)/2
	iconY := y + 8

	cubeColor := colorAccent
	cubeLight := colorAccentLight
	cubeDark := rl.NewColor(70, 64, 170, 255)

	rl.DrawRectangleRounded(rl.Rectangle{X: float32(iconX + 6), Y: float32(iconY + 6), Width: float32(iconSize - 12), Height: float32(iconSize - 12)}, 0.15, 4, cubeColor)
	rl.DrawRectangle(iconX+6, iconY+6, iconSize-12, 4, cubeLight)
	rl.DrawRectangle(iconX+iconSize-10, iconY+10, 4, iconSize-16, cubeDark)
	drawTextEx(editorFontBold, "P", iconX+17, iconY+13, 16, rl.White)
}
