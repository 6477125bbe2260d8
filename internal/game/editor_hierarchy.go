package game

import (
	"fmt"

	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHierarchy draws the scene hierarchy panel on the left.
func (e *Editor) drawHierarchy() {
	panelX := int32(0)
	panelY := int32(36)
	panelW := e.hierarchyWidth
	panelH := int32(rl.GetScreenHeight()) - panelY

	// Panel background with subtle border
	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	// Resize handle - slightly thicker border on right edge
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)

	// Header
	drawTextEx(editorFontBold, "Hierarchy", panelX+12, panelY+8, 18, colorTextSecondary)

	// "New Object" button - rounded pill
	btnX := panelX + panelW - 62
	btnY := panelY + 6
	btnW := int32(54)
	btnH := int32(22)

	mousePos := rl.GetMousePosition()
	btnHovered := mousePos.X >= float32(btnX) && mousePos.X <= float32(btnX+btnW) &&
		mousePos.Y >= float32(btnY) && mousePos.Y <= float32(btnY+btnH)

	btnColor := colorBgElement
	textColor := colorTextSecondary
	if btnHovered {
		btnColor = colorAccent
		textColor = colorTextPrimary
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(btnX), Y: float32(btnY), Width: float32(btnW), Height: float32(btnH)}, 0.5, 6, btnColor)
	drawTextEx(editorFont, "+ New", btnX+8, btnY+3, 16, textColor)

	clickedNewButton := false
	if btnHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.createNewGameObject()
		clickedNewButton = true
	}

	// Reference picking banner: the next click assigns instead of selecting
	if e.pickingRef != nil {
		rl.DrawRectangle(panelX, panelY+24, panelW, 20, rl.NewColor(108, 99, 255, 40))
		drawTextEx(editorFont, "Pick a target...", panelX+12, panelY+26, 14, colorAccentLight)
	}

	y := panelY + 28
	if e.pickingRef != nil {
		y += 20
	}

	// Scroll with mouse wheel when hovering hierarchy
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	if mouseInPanel && !rl.IsMouseButtonDown(rl.MouseRightButton) {
		scroll := rl.GetMouseWheelMove()
		e.hierarchyScroll -= int32(scroll * 20)
		if e.hierarchyScroll < 0 {
			e.hierarchyScroll = 0
		}
	}

	itemH := int32(22)
	objects := e.world.Scene.GameObjects
	maxScroll := int32(len(objects))*itemH - panelH + 30
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.hierarchyScroll > maxScroll {
		e.hierarchyScroll = maxScroll
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	// Clip to panel area
	rl.BeginScissorMode(panelX, panelY+24, panelW, panelH-24)

	for i, g := range objects {
		itemY := y + int32(i)*itemH - e.hierarchyScroll

		// Skip if off screen
		if itemY+itemH < panelY+24 || itemY > panelY+panelH {
			continue
		}

		// Hover highlight
		hovered := mouseInPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		selected := e.selected(g)

		if selected {
			// Selected - indigo tint
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent) // Left accent bar
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !clickedNewButton {
			if e.pickingRef != nil {
				// Resolve the armed reference pick, selection stays put
				e.pickingRef.Assign(g)
				e.pickingRef = nil
				e.flash(fmt.Sprintf("Assigned %s", g.Name))
			} else {
				now := rl.GetTime()
				isDoubleClick := (now-e.lastHierarchyClick < 0.3) && (e.lastClickedObject == g)

				if ctrl {
					e.toggleSelect(g)
				} else {
					e.Select(g)
				}

				if isDoubleClick {
					// Double-click: focus camera on object
					e.focusOnObject(g)
				}

				e.lastHierarchyClick = now
				e.lastClickedObject = g
			}
		}

		txtColor := colorTextSecondary
		if selected {
			txtColor = colorAccentLight
		}
		if !g.Active {
			txtColor = colorTextMuted
		}
		drawTextEx(editorFont, g.Name, panelX+12, itemY+3, 16, txtColor)

		// Prefab instances get a small marker on the right
		if g.Prefab.IsLinked() {
			drawTextEx(editorFontMono, "P", panelX+panelW-18, itemY+3, 14, colorAccent)
		}
	}

	rl.EndScissorMode()

	// Object count at the bottom
	drawTextEx(editorFontMono, fmt.Sprintf("%d objects", len(objects)), panelX+12, panelY+panelH-20, 13, colorTextMuted)
}

// focusOnObject moves the fly camera to frame the given object.
func (e *Editor) focusOnObject(g *engine.GameObject) {
	forward, _ := e.getDirections()
	e.camera.Position = rl.Vector3Subtract(g.Transform.Position, rl.Vector3Scale(forward, 8))
}

// createNewGameObject creates a new empty GameObject and adds it to the scene.
func (e *Editor) createNewGameObject() {
	// Generate unique name
	baseName := "GameObject"
	name := baseName
	count := 1
	for e.world.Scene.FindByName(name) != nil {
		name = fmt.Sprintf("%s (%d)", baseName, count)
		count++
	}

	obj := engine.NewGameObject(name)

	// Position in front of camera
	forward, _ := e.getDirections()
	obj.Transform.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, 5))

	e.world.Scene.AddGameObject(obj)
	e.Select(obj)
	e.flash(fmt.Sprintf("Created %s", name))
}
