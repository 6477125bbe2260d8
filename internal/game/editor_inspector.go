package game

import (
	"fmt"
	"strconv"
	"strings"

	"inspect3d/internal/engine"
	"inspect3d/internal/inspect"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawInspector renders the selection's editor tree on the right. The
// layout tree is rebuilt by the inspect package; this file only walks it
// and maps each node to a widget.
func (e *Editor) drawInspector() {
	panelW := e.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := int32(36)
	panelH := int32(rl.GetScreenHeight()) - panelY

	// Panel background with subtle border
	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	if e.root == nil {
		drawTextEx(editorFont, "No selection", panelX+12, panelY+12, 16, colorTextMuted)
		return
	}

	// Fixed button area at bottom
	btnH := int32(26)
	btnAreaH := btnH + 20
	scrollableH := panelH - btnAreaH

	mousePos := rl.GetMousePosition()
	mouseInScrollArea := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+scrollableH)

	if mouseInScrollArea && !rl.IsMouseButtonDown(rl.MouseRightButton) && !e.showAddComponentMenu && !e.showOverrides {
		scroll := rl.GetMouseWheelMove()
		e.inspectorScroll -= int32(scroll * 20)
		if e.inspectorScroll < 0 {
			e.inspectorScroll = 0
		}
	}

	rl.BeginScissorMode(panelX, panelY, panelW, scrollableH)

	y := panelY + 8 - e.inspectorScroll

	// Selection header
	header := "Inspector"
	if len(e.selection) > 1 {
		header = fmt.Sprintf("Inspector (%d objects)", len(e.selection))
	}
	drawTextEx(editorFontBold, header, panelX+12, y, 18, colorTextSecondary)
	y += 26

	// Prefab bar when the whole selection links to a prefab
	y = e.drawPrefabBar(panelX, y, panelW)

	// Walk the stable layout root the editor tree produced
	for _, child := range e.root.Layout().Children {
		y = e.drawLayoutNode(child, panelX+12, y, panelW-24, 0)
	}

	// Clamp scroll to content
	totalHeight := y + e.inspectorScroll - panelY + 50
	maxScroll := totalHeight - scrollableH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.inspectorScroll > maxScroll {
		e.inspectorScroll = maxScroll
	}

	rl.EndScissorMode()

	// Fixed Add Component button at bottom (outside scissor mode)
	btnW := panelW - 40
	btnX := panelX + 20
	btnY := panelY + scrollableH + 10

	rl.DrawRectangle(panelX, panelY+scrollableH, panelW, btnAreaH, colorBgPanel)
	rl.DrawLine(panelX+12, panelY+scrollableH+2, panelX+panelW-12, panelY+scrollableH+2, rl.NewColor(40, 40, 55, 255))

	btnHovered := mousePos.X >= float32(btnX) && mousePos.X <= float32(btnX+btnW) &&
		mousePos.Y >= float32(btnY) && mousePos.Y <= float32(btnY+btnH)

	btnColor := colorBgElement
	txtColor := colorTextSecondary
	if btnHovered {
		btnColor = colorAccent
		txtColor = colorTextPrimary
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(btnX), Y: float32(btnY), Width: float32(btnW), Height: float32(btnH)}, 0.3, 6, btnColor)
	textW := rl.MeasureText("+ Add Component", 16)
	drawTextEx(editorFont, "+ Add Component", btnX+(btnW-textW)/2, btnY+5, 16, txtColor)

	clickedAddButton := false
	if btnHovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.showAddComponentMenu = !e.showAddComponentMenu
		if e.showAddComponentMenu {
			e.addComponentScroll = 0
		}
		clickedAddButton = true
	}

	if e.showAddComponentMenu {
		e.drawAddComponentMenu(btnX, btnY, btnW, clickedAddButton)
	}

	if e.showOverrides {
		e.drawOverridesPopup(panelX, panelY, panelW)
	}
}

// componentsSection returns the synthetic components editor of the
// current session, nil when the selection is not scene objects.
func (e *Editor) componentsSection() *inspect.ComponentsEditor {
	if e.root == nil {
		return nil
	}
	if ge, ok := e.root.Editor().(*inspect.GameObjectEditor); ok {
		return ge.Components()
	}
	return nil
}

// drawPrefabBar shows the prefab link of the selection with the
// Overrides and Apply actions.
func (e *Editor) drawPrefabBar(panelX, y, panelW int32) int32 {
	if !e.root.Values().HasReference() {
		return y
	}
	var prefabID string
	if len(e.selection) > 0 {
		prefabID = e.selection[0].Prefab.PrefabID
	}

	drawTextEx(editorFont, "Prefab", panelX+12, y+4, 14, colorTextMuted)
	drawTextEx(editorFontMono, prefabID, panelX+62, y+4, 14, colorAccentLight)
	y += 22

	btnH := int32(22)
	overridesW := int32(90)
	applyW := int32(60)

	if e.textButton(panelX+12, y, overridesW, btnH, "Overrides", e.showOverrides) {
		e.showOverrides = !e.showOverrides
		if e.showOverrides {
			e.diff = e.root.Diff()
		}
	}
	if e.textButton(panelX+12+overridesW+6, y, applyW, btnH, "Apply", false) {
		err := e.root.ApplyAll(func() error {
			for _, g := range e.selection {
				if !g.Prefab.IsLinked() {
					continue
				}
				if err := e.world.Store.ApplyInstance(g); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			e.flash(fmt.Sprintf("Apply failed: %v", err))
		} else {
			e.flash("Applied to prefab")
		}
		e.showOverrides = false
		e.diff = nil
	}
	y += btnH + 8

	rl.DrawLine(panelX+12, y, panelX+panelW-12, y, rl.NewColor(40, 40, 55, 255))
	return y + 8
}

// drawLayoutNode renders one layout node and its subtree, returning the
// next free Y. componentIdx carries the slot index for component groups.
func (e *Editor) drawLayoutNode(l *inspect.Layout, x, y, w int32, depth int32) int32 {
	switch ed := l.Editor.(type) {
	case *inspect.NumberEditor:
		return e.drawNumberField(l, ed, x, y, w)
	case *inspect.BoolEditor:
		return e.drawBoolField(l, ed, x, y, w)
	case *inspect.StringEditor:
		return e.drawStringField(l, ed, x, y, w)
	case *inspect.EnumEditor:
		return e.drawEnumField(l, ed, x, y, w)
	case *inspect.ReferenceEditor:
		return e.drawReferenceField(l, ed, x, y, w)
	case *inspect.SliceEditor:
		return e.drawSliceGroup(l, ed, x, y, w, depth)
	case *inspect.MapEditor:
		return e.drawMapGroup(l, ed, x, y, w, depth)
	case *inspect.ComponentsEditor:
		return e.drawComponentsGroup(l, ed, x, y, w, depth)
	}

	// Rows and groups without a leaf widget render their children.
	if l.Kind == inspect.LayoutRow {
		return e.drawRow(l, x, y, w, depth)
	}
	return e.drawGroup(l, x, y, w, depth)
}

// drawGroup renders a collapsible section. Expansion state persists in
// the project cache, keyed by the node's stable layout path.
func (e *Editor) drawGroup(l *inspect.Layout, x, y, w int32, depth int32) int32 {
	expanded := e.groupExpanded(l.Path)

	arrow := "v"
	if !expanded {
		arrow = ">"
	}
	headerH := int32(22)
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+headerH)

	if hovered {
		rl.DrawRectangle(x-4, y, w+8, headerH, colorBgHover)
	}
	drawTextEx(editorFontMono, arrow, x, y+3, 14, colorTextMuted)
	drawTextEx(editorFontBold, l.Title, x+16, y+2, 16, colorTextSecondary)
	e.maybeTooltip(l, hovered)

	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.setGroupExpanded(l.Path, !expanded)
	}
	y += headerH + 2

	if !expanded {
		return y + 2
	}
	for _, child := range l.Children {
		y = e.drawLayoutNode(child, x+12, y, w-12, depth+1)
	}
	return y + 4
}

// drawRow renders children side by side: the vector case, three scrub
// fields sharing one label line.
func (e *Editor) drawRow(l *inspect.Layout, x, y, w int32, depth int32) int32 {
	labelW := int32(70)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)

	n := int32(len(l.Children))
	if n == 0 {
		return y + 26
	}
	fieldW := (w - labelW - 4*(n-1)) / n
	fieldH := int32(22)
	maxY := y + fieldH + 4
	for i, child := range l.Children {
		cx := x + labelW + int32(i)*(fieldW+4)
		if num, ok := child.Editor.(*inspect.NumberEditor); ok {
			e.drawScrubField(child, num, cx, y, fieldW, fieldH, child.Title)
		} else {
			cy := e.drawLayoutNode(child, cx, y, fieldW, depth+1)
			if cy > maxY {
				maxY = cy
			}
		}
	}
	return maxY
}

// drawNumberField is a labeled scrub field on its own line.
func (e *Editor) drawNumberField(l *inspect.Layout, ed *inspect.NumberEditor, x, y, w int32) int32 {
	labelW := int32(110)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)
	hovered := e.drawScrubField(l, ed, x+labelW, y, w-labelW-40, 22, "")
	e.maybeTooltip(l, hovered)
	e.drawOverrideDot(l, ed.Values(), x-8, y)
	return y + 26
}

// drawScrubField draws the drag-to-scrub float widget. Dragging scrubs
// with the layout path as the coalescing token; a click without movement
// enters type-in mode; Enter commits as a discrete edit.
func (e *Editor) drawScrubField(l *inspect.Layout, ed *inspect.NumberEditor, x, y, w, h int32, inlineLabel string) bool {
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	editMode := e.activeInputID == l.Path
	isDragging := e.fieldDragging && e.fieldDragID == l.Path
	readOnly := ed.ReadOnly()

	if hovered && !editMode && !readOnly {
		e.fieldHoveredAny = true
	}

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if (hovered || isDragging) && !readOnly {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.2, 4, 1, colorAccent)
	}
	if inlineLabel != "" {
		drawTextEx(editorFont, inlineLabel, x+4, y+4, 13, colorTextMuted)
	}
	textX := x + 6
	if inlineLabel != "" {
		textX = x + 18
	}

	if readOnly {
		drawTextEx(editorFontMono, ed.Display(), textX, y+5, 15, colorTextMuted)
		return hovered
	}

	// Drag-to-scrub (when not in edit mode)
	if !editMode {
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			v, ok := ed.Float()
			if !ok {
				v = 0
			}
			e.fieldDragging = true
			e.fieldDragID = l.Path
			e.fieldDragStartX = mousePos.X
			e.fieldDragStartVal = v
		}

		if isDragging {
			if rl.IsMouseButtonDown(rl.MouseLeftButton) {
				deltaX := mousePos.X - e.fieldDragStartX
				// Sensitivity: 100 pixels = 1.0 change, shift for fine control
				sensitivity := float64(0.01)
				if rl.IsKeyDown(rl.KeyLeftShift) {
					sensitivity = 0.001
				}
				if deltaX != 0 {
					ed.Scrub(e.fieldDragStartVal+float64(deltaX)*sensitivity, l.Path)
				}
			} else {
				dragDist := mousePos.X - e.fieldDragStartX
				if dragDist > -2 && dragDist < 2 {
					// Was a click, not a drag - enter edit mode
					e.activeInputID = l.Path
					e.inputTextValue = ed.Display()
					if e.inputTextValue == inspect.Mixed {
						e.inputTextValue = ""
					}
				}
				e.fieldDragging = false
				e.fieldDragID = ""
			}
		}
	}

	if editMode {
		drawTextEx(editorFontMono, e.inputTextValue+"_", textX, y+5, 15, colorTextPrimary)
		committed, _ := e.handleTextInput(hovered, numericChars)
		if committed {
			if parsed, err := strconv.ParseFloat(e.inputTextValue, 64); err == nil {
				ed.Commit(parsed)
			}
			e.clearTextInput()
		}
	} else {
		drawTextEx(editorFontMono, ed.Display(), textX, y+5, 15, colorTextSecondary)
	}
	return hovered
}

func (e *Editor) drawBoolField(l *inspect.Layout, ed *inspect.BoolEditor, x, y, w int32) int32 {
	labelW := int32(110)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)

	boxH := int32(18)
	bounds := rl.Rectangle{X: float32(x + labelW), Y: float32(y + 2), Width: float32(boxH), Height: float32(boxH)}

	value, mixed := ed.Checked()
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= bounds.X && mousePos.X <= bounds.X+bounds.Width &&
		mousePos.Y >= bounds.Y && mousePos.Y <= bounds.Y+bounds.Height
	e.maybeTooltip(l, hovered)

	if ed.ReadOnly() {
		rl.DrawRectangleRounded(bounds, 0.2, 4, colorBgElement)
		if value {
			drawTextEx(editorFontBold, "x", x+labelW+5, y+2, 15, colorTextMuted)
		}
		return y + 26
	}

	if mixed {
		// Indeterminate: dash instead of a check, first click aligns all
		rl.DrawRectangleRounded(bounds, 0.2, 4, colorBgElement)
		drawTextEx(editorFontBold, inspect.Mixed, x+labelW+5, y+2, 15, colorTextMuted)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			ed.Toggle()
		}
	} else {
		newVal := gui.CheckBox(bounds, "", value)
		if newVal != value {
			ed.Toggle()
		}
	}
	e.drawOverrideDot(l, ed.Values(), x-8, y)
	return y + 26
}

func (e *Editor) drawStringField(l *inspect.Layout, ed *inspect.StringEditor, x, y, w int32) int32 {
	labelW := int32(110)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)

	fieldX := x + labelW
	fieldW := w - labelW - 40
	fieldH := int32(22)

	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(fieldX) && mousePos.X <= float32(fieldX+fieldW) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+fieldH)
	editMode := e.activeInputID == l.Path
	readOnly := ed.ReadOnly()

	bgColor := colorBgElement
	if editMode {
		bgColor = colorBgActive
	} else if hovered && !readOnly {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(fieldX), Y: float32(y), Width: float32(fieldW), Height: float32(fieldH)}, 0.2, 4, bgColor)
	if editMode {
		rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(fieldX), Y: float32(y), Width: float32(fieldW), Height: float32(fieldH)}, 0.2, 4, 1, colorAccent)
	}
	e.maybeTooltip(l, hovered)

	if editMode {
		drawTextEx(editorFont, e.inputTextValue+"_", fieldX+6, y+4, 15, colorTextPrimary)
		committed, _ := e.handleTextInput(hovered, nil)
		if committed {
			ed.Commit(e.inputTextValue)
			e.clearTextInput()
		}
	} else {
		text := ed.Text()
		color := colorTextSecondary
		if text == inspect.Mixed || readOnly {
			color = colorTextMuted
		}
		drawTextEx(editorFont, text, fieldX+6, y+4, 15, color)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !readOnly {
			e.activeInputID = l.Path
			e.inputTextValue = text
			if e.inputTextValue == inspect.Mixed {
				e.inputTextValue = ""
			}
		}
	}
	e.drawOverrideDot(l, ed.Values(), x-8, y)
	return y + 26
}

func (e *Editor) drawEnumField(l *inspect.Layout, ed *inspect.EnumEditor, x, y, w int32) int32 {
	labelW := int32(110)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)

	opts := ed.Options()
	if len(opts) == 0 {
		drawTextEx(editorFont, "(no options)", x+labelW, y+4, 15, colorTextMuted)
		return y + 26
	}
	bounds := rl.Rectangle{X: float32(x + labelW), Y: float32(y), Width: float32(w - labelW - 40), Height: 22}
	cur := ed.Current()

	if ed.ReadOnly() {
		label := inspect.Mixed
		if cur >= 0 {
			label = opts[cur]
		}
		drawTextEx(editorFont, label, x+labelW+6, y+4, 15, colorTextMuted)
		return y + 26
	}

	if cur < 0 {
		// Mixed selection: clicking aligns everyone to the first option
		mousePos := rl.GetMousePosition()
		hovered := mousePos.X >= bounds.X && mousePos.X <= bounds.X+bounds.Width &&
			mousePos.Y >= bounds.Y && mousePos.Y <= bounds.Y+bounds.Height
		rl.DrawRectangleRounded(bounds, 0.2, 4, colorBgElement)
		drawTextEx(editorFont, inspect.Mixed, int32(bounds.X)+6, y+4, 15, colorTextMuted)
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			ed.Select(0)
		}
	} else {
		next := gui.ComboBox(bounds, strings.Join(opts, ";"), int32(cur))
		if int(next) != cur {
			ed.Select(int(next))
		}
	}
	e.drawOverrideDot(l, ed.Values(), x-8, y)
	return y + 26
}

func (e *Editor) drawReferenceField(l *inspect.Layout, ed *inspect.ReferenceEditor, x, y, w int32) int32 {
	labelW := int32(110)
	drawTextEx(editorFont, l.Title, x, y+4, 15, colorTextMuted)

	fieldX := x + labelW
	fieldW := w - labelW - 60
	fieldH := int32(22)

	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(fieldX) && mousePos.X <= float32(fieldX+fieldW) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+fieldH)

	picking := e.pickingRef == ed
	bgColor := colorBgElement
	if picking {
		bgColor = colorSelection
	} else if hovered && !ed.ReadOnly() {
		bgColor = colorBgHover
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(fieldX), Y: float32(y), Width: float32(fieldW), Height: float32(fieldH)}, 0.2, 4, bgColor)

	name := ed.DisplayName()
	color := colorAccentLight
	if name == "(none)" || name == inspect.Mixed {
		color = colorTextMuted
	}
	drawTextEx(editorFont, name, fieldX+6, y+4, 15, color)

	if !ed.ReadOnly() {
		// Click arms the picker; the next hierarchy click assigns.
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.pickingRef = ed
			e.flash("Pick an object in the hierarchy")
		}
		// Clear button
		if e.textButton(fieldX+fieldW+4, y, 20, fieldH, "x", false) {
			ed.Assign(nil)
			if picking {
				e.pickingRef = nil
			}
		}
	}
	e.drawOverrideDot(l, ed.Values(), x-8, y)
	return y + 26
}

func (e *Editor) drawSliceGroup(l *inspect.Layout, ed *inspect.SliceEditor, x, y, w int32, depth int32) int32 {
	headerH := int32(22)
	drawTextEx(editorFontBold, l.Title, x, y+2, 16, colorTextSecondary)

	if ed.Mixed() {
		drawTextEx(editorFont, "lengths differ", x+w-100, y+4, 13, colorTextMuted)
		return y + headerH + 4
	}
	if !ed.ReadOnly() && e.textButton(x+w-24, y, 20, 20, "+", false) {
		ed.Append()
		return y + headerH + 4
	}
	y += headerH + 2

	for i, child := range l.Children {
		rowY := y
		y = e.drawLayoutNode(child, x+12, y, w-40, depth+1)
		if !ed.ReadOnly() && e.textButton(x+w-24, rowY, 20, 20, "-", false) {
			ed.Remove(i)
			return y
		}
	}
	return y + 4
}

func (e *Editor) drawMapGroup(l *inspect.Layout, ed *inspect.MapEditor, x, y, w int32, depth int32) int32 {
	headerH := int32(22)
	drawTextEx(editorFontBold, l.Title, x, y+2, 16, colorTextSecondary)

	keyInputID := l.Path + "#newkey"
	if e.activeInputID == keyInputID {
		fieldX := x + w - 130
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(fieldX), Y: float32(y), Width: 126, Height: 20}, 0.2, 4, colorBgActive)
		drawTextEx(editorFontMono, e.inputTextValue+"_", fieldX+4, y+3, 14, colorTextPrimary)
		committed, _ := e.handleTextInput(false, nil)
		if committed {
			if e.inputTextValue != "" {
				ed.Put(e.inputTextValue)
			}
			e.clearTextInput()
		}
	} else if !ed.ReadOnly() && e.textButton(x+w-24, y, 20, 20, "+", false) {
		e.activeInputID = keyInputID
		e.inputTextValue = ""
	}
	y += headerH + 2

	for _, child := range l.Children {
		rowY := y
		y = e.drawLayoutNode(child, x+12, y, w-40, depth+1)
		if !ed.ReadOnly() && e.textButton(x+w-24, rowY, 20, 20, "-", false) {
			ed.DeleteKey(child.Title)
			return y
		}
	}
	return y + 4
}

// drawComponentsGroup renders the synthetic components section: one
// collapsible group per attached component, each with a remove button,
// plus markers for components added or removed relative to the prefab.
func (e *Editor) drawComponentsGroup(l *inspect.Layout, ed *inspect.ComponentsEditor, x, y, w int32, depth int32) int32 {
	rl.DrawLine(x, y, x+w, y, rl.NewColor(40, 40, 55, 255))
	y += 8
	drawTextEx(editorFontBold, l.Title, x, y, 18, colorTextSecondary)
	y += 26

	if ed.Mixed() {
		drawTextEx(editorFont, "Selection has differing components", x+4, y, 14, colorTextMuted)
		return y + 20
	}

	removeIdx := -1
	for i, child := range l.Children {
		// Component header row with remove button
		headerY := y
		y = e.drawGroup(child, x, y, w-28, depth+1)
		if !ed.ReadOnly() && e.textButton(x+w-24, headerY, 20, 20, "x", false) {
			removeIdx = i
		}
		y += 4
	}
	if removeIdx >= 0 {
		ed.Remove(removeIdx)
	}

	// Structural prefab drift
	for _, name := range ed.AddedScripts() {
		drawTextEx(editorFont, "+ "+name+" (not in prefab)", x+4, y, 13, colorOverride)
		y += 18
	}
	for _, name := range ed.RemovedScripts() {
		drawTextEx(editorFont, "- "+name+" (removed from prefab)", x+4, y, 13, colorRemoved)
		y += 18
	}
	return y + 4
}

// drawOverrideDot marks a field whose live value differs from the
// prefab default.
func (e *Editor) drawOverrideDot(l *inspect.Layout, values *inspect.ValueContainer, x, y int32) {
	if values == nil || !values.HasReference() {
		return
	}
	if values.ModifiedFromReference() {
		rl.DrawCircle(x+2, y+11, 3, colorOverride)
	}
}

// drawOverridesPopup lists the prefab override tree with revert actions.
func (e *Editor) drawOverridesPopup(panelX, panelY, panelW int32) {
	popW := panelW - 24
	popX := panelX + 12
	popY := panelY + 80
	popH := int32(300)

	rl.DrawRectangleRounded(rl.Rectangle{X: float32(popX), Y: float32(popY), Width: float32(popW), Height: float32(popH)}, 0.05, 4, colorBgDark)
	rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(popX), Y: float32(popY), Width: float32(popW), Height: float32(popH)}, 0.05, 4, 1, colorAccent)

	drawTextEx(editorFontBold, "Prefab Overrides", popX+12, popY+8, 16, colorTextSecondary)
	if e.textButton(popX+popW-28, popY+6, 20, 20, "x", false) {
		e.showOverrides = false
		e.diff = nil
		return
	}

	y := popY + 34
	if e.diff == nil {
		drawTextEx(editorFont, "No overrides", popX+12, y, 15, colorTextMuted)
	} else {
		reverted := false
		e.drawDiffNode(e.diff, popX+12, y, popW-24, 0, &reverted)
		if reverted {
			// Revert ran inside the editor tree; recompute on a fresh tree.
			e.root.Refresh()
			e.diff = e.root.Diff()
			return
		}
		if e.textButton(popX+12, popY+popH-30, 90, 22, "Revert All", false) {
			e.diff.Revert()
			e.root.Refresh()
			e.diff = e.root.Diff()
			e.flash("Reverted all overrides")
		}
	}
}

func (e *Editor) drawDiffNode(n *inspect.DiffNode, x, y, w int32, depth int32, reverted *bool) int32 {
	if n == nil {
		return y
	}
	indent := x + depth*14

	if depth > 0 || len(n.Children) == 0 {
		label := n.Label
		color := colorTextSecondary
		if n.Added {
			label = "+ " + label
			color = colorOverride
		} else if n.Removed {
			label = "- " + label
			color = colorRemoved
		}
		drawTextEx(editorFont, label, indent, y+2, 14, color)
		if len(n.Children) == 0 || n.Added || n.Removed {
			if e.textButton(x+w-60, y, 56, 18, "Revert", false) {
				n.Revert()
				*reverted = true
				return y
			}
		}
		y += 22
	}
	for _, c := range n.Children {
		y = e.drawDiffNode(c, x, y, w, depth+1, reverted)
		if *reverted {
			return y
		}
	}
	return y
}

// drawAddComponentMenu draws the dropdown for adding components and
// scripts, appearing above the button. justOpened prevents the menu from
// closing on the frame it was opened.
func (e *Editor) drawAddComponentMenu(x, btnY, w int32, justOpened bool) {
	ce := e.componentsSection()
	if ce == nil {
		e.showAddComponentMenu = false
		return
	}

	itemH := int32(26)
	maxVisibleItems := int32(12)

	builtins := engine.RegisteredComponentTypes()
	scripts := engine.GetRegisteredScripts()

	totalItems := int32(len(builtins))
	if len(scripts) > 0 {
		totalItems += 1 + int32(len(scripts)) // +1 for separator
	}

	contentH := totalItems * itemH
	menuH := contentH
	needsScroll := totalItems > maxVisibleItems
	if needsScroll {
		menuH = maxVisibleItems * itemH
	}

	menuY := btnY - menuH - 4

	mousePos := rl.GetMousePosition()
	mouseInMenu := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(menuY) && mousePos.Y <= float32(menuY+menuH)

	if mouseInMenu {
		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			e.addComponentScroll -= int32(wheel * 26 * 2)
			maxScroll := contentH - menuH
			if maxScroll < 0 {
				maxScroll = 0
			}
			if e.addComponentScroll < 0 {
				e.addComponentScroll = 0
			}
			if e.addComponentScroll > maxScroll {
				e.addComponentScroll = maxScroll
			}
		}
	}

	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(menuY), Width: float32(w), Height: float32(menuH)}, 0.1, 4, colorBgPanel)
	rl.DrawRectangleRoundedLinesEx(rl.Rectangle{X: float32(x), Y: float32(menuY), Width: float32(w), Height: float32(menuH)}, 0.1, 4, 1, colorBorder)

	rl.BeginScissorMode(x, menuY, w, menuH)

	itemIndex := int32(0)
	drawItem := func(label string, accent bool) bool {
		itemY := menuY + itemIndex*itemH - e.addComponentScroll
		itemIndex++
		if itemY+itemH < menuY || itemY > menuY+menuH {
			return false
		}
		hovered := mouseInMenu && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		if hovered {
			rl.DrawRectangle(x+2, itemY, w-4, itemH, colorAccent)
		}
		txtColor := colorTextSecondary
		if accent {
			txtColor = colorAccentLight
		}
		if hovered {
			txtColor = colorTextPrimary
		}
		drawTextEx(editorFont, label, x+12, itemY+5, 16, txtColor)
		return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
	}

	for _, name := range builtins {
		if drawItem(name, false) {
			ce.AddBuiltin(name)
			e.showAddComponentMenu = false
			e.flash("Added " + name)
		}
	}

	if len(scripts) > 0 {
		sepY := menuY + itemIndex*itemH - e.addComponentScroll
		if sepY+itemH >= menuY && sepY <= menuY+menuH {
			rl.DrawRectangle(x+10, sepY+itemH/2, w-20, 1, colorBorder)
			drawTextEx(editorFont, "Scripts", x+12, sepY+5, 14, colorTextMuted)
		}
		itemIndex++

		for _, name := range scripts {
			if drawItem(name, true) {
				ce.AddScript(name)
				e.showAddComponentMenu = false
				e.flash("Added " + name)
			}
		}
	}

	rl.EndScissorMode()

	if needsScroll {
		scrollBarW := int32(4)
		scrollBarX := x + w - scrollBarW - 4
		scrollTrackH := menuH - 8
		maxScroll := contentH - menuH
		scrollThumbH := int32(float32(scrollTrackH) * float32(menuH) / float32(contentH))
		if scrollThumbH < 20 {
			scrollThumbH = 20
		}
		scrollThumbY := menuY + 4 + int32(float32(scrollTrackH-scrollThumbH)*float32(e.addComponentScroll)/float32(maxScroll))

		rl.DrawRectangleRounded(rl.Rectangle{X: float32(scrollBarX), Y: float32(menuY + 4), Width: float32(scrollBarW), Height: float32(scrollTrackH)}, 0.5, 4, colorBgDark)
		rl.DrawRectangleRounded(rl.Rectangle{X: float32(scrollBarX), Y: float32(scrollThumbY), Width: float32(scrollBarW), Height: float32(scrollThumbH)}, 0.5, 4, colorAccent)
	}

	if !justOpened && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !mouseInMenu {
		e.showAddComponentMenu = false
	}
}

// --- small shared widgets ---

// textButton draws a rounded pill button and reports a click.
func (e *Editor) textButton(x, y, w, h int32, label string, active bool) bool {
	mousePos := rl.GetMousePosition()
	hovered := mousePos.X >= float32(x) && mousePos.X <= float32(x+w) &&
		mousePos.Y >= float32(y) && mousePos.Y <= float32(y+h)

	bgColor := colorBgElement
	txtColor := colorTextSecondary
	if active {
		bgColor = colorAccent
		txtColor = colorTextPrimary
	} else if hovered {
		bgColor = colorBgHover
		txtColor = colorTextPrimary
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.4, 6, bgColor)
	textW := rl.MeasureText(label, 14)
	drawTextEx(editorFont, label, x+(w-textW)/2, y+(h-16)/2+1, 14, txtColor)

	return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// numericChars restricts type-in to float syntax.
func numericChars(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' || ch == 'e' || ch == '+'
}

// handleTextInput processes typing into the active field. Returns
// committed when Enter, Tab or a click outside confirms the text, and
// canceled when Escape abandons it.
func (e *Editor) handleTextInput(hovered bool, filter func(rune) bool) (committed, canceled bool) {
	for {
		key := rl.GetCharPressed()
		if key == 0 {
			break
		}
		ch := rune(key)
		if filter == nil || filter(ch) {
			e.inputTextValue += string(ch)
		}
	}

	if rl.IsKeyPressed(rl.KeyBackspace) && len(e.inputTextValue) > 0 {
		e.inputTextValue = e.inputTextValue[:len(e.inputTextValue)-1]
	}

	clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside {
		return true, false
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		e.clearTextInput()
		return false, true
	}
	return false, false
}

func (e *Editor) clearTextInput() {
	e.activeInputID = ""
	e.inputTextValue = ""
}

// maybeTooltip shows a member's tooltip next to the cursor after hover.
func (e *Editor) maybeTooltip(l *inspect.Layout, hovered bool) {
	if !hovered || l.Tooltip == "" {
		return
	}
	mousePos := rl.GetMousePosition()
	textW := rl.MeasureText(l.Tooltip, 13)
	tx := int32(mousePos.X) + 14
	ty := int32(mousePos.Y) + 18
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(tx - 4), Y: float32(ty - 2), Width: float32(textW + 12), Height: 20}, 0.3, 4, colorBgDark)
	drawTextEx(editorFont, l.Tooltip, tx, ty, 13, colorTextSecondary)
}

// groupExpanded reads a group's persisted expansion state; groups start
// expanded.
func (e *Editor) groupExpanded(path string) bool {
	if e.cache == nil {
		return true
	}
	return e.cache.Get("expand:"+path) != "0"
}

func (e *Editor) setGroupExpanded(path string, expanded bool) {
	if e.cache == nil {
		return
	}
	e.cache.SetBool("expand:"+path, expanded)
}
