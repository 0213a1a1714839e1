//go:build !game

package editor

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHierarchy draws the scene tree on the left. Rows are the drag source
// for reference fields in the inspector.
func (e *Editor) drawHierarchy() {
	panelX := int32(0)
	panelY := int32(0)
	panelW := e.hierarchyWidth
	panelH := int32(rl.GetScreenHeight())

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX+panelW-2, panelY, 2, panelH, colorBorder)

	drawText("Hierarchy", panelX+12, panelY+8, 18, colorTextSecondary)

	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)

	if mouseInPanel {
		scroll := rl.GetMouseWheelMove()
		e.hierarchyScroll -= int32(scroll * 20)
		if e.hierarchyScroll < 0 {
			e.hierarchyScroll = 0
		}
	}

	itemH := int32(22)
	rows := e.flattenTree()

	maxScroll := int32(len(rows))*itemH - panelH + 40
	if maxScroll < 0 {
		maxScroll = 0
	}
	if e.hierarchyScroll > maxScroll {
		e.hierarchyScroll = maxScroll
	}

	rl.BeginScissorMode(panelX, panelY+28, panelW, panelH-28)

	y := panelY + 32
	for i, row := range rows {
		itemY := y + int32(i)*itemH - e.hierarchyScroll
		if itemY+itemH < panelY+28 || itemY > panelY+panelH {
			continue
		}

		hovered := mouseInPanel && mousePos.Y >= float32(itemY) && mousePos.Y < float32(itemY+itemH)
		selected := e.Selected == row.object

		if selected {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorSelection)
			rl.DrawRectangle(panelX, itemY, 3, itemH, colorAccent)
		} else if hovered {
			rl.DrawRectangle(panelX, itemY, panelW, itemH, colorBgHover)
		}

		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.dragging {
			e.Selected = row.object
			e.dragging = true
			e.draggedObject = row.object
		}

		indent := panelX + 12 + int32(row.depth)*14
		textColor := colorTextSecondary
		if !row.object.Active {
			textColor = colorTextMuted
		}
		drawText(row.object.Name, indent, itemY+3, 15, textColor)
	}

	rl.EndScissorMode()
}

type hierarchyRow struct {
	object *engine.GameObject
	depth  int
}

// flattenTree lists scene roots depth-first with their nesting depth.
func (e *Editor) flattenTree() []hierarchyRow {
	var rows []hierarchyRow
	var walk func(g *engine.GameObject, depth int)
	walk = func(g *engine.GameObject, depth int) {
		rows = append(rows, hierarchyRow{object: g, depth: depth})
		for _, child := range g.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range e.scene.Roots() {
		walk(root, 0)
	}
	return rows
}
