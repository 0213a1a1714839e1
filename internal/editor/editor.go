//go:build !game

package editor

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Editor draws the hierarchy and inspector panels over the running scene and
// owns the drag&drop state between them.
type Editor struct {
	Active   bool
	Selected *engine.GameObject

	scene *engine.Scene

	hierarchyWidth  int32
	inspectorWidth  int32
	hierarchyScroll int32
	inspectorScroll int32

	// Drag&drop state: an object dragged out of the hierarchy, and the ref
	// field currently under the cursor (set per frame by drawRefField).
	dragging      bool
	draggedObject *engine.GameObject
	dropHovered   bool

	styleReady bool
}

func New(scene *engine.Scene) *Editor {
	return &Editor{
		scene:          scene,
		hierarchyWidth: 220,
		inspectorWidth: 300,
	}
}

// DragOrigin returns the object currently being dragged, or nil.
func (e *Editor) DragOrigin() *engine.GameObject {
	if !e.dragging {
		return nil
	}
	return e.draggedObject
}

// DrawUI draws both panels. Call between BeginDrawing/EndDrawing, after the
// scene has been rendered.
func (e *Editor) DrawUI() {
	if !e.Active {
		return
	}
	if !e.styleReady {
		initRayguiStyle()
		e.styleReady = true
	}

	e.dropHovered = false
	e.drawHierarchy()
	e.drawInspector()
	e.drawDragGhost()

	// Drop released outside any ref field just cancels the drag
	if e.dragging && !e.dropHovered && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		e.dragging = false
		e.draggedObject = nil
	}
}

// drawDragGhost renders the dragged object's name following the cursor.
func (e *Editor) drawDragGhost() {
	if !e.dragging || e.draggedObject == nil {
		return
	}
	mouse := rl.GetMousePosition()
	label := e.draggedObject.Name
	w := rl.MeasureText(label, 15)
	x := int32(mouse.X) + 12
	y := int32(mouse.Y) + 6
	rl.DrawRectangle(x-4, y-2, w+8, 20, colorBgHover)
	drawText(label, x, y, 15, colorTextPrimary)
}
