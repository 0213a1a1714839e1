//go:build !game

package editor

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawRefField draws a drop slot for a ConstrainedRef owned by owner.
// While a hierarchy drag hovers the slot, the tint shows whether the dragged
// object satisfies the ref's relation constraint; releasing over the slot
// assigns it only when allowed.
func (e *Editor) drawRefField(x, y, w int32, owner *engine.GameObject, ref *engine.ConstrainedRef) int32 {
	h := int32(22)
	bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}

	mousePos := rl.GetMousePosition()
	hovered := rl.CheckCollisionPointRec(mousePos, bounds)

	rl.DrawRectangleRec(bounds, colorBgElement)

	if e.dragging && hovered {
		e.dropHovered = true
		if ref.Accepts(owner, e.draggedObject) {
			rl.DrawRectangleRec(bounds, colorDropValid)
		} else {
			rl.DrawRectangleRec(bounds, colorDropInvalid)
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			ref.SetIfAllowed(owner, e.draggedObject)
			e.dragging = false
			e.draggedObject = nil
		}
	}

	label := "None (" + ref.Relation.String() + ")"
	labelColor := colorTextMuted
	if target := ref.Get(owner.Scene); target != nil {
		label = target.Name
		labelColor = colorTextPrimary
	}
	drawText(label, x+6, y+3, 15, labelColor)

	// Right-click clears the slot
	if hovered && rl.IsMouseButtonPressed(rl.MouseRightButton) {
		ref.Clear()
	}

	rl.DrawRectangleLinesEx(bounds, 1, colorBorder)
	return y + h
}
