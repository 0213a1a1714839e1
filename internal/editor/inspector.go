//go:build !game

package editor

import (
	"fmt"

	"github.com/mob-hanzawa/commonlib/internal/components"
	"github.com/mob-hanzawa/commonlib/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawInspector draws the selected object's inspector on the right.
func (e *Editor) drawInspector() {
	if e.Selected == nil {
		return
	}

	panelW := e.inspectorWidth
	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := int32(0)
	panelH := int32(rl.GetScreenHeight())

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	mousePos := rl.GetMousePosition()
	mouseInPanel := mousePos.X >= float32(panelX) && mousePos.X <= float32(panelX+panelW) &&
		mousePos.Y >= float32(panelY) && mousePos.Y <= float32(panelY+panelH)
	if mouseInPanel {
		scroll := rl.GetMouseWheelMove()
		e.inspectorScroll -= int32(scroll * 20)
		if e.inspectorScroll < 0 {
			e.inspectorScroll = 0
		}
	}

	rl.BeginScissorMode(panelX, panelY, panelW, panelH)
	defer rl.EndScissorMode()

	y := panelY + 8 - e.inspectorScroll

	drawText(e.Selected.Name, panelX+12, y, 18, colorTextPrimary)
	drawText(fmt.Sprintf("UID %d", e.Selected.UID), panelX+12, y+22, 13, colorTextMuted)
	y += 44

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
	y += 10

	y = e.drawTransformSection(panelX, y, panelW)

	rl.DrawLine(panelX+12, y+2, panelX+panelW-12, y+2, rl.NewColor(40, 40, 55, 255))
	y += 10

	drawText("Components", panelX+12, y, 18, colorTextSecondary)
	y += 26

	for _, c := range e.Selected.Components() {
		y = e.drawComponentEntry(panelX, y, panelW, c) + 8
	}
}

func (e *Editor) drawTransformSection(panelX, y, panelW int32) int32 {
	t := &e.Selected.Transform
	drawText("Transform", panelX+12, y, 18, colorTextSecondary)
	y += 24
	drawText(fmt.Sprintf("Position  %.1f  %.1f", t.Position.X, t.Position.Y), panelX+20, y, 15, colorTextMuted)
	y += 20
	drawText(fmt.Sprintf("Rotation  %.1f", t.Rotation), panelX+20, y, 15, colorTextMuted)
	y += 20
	drawText(fmt.Sprintf("Scale     %.2f  %.2f", t.Scale.X, t.Scale.Y), panelX+20, y, 15, colorTextMuted)
	return y + 24
}

// drawComponentEntry draws a component header plus its custom section.
func (e *Editor) drawComponentEntry(panelX, y, panelW int32, c engine.Component) int32 {
	name := "Component"
	if s, ok := c.(engine.Serializable); ok {
		name = s.TypeName()
	} else {
		name = fmt.Sprintf("%T", c)
	}
	rl.DrawRectangle(panelX+8, y, panelW-16, 22, colorBgElement)
	drawText(name, panelX+16, y+3, 15, colorTextPrimary)
	y += 28

	switch comp := c.(type) {
	case *components.ParallaxCamera:
		y = e.drawParallaxSection(panelX, y, panelW, comp)
	case *components.FlipbookAnimation:
		y = e.drawFlipbookSection(panelX, y, panelW, comp)
	}
	return y
}

// drawParallaxSection is the custom inspector for ParallaxCamera: zoom and
// smoothing sliders, per-layer factors, and the constrained follow-target
// reference field.
func (e *Editor) drawParallaxSection(panelX, y, panelW int32, p *components.ParallaxCamera) int32 {
	sliderW := float32(panelW - 130)
	sliderX := float32(panelX + 90)

	drawText("Zoom", panelX+20, y+2, 15, colorTextMuted)
	p.Camera.Zoom = gui.Slider(
		rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: 18},
		"", fmt.Sprintf("%.2f", p.Camera.Zoom), p.Camera.Zoom, 0.1, 4)
	y += 24

	drawText("Smoothing", panelX+20, y+2, 15, colorTextMuted)
	p.Smoothing = gui.Slider(
		rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: 18},
		"", fmt.Sprintf("%.2f", p.Smoothing), p.Smoothing, 0, 0.99)
	y += 28

	drawText("Follow Target", panelX+20, y+2, 15, colorTextMuted)
	y += 20
	y = e.drawRefField(panelX+20, y, panelW-40, e.Selected, &p.Target)
	y += 6

	for i := range p.Layers {
		layer := &p.Layers[i]
		drawText(layer.Name, panelX+20, y+2, 15, colorTextMuted)
		layer.Factor.X = gui.Slider(
			rl.Rectangle{X: sliderX, Y: float32(y), Width: sliderW, Height: 18},
			"", fmt.Sprintf("%.2f", layer.Factor.X), layer.Factor.X, 0, 1)
		y += 22
	}
	return y + 4
}

func (e *Editor) drawFlipbookSection(panelX, y, panelW int32, f *components.FlipbookAnimation) int32 {
	f.Loop = gui.CheckBox(
		rl.Rectangle{X: float32(panelX + 20), Y: float32(y), Width: 16, Height: 16},
		"Loop", f.Loop)
	y += 22
	f.FramesPerSecond = gui.Slider(
		rl.Rectangle{X: float32(panelX + 90), Y: float32(y), Width: float32(panelW - 130), Height: 18},
		"FPS", fmt.Sprintf("%.0f", f.FramesPerSecond), f.FramesPerSecond, 1, 60)
	y += 24
	drawText(fmt.Sprintf("Frame %d/%d", f.Frame()+1, f.FrameCount), panelX+20, y, 15, colorTextMuted)
	return y + 20
}
