package components

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("FlipbookAnimation", func() engine.Serializable {
		return NewFlipbookAnimation(rl.Texture2D{}, 0, 0, 0, 12)
	})
}

// FlipbookAnimation steps through the frames of a sprite sheet at a fixed
// rate. Frames are laid out left to right, top to bottom.
type FlipbookAnimation struct {
	engine.BaseComponent
	Texture         rl.Texture2D
	FrameWidth      int32
	FrameHeight     int32
	FrameCount      int
	FramesPerSecond float32
	Loop            bool
	FlipX           bool
	FlipY           bool
	Tint            rl.Color

	// Finished fires when a one-shot animation shows its last frame.
	Finished engine.Event

	playing bool
	frame   int
	elapsed float32
}

func NewFlipbookAnimation(texture rl.Texture2D, frameW, frameH int32, frameCount int, fps float32) *FlipbookAnimation {
	return &FlipbookAnimation{
		Texture:         texture,
		FrameWidth:      frameW,
		FrameHeight:     frameH,
		FrameCount:      frameCount,
		FramesPerSecond: fps,
		Loop:            true,
		Tint:            rl.White,
	}
}

func (f *FlipbookAnimation) Play() {
	f.playing = true
	f.frame = 0
	f.elapsed = 0
}

// Pause freezes the animation on its current frame.
func (f *FlipbookAnimation) Pause() {
	f.playing = false
}

// Stop halts playback and rewinds to the first frame.
func (f *FlipbookAnimation) Stop() {
	f.playing = false
	f.frame = 0
	f.elapsed = 0
}

func (f *FlipbookAnimation) Playing() bool { return f.playing }

func (f *FlipbookAnimation) Frame() int { return f.frame }

func (f *FlipbookAnimation) Update(deltaTime float32) {
	if !f.playing || f.FrameCount <= 0 || f.FramesPerSecond <= 0 {
		return
	}
	f.elapsed += deltaTime
	frameTime := 1 / f.FramesPerSecond
	for f.elapsed >= frameTime {
		f.elapsed -= frameTime
		f.frame++
		if f.frame < f.FrameCount {
			continue
		}
		if f.Loop {
			f.frame = 0
		} else {
			f.frame = f.FrameCount - 1
			f.playing = false
			f.Finished.Invoke()
			return
		}
	}
}

// SourceRect returns the sheet region for the current frame. Flips are
// encoded as negative extents, matching raylib's DrawTexturePro convention.
func (f *FlipbookAnimation) SourceRect() rl.Rectangle {
	if f.FrameWidth <= 0 || f.FrameHeight <= 0 {
		return rl.Rectangle{}
	}
	cols := int(f.Texture.Width / f.FrameWidth)
	if cols < 1 {
		cols = 1
	}
	col := f.frame % cols
	row := f.frame / cols

	rect := rl.Rectangle{
		X:      float32(int32(col) * f.FrameWidth),
		Y:      float32(int32(row) * f.FrameHeight),
		Width:  float32(f.FrameWidth),
		Height: float32(f.FrameHeight),
	}
	if f.FlipX {
		rect.Width = -rect.Width
	}
	if f.FlipY {
		rect.Height = -rect.Height
	}
	return rect
}

// Draw renders the current frame at the owner's world position.
func (f *FlipbookAnimation) Draw() {
	g := f.GetGameObject()
	if g == nil || f.Texture.ID == 0 {
		return
	}
	pos := g.WorldPosition()
	scale := g.WorldScale()
	dest := rl.Rectangle{
		X:      pos.X,
		Y:      pos.Y,
		Width:  float32(f.FrameWidth) * scale.X,
		Height: float32(f.FrameHeight) * scale.Y,
	}
	origin := rl.Vector2{X: dest.Width / 2, Y: dest.Height / 2}
	rl.DrawTexturePro(f.Texture, f.SourceRect(), dest, origin, g.WorldRotation(), f.Tint)
}

// TypeName implements engine.Serializable
func (f *FlipbookAnimation) TypeName() string {
	return "FlipbookAnimation"
}

// Serialize implements engine.Serializable
func (f *FlipbookAnimation) Serialize() map[string]any {
	return map[string]any{
		"type":        "FlipbookAnimation",
		"frameWidth":  f.FrameWidth,
		"frameHeight": f.FrameHeight,
		"frameCount":  f.FrameCount,
		"fps":         f.FramesPerSecond,
		"loop":        f.Loop,
		"flipX":       f.FlipX,
		"flipY":       f.FlipY,
	}
}

// Deserialize implements engine.Serializable
func (f *FlipbookAnimation) Deserialize(data map[string]any) {
	if w, ok := data["frameWidth"].(float64); ok {
		f.FrameWidth = int32(w)
	}
	if h, ok := data["frameHeight"].(float64); ok {
		f.FrameHeight = int32(h)
	}
	if n, ok := data["frameCount"].(float64); ok {
		f.FrameCount = int(n)
	}
	if fps, ok := data["fps"].(float64); ok {
		f.FramesPerSecond = float32(fps)
	}
	if l, ok := data["loop"].(bool); ok {
		f.Loop = l
	}
	if x, ok := data["flipX"].(bool); ok {
		f.FlipX = x
	}
	if y, ok := data["flipY"].(bool); ok {
		f.FlipY = y
	}
}
