package components

import (
	"math"

	"github.com/mob-hanzawa/commonlib/internal/engine"
	"github.com/mob-hanzawa/commonlib/internal/mathutil"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("ParallaxCamera", func() engine.Serializable {
		return NewParallaxCamera()
	})
}

// ParallaxLayer scrolls at a fraction of the camera's movement. A factor of 0
// pins the layer to the screen, 1 locks it to the world.
type ParallaxLayer struct {
	Name   string
	Factor rl.Vector2
}

// ParallaxCamera follows a target object and computes per-layer scroll
// offsets for background drawing.
type ParallaxCamera struct {
	engine.BaseComponent
	Camera rl.Camera2D

	// Target is the followed object; constrained to the camera's own tree so
	// the editor can't wire it to an unrelated hierarchy.
	Target engine.ConstrainedRef

	Layers []ParallaxLayer

	// Smoothing in [0,1]: 0 snaps to the target, higher values trail it.
	Smoothing float32
}

func NewParallaxCamera() *ParallaxCamera {
	return &ParallaxCamera{
		Camera: rl.Camera2D{Zoom: 1},
		Target: engine.ConstrainedRef{Relation: engine.RelationSameTree},
	}
}

func (p *ParallaxCamera) Start() {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	if target := p.Target.Get(g.Scene); target != nil {
		p.Camera.Target = target.WorldPosition()
	}
}

func (p *ParallaxCamera) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	target := p.Target.Get(g.Scene)
	if target == nil {
		return
	}
	want := target.WorldPosition()
	if p.Smoothing <= 0 {
		p.Camera.Target = want
		return
	}
	// Frame-rate independent exponential follow
	t := 1 - float32(math.Pow(float64(p.Smoothing), float64(deltaTime*60)))
	p.Camera.Target.X = mathutil.Lerp(p.Camera.Target.X, want.X, t)
	p.Camera.Target.Y = mathutil.Lerp(p.Camera.Target.Y, want.Y, t)
}

// LayerOffset returns the world-space draw offset for layer index.
func (p *ParallaxCamera) LayerOffset(index int) rl.Vector2 {
	if index < 0 || index >= len(p.Layers) {
		return rl.Vector2{}
	}
	factor := p.Layers[index].Factor
	return rl.Vector2{
		X: p.Camera.Target.X * (1 - factor.X),
		Y: p.Camera.Target.Y * (1 - factor.Y),
	}
}

// TypeName implements engine.Serializable
func (p *ParallaxCamera) TypeName() string {
	return "ParallaxCamera"
}

// Serialize implements engine.Serializable
func (p *ParallaxCamera) Serialize() map[string]any {
	layers := make([]map[string]any, 0, len(p.Layers))
	for _, l := range p.Layers {
		layers = append(layers, map[string]any{
			"name":    l.Name,
			"factorX": l.Factor.X,
			"factorY": l.Factor.Y,
		})
	}
	return map[string]any{
		"type":      "ParallaxCamera",
		"zoom":      p.Camera.Zoom,
		"smoothing": p.Smoothing,
		"target":    float64(p.Target.UID),
		"layers":    layers,
	}
}

// Deserialize implements engine.Serializable
func (p *ParallaxCamera) Deserialize(data map[string]any) {
	if z, ok := data["zoom"].(float64); ok {
		p.Camera.Zoom = float32(z)
	}
	if s, ok := data["smoothing"].(float64); ok {
		p.Smoothing = float32(s)
	}
	if t, ok := data["target"].(float64); ok {
		p.Target.UID = uint64(t)
	}
	if raw, ok := data["layers"].([]any); ok {
		p.Layers = p.Layers[:0]
		for _, entry := range raw {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			layer := ParallaxLayer{}
			if n, ok := m["name"].(string); ok {
				layer.Name = n
			}
			if x, ok := m["factorX"].(float64); ok {
				layer.Factor.X = float32(x)
			}
			if y, ok := m["factorY"].(float64); ok {
				layer.Factor.Y = float32(y)
			}
			p.Layers = append(p.Layers, layer)
		}
	}
}
