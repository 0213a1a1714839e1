package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector2
	Rotation float32 // degrees
	Scale    rl.Vector2
}

var uidCounter uint64

type GameObject struct {
	Name       string
	Tags       []string
	UID        uint64
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		UID:    atomic.AddUint64(&uidCounter, 1),
		Active: true,
		Transform: Transform{
			Position: rl.Vector2{},
			Scale:    rl.Vector2{X: 1, Y: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

func (g *GameObject) RemoveComponent(c Component) {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i], g.components[i+1:]...)
			c.SetGameObject(nil)
			return
		}
	}
}

// FindComponent returns the first component of type T on the object, or the
// zero value when none is attached.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddChild parents child under g, detaching it from any previous parent.
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil || child == g {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Root returns the topmost ancestor (g itself when unparented).
func (g *GameObject) Root() *GameObject {
	obj := g
	for obj.Parent != nil {
		obj = obj.Parent
	}
	return obj
}

// IsAncestorOf reports whether g appears in other's parent chain.
func (g *GameObject) IsAncestorOf(other *GameObject) bool {
	if other == nil {
		return false
	}
	for obj := other.Parent; obj != nil; obj = obj.Parent {
		if obj == g {
			return true
		}
	}
	return false
}

// IsDescendantOf reports whether other appears in g's parent chain.
func (g *GameObject) IsDescendantOf(other *GameObject) bool {
	if other == nil {
		return false
	}
	return other.IsAncestorOf(g)
}

func (g *GameObject) WorldPosition() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector2{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
	}

	// Rotate by parent world rotation
	rad := float64(parentRot) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	rotated := rl.Vector2{
		X: scaled.X*cos - scaled.Y*sin,
		Y: scaled.X*sin + scaled.Y*cos,
	}
	return rl.Vector2Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() float32 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation() + g.Transform.Rotation
}

func (g *GameObject) WorldScale() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector2{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
	}
}
