package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject

	byUID map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uint64]*GameObject),
	}
}

// AddGameObject adds g and its children to the scene's UID index.
func (s *Scene) AddGameObject(g *GameObject) {
	if g == nil || g.Scene == s {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byUID, g.UID)
			g.Scene = nil
			break
		}
	}
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
}

// FindByUID is an O(1) lookup into the scene's object index.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Roots returns the scene objects that have no parent, in insertion order.
func (s *Scene) Roots() []*GameObject {
	var roots []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			roots = append(roots, g)
		}
	}
	return roots
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			g.Start()
		}
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			g.Update(deltaTime)
		}
	}
}
