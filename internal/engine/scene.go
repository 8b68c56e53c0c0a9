package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveByTag drops every object carrying tag and returns how many went.
func (s *Scene) RemoveByTag(tag string) int {
	kept := s.GameObjects[:0]
	removed := 0
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			g.Scene = nil
			removed++
			continue
		}
		kept = append(kept, g)
	}
	clear(s.GameObjects[len(kept):])
	s.GameObjects = kept
	return removed
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

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

func (s *Scene) Draw() {
	for _, g := range s.GameObjects {
		g.Draw()
	}
}
