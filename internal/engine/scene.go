package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      map[uint64]*GameObject

	// Destroys requested while ticking run after the tick.
	updating bool
	doomed   []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds a root object to the scene and indexes its descendants.
func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
	s.index(g)
}

func (s *Scene) index(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.uidMap[g.UID] = g
	for _, child := range g.Children {
		s.index(child)
	}
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	s.unindex(g)
}

func (s *Scene) unindex(g *GameObject) {
	delete(s.uidMap, g.UID)
	for _, child := range g.Children {
		s.unindex(child)
	}
}

// Destroy runs OnDestroy hooks on g and its descendants, detaches it from its
// parent and removes it from the scene. Called during Update, it takes effect
// once every object has been ticked.
func (s *Scene) Destroy(g *GameObject) {
	if s.updating {
		for _, d := range s.doomed {
			if d == g {
				return
			}
		}
		s.doomed = append(s.doomed, g)
		return
	}
	s.destroyNow(g)
}

func (s *Scene) destroyNow(g *GameObject) {
	g.destroy()
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.All() {
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

// All returns every indexed object: roots in scene order, each followed by
// its descendants depth first.
func (s *Scene) All() []*GameObject {
	result := make([]*GameObject, 0, len(s.uidMap))
	var walk func(g *GameObject)
	walk = func(g *GameObject) {
		result = append(result, g)
		for _, child := range g.Children {
			walk(child)
		}
	}
	for _, g := range s.GameObjects {
		walk(g)
	}
	return result
}

// MainView returns the view provider flagged as main, falling back to the
// first one found.
func (s *Scene) MainView() ViewProvider {
	var first ViewProvider
	for _, g := range s.All() {
		for _, vp := range FindComponents[ViewProvider](g) {
			if vp.IsMainView() {
				return vp
			}
			if first == nil {
				first = vp
			}
		}
	}
	return first
}

func (s *Scene) Start() {
	for _, g := range s.All() {
		g.Start()
	}
}

// Update ticks every object in a fixed order: roots in insertion order, each
// followed by its descendants.
func (s *Scene) Update(deltaTime float32) {
	s.updating = true
	for _, g := range s.All() {
		if !g.ActiveInHierarchy() {
			continue
		}
		g.Update(deltaTime)
	}
	s.updating = false

	doomed := s.doomed
	s.doomed = nil
	for _, g := range doomed {
		s.destroyNow(g)
	}
}
