package world

import (
	"interact3d/internal/components"
	"interact3d/internal/engine"
	"interact3d/internal/interact"
	"interact3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultFloorSize = 30.0

	viewNear float32 = 0.1
	viewFar  float32 = 200.0
)

// World owns the scene, answers ray queries for it and holds the registry
// shared by every Interactable.
type World struct {
	Scene     *engine.Scene
	Physics   *physics.World
	Registry  *interact.Registry
	FloorSize float32
	Floor     rl.Color

	culled int
}

func New() *World {
	scene := engine.NewScene("Main")
	w := &World{
		Scene:     scene,
		Physics:   physics.NewWorld(scene),
		Registry:  interact.NewRegistry(),
		FloorSize: DefaultFloorSize,
		Floor:     rl.LightGray,
	}
	scene.World = w
	return w
}

// Initialize wires shared state into loaded components and starts the scene.
func (w *World) Initialize() {
	w.bind()
	w.Scene.Start()
}

func (w *World) bind() {
	interact.BindRegistry(w.Scene, w.Registry)
}

// SpawnObject adds a root object at runtime and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.bind()
	startTree(g)
}

func startTree(g *engine.GameObject) {
	g.Start()
	for _, child := range g.Children {
		startTree(child)
	}
}

func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.Destroy(g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, mask)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// MainCamera returns the camera flagged as main, or the first camera.
func (w *World) MainCamera() *components.Camera {
	if cam, ok := w.Scene.MainView().(*components.Camera); ok {
		return cam
	}
	return nil
}

// VisibleRenderers returns the renderers whose bounds intersect the frustum.
func (w *World) VisibleRenderers(f Frustum) []*components.MeshRenderer {
	var visible []*components.MeshRenderer
	w.culled = 0
	for _, g := range w.Scene.All() {
		if !g.ActiveInHierarchy() {
			continue
		}
		for _, m := range engine.FindComponents[*components.MeshRenderer](g) {
			if f.ContainsSphere(g.WorldPosition(), boundingRadius(m, g)) {
				visible = append(visible, m)
			} else {
				w.culled++
			}
		}
	}
	return visible
}

// Culled is the number of renderers skipped by the last VisibleRenderers.
func (w *World) Culled() int {
	return w.culled
}

func boundingRadius(m *components.MeshRenderer, g *engine.GameObject) float32 {
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
	if m.MeshType == components.MeshSphere {
		return max(size.X, size.Y, size.Z)
	}
	return rl.Vector3Length(size) / 2
}

// Draw renders the floor and every visible renderer. Call between
// BeginMode3D and EndMode3D.
func (w *World) Draw(view engine.ViewPose) {
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: w.FloorSize, Y: w.FloorSize}, w.Floor)
	rl.DrawGrid(int32(w.FloorSize), 1)

	for _, m := range w.VisibleRenderers(ExtractFrustum(view, viewNear, viewFar)) {
		m.Draw()
	}
}
