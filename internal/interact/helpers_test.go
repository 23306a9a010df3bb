package interact

import (
	"testing"

	"interact3d/internal/components"
	"interact3d/internal/engine"
	"interact3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fixedView is a viewer at a fixed pose.
type fixedView struct {
	engine.BaseComponent
	pose engine.ViewPose
}

func newFixedView(position, forward rl.Vector3) *fixedView {
	return &fixedView{pose: engine.NewViewPose(position, forward, 60, 1)}
}

func (v *fixedView) ViewPose() engine.ViewPose { return v.pose }
func (v *fixedView) IsMainView() bool          { return true }

type recordingSound struct {
	engine.BaseComponent
	clips []string
}

func (s *recordingSound) PlayOneShot(clip string) bool {
	s.clips = append(s.clips, clip)
	return true
}

type scriptedInput struct {
	click  bool
	cancel bool
}

func (i *scriptedInput) ClickPressed() bool  { return i.click }
func (i *scriptedInput) CancelPressed() bool { return i.cancel }

// eventLog collects ordered notes from stubs.
type eventLog struct {
	entries []string
}

func (l *eventLog) add(s string) { l.entries = append(l.entries, s) }

// loggingSurface is a Surface that records every color write.
type loggingSurface struct {
	engine.BaseComponent
	name  string
	log   *eventLog
	color rl.Color
}

func (s *loggingSurface) GetColor() rl.Color { return s.color }
func (s *loggingSurface) SetColor(c rl.Color) {
	s.color = c
	s.log.add(s.name + ":" + engine.ColorName(c))
}
func (s *loggingSurface) HasParam(string) bool           { return false }
func (s *loggingSurface) Float(string) float32           { return 0 }
func (s *loggingSurface) SetFloat(string, float32)       {}
func (s *loggingSurface) ColorParam(string) rl.Color     { return rl.Color{} }
func (s *loggingSurface) SetColorParam(string, rl.Color) {}

type receiverStub struct {
	engine.BaseComponent
	log *eventLog
}

func (r *receiverStub) OnClickedCustom(engine.RaycastResult) { r.log.add("custom") }

// testWorld adapts physics.World to engine.WorldAccess.
type testWorld struct {
	*physics.World
}

func (testWorld) SpawnObject(*engine.GameObject) {}
func (testWorld) Destroy(*engine.GameObject)     {}

// testConfig is the default config with feedback that needs extra
// collaborators switched off.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sound.Enabled = false
	cfg.ClickColor.Enabled = false
	return cfg
}

type testObject struct {
	g    *engine.GameObject
	o    *Interactable
	mesh *components.MeshRenderer
	box  *components.BoxCollider
}

// newTestObject builds a started red unit cube with an Interactable.
func newTestObject(t *testing.T, name string, cfg Config, reg *Registry, viewer engine.ViewProvider) testObject {
	t.Helper()
	g := engine.NewGameObject(name)
	mesh := components.NewMeshRenderer(components.MeshCube, rl.Red, rl.Vector3{X: 1, Y: 1, Z: 1})
	box := components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	o := NewInteractable(cfg)
	o.Registry = reg
	if viewer != nil {
		o.Viewer = viewer
	}
	g.AddComponent(mesh)
	g.AddComponent(box)
	g.AddComponent(o)
	g.Start()
	return testObject{g: g, o: o, mesh: mesh, box: box}
}

func tick(o *Interactable, n int, dt float32) {
	for i := 0; i < n; i++ {
		o.Update(dt)
	}
}

// settleReturn ticks until the return task completes.
func settleReturn(t *testing.T, o *Interactable) {
	t.Helper()
	for i := 0; i < 500 && o.IsReturning(); i++ {
		o.Update(0.05)
	}
	if o.IsReturning() {
		t.Fatal("Return task never completed")
	}
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Distance(a, b) < eps
}
