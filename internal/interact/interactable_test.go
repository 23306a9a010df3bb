package interact

import (
	"testing"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func floatConfig() Config {
	cfg := testConfig()
	cfg.Float.Distance = 2
	cfg.Float.Speed = 5
	cfg.Float.Offset = engine.Vec3Value{0.5, -0.2, 0}
	return cfg
}

func TestStartCapturesOriginalPose(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	o := NewInteractable(testConfig())
	g.AddComponent(o)
	g.Start()

	if o.OriginalPose().Position != g.Transform.Position {
		t.Errorf("Expected original pose at start, got %v", o.OriginalPose())
	}
	if o.State() != StateIdle {
		t.Errorf("Expected Idle, got %v", o.State())
	}
}

func TestHoverStateTransitions(t *testing.T) {
	obj := newTestObject(t, "Box", testConfig(), NewRegistry(), nil)

	obj.o.OnHoverEnter()
	if obj.o.State() != StateHovering || !obj.o.IsHovering() {
		t.Fatal("Expected Hovering")
	}
	obj.o.OnHoverExit()
	if obj.o.State() != StateIdle {
		t.Fatal("Expected Idle after exit")
	}
}

func TestFloatMovesTowardViewer(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	obj := newTestObject(t, "Box", floatConfig(), NewRegistry(), view)
	obj.g.Transform.Position = rl.Vector3{X: 3, Y: 0, Z: -6}

	obj.o.ToggleFloat()
	if obj.o.State() != StateFloating {
		t.Fatal("Expected Floating")
	}
	if obj.box.Enabled() {
		t.Error("Collider should be disabled while floating")
	}

	tick(obj.o, 60, 0.1)
	// forward*2 + right*0.5 + up*-0.2 with forward -Z and right +X
	want := rl.Vector3{X: 0.5, Y: -0.2, Z: -2}
	if !vecNear(obj.g.Transform.Position, want, 0.01) {
		t.Errorf("Expected %v, got %v", want, obj.g.Transform.Position)
	}
}

func TestFloatSpinsAroundWorldUp(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	cfg := floatConfig()
	cfg.Float.RotationSpeed = 90
	obj := newTestObject(t, "Box", cfg, NewRegistry(), view)

	obj.o.ToggleFloat()
	tick(obj.o, 10, 0.1)
	first := obj.g.Transform.Rotation
	tick(obj.o, 10, 0.1)
	if angleBetween(first, obj.g.Transform.Rotation) < 1 {
		t.Error("Floating object should keep spinning")
	}
}

func TestReturnConvergesToPickupPose(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	obj := newTestObject(t, "Box", floatConfig(), NewRegistry(), view)

	// Moved after start: the return target is where the float began.
	moved := rl.Vector3{X: -2, Y: 1, Z: -4}
	obj.g.Transform.Position = moved
	obj.g.Transform.SetEuler(rl.Vector3{Y: 30})
	pickup := obj.o.Pose()

	obj.o.ToggleFloat()
	if obj.o.PickupPose() != pickup {
		t.Fatalf("Expected pickup pose %v, got %v", pickup, obj.o.PickupPose())
	}
	tick(obj.o, 20, 0.1)

	obj.o.ToggleFloat()
	if obj.o.IsFloating() || !obj.o.IsReturning() {
		t.Fatal("Expected a return in flight")
	}
	settleReturn(t, obj.o)

	if obj.o.Pose() != pickup {
		t.Errorf("Expected exact pickup pose %v, got %v", pickup, obj.o.Pose())
	}
	if obj.o.Pose().Position == obj.o.OriginalPose().Position {
		t.Error("Return must not target the original pose")
	}
	if !obj.box.Enabled() {
		t.Error("Collider should be re-enabled after return")
	}
}

func TestRefloatCancelsReturn(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	obj := newTestObject(t, "Box", floatConfig(), reg, view)
	obj.g.Transform.Position = rl.Vector3{Z: -8}

	obj.o.ToggleFloat()
	tick(obj.o, 20, 0.1)
	obj.o.ToggleFloat()
	tick(obj.o, 2, 0.05)
	if !obj.o.IsReturning() {
		t.Fatal("Expected return in flight")
	}
	midway := obj.o.Pose()

	obj.o.ToggleFloat()
	if obj.o.IsReturning() {
		t.Error("Floating again should cancel the return")
	}
	if obj.o.Pose() != midway {
		t.Error("Cancelled return should leave the pose where it was")
	}
	if obj.o.PickupPose() != midway {
		t.Error("New float should capture the current pose")
	}
	if reg.Held() != obj.o {
		t.Error("Re-float should hold the registry slot")
	}
}

func TestCancelInputReturns(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	obj := newTestObject(t, "Box", floatConfig(), reg, view)
	in := &scriptedInput{}
	obj.o.Input = in

	obj.o.ToggleFloat()
	tick(obj.o, 3, 0.1)
	in.cancel = true
	obj.o.Update(0.01)
	in.cancel = false

	if obj.o.IsFloating() || reg.IsAnyHeld() {
		t.Error("Cancel should stop floating and release the slot")
	}
	if !obj.o.IsReturning() {
		t.Error("Cancel should start the return")
	}
}

func TestForceReturnToOriginal(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	obj := newTestObject(t, "Box", floatConfig(), reg, view)

	obj.o.ForceReturnToOriginal()
	if obj.o.IsReturning() {
		t.Error("Force return while idle should do nothing")
	}

	obj.o.ToggleFloat()
	obj.o.ForceReturnToOriginal()
	if obj.o.IsFloating() || reg.IsAnyHeld() || !obj.o.IsReturning() {
		t.Error("Force return should release and start returning")
	}
}

func TestFloatWithoutViewerOrRegistry(t *testing.T) {
	noView := newTestObject(t, "A", floatConfig(), NewRegistry(), nil)
	noView.o.ToggleFloat()
	if noView.o.IsFloating() || !noView.box.Enabled() {
		t.Error("Float without a viewer should be a no-op")
	}

	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	noReg := newTestObject(t, "B", floatConfig(), nil, view)
	noReg.o.ToggleFloat()
	if noReg.o.IsFloating() {
		t.Error("Float without a registry should be a no-op")
	}
}

func TestViewerFromSceneMainView(t *testing.T) {
	scene := engine.NewScene("Test")
	cam := engine.NewGameObject("Camera")
	cam.AddComponent(newFixedView(rl.Vector3{}, rl.Vector3{Z: -1}))
	scene.AddGameObject(cam)

	obj := engine.NewGameObject("Box")
	o := NewInteractable(floatConfig())
	o.Registry = NewRegistry()
	obj.AddComponent(o)
	scene.AddGameObject(obj)
	scene.Start()

	o.ToggleFloat()
	if !o.IsFloating() {
		t.Error("Interactable should find the scene's main view")
	}
}

func TestClickOrder(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	cfg := floatConfig()
	cfg.ClickColor.Enabled = true
	cfg.Sound.Enabled = true
	cfg.Sound.Clip = "ping"

	g := engine.NewGameObject("Bell")
	log := &eventLog{}
	surface := &loggingSurface{name: "bell", log: log, color: rl.Red}
	sound := &recordingSound{}
	g.AddComponent(surface)
	g.AddComponent(sound)
	g.AddComponent(&receiverStub{log: log})
	o := NewInteractable(cfg)
	o.Registry = NewRegistry()
	o.Viewer = view
	g.AddComponent(o)
	g.Start()

	var floatingAtEvent bool
	o.Clicked.AddListener(func(e ClickEvent) {
		floatingAtEvent = e.Object.IsFloating()
		log.add("event")
	})

	hit := engine.RaycastResult{GameObject: g, Distance: 3}
	o.OnClicked(hit)

	if floatingAtEvent {
		t.Error("Clicked listeners should run before the float toggle")
	}
	if !o.IsFloating() {
		t.Error("Click should toggle float")
	}
	want := []string{"event", "bell:Green", "custom"}
	if len(log.entries) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log.entries)
	}
	for i := range want {
		if log.entries[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log.entries[i])
		}
	}
	if len(sound.clips) != 1 || sound.clips[0] != "ping" {
		t.Errorf("Expected one ping, got %v", sound.clips)
	}
}

func TestSimulateClick(t *testing.T) {
	obj := newTestObject(t, "Box", testConfig(), NewRegistry(), newFixedView(rl.Vector3{}, rl.Vector3{Z: -1}))
	var got ClickEvent
	obj.o.Clicked.AddListener(func(e ClickEvent) { got = e })

	obj.o.SimulateClick()
	if got.Object != obj.o || got.Hit.GameObject != obj.g {
		t.Error("Simulated click should notify with the object itself")
	}
	if !obj.o.IsFloating() {
		t.Error("Simulated click should toggle float")
	}
}

func TestSoundSourceCreatedOnDemand(t *testing.T) {
	cfg := testConfig()
	cfg.Sound.Enabled = true
	cfg.Sound.Volume = 0.4
	obj := newTestObject(t, "Box", cfg, NewRegistry(), nil)

	if obj.o.sound == nil {
		t.Fatal("Expected an audio source to be created")
	}
	// No clip is registered in tests, so playback reports false but must not fail.
	obj.o.SimulateClick()
}

func flashObject(t *testing.T) testObject {
	cfg := testConfig()
	cfg.FloatOnClick = false
	cfg.ClickColor.Enabled = true
	cfg.ClickColor.Color = engine.ColorValue(rl.Green)
	cfg.ClickColor.Duration = 0.2
	return newTestObject(t, "Box", cfg, NewRegistry(), nil)
}

func TestFlashEndsOnHoverColorWhileHovering(t *testing.T) {
	obj := flashObject(t)

	obj.o.OnHoverEnter()
	obj.o.SimulateClick()
	if obj.mesh.GetColor() != rl.Green {
		t.Fatalf("Expected click color, got %v", obj.mesh.GetColor())
	}
	obj.o.Update(0.1)
	if obj.mesh.GetColor() != rl.Green {
		t.Error("Flash should hold for its duration")
	}
	obj.o.Update(0.15)
	if obj.o.IsFlashing() {
		t.Fatal("Flash should have finished")
	}
	if obj.mesh.GetColor() != rl.Yellow {
		t.Errorf("Expected hover color after flash, got %v", obj.mesh.GetColor())
	}
}

func TestFlashEndsOnBaselineAfterHoverExit(t *testing.T) {
	obj := flashObject(t)

	obj.o.OnHoverEnter()
	obj.o.SimulateClick()
	obj.o.OnHoverExit()
	if obj.mesh.GetColor() != rl.Green {
		t.Error("Hover exit should not interrupt the flash")
	}
	obj.o.Update(0.25)
	if obj.mesh.GetColor() != rl.Red {
		t.Errorf("Expected baseline after flash, got %v", obj.mesh.GetColor())
	}

	obj.o.OnHoverEnter()
	obj.o.OnHoverExit()
	if obj.mesh.GetColor() != rl.Red {
		t.Error("Baseline should survive later hovers")
	}
}

func TestHoverEnterDuringFlashAppliesAfter(t *testing.T) {
	obj := flashObject(t)

	obj.o.SimulateClick()
	obj.o.OnHoverEnter()
	if obj.mesh.GetColor() != rl.Green {
		t.Error("Hover enter should not interrupt the flash")
	}
	obj.o.Update(0.25)
	if obj.mesh.GetColor() != rl.Yellow {
		t.Errorf("Expected hover color after flash, got %v", obj.mesh.GetColor())
	}
	obj.o.OnHoverExit()
	if obj.mesh.GetColor() != rl.Red {
		t.Errorf("Expected baseline, got %v", obj.mesh.GetColor())
	}
}

func TestFlashRestartKeepsBaseline(t *testing.T) {
	obj := flashObject(t)

	obj.o.SimulateClick()
	obj.o.Update(0.1)
	obj.o.SimulateClick()
	obj.o.Update(0.1)
	if obj.mesh.GetColor() != rl.Green {
		t.Error("Restarted flash should run its full duration")
	}
	obj.o.Update(0.15)
	if obj.mesh.GetColor() != rl.Red {
		t.Errorf("Expected baseline after restarted flash, got %v", obj.mesh.GetColor())
	}
}

func TestDestroyReleasesRegistry(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	scene := engine.NewScene("Test")
	obj := newTestObject(t, "Box", floatConfig(), reg, view)
	scene.AddGameObject(obj.g)

	obj.o.OnHoverEnter()
	obj.o.ToggleFloat()
	obj.o.Clicked.AddListener(func(ClickEvent) {})
	scene.Destroy(obj.g)

	if reg.IsAnyHeld() {
		t.Error("Destroyed holder should release the slot")
	}
	if obj.mesh.GetColor() != rl.Red {
		t.Error("Destroy should revert the highlight")
	}
	if obj.o.Clicked.GetListenerCount() != 0 || obj.o.Outline != nil {
		t.Error("Destroy should drop listeners and the outline material")
	}
}

func TestDisableWhileFloatingSettles(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	obj := newTestObject(t, "Box", floatConfig(), reg, view)
	obj.g.Transform.Position = rl.Vector3{Z: -5}
	pickup := obj.o.Pose()

	obj.o.ToggleFloat()
	tick(obj.o, 5, 0.1)
	obj.g.SetActive(false)

	if obj.o.IsFloating() || reg.IsAnyHeld() {
		t.Error("Disable should stop floating")
	}
	if obj.o.Pose() != pickup || !obj.box.Enabled() {
		t.Error("Disable should snap back to the pickup pose")
	}
}

func TestDisableWhileReturningSettles(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	reg := NewRegistry()
	obj := newTestObject(t, "Box", floatConfig(), reg, view)
	obj.g.Transform.Position = rl.Vector3{Z: -5}
	pickup := obj.o.Pose()

	obj.o.ToggleFloat()
	tick(obj.o, 5, 0.1)
	obj.o.ToggleFloat()
	tick(obj.o, 1, 0.01)
	if !obj.o.IsReturning() || obj.box.Enabled() {
		t.Fatal("Object should be mid-return with its collider off")
	}

	obj.g.SetActive(false)
	if obj.o.IsReturning() {
		t.Error("Disable should end the return")
	}
	if obj.o.Pose() != pickup || !obj.box.Enabled() {
		t.Error("Disable should snap back to the pickup pose and re-enable the collider")
	}
}

func TestFloatUnderParent(t *testing.T) {
	view := newFixedView(rl.Vector3{}, rl.Vector3{Z: -1})
	parent := engine.NewGameObject("Shelf")
	parent.Transform.Position = rl.Vector3{X: 10}
	obj := newTestObject(t, "Book", floatConfig(), NewRegistry(), view)
	parent.AddChild(obj.g)

	obj.o.ToggleFloat()
	tick(obj.o, 60, 0.1)

	want := rl.Vector3{X: 0.5, Y: -0.2, Z: -2}
	if !vecNear(obj.g.WorldPosition(), want, 0.01) {
		t.Errorf("Expected world position %v, got %v", want, obj.g.WorldPosition())
	}
}
