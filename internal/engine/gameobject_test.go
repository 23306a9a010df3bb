package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op (no panic, no re-initialization)
	obj.Start() // Should not panic or cause issues
}

type lookStub struct {
	BaseComponent
}

func (l *lookStub) GetLookDirection() (x, y, z float32) { return 0, 0, -1 }
func (l *lookStub) GetEyeHeight() float32               { return 1.5 }

type lifecycleStub struct {
	BaseComponent
	disabled  int
	destroyed int
}

func (l *lifecycleStub) OnDisable() { l.disabled++ }
func (l *lifecycleStub) OnDestroy() { l.destroyed++ }

func TestFindInParents(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	look := &lookStub{}
	root.AddComponent(look)

	found, ok := FindInParents[LookProvider](leaf)
	if !ok {
		t.Fatal("FindInParents should walk up to the root")
	}
	if found != look {
		t.Error("FindInParents returned the wrong component")
	}

	if _, ok := FindInParents[Destroyer](leaf); ok {
		t.Error("FindInParents should fail when no ancestor has the component")
	}
}

func TestFindInParentsPrefersSelf(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	parentLook := &lookStub{}
	childLook := &lookStub{}
	parent.AddComponent(parentLook)
	child.AddComponent(childLook)

	found, _ := FindInParents[LookProvider](child)
	if found != childLook {
		t.Error("FindInParents should check the object itself first")
	}
}

func TestFindInChildren(t *testing.T) {
	root := NewGameObject("Root")
	a := NewGameObject("A")
	b := NewGameObject("B")
	a1 := NewGameObject("A1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	root.AddComponent(&lookStub{})
	a.AddComponent(&lookStub{})
	a1.AddComponent(&lookStub{})
	b.AddComponent(&lookStub{})

	found := FindInChildren[LookProvider](root)
	if len(found) != 3 {
		t.Fatalf("Expected 3 descendants with LookProvider, got %d", len(found))
	}
	if found[0].(*lookStub).GetGameObject() != a || found[1].(*lookStub).GetGameObject() != a1 {
		t.Error("FindInChildren should be depth first")
	}
}

func TestSetActiveNotifiesDisablers(t *testing.T) {
	obj := NewGameObject("Test")
	stub := &lifecycleStub{}
	obj.AddComponent(stub)

	obj.SetActive(false)
	obj.SetActive(false)
	if stub.disabled != 1 {
		t.Errorf("Expected 1 OnDisable call, got %d", stub.disabled)
	}

	obj.SetActive(true)
	if stub.disabled != 1 {
		t.Error("Activating should not call OnDisable")
	}
}

func TestAddComponentAfterStart(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	started := false
	c := &startRecorder{onStart: func() { started = true }}
	obj.AddComponent(c)
	if !started {
		t.Error("Components added after Start should be started immediately")
	}
}

type startRecorder struct {
	BaseComponent
	onStart func()
}

func (s *startRecorder) Start() { s.onStart() }

func TestTransformEulerRoundTrip(t *testing.T) {
	var tr Transform
	tr.SetEuler(rl.Vector3{X: 0, Y: 45, Z: 0})
	e := tr.Euler()
	if math.Abs(float64(e.Y-45)) > 0.01 {
		t.Errorf("Expected yaw 45, got %f", e.Y)
	}
}

func TestWorldPositionRotatedParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10}
	parent.Transform.SetEuler(rl.Vector3{Y: 90})
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(child)

	wp := child.WorldPosition()
	// Rotating +X by 90 degrees around Y yields -Z.
	if math.Abs(float64(wp.X-10)) > 1e-4 || math.Abs(float64(wp.Z+1)) > 1e-4 {
		t.Errorf("Unexpected world position %+v", wp)
	}
}
