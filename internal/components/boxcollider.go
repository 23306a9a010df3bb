package components

import (
	"interact3d/internal/engine"
	"interact3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func(decode engine.ComponentDecoder) (engine.Component, error) {
		var def struct {
			Size   engine.Vec3Value `yaml:"size"`
			Offset engine.Vec3Value `yaml:"offset"`
			Layer  uint8            `yaml:"layer"`
		}
		def.Size = engine.Vec3Value{1, 1, 1}
		if err := decode(&def); err != nil {
			return nil, err
		}
		b := NewBoxCollider(def.Size.Vector3())
		b.Offset = def.Offset.Vector3()
		b.LayerIndex = def.Layer
		return b, nil
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size       rl.Vector3
	Offset     rl.Vector3
	LayerIndex uint8
	disabled   bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) Enabled() bool           { return !b.disabled }
func (b *BoxCollider) SetEnabled(enabled bool) { b.disabled = !enabled }
func (b *BoxCollider) Layer() uint8            { return b.LayerIndex }

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	if b.GetGameObject() == nil {
		return physics.Hit{}, false
	}
	return physics.RaycastAABB(origin, direction, b.GetAABB(), maxDistance)
}
