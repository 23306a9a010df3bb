package components

import (
	"interact3d/internal/engine"
	"interact3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("SphereCollider", func(decode engine.ComponentDecoder) (engine.Component, error) {
		var def struct {
			Radius float32          `yaml:"radius"`
			Offset engine.Vec3Value `yaml:"offset"`
			Layer  uint8            `yaml:"layer"`
		}
		def.Radius = 0.5
		if err := decode(&def); err != nil {
			return nil, err
		}
		s := NewSphereCollider(def.Radius)
		s.Offset = def.Offset.Vector3()
		s.LayerIndex = def.Layer
		return s, nil
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius     float32
	Offset     rl.Vector3
	LayerIndex uint8
	disabled   bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

func (s *SphereCollider) Enabled() bool           { return !s.disabled }
func (s *SphereCollider) SetEnabled(enabled bool) { s.disabled = !enabled }
func (s *SphereCollider) Layer() uint8            { return s.LayerIndex }

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := max(abs(sc.X), abs(sc.Y), abs(sc.Z))
	return s.Radius * m
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.Hit, bool) {
	if s.GetGameObject() == nil {
		return physics.Hit{}, false
	}
	return physics.RaycastSphere(origin, direction, s.GetCenter(), s.GetWorldRadius(), maxDistance)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
