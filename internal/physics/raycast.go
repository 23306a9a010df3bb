package physics

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hit is a raw intersection against a single collider shape.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Collider is implemented by collider components. Disabled colliders and
// colliders on layers outside the query mask are ignored by Raycast.
type Collider interface {
	Enabled() bool
	SetEnabled(enabled bool)
	Layer() uint8
	Raycast(origin, direction rl.Vector3, maxDistance float32) (Hit, bool)
}

// World answers ray queries against every collider in a scene.
type World struct {
	Scene *engine.Scene
}

func NewWorld(scene *engine.Scene) *World {
	return &World{Scene: scene}
}

// Raycast returns the closest hit along the ray within maxDistance among
// enabled colliders on active objects whose layer is in mask.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if w.Scene == nil || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	if rl.Vector3Length(direction) == 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range w.Scene.All() {
		if !obj.ActiveInHierarchy() {
			continue
		}
		for _, col := range engine.FindComponents[Collider](obj) {
			if !col.Enabled() || !mask.Includes(col.Layer()) {
				continue
			}
			h, ok := col.Raycast(origin, direction, maxDistance)
			if !ok || h.Distance > closest.Distance {
				continue
			}
			if hit && h.Distance == closest.Distance {
				// Ties keep the first object in scene order.
				continue
			}
			closest = engine.RaycastResult{
				GameObject: obj,
				Point:      h.Point,
				Normal:     h.Normal,
				Distance:   h.Distance,
			}
			hit = true
		}
	}

	return closest, hit
}
