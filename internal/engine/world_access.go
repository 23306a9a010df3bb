package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// LayerMask selects collider layers by bit: layer n is included when bit n
// is set.
type LayerMask uint32

const AllLayers LayerMask = ^LayerMask(0)

// Includes reports whether the mask contains the given layer (0-31).
func (m LayerMask) Includes(layer uint8) bool {
	if layer > 31 {
		return false
	}
	return m&(1<<layer) != 0
}

// LayerMaskOf builds a mask from layer numbers.
func LayerMaskOf(layers ...uint8) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l <= 31 {
			m |= 1 << l
		}
	}
	return m
}

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
}
