package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Material is a render-agnostic material handle. Material slots hold
// pointers, so identity (not value) distinguishes two materials.
type Material struct {
	Name    string
	Color   rl.Color
	Outline bool    // drawn as an inflated wireframe shell
	Width   float32 // shell thickness for outline materials
}

func NewMaterial(name string, color rl.Color) *Material {
	return &Material{Name: name, Color: color}
}

// NewOutlineMaterial returns a material drawn as an outline shell.
func NewOutlineMaterial(name string, color rl.Color, width float32) *Material {
	if width <= 0 {
		width = 0.05
	}
	return &Material{Name: name, Color: color, Outline: true, Width: width}
}

// CloneMaterials copies a slot slice so later edits don't alias it.
func CloneMaterials(mats []*Material) []*Material {
	if mats == nil {
		return nil
	}
	out := make([]*Material, len(mats))
	copy(out, mats)
	return out
}
