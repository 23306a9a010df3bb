package interact

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is a visual surface with a primary color and named shader
// parameters.
type Surface interface {
	GetColor() rl.Color
	SetColor(c rl.Color)
	HasParam(name string) bool
	Float(name string) float32
	SetFloat(name string, v float32)
	ColorParam(name string) rl.Color
	SetColorParam(name string, c rl.Color)
}

// MaterialHolder exposes an object's material slots.
type MaterialHolder interface {
	GetMaterials() []*engine.Material
	SetMaterials(mats []*engine.Material)
}

// Collider is the enable switch of a physical surface.
type Collider interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// SoundPlayer plays fire-and-forget clips.
type SoundPlayer interface {
	PlayOneShot(clip string) bool
}

// ClickReceiver is implemented by components that add behavior to clicks on
// their object. They run after the built-in click feedback.
type ClickReceiver interface {
	OnClickedCustom(hit engine.RaycastResult)
}

// Input reports edge-triggered pointer buttons for the current tick.
type Input interface {
	ClickPressed() bool
	CancelPressed() bool
}

// MouseInput maps click to the left mouse button and cancel to the right.
type MouseInput struct{}

func (MouseInput) ClickPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (MouseInput) CancelPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseRightButton)
}
