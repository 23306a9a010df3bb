package scripts

import (
	"interact3d/internal/engine"
	"interact3d/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rotator", func(decode engine.ComponentDecoder) (engine.Component, error) {
		r := &Rotator{Speed: 45}
		def := struct {
			Speed float32 `yaml:"speed"`
		}{r.Speed}
		if err := decode(&def); err != nil {
			return nil, err
		}
		r.Speed = def.Speed
		return r, nil
	})
}

// Rotator spins an object around the world Y axis. Clicking the object
// reverses the spin. It pauses while the object is held or returning.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second

	interactable *interact.Interactable
}

func (r *Rotator) Start() {
	r.interactable = engine.GetComponent[*interact.Interactable](r.GetGameObject())
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	if o := r.interactable; o != nil && (o.IsFloating() || o.IsReturning()) {
		return
	}
	spin := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, r.Speed*deltaTime*rl.Deg2rad)
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(spin, g.Transform.Rotation))
}

func (r *Rotator) OnClickedCustom(engine.RaycastResult) {
	r.Speed = -r.Speed
}
