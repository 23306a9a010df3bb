package components

import (
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func(decode engine.ComponentDecoder) (engine.Component, error) {
		c := NewCamera()
		def := struct {
			FOV    float32 `yaml:"fov"`
			Near   float32 `yaml:"near"`
			Far    float32 `yaml:"far"`
			Aspect float32 `yaml:"aspect"`
			IsMain bool    `yaml:"isMain"`
		}{c.FOV, c.Near, c.Far, c.Aspect, c.IsMain}
		if err := decode(&def); err != nil {
			return nil, err
		}
		c.FOV, c.Near, c.Far, c.Aspect, c.IsMain = def.FOV, def.Near, def.Far, def.Aspect, def.IsMain
		return c, nil
	})
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Aspect     float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Aspect:     16.0 / 9.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

func (c *Camera) IsMainView() bool {
	return c.IsMain
}

// ViewPose returns the eye position and basis vectors. A LookProvider on
// this object or a parent drives the forward direction; otherwise the
// object's world rotation does (looking down -Z).
func (c *Camera) ViewPose() engine.ViewPose {
	g := c.GetGameObject()
	if g == nil {
		return engine.NewViewPose(rl.Vector3{}, rl.Vector3{Z: -1}, c.FOV, c.Aspect)
	}

	eyePos := g.WorldPosition()
	lookProvider, ok := engine.FindInParents[engine.LookProvider](g)

	var forward rl.Vector3
	if ok {
		// Camera on the same object as the controller sits at eye height;
		// a child camera already carries its own local offset.
		if engine.FindComponent[engine.LookProvider](g) != nil {
			eyePos.Y += lookProvider.GetEyeHeight()
		}
		x, y, z := lookProvider.GetLookDirection()
		forward = rl.Vector3{X: x, Y: y, Z: z}
	} else {
		forward = rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, g.WorldRotation())
	}

	return engine.NewViewPose(eyePos, forward, c.FOV, c.Aspect)
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	view := c.ViewPose()
	return rl.Camera3D{
		Position:   view.Position,
		Target:     rl.Vector3Add(view.Position, view.Forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
