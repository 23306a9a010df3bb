package components

import (
	"math"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("FPSController", func(decode engine.ComponentDecoder) (engine.Component, error) {
		f := NewFPSController()
		def := struct {
			Yaw       float32 `yaml:"yaw"`
			Pitch     float32 `yaml:"pitch"`
			MoveSpeed float32 `yaml:"moveSpeed"`
			LookSpeed float32 `yaml:"lookSpeed"`
			EyeHeight float32 `yaml:"eyeHeight"`
		}{f.Yaw, f.Pitch, f.MoveSpeed, f.LookSpeed, f.EyeHeight}
		if err := decode(&def); err != nil {
			return nil, err
		}
		f.Yaw, f.Pitch, f.MoveSpeed, f.LookSpeed, f.EyeHeight = def.Yaw, def.Pitch, def.MoveSpeed, def.LookSpeed, def.EyeHeight
		return f, nil
	})
}

// FPSController provides first-person mouse look and WASD movement on the
// ground plane. It is the LookProvider the Camera follows.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:       -90.0,
		Pitch:     0,
		MoveSpeed: 4.0,
		LookSpeed: 0.1,
		EyeHeight: 1.6,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Look(mouseDelta.X, mouseDelta.Y)

	var moveX, moveZ float32
	if rl.IsKeyDown(rl.KeyW) {
		moveZ++
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveZ--
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveX++
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveX--
	}
	f.Move(moveX, moveZ, deltaTime)
}

// Look applies a mouse delta in pixels.
func (f *FPSController) Look(dx, dy float32) {
	f.Yaw += dx * f.LookSpeed
	f.Pitch -= dy * f.LookSpeed

	// Clamp pitch
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
}

// Move walks along the horizontal forward/right axes; strafe and advance are
// in [-1, 1].
func (f *FPSController) Move(strafe, advance, deltaTime float32) {
	g := f.GetGameObject()
	forward, right := f.getDirections()
	dir := rl.Vector3Add(rl.Vector3Scale(forward, advance), rl.Vector3Scale(right, strafe))

	// Normalize diagonal movement so you don't go faster diagonally
	if l := rl.Vector3Length(dir); l > 0 {
		dir = rl.Vector3Scale(dir, f.MoveSpeed*deltaTime/l)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, dir)
	}
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}
