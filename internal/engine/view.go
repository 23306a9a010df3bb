package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// ViewPose is a snapshot of a viewer (camera) in world space. Forward, Right
// and Up are unit vectors.
type ViewPose struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
	Up       rl.Vector3
	Fovy     float32 // vertical field of view in degrees
	Aspect   float32 // width / height
}

// ViewProvider is implemented by components that expose a viewer pose.
type ViewProvider interface {
	ViewPose() ViewPose
	IsMainView() bool
}

// TransformDirection maps a viewer-relative vector (x right, y up, z forward)
// into world space.
func (v ViewPose) TransformDirection(local rl.Vector3) rl.Vector3 {
	out := rl.Vector3Scale(v.Right, local.X)
	out = rl.Vector3Add(out, rl.Vector3Scale(v.Up, local.Y))
	return rl.Vector3Add(out, rl.Vector3Scale(v.Forward, local.Z))
}

// NewViewPose derives right/up from a forward direction and world up.
func NewViewPose(position, forward rl.Vector3, fovy, aspect float32) ViewPose {
	worldUp := rl.Vector3{X: 0, Y: 1, Z: 0}
	forward = rl.Vector3Normalize(forward)
	right := rl.Vector3CrossProduct(forward, worldUp)
	if rl.Vector3Length(right) < 1e-6 {
		// Looking straight up or down; pick an arbitrary horizontal right.
		right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	right = rl.Vector3Normalize(right)
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))
	return ViewPose{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       up,
		Fovy:     fovy,
		Aspect:   aspect,
	}
}
