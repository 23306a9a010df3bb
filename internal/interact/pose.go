package interact

import (
	"math"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is a position and orientation snapshot, copied by value.
type Pose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

// PoseOf captures the local pose of a transform.
func PoseOf(t engine.Transform) Pose {
	return Pose{Position: t.Position, Rotation: t.Rotation}
}

// ApplyTo writes the pose into a transform, leaving its scale untouched.
func (p Pose) ApplyTo(t *engine.Transform) {
	t.Position = p.Position
	t.Rotation = p.Rotation
}

// worldToLocal converts a world-space pose into g's parent space.
func worldToLocal(g *engine.GameObject, p Pose) Pose {
	parent := g.Parent
	if parent == nil {
		return p
	}
	inv := rl.QuaternionInvert(parent.WorldRotation())
	scale := parent.WorldScale()
	rel := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(p.Position, parent.WorldPosition()), inv)
	if scale.X != 0 {
		rel.X /= scale.X
	}
	if scale.Y != 0 {
		rel.Y /= scale.Y
	}
	if scale.Z != 0 {
		rel.Z /= scale.Z
	}
	return Pose{
		Position: rel,
		Rotation: rl.QuaternionMultiply(inv, p.Rotation),
	}
}

// angleBetween returns the rotation angle between two orientations in degrees.
func angleBetween(a, b rl.Quaternion) float32 {
	dot := float64(a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W)
	dot = math.Abs(dot)
	if dot > 1 {
		dot = 1
	}
	return float32(2 * math.Acos(dot) * 180 / math.Pi)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
