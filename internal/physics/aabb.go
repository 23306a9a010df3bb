package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// slab clips [tmin, tmax] against one axis. ok is false when the ray misses.
func slab(origin, dir, min, max, tmin, tmax float32) (float32, float32, bool) {
	if dir == 0 {
		if origin < min || origin > max {
			return tmin, tmax, false
		}
		return tmin, tmax, true
	}
	t1 := (min - origin) / dir
	t2 := (max - origin) / dir
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, tmin <= tmax
}

// RaycastAABB intersects a ray (direction must be normalized) with the box.
// A ray starting inside the box hits the exit face.
func RaycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (Hit, bool) {
	tmin, tmax := float32(-1e30), float32(1e30)
	var ok bool
	if tmin, tmax, ok = slab(origin.X, direction.X, box.Min.X, box.Max.X, tmin, tmax); !ok {
		return Hit{}, false
	}
	if tmin, tmax, ok = slab(origin.Y, direction.Y, box.Min.Y, box.Max.Y, tmin, tmax); !ok {
		return Hit{}, false
	}
	if tmin, tmax, ok = slab(origin.Z, direction.Z, box.Min.Z, box.Max.Z, tmin, tmax); !ok {
		return Hit{}, false
	}
	if tmax < 0 || tmin > maxDistance {
		return Hit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

// RaycastSphere intersects a ray (direction must be normalized) with a sphere.
func RaycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (Hit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return Hit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
