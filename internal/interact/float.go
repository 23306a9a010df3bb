package interact

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Return completes once both errors fall under these thresholds.
const (
	returnDistanceEpsilon = 0.01
	returnAngleEpsilon    = 0.1 // degrees
)

// ToggleFloat starts floating when idle and stops it when floating.
func (o *Interactable) ToggleFloat() {
	if o.floating {
		o.stopFloat()
		return
	}
	o.startFloat()
}

func (o *Interactable) startFloat() bool {
	if o.GetGameObject() == nil {
		return false
	}
	if o.viewer() == nil {
		o.warnOnce("viewer", "no viewer, float disabled")
		return false
	}
	if o.Registry == nil {
		o.warnOnce("registry", "no held-item registry, float disabled")
		return false
	}
	if !o.Registry.tryAcquire(o) {
		if o.Config.Debug {
			log.Printf("Interactable %s: cannot float, %s is held", o.Name(), o.Registry.HeldName())
		}
		return false
	}

	// A return in flight stops where it is.
	o.motion.Cancel()

	o.pickupPose = o.Pose()
	rot := o.Config.Float.RotationOffset
	o.rotOffset = rl.QuaternionFromEuler(rot[0]*rl.Deg2rad, rot[1]*rl.Deg2rad, rot[2]*rl.Deg2rad)
	o.floatTime = 0
	if o.collider != nil {
		o.collider.SetEnabled(false)
	}
	o.floating = true
	if o.Config.Debug {
		log.Printf("Interactable %s: floating", o.Name())
	}
	return true
}

func (o *Interactable) stopFloat() {
	o.floating = false
	o.release()
	o.motion.Start(&returnTask{o: o})
	if o.Config.Debug {
		log.Printf("Interactable %s: returning", o.Name())
	}
}

// floatTarget is the world pose the object is pulled toward this tick.
func (o *Interactable) floatTarget() (Pose, bool) {
	v := o.viewer()
	if v == nil {
		return Pose{}, false
	}
	view := v.ViewPose()
	cfg := o.Config.Float

	pos := rl.Vector3Add(view.Position, rl.Vector3Scale(view.Forward, cfg.Distance))
	pos = rl.Vector3Add(pos, view.TransformDirection(cfg.Offset.Vector3()))

	spin := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, cfg.RotationSpeed*o.floatTime*rl.Deg2rad)
	return Pose{Position: pos, Rotation: rl.QuaternionMultiply(spin, o.rotOffset)}, true
}

func (o *Interactable) updateFloat(deltaTime float32) {
	g := o.GetGameObject()
	o.floatTime += deltaTime
	target, ok := o.floatTarget()
	if !ok {
		return
	}
	local := worldToLocal(g, target)
	t := clamp01(deltaTime * o.Config.Float.Speed)
	g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, local.Position, t)
	g.Transform.Rotation = rl.QuaternionSlerp(g.Transform.Rotation, local.Rotation, t)
}

// settle snaps to the pickup pose and makes the object targetable again.
func (o *Interactable) settle() {
	if g := o.GetGameObject(); g != nil {
		o.pickupPose.ApplyTo(&g.Transform)
	}
	if o.collider != nil {
		o.collider.SetEnabled(true)
	}
}

// returnTask eases the object back to its pickup pose. Cancelling it leaves
// the pose where it is.
type returnTask struct {
	o *Interactable
}

func (t *returnTask) Step(deltaTime float32) bool {
	o := t.o
	g := o.GetGameObject()
	if g == nil {
		return true
	}
	target := o.pickupPose
	speed := o.Config.Float.Speed

	tr := &g.Transform
	tr.Position = rl.Vector3Lerp(tr.Position, target.Position, clamp01(deltaTime*speed))
	tr.Rotation = rl.QuaternionSlerp(tr.Rotation, target.Rotation, clamp01(deltaTime*speed*2))

	if rl.Vector3Distance(tr.Position, target.Position) < returnDistanceEpsilon &&
		angleBetween(tr.Rotation, target.Rotation) < returnAngleEpsilon {
		o.settle()
		return true
	}
	return false
}
