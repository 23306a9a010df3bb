package interact

import (
	"log"
	"math"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Raycaster", func(decode engine.ComponentDecoder) (engine.Component, error) {
		r := NewRaycaster()
		def := struct {
			MaxDistance  float32    `yaml:"maxDistance"`
			Layers       []uint8    `yaml:"layers"`
			Anchor       [2]float32 `yaml:"anchor"`
			HoverEnabled bool       `yaml:"hoverEnabled"`
			Debug        bool       `yaml:"debug"`
		}{
			MaxDistance:  r.MaxDistance,
			Anchor:       [2]float32{r.Anchor.X, r.Anchor.Y},
			HoverEnabled: r.HoverEnabled,
		}
		if err := decode(&def); err != nil {
			return nil, err
		}
		r.MaxDistance = def.MaxDistance
		if len(def.Layers) > 0 {
			r.Mask = engine.LayerMaskOf(def.Layers...)
		}
		r.Anchor = rl.Vector2{X: def.Anchor[0], Y: def.Anchor[1]}
		r.HoverEnabled = def.HoverEnabled
		r.Debug = def.Debug
		r.Input = MouseInput{}
		return r, nil
	})
}

// Raycaster aims a ray through a viewport anchor every tick, keeps at most
// one Interactable hovered and dispatches clicks to the aimed-at object.
type Raycaster struct {
	engine.BaseComponent
	MaxDistance  float32
	Mask         engine.LayerMask
	Anchor       rl.Vector2 // viewport coordinates, (0,0) bottom left
	HoverEnabled bool
	Debug        bool
	Input        Input
	Viewer       engine.ViewProvider // defaults to one on this object or a parent
	World        engine.WorldAccess  // defaults to the scene's

	disabled bool
	hovered  *Interactable
	warned   bool
}

func NewRaycaster() *Raycaster {
	return &Raycaster{
		MaxDistance:  100,
		Mask:         engine.AllLayers,
		Anchor:       rl.Vector2{X: 0.5, Y: 0.5},
		HoverEnabled: true,
	}
}

func (r *Raycaster) Update(deltaTime float32) {
	if r.disabled {
		return
	}
	if r.HoverEnabled {
		r.Tick()
	}
	if r.Input != nil && r.Input.ClickPressed() {
		r.TryClick()
	}
}

// Tick casts once and moves hover to the resolved target. Exit on the old
// target always precedes enter on the new one.
func (r *Raycaster) Tick() {
	hit, ok := r.TryRaycast()
	if !ok {
		r.ClearHover()
		return
	}
	target := Resolve(hit.GameObject)
	if target == nil {
		r.ClearHover()
		return
	}
	if target == r.hovered {
		return
	}
	r.ClearHover()
	target.OnHoverEnter()
	r.hovered = target
}

// TryClick re-casts with the hover policy and clicks the resolved target.
// A held object has its collider off, so it never blocks the ray.
func (r *Raycaster) TryClick() bool {
	hit, ok := r.TryRaycast()
	if !ok {
		if r.Debug {
			log.Println("Raycaster: click hit nothing")
		}
		return false
	}
	target := Resolve(hit.GameObject)
	if target == nil {
		if r.Debug {
			log.Printf("Raycaster: click hit %s, not interactable", hit.GameObject.Name)
		}
		return false
	}
	if r.Debug {
		log.Printf("Raycaster: clicked %s at %.2f", target.Name(), hit.Distance)
	}
	target.OnClicked(hit)
	return true
}

// TryRaycast casts the anchor ray against the world.
func (r *Raycaster) TryRaycast() (engine.RaycastResult, bool) {
	viewer := r.viewer()
	world := r.world()
	if viewer == nil || world == nil {
		if !r.warned {
			r.warned = true
			log.Println("Raycaster: no viewer or world, targeting disabled")
		}
		return engine.RaycastResult{}, false
	}
	origin, dir := ViewportRay(viewer.ViewPose(), r.Anchor)
	return world.Raycast(origin, dir, r.MaxDistance, r.Mask)
}

// Resolve finds the Interactable on g or its nearest ancestor.
func Resolve(g *engine.GameObject) *Interactable {
	if g == nil {
		return nil
	}
	o, _ := engine.FindInParents[*Interactable](g)
	return o
}

// ClearHover exits the hovered object, if any.
func (r *Raycaster) ClearHover() {
	prev := r.hovered
	r.hovered = nil
	if prev != nil {
		prev.OnHoverExit()
	}
}

func (r *Raycaster) Hovered() *Interactable {
	return r.hovered
}

func (r *Raycaster) SetEnabled(enabled bool) {
	r.disabled = !enabled
	if !enabled {
		r.ClearHover()
	}
}

func (r *Raycaster) Enabled() bool {
	return !r.disabled
}

func (r *Raycaster) OnDisable() { r.ClearHover() }
func (r *Raycaster) OnDestroy() { r.ClearHover() }

func (r *Raycaster) viewer() engine.ViewProvider {
	if r.Viewer != nil {
		return r.Viewer
	}
	vp, _ := engine.FindInParents[engine.ViewProvider](r.GetGameObject())
	return vp
}

func (r *Raycaster) world() engine.WorldAccess {
	if r.World != nil {
		return r.World
	}
	if g := r.GetGameObject(); g != nil && g.Scene != nil {
		return g.Scene.World
	}
	return nil
}

// ViewportRay returns the ray from the viewer through a viewport point.
// (0.5, 0.5) is the view center and yields the forward direction.
func ViewportRay(view engine.ViewPose, anchor rl.Vector2) (origin, direction rl.Vector3) {
	aspect := view.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	tanHalf := float32(math.Tan(float64(view.Fovy*rl.Deg2rad) / 2))
	x := (2*anchor.X - 1) * tanHalf * aspect
	y := (2*anchor.Y - 1) * tanHalf
	dir := view.TransformDirection(rl.Vector3{X: x, Y: y, Z: 1})
	return view.Position, rl.Vector3Normalize(dir)
}
