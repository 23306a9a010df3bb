package interact

import (
	"fmt"
	"log"

	"interact3d/internal/components"
	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Interactable", func(decode engine.ComponentDecoder) (engine.Component, error) {
		cfg := DefaultConfig()
		if err := decode(&cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		o := NewInteractable(cfg)
		o.Input = MouseInput{}
		return o, nil
	})
}

type State int

const (
	StateIdle State = iota
	StateHovering
	StateFloating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovering:
		return "Hovering"
	case StateFloating:
		return "Floating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ClickEvent is delivered to Clicked listeners before any click feedback runs.
type ClickEvent struct {
	Object *Interactable
	Hit    engine.RaycastResult
}

// Interactable is the per-object interaction state machine: hover highlight,
// click feedback and float (pick up) with return to the pickup pose.
type Interactable struct {
	engine.BaseComponent
	Config   Config
	Registry *Registry
	Viewer   engine.ViewProvider // defaults to the scene's main view
	Input    Input               // cancel while floating
	Outline  *engine.Material    // defaults to one built from the highlight config

	Clicked engine.EventWithArg[ClickEvent]

	hovering bool
	floating bool

	highlighter Highlighter
	surface     Surface
	collider    Collider
	sound       SoundPlayer

	originalPose Pose
	pickupPose   Pose
	rotOffset    rl.Quaternion
	floatTime    float32

	motion engine.TaskSlot // return task
	flash  engine.TaskSlot // click color flash

	warned map[string]bool
}

func NewInteractable(cfg Config) *Interactable {
	return &Interactable{
		Config:      cfg,
		highlighter: noHighlight{},
		rotOffset:   rl.QuaternionIdentity(),
	}
}

// BindRegistry hands r to every Interactable in the scene that has none.
func BindRegistry(scene *engine.Scene, r *Registry) {
	for _, g := range scene.All() {
		for _, o := range engine.FindComponents[*Interactable](g) {
			if o.Registry == nil {
				o.Registry = r
			}
		}
	}
}

func (o *Interactable) Start() {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	o.originalPose = o.Pose()
	o.pickupPose = o.originalPose
	hl := o.Config.Highlight

	targets := highlightTargets{}
	if s := engine.FindComponent[Surface](g); s != nil {
		targets.surface = s
		targets.surfaces = append(targets.surfaces, s)
	}
	if h := engine.FindComponent[MaterialHolder](g); h != nil {
		targets.holders = append(targets.holders, h)
	}
	if hl.IncludeChildren {
		targets.surfaces = append(targets.surfaces, engine.FindInChildren[Surface](g)...)
		targets.holders = append(targets.holders, engine.FindInChildren[MaterialHolder](g)...)
		if targets.surface == nil && len(targets.surfaces) > 0 {
			targets.surface = targets.surfaces[0]
		}
	}
	o.surface = targets.surface

	if o.Outline == nil && hl.OutlineColor.A != 0 {
		o.Outline = engine.NewOutlineMaterial(g.Name+"_Outline", hl.OutlineColor.RGBA(), hl.OutlineWidth)
	}
	targets.outline = o.Outline
	o.highlighter = newHighlighter(hl.Mode, hl, targets, func(format string, args ...any) {
		o.warnOnce("highlight", format, args...)
	})

	o.collider = engine.FindComponent[Collider](g)
	if o.collider == nil {
		o.warnOnce("collider", "no collider, object cannot be targeted")
	}

	o.sound = engine.FindComponent[SoundPlayer](g)
	if o.sound == nil && o.Config.Sound.Enabled {
		src := components.NewAudioSource()
		src.Volume = o.Config.Sound.Volume
		g.AddComponent(src)
		o.sound = src
	}

	o.viewer()
}

func (o *Interactable) Update(deltaTime float32) {
	if o.floating && o.Input != nil && o.Input.CancelPressed() {
		o.stopFloat()
	}
	if o.floating {
		o.updateFloat(deltaTime)
	}
	o.motion.Advance(deltaTime)
	o.flash.Advance(deltaTime)
}

func (o *Interactable) OnHoverEnter() {
	if !o.Config.HoverEnabled || o.Config.Highlight.Mode == HighlightDisabled || o.hovering {
		return
	}
	o.hovering = true
	if o.flash.Running() {
		// Applied when the flash settles.
		return
	}
	o.highlighter.Apply()
}

func (o *Interactable) OnHoverExit() {
	if !o.hovering {
		return
	}
	o.hovering = false
	if o.flash.Running() {
		return
	}
	o.highlighter.Revert()
}

// syncHighlight makes the highlight match the hover state.
func (o *Interactable) syncHighlight() {
	if o.hovering && !o.highlighter.Active() {
		o.highlighter.Apply()
	} else if !o.hovering && o.highlighter.Active() {
		o.highlighter.Revert()
	}
}

// SetOutlineActive applies or reverts the highlight outside of hover.
func (o *Interactable) SetOutlineActive(active bool) {
	if active {
		o.highlighter.Apply()
	} else {
		o.highlighter.Revert()
	}
}

// OnClicked runs the click pipeline: Clicked listeners, float toggle, color
// flash, sound, then ClickReceiver components on the same object.
func (o *Interactable) OnClicked(hit engine.RaycastResult) {
	o.Clicked.Invoke(ClickEvent{Object: o, Hit: hit})

	if o.Config.FloatOnClick {
		o.ToggleFloat()
	}
	if o.Config.ClickColor.Enabled {
		o.startFlash()
	}
	if o.Config.Sound.Enabled {
		o.playSound()
	}
	for _, r := range engine.FindComponents[ClickReceiver](o.GetGameObject()) {
		r.OnClickedCustom(hit)
	}
}

// SimulateClick runs OnClicked without a raycast hit.
func (o *Interactable) SimulateClick() {
	o.OnClicked(engine.RaycastResult{GameObject: o.GetGameObject()})
}

func (o *Interactable) playSound() {
	if o.sound == nil {
		o.warnOnce("sound", "no sound player, click sound disabled")
		return
	}
	if !o.sound.PlayOneShot(o.Config.Sound.Clip) && o.Config.Debug {
		log.Printf("Interactable %s: clip %q did not play", o.Name(), o.Config.Sound.Clip)
	}
}

// ForceReturnToOriginal stops floating, if floating, and returns the object
// to its pickup pose.
func (o *Interactable) ForceReturnToOriginal() {
	if o.floating {
		o.stopFloat()
	}
}

func (o *Interactable) OnDisable() {
	o.flash.Cancel()
	o.hovering = false
	o.highlighter.Revert()
	if o.floating || o.motion.Running() {
		// Inactive objects are not ticked, so settle at once.
		o.floating = false
		o.release()
		o.motion.Cancel()
		o.settle()
	}
}

func (o *Interactable) OnDestroy() {
	o.release()
	o.floating = false
	o.hovering = false
	o.motion.Cancel()
	o.flash.Cancel()
	o.highlighter.Revert()
	o.Outline = nil
	o.Clicked.RemoveAllListeners()
}

func (o *Interactable) release() {
	if o.Registry != nil {
		o.Registry.release(o)
	}
}

func (o *Interactable) State() State {
	switch {
	case o.floating:
		return StateFloating
	case o.hovering:
		return StateHovering
	}
	return StateIdle
}

func (o *Interactable) IsHovering() bool  { return o.hovering }
func (o *Interactable) IsFloating() bool  { return o.floating }
func (o *Interactable) IsReturning() bool { return o.motion.Running() }
func (o *Interactable) IsFlashing() bool  { return o.flash.Running() }

// PickupPose is the pose captured when the current or last float began.
func (o *Interactable) PickupPose() Pose { return o.pickupPose }

// OriginalPose is the pose captured at Start.
func (o *Interactable) OriginalPose() Pose { return o.originalPose }

// Pose is the current local pose.
func (o *Interactable) Pose() Pose {
	g := o.GetGameObject()
	if g == nil {
		return Pose{Rotation: rl.QuaternionIdentity()}
	}
	return PoseOf(g.Transform)
}

func (o *Interactable) Mode() HighlightMode { return o.Config.Highlight.Mode }

func (o *Interactable) viewer() engine.ViewProvider {
	if o.Viewer == nil {
		if g := o.GetGameObject(); g != nil && g.Scene != nil {
			o.Viewer = g.Scene.MainView()
		}
	}
	return o.Viewer
}

func (o *Interactable) warnOnce(key, format string, args ...any) {
	if o.warned == nil {
		o.warned = make(map[string]bool)
	}
	if o.warned[key] {
		return
	}
	o.warned[key] = true
	log.Printf("Interactable %s: "+format, append([]any{o.Name()}, args...)...)
}
