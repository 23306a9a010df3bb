package hud

import (
	"interact3d/internal/interact"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HeldItemDisplay shows which object is currently held.
type HeldItemDisplay struct {
	Registry      *interact.Registry
	Prefix        string
	EmptyText     string
	HideWhenEmpty bool
	Bounds        rl.Rectangle
}

func NewHeldItemDisplay(registry *interact.Registry) *HeldItemDisplay {
	return &HeldItemDisplay{
		Registry:  registry,
		Prefix:    "Holding: ",
		EmptyText: "No item held",
		Bounds:    rl.Rectangle{X: 10, Y: 60, Width: 300, Height: 24},
	}
}

func (d *HeldItemDisplay) Text() string {
	if d.Registry == nil {
		return d.EmptyText
	}
	if name := d.Registry.HeldName(); name != "" {
		return d.Prefix + name
	}
	return d.EmptyText
}

func (d *HeldItemDisplay) Visible() bool {
	if !d.HideWhenEmpty {
		return true
	}
	return d.Registry != nil && d.Registry.IsAnyHeld()
}

func (d *HeldItemDisplay) Draw() {
	if !d.Visible() {
		return
	}
	gui.Label(d.Bounds, d.Text())
}
