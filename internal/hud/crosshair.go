package hud

import (
	"interact3d/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Crosshair marks the raycaster's viewport anchor and turns to the hover
// color while something is targeted.
type Crosshair struct {
	Raycaster  *interact.Raycaster
	Size       int32
	Color      rl.Color
	HoverColor rl.Color
}

func NewCrosshair(r *interact.Raycaster) *Crosshair {
	return &Crosshair{
		Raycaster:  r,
		Size:       8,
		Color:      rl.RayWhite,
		HoverColor: rl.Yellow,
	}
}

// Position maps the anchor to screen pixels; viewport Y grows upward.
func (c *Crosshair) Position(screenW, screenH int32) (x, y int32) {
	anchor := rl.Vector2{X: 0.5, Y: 0.5}
	if c.Raycaster != nil {
		anchor = c.Raycaster.Anchor
	}
	return int32(anchor.X * float32(screenW)), int32((1 - anchor.Y) * float32(screenH))
}

// Label is the hovered object's name, or "".
func (c *Crosshair) Label() string {
	if c.Raycaster == nil {
		return ""
	}
	if h := c.Raycaster.Hovered(); h != nil {
		return h.Name()
	}
	return ""
}

func (c *Crosshair) Draw() {
	x, y := c.Position(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	color := c.Color
	label := c.Label()
	if label != "" {
		color = c.HoverColor
	}
	rl.DrawLine(x-c.Size, y, x+c.Size, y, color)
	rl.DrawLine(x, y-c.Size, x, y+c.Size, color)
	if label != "" {
		rl.DrawText(label, x+c.Size+6, y+c.Size, 16, color)
	}
}
