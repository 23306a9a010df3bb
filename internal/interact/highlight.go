package interact

import (
	"fmt"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HighlightMode selects how hover is shown. It is fixed per object.
type HighlightMode int

const (
	HighlightColorChange HighlightMode = iota
	HighlightOutlineSwap
	HighlightOutlineOverlay
	HighlightShaderProperty
	HighlightDisabled
)

var highlightModeNames = [...]string{
	HighlightColorChange:    "color",
	HighlightOutlineSwap:    "outline-swap",
	HighlightOutlineOverlay: "outline-overlay",
	HighlightShaderProperty: "shader-property",
	HighlightDisabled:       "disabled",
}

func (m HighlightMode) String() string {
	if m < 0 || int(m) >= len(highlightModeNames) {
		return fmt.Sprintf("HighlightMode(%d)", int(m))
	}
	return highlightModeNames[m]
}

func ParseHighlightMode(s string) (HighlightMode, error) {
	for m, name := range highlightModeNames {
		if name == s {
			return HighlightMode(m), nil
		}
	}
	return HighlightDisabled, fmt.Errorf("unknown highlight mode %q", s)
}

func (m *HighlightMode) UnmarshalText(text []byte) error {
	parsed, err := ParseHighlightMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m HighlightMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Shader parameter names touched by the highlight strategies.
const (
	ParamEmissionColor    = "_EmissionColor"
	ParamRimIntensity     = "_RimIntensity"
	ParamRimColor         = "_RimColor"
	ParamOutlineIntensity = "_OutlineIntensity"
	ParamOutlineColor     = "_OutlineColor"
)

// Highlighter applies and reverts one hover effect. Apply while active and
// Revert while inactive are no-ops.
type Highlighter interface {
	Apply()
	Revert()
	Active() bool
}

// highlightTargets are the collaborators a strategy may act on.
type highlightTargets struct {
	surface  Surface          // primary surface
	surfaces []Surface        // primary plus descendants when configured
	holders  []MaterialHolder // likewise
	outline  *engine.Material
}

// newHighlighter builds the strategy for mode. A strategy whose targets are
// missing is inert; warn is called once with the reason.
func newHighlighter(mode HighlightMode, cfg HighlightConfig, t highlightTargets, warn func(format string, args ...any)) Highlighter {
	switch mode {
	case HighlightColorChange:
		if t.surface == nil {
			warn("no visual surface, color highlight disabled")
			return noHighlight{}
		}
		return &colorHighlight{surface: t.surface, cfg: cfg}
	case HighlightOutlineSwap, HighlightOutlineOverlay:
		if t.outline == nil {
			warn("no outline material, %s highlight disabled", mode)
			return noHighlight{}
		}
		if len(t.holders) == 0 {
			warn("no material holders, %s highlight disabled", mode)
			return noHighlight{}
		}
		return &outlineHighlight{holders: t.holders, outline: t.outline, overlay: mode == HighlightOutlineOverlay}
	case HighlightShaderProperty:
		var usable []Surface
		for _, s := range t.surfaces {
			if s.HasParam(ParamRimIntensity) || s.HasParam(ParamRimColor) ||
				s.HasParam(ParamOutlineIntensity) || s.HasParam(ParamOutlineColor) {
				usable = append(usable, s)
			}
		}
		if len(usable) == 0 {
			warn("no surface exposes rim or outline parameters, shader highlight disabled")
			return noHighlight{}
		}
		return &shaderHighlight{surfaces: usable, cfg: cfg}
	}
	return noHighlight{}
}

type noHighlight struct{}

func (noHighlight) Apply()       {}
func (noHighlight) Revert()      {}
func (noHighlight) Active() bool { return false }

// colorHighlight tints the primary surface and optionally boosts emission.
type colorHighlight struct {
	surface Surface
	cfg     HighlightConfig

	active       bool
	baseColor    rl.Color
	baseEmission rl.Color
	emission     bool
}

func (h *colorHighlight) Apply() {
	if h.active {
		return
	}
	h.baseColor = h.surface.GetColor()
	h.emission = h.cfg.UseEmission && h.surface.HasParam(ParamEmissionColor)
	if h.emission {
		h.baseEmission = h.surface.ColorParam(ParamEmissionColor)
	}

	hover := h.cfg.HoverColor.RGBA()
	h.surface.SetColor(hover)
	if h.emission {
		h.surface.SetColorParam(ParamEmissionColor, scaleColor(hover, h.cfg.HoverEmissionIntensity))
	}
	h.active = true
}

func (h *colorHighlight) Revert() {
	if !h.active {
		return
	}
	h.surface.SetColor(h.baseColor)
	if h.emission {
		h.surface.SetColorParam(ParamEmissionColor, h.baseEmission)
	}
	h.active = false
}

func (h *colorHighlight) Active() bool { return h.active }

// scaleColor multiplies RGB by k, clamped; alpha is kept.
func scaleColor(c rl.Color, k float32) rl.Color {
	scale := func(v uint8) uint8 {
		f := float32(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// outlineHighlight swaps every slot for the outline material, or appends it
// as an extra slot when overlay is set. Revert restores each holder's
// captured slice.
type outlineHighlight struct {
	holders []MaterialHolder
	outline *engine.Material
	overlay bool

	saved [][]*engine.Material
}

func (h *outlineHighlight) Apply() {
	if h.saved != nil {
		return
	}
	h.saved = make([][]*engine.Material, len(h.holders))
	for i, holder := range h.holders {
		current := holder.GetMaterials()
		h.saved[i] = engine.CloneMaterials(current)

		var next []*engine.Material
		if h.overlay {
			next = append(engine.CloneMaterials(current), h.outline)
		} else {
			n := max(len(current), 1)
			next = make([]*engine.Material, n)
			for j := range next {
				next[j] = h.outline
			}
		}
		holder.SetMaterials(next)
	}
}

func (h *outlineHighlight) Revert() {
	if h.saved == nil {
		return
	}
	for i, holder := range h.holders {
		holder.SetMaterials(h.saved[i])
	}
	h.saved = nil
}

func (h *outlineHighlight) Active() bool { return h.saved != nil }

type shaderState struct {
	rimIntensity     float32
	rimColor         rl.Color
	outlineIntensity float32
	outlineColor     rl.Color
}

// shaderHighlight drives rim (and optionally outline) parameters on every
// surface that has them.
type shaderHighlight struct {
	surfaces []Surface
	cfg      HighlightConfig

	saved []shaderState
}

func (h *shaderHighlight) Apply() {
	if h.saved != nil {
		return
	}
	h.saved = make([]shaderState, len(h.surfaces))
	for i, s := range h.surfaces {
		st := &h.saved[i]
		if s.HasParam(ParamRimIntensity) {
			st.rimIntensity = s.Float(ParamRimIntensity)
			s.SetFloat(ParamRimIntensity, h.cfg.RimIntensity)
		}
		if s.HasParam(ParamRimColor) {
			st.rimColor = s.ColorParam(ParamRimColor)
			s.SetColorParam(ParamRimColor, h.cfg.RimColor.RGBA())
		}
		if !h.cfg.UseOutlineIntensity {
			continue
		}
		if s.HasParam(ParamOutlineIntensity) {
			st.outlineIntensity = s.Float(ParamOutlineIntensity)
			s.SetFloat(ParamOutlineIntensity, h.cfg.OutlineIntensity)
		}
		if s.HasParam(ParamOutlineColor) {
			st.outlineColor = s.ColorParam(ParamOutlineColor)
			s.SetColorParam(ParamOutlineColor, h.cfg.OutlineColor.RGBA())
		}
	}
}

func (h *shaderHighlight) Revert() {
	if h.saved == nil {
		return
	}
	for i, s := range h.surfaces {
		st := h.saved[i]
		if s.HasParam(ParamRimIntensity) {
			s.SetFloat(ParamRimIntensity, st.rimIntensity)
		}
		if s.HasParam(ParamRimColor) {
			s.SetColorParam(ParamRimColor, st.rimColor)
		}
		if !h.cfg.UseOutlineIntensity {
			continue
		}
		if s.HasParam(ParamOutlineIntensity) {
			s.SetFloat(ParamOutlineIntensity, st.outlineIntensity)
		}
		if s.HasParam(ParamOutlineColor) {
			s.SetColorParam(ParamOutlineColor, st.outlineColor)
		}
	}
	h.saved = nil
}

func (h *shaderHighlight) Active() bool { return h.saved != nil }
