package components

import (
	"fmt"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func(decode engine.ComponentDecoder) (engine.Component, error) {
		var def struct {
			Mesh   string                       `yaml:"mesh"`
			Size   engine.Vec3Value             `yaml:"size"`
			Color  engine.ColorValue            `yaml:"color"`
			Floats map[string]float32           `yaml:"floats"`
			Colors map[string]engine.ColorValue `yaml:"colors"`
		}
		def.Size = engine.Vec3Value{1, 1, 1}
		def.Color = engine.ColorValue(rl.White)
		if err := decode(&def); err != nil {
			return nil, err
		}
		mesh, err := ParseMeshType(def.Mesh)
		if err != nil {
			return nil, err
		}
		m := NewMeshRenderer(mesh, def.Color.RGBA(), def.Size.Vector3())
		for name, v := range def.Floats {
			m.SetFloat(name, v)
		}
		for name, c := range def.Colors {
			m.SetColorParam(name, c.RGBA())
		}
		return m, nil
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

func ParseMeshType(s string) (MeshType, error) {
	switch s {
	case "", "cube":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	case "plane":
		return MeshPlane, nil
	}
	return MeshCube, fmt.Errorf("unknown mesh %q", s)
}

// Shader parameter names understood by Draw.
const (
	ParamEmissionColor = "_EmissionColor"
)

// MeshRenderer draws a primitive mesh and exposes its material instance:
// the primary color, named shader parameters and the material slots.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Materials []*engine.Material
	floats    map[string]float32
	colors    map[string]rl.Color
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType:  meshType,
		Color:     color,
		Size:      size,
		Materials: []*engine.Material{engine.NewMaterial("Default", color)},
		floats:    make(map[string]float32),
		colors:    make(map[string]rl.Color),
	}
}

func (m *MeshRenderer) GetColor() rl.Color  { return m.Color }
func (m *MeshRenderer) SetColor(c rl.Color) { m.Color = c }

func (m *MeshRenderer) HasParam(name string) bool {
	if _, ok := m.floats[name]; ok {
		return true
	}
	_, ok := m.colors[name]
	return ok
}

func (m *MeshRenderer) Float(name string) float32 {
	return m.floats[name]
}

func (m *MeshRenderer) SetFloat(name string, v float32) {
	if m.floats == nil {
		m.floats = make(map[string]float32)
	}
	m.floats[name] = v
}

func (m *MeshRenderer) ColorParam(name string) rl.Color {
	return m.colors[name]
}

func (m *MeshRenderer) SetColorParam(name string, c rl.Color) {
	if m.colors == nil {
		m.colors = make(map[string]rl.Color)
	}
	m.colors[name] = c
}

func (m *MeshRenderer) GetMaterials() []*engine.Material {
	return m.Materials
}

func (m *MeshRenderer) SetMaterials(mats []*engine.Material) {
	m.Materials = mats
}

// displayColor is the primary color with emission added on top.
func (m *MeshRenderer) displayColor() rl.Color {
	c := m.Color
	if e, ok := m.colors[ParamEmissionColor]; ok {
		c.R = addSat(c.R, e.R)
		c.G = addSat(c.G, e.G)
		c.B = addSat(c.B, e.B)
	}
	return c
}

func addSat(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(g.WorldRotation(), &axis, &angle)

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)

	origin := rl.Vector3Zero()
	solid := false
	for _, mat := range m.Materials {
		if mat == nil {
			continue
		}
		if mat.Outline {
			m.drawShell(origin, size, mat)
			continue
		}
		if !solid {
			m.drawSolid(origin, size, m.displayColor())
			solid = true
		}
	}
	if !solid {
		// Every slot was swapped for an outline; keep the body visible.
		m.drawSolid(origin, size, m.displayColor())
	}

	rl.PopMatrix()
}

func (m *MeshRenderer) drawSolid(pos, size rl.Vector3, color rl.Color) {
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, color)
	case MeshSphere:
		rl.DrawSphere(pos, size.X, color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, color)
	}
}

func (m *MeshRenderer) drawShell(pos, size rl.Vector3, mat *engine.Material) {
	grow := mat.Width * 2
	shell := rl.Vector3{X: size.X + grow, Y: size.Y + grow, Z: size.Z + grow}
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeWiresV(pos, shell, mat.Color)
	case MeshSphere:
		rl.DrawSphereWires(pos, size.X+mat.Width, 12, 12, mat.Color)
	case MeshPlane:
		rl.DrawCubeWiresV(pos, rl.Vector3{X: shell.X, Y: mat.Width, Z: shell.Z}, mat.Color)
	}
}
