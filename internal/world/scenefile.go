package world

import (
	"fmt"
	"os"

	"interact3d/internal/engine"

	"gopkg.in/yaml.v3"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name"`
	Floor   *FloorDef   `yaml:"floor"`
	Objects []ObjectDef `yaml:"objects"`
}

type FloorDef struct {
	Size  float32           `yaml:"size"`
	Color engine.ColorValue `yaml:"color"`
}

type ObjectDef struct {
	Name     string            `yaml:"name"`
	Tags     []string          `yaml:"tags"`
	Parent   string            `yaml:"parent"`
	Active   *bool             `yaml:"active"`
	Position engine.Vec3Value  `yaml:"position"`
	Rotation engine.Vec3Value  `yaml:"rotation"` // Euler degrees
	Scale    *engine.Vec3Value `yaml:"scale"`
	// Each node carries a "type" key naming a registered component; the
	// remaining keys are decoded by that component's factory.
	Components []yaml.Node `yaml:"components"`
}

type componentHeader struct {
	Type string `yaml:"type"`
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

// LoadSceneData builds objects from a YAML scene. Parents must be listed
// before their children.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	if sf.Floor != nil {
		if sf.Floor.Size > 0 {
			w.FloorSize = sf.Floor.Size
		}
		if sf.Floor.Color.A != 0 {
			w.Floor = sf.Floor.Color.RGBA()
		}
	}

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for i, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return fmt.Errorf("object %d (%q): %w", i, objDef.Name, err)
		}

		if objDef.Parent != "" {
			parent, ok := byName[objDef.Parent]
			if !ok {
				return fmt.Errorf("object %q: unknown parent %q", objDef.Name, objDef.Parent)
			}
			parent.AddChild(g)
		} else {
			w.Scene.AddGameObject(g)
		}

		if _, dup := byName[g.Name]; !dup {
			byName[g.Name] = g
		}
	}

	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = def.Position.Vector3()
	g.Transform.SetEuler(def.Rotation.Vector3())
	if def.Scale != nil {
		g.Transform.Scale = def.Scale.Vector3()
	}
	if def.Active != nil {
		g.Active = *def.Active
	}

	for i := range def.Components {
		node := &def.Components[i]
		var header componentHeader
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		if header.Type == "" {
			return nil, fmt.Errorf("component %d: missing type", i)
		}
		c, err := engine.CreateComponent(header.Type, node.Decode)
		if err != nil {
			return nil, err
		}
		g.AddComponent(c)
	}
	return g, nil
}
