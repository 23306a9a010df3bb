package interact

import (
	"errors"
	"fmt"
	"os"

	"interact3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Config is the construction-time configuration of an Interactable.
type Config struct {
	HoverEnabled bool             `yaml:"hoverEnabled"`
	FloatOnClick bool             `yaml:"floatOnClick"`
	Debug        bool             `yaml:"debug"`
	Highlight    HighlightConfig  `yaml:"highlight"`
	Float        FloatConfig      `yaml:"float"`
	ClickColor   ClickColorConfig `yaml:"clickColor"`
	Sound        SoundConfig      `yaml:"sound"`
}

type HighlightConfig struct {
	Mode                   HighlightMode     `yaml:"mode"`
	HoverColor             engine.ColorValue `yaml:"hoverColor"`
	UseEmission            bool              `yaml:"useEmission"`
	HoverEmissionIntensity float32           `yaml:"hoverEmissionIntensity"`

	// IncludeChildren extends material and shader highlights to descendants.
	IncludeChildren bool              `yaml:"includeChildren"`
	OutlineColor    engine.ColorValue `yaml:"outlineColor"`
	OutlineWidth    float32           `yaml:"outlineWidth"`

	RimColor            engine.ColorValue `yaml:"rimColor"`
	RimIntensity        float32           `yaml:"rimIntensity"`
	UseOutlineIntensity bool              `yaml:"useOutlineIntensity"`
	OutlineIntensity    float32           `yaml:"outlineIntensity"`
}

type FloatConfig struct {
	Distance      float32 `yaml:"distance"`
	Speed         float32 `yaml:"speed"`
	RotationSpeed float32 `yaml:"rotationSpeed"` // degrees per second around world up

	// Offset is viewer-relative: x right, y up, z forward.
	Offset         engine.Vec3Value `yaml:"offset"`
	RotationOffset engine.Vec3Value `yaml:"rotationOffset"` // degrees
}

type ClickColorConfig struct {
	Enabled  bool              `yaml:"enabled"`
	Color    engine.ColorValue `yaml:"color"`
	Duration float32           `yaml:"duration"` // seconds
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Clip    string  `yaml:"clip"`
	Volume  float32 `yaml:"volume"`
}

func DefaultConfig() Config {
	return Config{
		HoverEnabled: true,
		FloatOnClick: true,
		Highlight: HighlightConfig{
			Mode:                   HighlightColorChange,
			HoverColor:             engine.ColorValue(rl.Yellow),
			UseEmission:            true,
			HoverEmissionIntensity: 0.3,
			IncludeChildren:        true,
			OutlineColor:           engine.ColorValue(rl.Orange),
			OutlineWidth:           0.05,
			RimColor:               engine.ColorValue(rl.White),
			RimIntensity:           1,
			OutlineIntensity:       1,
		},
		Float: FloatConfig{
			Distance:      2,
			Speed:         5,
			RotationSpeed: 30,
			Offset:        engine.Vec3Value{0, -0.2, 0},
		},
		ClickColor: ClickColorConfig{
			Enabled:  true,
			Color:    engine.ColorValue(rl.Green),
			Duration: 0.2,
		},
		Sound: SoundConfig{
			Enabled: true,
			Clip:    "click",
			Volume:  1,
		},
	}
}

// Validate rejects values the state machine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Highlight.Mode < HighlightColorChange || c.Highlight.Mode > HighlightDisabled {
		errs = append(errs, fmt.Errorf("unknown highlight mode %d", c.Highlight.Mode))
	}
	if c.Highlight.HoverEmissionIntensity < 0 {
		errs = append(errs, errors.New("highlight.hoverEmissionIntensity must not be negative"))
	}
	if c.Highlight.OutlineWidth < 0 {
		errs = append(errs, errors.New("highlight.outlineWidth must not be negative"))
	}
	if c.Float.Distance < 0 {
		errs = append(errs, errors.New("float.distance must not be negative"))
	}
	if c.Float.Speed <= 0 {
		errs = append(errs, errors.New("float.speed must be positive"))
	}
	if c.ClickColor.Duration < 0 {
		errs = append(errs, errors.New("clickColor.duration must not be negative"))
	}
	if c.Sound.Volume < 0 {
		errs = append(errs, errors.New("sound.volume must not be negative"))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse interactable config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid interactable config: %w", err)
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read interactable config: %w", err)
	}
	return ParseConfig(data)
}
