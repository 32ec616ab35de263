// Package config loads the overlay configuration from a JSON or YAML file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the working directory.
const DefaultPath = "config/meshtweak.json"

type Config struct {
	Window       WindowConfig   `json:"window" yaml:"window"`
	Camera       CameraConfig   `json:"camera" yaml:"camera"`
	Panel        PanelConfig    `json:"panel" yaml:"panel"`
	Bounce       BounceConfig   `json:"bounce" yaml:"bounce"`
	PickDistance float32        `json:"pickDistance" yaml:"pickDistance"`
	Objects      []ObjectConfig `json:"objects" yaml:"objects"`

	// Controls overrides the built-in control specs per category when set.
	Controls map[string][]ControlConfig `json:"controls,omitempty" yaml:"controls,omitempty"`
}

type WindowConfig struct {
	Width     int32  `json:"width" yaml:"width"`
	Height    int32  `json:"height" yaml:"height"`
	Title     string `json:"title" yaml:"title"`
	TargetFPS int32  `json:"targetFPS" yaml:"targetFPS"`
}

// CameraConfig describes an orbit camera around Target.
// Alpha is the longitudinal angle and Beta the latitudinal one, in radians.
type CameraConfig struct {
	Alpha  float32    `json:"alpha" yaml:"alpha"`
	Beta   float32    `json:"beta" yaml:"beta"`
	Radius float32    `json:"radius" yaml:"radius"`
	Target [3]float32 `json:"target" yaml:"target"`
}

type PanelConfig struct {
	Width      float32  `json:"width" yaml:"width"`
	RowHeight  float32  `json:"rowHeight" yaml:"rowHeight"`
	Margin     float32  `json:"margin" yaml:"margin"`
	Background [3]uint8 `json:"background" yaml:"background"`
	Alpha      float32  `json:"alpha" yaml:"alpha"`
}

// BounceConfig drives the one-shot bounce of Target's pivot at startup.
type BounceConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Target    string  `json:"target" yaml:"target"`
	Amplitude float32 `json:"amplitude" yaml:"amplitude"`
	Duration  float32 `json:"duration" yaml:"duration"`
}

type ObjectConfig struct {
	Name     string             `json:"name" yaml:"name"`
	Category string             `json:"category" yaml:"category"`
	Position [3]float32         `json:"position" yaml:"position"`
	Rotation [3]float32         `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Pickable bool               `json:"pickable" yaml:"pickable"`
	Color    string             `json:"color,omitempty" yaml:"color,omitempty"`
	Params   map[string]float32 `json:"params,omitempty" yaml:"params,omitempty"`
}

// ControlConfig is the file form of one editable parameter.
// Op is "scale" (with Axes such as "xz") or "rebuild" (with Param).
type ControlConfig struct {
	Label    string  `json:"label" yaml:"label"`
	Min      float32 `json:"min" yaml:"min"`
	Max      float32 `json:"max" yaml:"max"`
	Op       string  `json:"op" yaml:"op"`
	Axes     string  `json:"axes,omitempty" yaml:"axes,omitempty"`
	Param    string  `json:"param,omitempty" yaml:"param,omitempty"`
	Integral bool    `json:"integral,omitempty" yaml:"integral,omitempty"`
}

// Default returns the demo scene: a box, an icosphere and a cylinder in a row.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "meshtweak",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			Alpha:  math.Pi / 2,
			Beta:   math.Pi / 2.5,
			Radius: 4,
		},
		Panel: PanelConfig{
			Width:      160,
			RowHeight:  40,
			Margin:     10,
			Background: [3]uint8{0, 0, 0},
			Alpha:      0.5,
		},
		Bounce: BounceConfig{
			Enabled:   true,
			Target:    "IcoSphere",
			Amplitude: 10,
			Duration:  5,
		},
		PickDistance: 1000,
		Objects: []ObjectConfig{
			{Name: "Plane", Category: "box", Rotation: [3]float32{0, 180, 0}, Pickable: true, Color: "SkyBlue"},
			{Name: "IcoSphere", Category: "sphere", Position: [3]float32{-2, 0, 0}, Pickable: true, Color: "Orange", Params: map[string]float32{"subdivisions": 4}},
			{Name: "Cylinder", Category: "cylinder", Position: [3]float32{2, 0, 0}, Pickable: true, Color: "Lime"},
		},
	}
}

// Load reads the config at path on top of Default(). A missing file is not
// an error and yields the defaults. Files ending in .yaml or .yml are read
// as YAML, anything else as JSON.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	// Decoding over the default objects would merge fields into them.
	cfg.Objects = nil
	if err := unmarshal(path, data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Objects == nil {
		cfg.Objects = Default().Objects
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg in the format chosen by the path extension, creating the
// directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := marshal(path, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func marshal(path string, cfg Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(cfg)
	}
	return json.MarshalIndent(cfg, "", "\t")
}

// Validate rejects values the game cannot run with.
// Control specs are validated by the controlspec registry.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Radius <= 0 {
		return fmt.Errorf("camera radius %v must be positive", c.Camera.Radius)
	}
	if c.Panel.Width <= 0 || c.Panel.RowHeight <= 0 || c.Panel.Margin < 0 {
		return fmt.Errorf("panel width %v, row height %v and margin %v must be positive",
			c.Panel.Width, c.Panel.RowHeight, c.Panel.Margin)
	}
	if c.Panel.Alpha < 0 || c.Panel.Alpha > 1 {
		return fmt.Errorf("panel alpha %v outside [0, 1]", c.Panel.Alpha)
	}
	if c.PickDistance <= 0 {
		return fmt.Errorf("pick distance %v must be positive", c.PickDistance)
	}
	seen := make(map[string]bool, len(c.Objects))
	for i, o := range c.Objects {
		if o.Name == "" {
			return fmt.Errorf("object %d: empty name", i)
		}
		if o.Category == "" {
			return fmt.Errorf("object %q: empty category", o.Name)
		}
		if seen[o.Name] {
			return fmt.Errorf("object %q: duplicate name", o.Name)
		}
		seen[o.Name] = true
	}
	if c.Bounce.Enabled {
		if c.Bounce.Duration <= 0 {
			return fmt.Errorf("bounce duration %v must be positive", c.Bounce.Duration)
		}
		if !seen[c.Bounce.Target] {
			return fmt.Errorf("bounce target %q is not a configured object", c.Bounce.Target)
		}
	}
	return nil
}
