// Package config holds viewer settings persisted in config/viewer.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"

	"scene-viewer/internal/input"
	"scene-viewer/internal/orbit"
)

// DefaultPath is the config file, relative to the working directory.
const DefaultPath = "config/viewer.json"

// EnvPrefix prefixes environment overrides, e.g. VIEWER_CONTROL=orbit.
const EnvPrefix = "VIEWER_"

// Control modes.
const (
	ControlManual = "manual"
	ControlOrbit  = "orbit"
)

// Camera is the startup camera.
type Camera struct {
	Radius float32 `json:"radius"`
	Theta  float32 `json:"theta"`
	Phi    float32 `json:"phi"`
	Near   float32 `json:"znear"`
	Far    float32 `json:"zfar"`
	FOV    float32 `json:"fov"`
}

// Window is the initial window.
type Window struct {
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Title  string `json:"title"`
}

// Config is the full viewer configuration.
type Config struct {
	Control           string  `json:"control"`
	TintMaterialColor bool    `json:"tint_material_color"`
	ShowGrid          bool    `json:"show_grid"`
	ShowFPS           bool    `json:"show_fps"`
	ModelsDir         string  `json:"models_dir"`
	ModelsURL         string  `json:"models_url,omitempty"`
	CacheDir          string  `json:"cache_dir"`
	Manifest          string  `json:"manifest"`
	Stylesheet        string  `json:"stylesheet"`
	Font              string  `json:"font,omitempty"` // family or path under assets/fonts; empty uses raylib's font
	Camera            Camera  `json:"camera"`
	DragSensitivity   float32 `json:"drag_sensitivity"`
	ScrollSensitivity float32 `json:"scroll_sensitivity"`
	StepSize          float32 `json:"step_size"`
	Window            Window  `json:"window"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Control:           ControlManual,
		TintMaterialColor: true,
		ShowGrid:          true,
		ModelsDir:         "./models",
		CacheDir:          "cache/models",
		Manifest:          "assets/scene.yaml",
		Stylesheet:        "assets/ui/viewer.css",
		Camera: Camera{
			Radius: 50,
			Theta:  2,
			Phi:    1,
			Near:   0.1,
			Far:    1000,
			FOV:    75,
		},
		DragSensitivity:   0.01,
		ScrollSensitivity: 0.05,
		StepSize:          0.1,
		Window:            Window{Width: 1280, Height: 720, Title: "scene viewer"},
	}
}

// Load reads path over Default(). A missing file returns defaults and no error; an invalid
// file returns defaults and the error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.expandPaths(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// expandPaths resolves a leading ~ in the path settings.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.ModelsDir, &c.CacheDir, &c.Manifest, &c.Stylesheet, &c.Font} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Save writes c to path as indented JSON, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings that have no sensible clamp.
func (c Config) Validate() error {
	switch c.Control {
	case ControlManual, ControlOrbit:
	default:
		return fmt.Errorf("unknown control mode %q (use %s or %s)", c.Control, ControlManual, ControlOrbit)
	}
	if c.DragSensitivity <= 0 || c.ScrollSensitivity <= 0 || c.StepSize <= 0 {
		return fmt.Errorf("sensitivities and step size must be positive")
	}
	return nil
}

// Overrides are the settings that may come from the environment. Empty fields are ignored.
type Overrides struct {
	Control   string
	ModelsDir string
	ModelsURL string
	CacheDir  string
	Manifest  string
}

// OverridesFromEnv maps prefix-stripped variable names (CONTROL, MODELS_URL, ...) to Overrides.
func OverridesFromEnv(vars map[string]string) Overrides {
	return Overrides{
		Control:   vars["CONTROL"],
		ModelsDir: vars["MODELS_DIR"],
		ModelsURL: vars["MODELS_URL"],
		CacheDir:  vars["CACHE_DIR"],
		Manifest:  vars["MANIFEST"],
	}
}

// Apply merges the non-empty overrides onto c and revalidates.
func (c *Config) Apply(o Overrides) error {
	merged := *c
	if err := copier.CopyWithOption(&merged, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := merged.expandPaths(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	*c = merged
	return nil
}

// OrbitState returns the normalized startup camera state for the given aspect ratio.
func (c Config) OrbitState(aspect float32) orbit.State {
	s := orbit.State{
		Radius: c.Camera.Radius,
		Theta:  c.Camera.Theta,
		Phi:    c.Camera.Phi,
		Near:   c.Camera.Near,
		Far:    c.Camera.Far,
		FOV:    c.Camera.FOV,
		Aspect: aspect,
	}
	s.Normalize()
	return s
}

// InputSettings returns the controller tunables.
func (c Config) InputSettings() input.Settings {
	s := input.DefaultSettings()
	s.DragSensitivity = c.DragSensitivity
	s.ScrollSensitivity = c.ScrollSensitivity
	s.StepSize = c.StepSize
	return s
}
