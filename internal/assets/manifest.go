package assets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Request names an asset and where to place it.
type Request struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale"`
}

// Manifest is the list of assets loaded at startup (assets/scene.yaml).
type Manifest struct {
	Models []Request `yaml:"models"`
}

// baseScale is the scale the built-in manifest derives its per-model scales from.
const baseScale = 0.5

// DefaultManifest returns the built-in scene: a military car, a tank and an eye.
func DefaultManifest() Manifest {
	return Manifest{Models: []Request{
		{Name: "carro_militar", Position: [3]float32{-10, -5, 0}, Scale: baseScale},
		{Name: "tanque_militar", Position: [3]float32{10, -3, 0}, Scale: baseScale * 3},
		{Name: "eye", Position: [3]float32{20, 0, 0}, Scale: baseScale / 100},
	}}
}

// LoadManifest reads a YAML manifest. A missing file yields the default manifest and no error;
// an unreadable or invalid file yields the default manifest and the error.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultManifest(), nil
		}
		return DefaultManifest(), fmt.Errorf("manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return DefaultManifest(), fmt.Errorf("manifest %s: %w", path, err)
	}
	for i, r := range m.Models {
		if err := ValidName(r.Name); err != nil {
			return DefaultManifest(), fmt.Errorf("manifest %s: model %d: %w", path, i, err)
		}
		if r.Scale == 0 {
			m.Models[i].Scale = 1
		}
	}
	return m, nil
}
