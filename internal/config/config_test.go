package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/orbit"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "viewer.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.True(t, c.TintMaterialColor)
	assert.Equal(t, ControlManual, c.Control)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"control":"orbit","tint_material_color":false,"camera":{"radius":12}}`), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ControlOrbit, c.Control)
	assert.False(t, c.TintMaterialColor)
	assert.Equal(t, float32(12), c.Camera.Radius)
	assert.Equal(t, float32(75), c.Camera.FOV)
	assert.Equal(t, "./models", c.ModelsDir)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"control":`), 0644))
	c, err := Load(bad)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)

	mode := filepath.Join(dir, "mode.json")
	require.NoError(t, os.WriteFile(mode, []byte(`{"control":"fly"}`), 0644))
	_, err = Load(mode)
	assert.ErrorContains(t, err, "fly")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	c := Default()
	c.ShowFPS = true
	c.ModelsURL = "https://example.com/models"
	require.NoError(t, Save(path, c))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestApplyOverrides(t *testing.T) {
	c := Default()
	err := c.Apply(OverridesFromEnv(map[string]string{
		"CONTROL":    "orbit",
		"MODELS_URL": "http://localhost:8000/models",
	}))
	require.NoError(t, err)
	assert.Equal(t, ControlOrbit, c.Control)
	assert.Equal(t, "http://localhost:8000/models", c.ModelsURL)
	assert.Equal(t, "./models", c.ModelsDir, "empty overrides leave values alone")

	err = c.Apply(Overrides{Control: "spin"})
	assert.Error(t, err)
	assert.Equal(t, ControlOrbit, c.Control, "rejected overrides do not apply")
}

func TestHomePathsExpand(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"models_dir":"~/models"}`), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "models"), c.ModelsDir)

	require.NoError(t, c.Apply(Overrides{CacheDir: "~/.cache/viewer"}))
	assert.Equal(t, filepath.Join(home, ".cache/viewer"), c.CacheDir)

	assert.Error(t, c.Apply(Overrides{Manifest: "~someone/scene.yaml"}))
}

func TestOrbitState(t *testing.T) {
	c := Default()
	c.Camera.Radius = 0
	c.Camera.Phi = 9
	s := c.OrbitState(1.5)
	assert.Equal(t, orbit.MinRadius, s.Radius)
	assert.LessOrEqual(t, s.Phi, float32(3.1416))
	assert.Equal(t, float32(1.5), s.Aspect)

	in := c.InputSettings()
	assert.Equal(t, float32(0.01), in.DragSensitivity)
	assert.Equal(t, float32(0.05), in.ScrollSensitivity)
	assert.Equal(t, float32(0.1), in.StepSize)
}
