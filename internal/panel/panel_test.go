package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/input"
	"scene-viewer/internal/orbit"
)

type captureView struct {
	shown [][]Value
}

func (v *captureView) Show(values []Value) { v.shown = append(v.shown, values) }

func (v *captureView) last(name string) float32 {
	for _, val := range v.shown[len(v.shown)-1] {
		if val.Name == name {
			return val.Value
		}
	}
	return -1
}

func TestFieldsCoverCamera(t *testing.T) {
	names := make([]string, 0, len(Fields))
	for _, f := range Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"znear", "zfar", "radius", "theta", "phi", "fov", "aspect"}, names)

	f, ok := Lookup("znear")
	require.True(t, ok)
	assert.Equal(t, orbit.Range{Min: 0.1, Max: 100}, f.Range)
	f, _ = Lookup("fov")
	assert.Equal(t, orbit.Range{Min: 1, Max: 180}, f.Range)
}

func TestEditClampsAndNotifies(t *testing.T) {
	s := orbit.Default()
	view := &captureView{}
	p := New(&s, view)
	var edited []string
	p.OnEdit(func(field string) { edited = append(edited, field) })

	require.NoError(t, p.Edit("radius", 5000))
	assert.Equal(t, float32(1000), s.Radius)
	require.NoError(t, p.Edit("phi", -1))
	assert.Zero(t, s.Phi)
	assert.Equal(t, []string{"radius", "phi"}, edited)
	assert.Len(t, view.shown, 2)
	assert.Zero(t, view.last("phi"))

	assert.Error(t, p.Edit("zoom", 1))
	assert.Len(t, edited, 2)
}

func TestRefreshMirrorsControllerChanges(t *testing.T) {
	s := orbit.Default()
	view := &captureView{}
	p := New(&s, view)
	m := input.NewManual(&s, nil, p, input.DefaultSettings())

	m.Handle(input.Scroll(20))
	require.Len(t, view.shown, 1)
	assert.InDelta(t, 51, view.last("radius"), 1e-4)
}

func TestPanelEditDrivesManualCamera(t *testing.T) {
	s := orbit.Default()
	var placed []orbit.Vec3
	cam := cameraFunc(func(pos orbit.Vec3) { placed = append(placed, pos) })
	p := New(&s, nil)
	m := input.NewManual(&s, cam, p, input.DefaultSettings())
	p.OnEdit(func(string) { m.Apply() })

	require.NoError(t, p.Edit("theta", 0.5))
	require.Len(t, placed, 1)
	assert.Equal(t, orbit.Position(s.Radius, 0.5, s.Phi), placed[0])
}

type cameraFunc func(orbit.Vec3)

func (f cameraFunc) Place(pos orbit.Vec3) { f(pos) }
