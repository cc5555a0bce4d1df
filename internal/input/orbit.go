package input

import "scene-viewer/internal/orbit"

// OrbitHelper owns the camera and performs drag/zoom itself. It notifies listeners after
// every gesture that moved the camera.
type OrbitHelper interface {
	Handle(ev Event)
	Position() orbit.Vec3
	SetPosition(p orbit.Vec3)
	OnChange(fn func())
}

// Orbit delegates gestures to an OrbitHelper. Helper changes flow backward into the state
// through the inverse transform; state edits flow forward into the helper. The two paths
// never trigger each other.
type Orbit struct {
	state    *orbit.State
	helper   OrbitHelper
	display  Display
	settings Settings

	applying bool
	z        float32
}

// NewOrbit subscribes to helper and moves it to the state's current position.
func NewOrbit(state *orbit.State, helper OrbitHelper, display Display, settings Settings) *Orbit {
	if display == nil {
		display = nopDisplay{}
	}
	o := &Orbit{state: state, helper: helper, display: display, settings: settings, z: settings.InitialZ}
	helper.OnChange(o.sync)
	o.Apply()
	return o
}

func (o *Orbit) Z() float32 {
	return o.z
}

// Handle forwards pointer and wheel events to the helper. Step buttons edit the state and
// go through the forward path like a panel edit.
func (o *Orbit) Handle(ev Event) {
	if ev.Kind != Step {
		o.helper.Handle(ev)
		return
	}
	if applyStep(o.state, &o.z, ev.Button, o.settings.StepSize) {
		o.Apply()
		o.display.Refresh()
	}
}

// Apply sets the helper's camera from the state. Notifications raised while applying are ignored.
func (o *Orbit) Apply() {
	o.applying = true
	o.helper.SetPosition(o.state.Position())
	o.applying = false
}

// sync mirrors the helper's camera into the state and display only.
func (o *Orbit) sync() {
	if o.applying {
		return
	}
	o.state.SetPosition(o.helper.Position())
	o.display.Refresh()
}
