package input

import "scene-viewer/internal/orbit"

// Manual is the drag state machine: Idle until a pointer press, Dragging until release.
// Drag angles are measured from a snapshot taken at press time, not accumulated per move.
type Manual struct {
	state    *orbit.State
	camera   Camera
	display  Display
	settings Settings

	dragging       bool
	pressX, pressY float32
	pressTheta     float32
	pressPhi       float32
	z              float32
}

// NewManual returns an idle controller. camera and display may be nil.
func NewManual(state *orbit.State, camera Camera, display Display, settings Settings) *Manual {
	if camera == nil {
		camera = nopCamera{}
	}
	if display == nil {
		display = nopDisplay{}
	}
	return &Manual{state: state, camera: camera, display: display, settings: settings, z: settings.InitialZ}
}

// Dragging reports whether a drag gesture is in progress.
func (m *Manual) Dragging() bool {
	return m.dragging
}

func (m *Manual) Z() float32 {
	return m.z
}

func (m *Manual) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		m.dragging = true
		m.pressX, m.pressY = ev.X, ev.Y
		m.pressTheta, m.pressPhi = m.state.Theta, m.state.Phi
	case PointerMove:
		if !m.dragging {
			return
		}
		dx := ev.X - m.pressX
		dy := ev.Y - m.pressY
		m.state.SetTheta(m.pressTheta + dx*m.settings.DragSensitivity)
		m.state.SetPhi(m.pressPhi - dy*m.settings.DragSensitivity)
		m.changed()
	case PointerUp:
		m.dragging = false
	case Wheel:
		m.state.SetRadius(m.state.Radius + ev.DeltaY*m.settings.ScrollSensitivity)
		m.changed()
	case Step:
		if applyStep(m.state, &m.z, ev.Button, m.settings.StepSize) {
			m.changed()
		}
	}
}

// Apply places the camera from the current state. The caller refreshes its own display.
func (m *Manual) Apply() {
	m.camera.Place(m.state.Position())
}

func (m *Manual) changed() {
	m.Apply()
	m.display.Refresh()
}
