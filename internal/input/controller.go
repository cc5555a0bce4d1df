package input

import "scene-viewer/internal/orbit"

// Controller applies input to a shared orbit.State. Every state change is pushed to the
// camera and to the bound parameter display before Handle returns.
type Controller interface {
	// Handle consumes one input event.
	Handle(ev Event)
	// Apply pushes the current state to the camera after an external edit (panel, console).
	Apply()
	// Z returns the tracked z step value.
	Z() float32
}

// Camera receives derived camera positions. The camera always looks at the origin.
type Camera interface {
	Place(position orbit.Vec3)
}

// Display is a bound parameter view that re-reads the state on Refresh.
type Display interface {
	Refresh()
}

// Settings are the tunables of both strategies.
type Settings struct {
	DragSensitivity   float32 // radians per pixel
	ScrollSensitivity float32 // radius units per wheel pixel
	StepSize          float32 // per button activation
	InitialZ          float32
}

// DefaultSettings returns drag 0.01 rad/px, scroll 0.05, step 0.1, z 5.
func DefaultSettings() Settings {
	return Settings{
		DragSensitivity:   0.01,
		ScrollSensitivity: 0.05,
		StepSize:          0.1,
		InitialZ:          5,
	}
}

type nopDisplay struct{}

func (nopDisplay) Refresh() {}

type nopCamera struct{}

func (nopCamera) Place(orbit.Vec3) {}

// applyStep mutates s (or z) for a step button. It reports false for unknown buttons.
func applyStep(s *orbit.State, z *float32, id ButtonID, step float32) bool {
	switch id {
	case IncreaseZ:
		*z += step
	case DecreaseZ:
		*z -= step
	case IncreaseR:
		s.StepRadius(step)
	case DecreaseR:
		s.StepRadius(-step)
	case IncreaseTheta:
		s.StepTheta(step)
	case DecreaseTheta:
		s.StepTheta(-step)
	case IncreasePhi:
		s.StepPhi(step)
	case DecreasePhi:
		s.StepPhi(-step)
	default:
		return false
	}
	return true
}
