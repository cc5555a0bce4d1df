package orbit

import "github.com/chewxy/math32"

// State is the camera's orbit and projection parameters. Every setter clamps; there is no
// invalid configuration. Position and orientation are always derived, never stored.
type State struct {
	Radius float32 // distance from the origin, >= MinRadius
	Theta  float32 // azimuth in radians
	Phi    float32 // polar angle in radians, [0, π]
	Near   float32
	Far    float32
	FOV    float32 // vertical field of view in degrees
	Aspect float32
}

// Default returns the startup state: radius 50, theta 2, phi 1, znear 0.1, zfar 1000, fov 75, aspect 16:9.
func Default() State {
	return State{
		Radius: 50,
		Theta:  2,
		Phi:    1,
		Near:   0.1,
		Far:    1000,
		FOV:    75,
		Aspect: 16.0 / 9.0,
	}
}

// Normalize applies every clamp in place. Used after bulk assignment (config, reset).
func (s *State) Normalize() {
	s.Radius = FloorRadius(s.Radius)
	s.Phi = ClampPhi(s.Phi)
	s.SetNear(s.Near)
	s.SetFar(s.Far)
	s.SetFOV(s.FOV)
	s.SetAspect(s.Aspect)
}

// Position returns the camera position derived from (Radius, Theta, Phi).
func (s *State) Position() Vec3 {
	return Position(s.Radius, s.Theta, s.Phi)
}

// SetRadius sets the radius, floored at MinRadius.
func (s *State) SetRadius(r float32) {
	s.Radius = FloorRadius(r)
}

// SetTheta sets the azimuth as given. Drag accumulates freely; steps and the inverse transform wrap.
func (s *State) SetTheta(theta float32) {
	s.Theta = theta
}

// SetPhi sets the polar angle clamped to [0, π].
func (s *State) SetPhi(phi float32) {
	s.Phi = ClampPhi(phi)
}

// SetNear sets the near plane within NearRange and pushes the far plane out if needed.
func (s *State) SetNear(near float32) {
	s.Near = NearRange.Clamp(near)
	if s.Far <= s.Near {
		s.Far = s.Near + 1
	}
}

// SetFar sets the far plane within FarRange, always beyond the near plane.
func (s *State) SetFar(far float32) {
	s.Far = FarRange.Clamp(far)
	if s.Far <= s.Near {
		s.Far = s.Near + 1
	}
}

// SetFOV sets the vertical field of view, kept inside (0, 180).
func (s *State) SetFOV(fov float32) {
	fov = FOVRange.Clamp(fov)
	if fov > maxFOV {
		fov = maxFOV
	}
	s.FOV = fov
}

// SetAspect sets the aspect ratio. Only the lower bound applies; a wide window may exceed the panel range.
func (s *State) SetAspect(aspect float32) {
	if aspect < AspectRange.Min || math32.IsNaN(aspect) {
		aspect = AspectRange.Min
	}
	s.Aspect = aspect
}

// SetPosition replaces (Radius, Theta, Phi) with the inverse transform of p.
func (s *State) SetPosition(p Vec3) {
	r, theta, phi := Spherical(p)
	s.Radius = FloorRadius(r)
	s.Theta = theta
	s.Phi = ClampPhi(phi)
}

// StepRadius adds delta to the radius, floored at MinRadius.
func (s *State) StepRadius(delta float32) {
	s.SetRadius(s.Radius + delta)
}

// StepTheta adds delta to the azimuth and wraps it modulo 2π.
func (s *State) StepTheta(delta float32) {
	s.Theta = WrapAngle(s.Theta + delta)
}

// StepPhi adds delta to the polar angle and wraps it modulo 2π. A step over a pole lands in
// (π, 2π); that point is stored as its mirror (2π−φ, θ+π), so the camera moves smoothly past
// the pole while phi stays in [0, π].
func (s *State) StepPhi(delta float32) {
	phi := WrapAngle(s.Phi + delta)
	if phi > math32.Pi {
		phi = TwoPi - phi
		s.Theta = WrapAngle(s.Theta + math32.Pi)
	}
	s.Phi = ClampPhi(phi)
}
