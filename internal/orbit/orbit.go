// Package orbit holds the camera's orbit parameters and the spherical math that turns them
// into a camera position. The camera always looks at the scene origin, so position is the
// only derived pose.
package orbit

import "github.com/chewxy/math32"

// TwoPi is one full turn in radians.
const TwoPi = float32(2 * math32.Pi)

// MinRadius is the radius floor. Scroll, steps, panel edits and the inverse transform never go below it.
const MinRadius = float32(1.0)

// Vec3 is a point or direction in world space (Y up).
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Range is a closed numeric interval used for clamping and for panel sliders.
type Range struct {
	Min, Max float32
}

// Clamp returns v limited to [r.Min, r.Max].
func (r Range) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Declared parameter ranges. The panel uses all of them for its sliders; State uses them to
// keep its own invariants (see the setters for the exceptions).
var (
	NearRange   = Range{0.1, 100}
	FarRange    = Range{100, 2000}
	RadiusRange = Range{MinRadius, 1000}
	ThetaRange  = Range{0, TwoPi}
	PhiRange    = Range{0, math32.Pi}
	FOVRange    = Range{1, 180}
	AspectRange = Range{0.1, 4}
)

// maxFOV keeps the field of view strictly below 180 degrees.
const maxFOV = float32(179)

// Position converts (radius, theta, phi) into a Cartesian point around the origin:
// (r·sinφ·cosθ, r·cosφ, r·sinφ·sinθ).
func Position(radius, theta, phi float32) Vec3 {
	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return Vec3{
		X: radius * sinPhi * cosTheta,
		Y: radius * cosPhi,
		Z: radius * sinPhi * sinTheta,
	}
}

// Spherical is the inverse of Position: radius = |p|, phi = acos(p.y/radius), theta = atan2(p.z, p.x).
// Theta is wrapped into [0, 2π). A point at the origin yields (MinRadius, 0, 0).
func Spherical(p Vec3) (radius, theta, phi float32) {
	radius = p.Length()
	if radius == 0 {
		return MinRadius, 0, 0
	}
	cos := p.Y / radius
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	phi = math32.Acos(cos)
	theta = WrapAngle(math32.Atan2(p.Z, p.X))
	return radius, theta, phi
}

// WrapAngle maps a into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}

// ClampPhi limits the polar angle to [0, π] so the camera never passes through a pole.
func ClampPhi(phi float32) float32 {
	return PhiRange.Clamp(phi)
}

// FloorRadius keeps the camera away from the origin.
func FloorRadius(r float32) float32 {
	if r < MinRadius || math32.IsNaN(r) {
		return MinRadius
	}
	return r
}

// Up returns the camera's screen-up direction at (theta, phi): the unit tangent pointing
// toward decreasing phi. Unlike a fixed world up it stays defined at the poles.
func Up(theta, phi float32) Vec3 {
	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return Vec3{-cosPhi * cosTheta, sinPhi, -cosPhi * sinTheta}
}
