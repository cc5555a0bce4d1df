package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-3

func TestPositionLengthEqualsRadius(t *testing.T) {
	for _, r := range []float32{1, 2.5, 50, 999} {
		for theta := float32(-7); theta <= 7; theta += 0.7 {
			for phi := float32(0); phi <= math32.Pi; phi += 0.3 {
				p := Position(r, theta, phi)
				assert.InDelta(t, r, p.Length(), float64(r)*1e-5, "r=%v theta=%v phi=%v", r, theta, phi)
			}
		}
	}
}

func TestPositionAxes(t *testing.T) {
	top := Position(10, 0, 0)
	assert.InDelta(t, 0, top.X, tol)
	assert.InDelta(t, 10, top.Y, tol)
	assert.InDelta(t, 0, top.Z, tol)

	side := Position(10, 0, math32.Pi/2)
	assert.InDelta(t, 10, side.X, tol)
	assert.InDelta(t, 0, side.Y, tol)

	back := Position(10, math32.Pi/2, math32.Pi/2)
	assert.InDelta(t, 10, back.Z, tol)
}

func TestSphericalRoundTrip(t *testing.T) {
	points := []Vec3{
		{3, 4, 5},
		{-20, 1, 0.5},
		{0.1, -30, 7},
		{-5, -5, -5},
		{0, 12, 0},
	}
	for _, p := range points {
		r, theta, phi := Spherical(p)
		got := Position(r, theta, phi)
		assert.InDelta(t, p.X, got.X, tol, "%v", p)
		assert.InDelta(t, p.Y, got.Y, tol, "%v", p)
		assert.InDelta(t, p.Z, got.Z, tol, "%v", p)
		assert.GreaterOrEqual(t, theta, float32(0))
		assert.Less(t, theta, TwoPi)
	}
}

func TestSphericalOrigin(t *testing.T) {
	r, theta, phi := Spherical(Vec3{})
	assert.Equal(t, MinRadius, r)
	assert.Zero(t, theta)
	assert.Zero(t, phi)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(TwoPi+0.5), tol)
	assert.InDelta(t, TwoPi-0.5, WrapAngle(-0.5), tol)
	assert.InDelta(t, 1, WrapAngle(1), tol)
	assert.InDelta(t, 0, WrapAngle(2*TwoPi), tol)
}

func TestClampPhi(t *testing.T) {
	for _, in := range []float32{-1000, -3, -0.0001, 0, 1, 3, 3.2, 1e6} {
		got := ClampPhi(in)
		assert.GreaterOrEqual(t, got, float32(0))
		assert.LessOrEqual(t, got, float32(math32.Pi))
	}
	assert.Equal(t, float32(1), ClampPhi(1))
}

func TestUpIsPerpendicularToPosition(t *testing.T) {
	for theta := float32(0); theta < TwoPi; theta += 0.5 {
		for _, phi := range []float32{0, 0.4, math32.Pi / 2, 2.5, math32.Pi} {
			p := Position(1, theta, phi)
			u := Up(theta, phi)
			assert.InDelta(t, 1, u.Length(), tol)
			assert.InDelta(t, 0, p.X*u.X+p.Y*u.Y+p.Z*u.Z, tol)
		}
	}
	u := Up(0, math32.Pi/2)
	assert.InDelta(t, 1, u.Y, tol)
}
