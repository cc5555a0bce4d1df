package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIsNormalized(t *testing.T) {
	s := Default()
	before := s
	s.Normalize()
	assert.Equal(t, before, s)
	assert.InDelta(t, s.Radius, s.Position().Length(), tol)
}

func TestRadiusFloor(t *testing.T) {
	s := Default()
	for i := 0; i < 1000; i++ {
		s.StepRadius(-0.1)
	}
	assert.Equal(t, MinRadius, s.Radius)

	s.SetRadius(-40)
	assert.Equal(t, MinRadius, s.Radius)
	s.SetRadius(0.2)
	assert.Equal(t, MinRadius, s.Radius)
}

func TestStepThetaWraps(t *testing.T) {
	s := Default()
	s.Theta = 0
	for i := 0; i < 63; i++ {
		s.StepTheta(0.1)
	}

	pre := Default()
	pre.Theta = WrapAngle(6.2)
	pre.StepTheta(0.1)

	assert.InDelta(t, pre.Theta, s.Theta, tol)
	assert.Less(t, s.Theta, float32(0.1))
}

func TestStepThetaDecreaseWraps(t *testing.T) {
	s := Default()
	s.Theta = 0
	s.StepTheta(-0.1)
	assert.InDelta(t, TwoPi-0.1, s.Theta, tol)
}

func TestStepPhiStaysInRange(t *testing.T) {
	s := Default()
	for i := 0; i < 100; i++ {
		s.StepPhi(0.1)
		assert.GreaterOrEqual(t, s.Phi, float32(0))
		assert.LessOrEqual(t, s.Phi, float32(math32.Pi))
	}
	for i := 0; i < 100; i++ {
		s.StepPhi(-0.1)
		assert.GreaterOrEqual(t, s.Phi, float32(0))
		assert.LessOrEqual(t, s.Phi, float32(math32.Pi))
	}
}

func TestStepPhiCrossesPoleSmoothly(t *testing.T) {
	tests := []struct {
		name    string
		phi     float32
		delta   float32
		wantPhi float32
	}{
		{"decrease over top pole", 0.05, -0.1, 0.05},
		{"increase over bottom pole", math32.Pi - 0.05, 0.1, math32.Pi - 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Phi = tt.phi
			before := s.Position()
			// where the unclamped formula puts the camera
			want := Position(s.Radius, s.Theta, tt.phi+tt.delta)

			s.StepPhi(tt.delta)
			after := s.Position()
			assert.InDelta(t, tt.wantPhi, s.Phi, tol)
			assert.InDelta(t, want.X, after.X, tol)
			assert.InDelta(t, want.Y, after.Y, tol)
			assert.InDelta(t, want.Z, after.Z, tol)

			moved := Vec3{X: after.X - before.X, Y: after.Y - before.Y, Z: after.Z - before.Z}.Length()
			assert.InDelta(t, s.Radius*0.1, moved, 0.01)
		})
	}
}

func TestSetPhiClamps(t *testing.T) {
	s := Default()
	s.SetPhi(-5)
	assert.Zero(t, s.Phi)
	s.SetPhi(50)
	assert.Equal(t, float32(math32.Pi), s.Phi)
}

func TestPlanesStayOrdered(t *testing.T) {
	s := Default()
	s.SetNear(100)
	s.SetFar(100)
	assert.Greater(t, s.Far, s.Near)

	s.SetNear(0)
	assert.Equal(t, NearRange.Min, s.Near)
}

func TestFOVOpenInterval(t *testing.T) {
	s := Default()
	s.SetFOV(180)
	assert.Less(t, s.FOV, float32(180))
	s.SetFOV(-10)
	assert.Greater(t, s.FOV, float32(0))
}

func TestAspectFloorOnly(t *testing.T) {
	s := Default()
	s.SetAspect(0)
	assert.Equal(t, AspectRange.Min, s.Aspect)
	s.SetAspect(5.3)
	assert.Equal(t, float32(5.3), s.Aspect)
}

func TestSetPositionRoundTrip(t *testing.T) {
	s := Default()
	p := Vec3{12, -7, 3}
	s.SetPosition(p)
	got := s.Position()
	assert.InDelta(t, p.X, got.X, tol)
	assert.InDelta(t, p.Y, got.Y, tol)
	assert.InDelta(t, p.Z, got.Z, tol)
}
