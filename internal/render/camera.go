// Package render draws the scene with raylib: the viewer camera, Phong-shaded glTF models,
// the orbit helper used by the orbit controller, and the reference grid.
package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/orbit"
)

// Camera is the perspective camera. It always looks at the origin; its lens (fov, near, far,
// aspect) is read from the shared state on every Begin so panel edits apply immediately.
type Camera struct {
	state    *orbit.State
	position rl.Vector3
	up       rl.Vector3
}

// NewCamera returns a camera placed at state's current position.
func NewCamera(state *orbit.State) *Camera {
	c := &Camera{state: state}
	c.Place(state.Position())
	return c
}

// Place moves the camera and points it at the origin. It implements input.Camera.
func (c *Camera) Place(p orbit.Vec3) {
	c.position = rl.NewVector3(p.X, p.Y, p.Z)
	_, theta, phi := orbit.Spherical(p)
	u := orbit.Up(theta, phi)
	c.up = rl.NewVector3(u.X, u.Y, u.Z)
}

// Position returns the camera position in world space.
func (c *Camera) Position() rl.Vector3 {
	return c.position
}

// View returns the world-to-eye matrix.
func (c *Camera) View() rl.Matrix {
	return rl.MatrixLookAt(c.position, rl.Vector3{}, c.up)
}

// Begin starts 3D mode with the state's projection. Pair with End.
func (c *Camera) Begin() {
	s := c.state
	rl.DrawRenderBatchActive()

	rl.MatrixMode(rl.Projection)
	rl.PushMatrix()
	rl.LoadIdentity()
	top := float64(s.Near * math32.Tan(s.FOV*0.5*rl.Deg2rad))
	right := top * float64(s.Aspect)
	rl.Frustum(-right, right, -top, top, float64(s.Near), float64(s.Far))

	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.MultMatrix(c.View())

	rl.EnableDepthTest()
}

// End leaves 3D mode.
func (c *Camera) End() {
	rl.EndMode3D()
}
