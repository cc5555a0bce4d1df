package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/input"
	"scene-viewer/internal/orbit"
)

// Orbit gesture tuning.
const (
	orbitDegreesPerPixel = 0.4
	zoomPerWheelPixel    = 0.001
	minPolar             = 0.001 // radians kept away from the poles while dragging
)

// OrbitHelper is a self-contained orbit camera: dragging rotates the camera around the origin
// (horizontal about world up, vertical about the camera's right axis) and the wheel zooms
// along the view axis. It implements input.OrbitHelper.
type OrbitHelper struct {
	position rl.Vector3
	dragging bool
	lastX    float32
	lastY    float32
	onChange []func()
}

// NewOrbitHelper returns a helper at p.
func NewOrbitHelper(p orbit.Vec3) *OrbitHelper {
	return &OrbitHelper{position: rl.NewVector3(p.X, p.Y, p.Z)}
}

// OnChange registers fn to run after every gesture that moved the camera.
func (h *OrbitHelper) OnChange(fn func()) {
	h.onChange = append(h.onChange, fn)
}

// Position returns the camera position.
func (h *OrbitHelper) Position() orbit.Vec3 {
	return orbit.Vec3{X: h.position.X, Y: h.position.Y, Z: h.position.Z}
}

// SetPosition moves the camera and notifies listeners.
func (h *OrbitHelper) SetPosition(p orbit.Vec3) {
	h.position = rl.NewVector3(p.X, p.Y, p.Z)
	h.changed()
}

// Handle processes pointer and wheel gestures.
func (h *OrbitHelper) Handle(ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		h.dragging = true
		h.lastX, h.lastY = ev.X, ev.Y
	case input.PointerMove:
		if !h.dragging {
			return
		}
		dx, dy := ev.X-h.lastX, ev.Y-h.lastY
		h.lastX, h.lastY = ev.X, ev.Y
		if dx != 0 || dy != 0 {
			h.rotate(-dx*orbitDegreesPerPixel, -dy*orbitDegreesPerPixel)
			h.changed()
		}
	case input.PointerUp:
		h.dragging = false
	case input.Wheel:
		if ev.DeltaY != 0 {
			h.zoom(ev.DeltaY * zoomPerWheelPixel)
			h.changed()
		}
	}
}

// rotate turns the camera delX degrees about world up and delY degrees about its right axis.
// The vertical turn is limited so the camera never crosses a pole.
func (h *OrbitHelper) rotate(delX, delY float32) {
	up := rl.NewVector3(0, 1, 0)
	p := rl.Vector3RotateByAxisAngle(h.position, up, delX*rl.Deg2rad)

	polar := rl.Vector3Angle(p, up)
	turn := delY * rl.Deg2rad
	turn = math32.Max(minPolar-polar, math32.Min(math32.Pi-minPolar-polar, turn))
	dir := rl.Vector3Normalize(rl.Vector3Negate(p))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(up, dir))
	if rl.Vector3Length(right) == 0 {
		right = rl.NewVector3(1, 0, 0)
	}
	h.position = rl.Vector3RotateByAxisAngle(p, right, -turn)
}

// zoom moves the camera along the view axis by pct of the current distance, never closer
// than the radius floor.
func (h *OrbitHelper) zoom(pct float32) {
	dist := rl.Vector3Length(h.position)
	if dist == 0 {
		h.position = rl.NewVector3(0, 0, orbit.MinRadius)
		return
	}
	next := math32.Max(dist*(1+pct), orbit.MinRadius)
	h.position = rl.Vector3Scale(h.position, next/dist)
}

func (h *OrbitHelper) changed() {
	for _, fn := range h.onChange {
		fn()
	}
}
