package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Grid dimensions in world units.
const (
	gridExtent     = 100
	gridMinorStep  = 5
	gridMajorStep  = 25
	gridMinorAlpha = 60
	gridMajorAlpha = 110
	axisLineAlpha  = 200
)

// DrawGrid draws a reference grid on the XZ plane (Y=0) with colored axis lines through
// the origin (X red, Y green, Z blue). Call between Camera.Begin and End.
func DrawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		v := float32(i)
		rl.DrawLine3D(rl.NewVector3(v, 0, -gridExtent), rl.NewVector3(v, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, v), rl.NewVector3(gridExtent, 0, v), c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
