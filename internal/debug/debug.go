// Package debug draws runtime overlays: FPS, heap usage and in-flight asset progress.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/assets"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var progressColor = rl.NewColor(240, 200, 80, 255)

// Debug holds the overlay switches. Progress lines are always drawn while assets load.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns a Debug with FPS and memory hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled overlays stacked up from the bottom-right corner, with one line
// per loading asset above them.
func (d *Debug) Draw(loading []assets.Status) {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	y := int32(rl.GetScreenHeight()) - padding - lineHeight

	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1<<20))
		}
		d.drawRight(d.memText, y, rl.Green)
		y -= lineHeight
	}
	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y, rl.Green)
		y -= lineHeight
	}
	for _, s := range loading {
		d.drawRight("loading "+s.String(), y, progressColor)
		y -= lineHeight
	}
}

func (d *Debug) drawRight(text string, y int32, c rl.Color) {
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, float32(y)), fontSize, 1, c)
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(screenW)-w-padding, y, fontSize, c)
}
