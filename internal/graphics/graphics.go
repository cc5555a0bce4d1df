// Package graphics owns the raylib window: the frame loop and per-frame input polling.
package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/input"
)

// Window describes the window to open.
type Window struct {
	Width, Height int32
	Title         string
}

// Hooks are the per-frame callbacks. Init runs once after the window exists; Close runs once
// before it is destroyed. Resize receives the new size before Update on frames where the
// window was resized.
type Hooks struct {
	Init   func() error
	Resize func(width, height int32)
	Update func()
	Draw   func()
	Close  func()
}

// Run opens a resizable window and drives the loop until the window is closed or ctx is
// cancelled. ESC is left to the console; close via the window button.
func Run(ctx context.Context, w Window, h Hooks) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	if h.Init != nil {
		if err := h.Init(); err != nil {
			return err
		}
	}
	if h.Close != nil {
		defer h.Close()
	}

	loop(ctx, rl.WindowShouldClose, func() {
		if h.Resize != nil && rl.IsWindowResized() {
			h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		if h.Update != nil {
			h.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 28, 255))
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	})
	return nil
}

// loop runs frame until shouldClose reports true or ctx is done. Both are checked before
// every frame.
func loop(ctx context.Context, shouldClose func() bool, frame func()) {
	for ctx.Err() == nil && !shouldClose() {
		frame()
	}
}

// ScreenSize returns the current framebuffer size in pixels.
func ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// wheelPixels converts raylib wheel notches to a browser-style pixel delta: scrolling toward
// the user (negative move) is positive and moves the camera away.
const wheelPixels = 100

// PollInput returns this frame's pointer and wheel events for the left mouse button.
func PollInput() []input.Event {
	var events []input.Event
	m := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		events = append(events, input.Press(m.X, m.Y))
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		events = append(events, input.Move(m.X, m.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		events = append(events, input.Release(m.X, m.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		ev := input.Scroll(-wheel * wheelPixels)
		ev.X, ev.Y = m.X, m.Y
		events = append(events, ev)
	}
	return events
}
