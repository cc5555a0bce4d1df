// Package session wires the camera state, parameter panel, input controller and scene into
// one viewer session and exposes them to the console. It has no rendering dependencies.
package session

import (
	"context"
	"fmt"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/config"
	"scene-viewer/internal/input"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/orbit"
	"scene-viewer/internal/panel"
	"scene-viewer/internal/scene"
)

// Loader starts background asset loads.
type Loader interface {
	Load(ctx context.Context, req assets.Request)
}

// Deps are the collaborators a session drives. Helper is required in orbit control mode;
// the camera then follows the helper instead of the controller.
type Deps struct {
	Camera input.Camera
	Helper input.OrbitHelper
	Scene  *scene.Scene
	Loader Loader
	Log    *logger.Logger
}

// Session is the explicit application state that replaces ad-hoc globals: one state, one
// panel and one controller, created together and torn down together.
type Session struct {
	State      *orbit.State
	Panel      *panel.Panel
	Controller input.Controller
	Scene      *scene.Scene

	ctx     context.Context
	loader  Loader
	log     *logger.Logger
	initial orbit.State
}

// New builds a session around state using the control mode and tunables from cfg.
func New(ctx context.Context, state *orbit.State, cfg config.Config, deps Deps) (*Session, error) {
	s := &Session{
		State:   state,
		Panel:   panel.New(state, nil),
		Scene:   deps.Scene,
		ctx:     ctx,
		loader:  deps.Loader,
		log:     deps.Log,
		initial: *state,
	}
	if s.Scene == nil {
		s.Scene = scene.New()
	}
	if s.log == nil {
		s.log = logger.NewAt("")
	}
	s.Scene.SetGridVisible(cfg.ShowGrid)

	settings := cfg.InputSettings()
	switch cfg.Control {
	case config.ControlManual:
		s.Controller = input.NewManual(state, deps.Camera, s.Panel, settings)
	case config.ControlOrbit:
		if deps.Helper == nil {
			return nil, fmt.Errorf("session: %s control needs an orbit helper", config.ControlOrbit)
		}
		if deps.Camera != nil {
			h, cam := deps.Helper, deps.Camera
			h.OnChange(func() { cam.Place(h.Position()) })
		}
		s.Controller = input.NewOrbit(state, deps.Helper, s.Panel, settings)
	default:
		return nil, fmt.Errorf("session: unknown control mode %q", cfg.Control)
	}
	s.Panel.OnEdit(func(string) { s.Controller.Apply() })
	s.Controller.Apply()
	return s, nil
}

// Handle feeds one input event to the controller.
func (s *Session) Handle(ev input.Event) {
	s.Controller.Handle(ev)
}

// Resize updates the aspect ratio for a new window size and refreshes the panel.
func (s *Session) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.State.SetAspect(float32(width) / float32(height))
	s.Panel.Refresh()
}

// Reset restores the startup camera.
func (s *Session) Reset() {
	aspect := s.State.Aspect
	*s.State = s.initial
	s.State.Aspect = aspect
	s.Controller.Apply()
	s.Panel.Refresh()
}

// Load queues an asset. Names are checked before anything is fetched.
func (s *Session) Load(req assets.Request) error {
	if err := assets.ValidName(req.Name); err != nil {
		return err
	}
	if s.loader == nil {
		return fmt.Errorf("session: no loader")
	}
	s.loader.Load(s.ctx, req)
	return nil
}

// LoadAll queues every request of m.
func (s *Session) LoadAll(m assets.Manifest) {
	for _, req := range m.Models {
		if err := s.Load(req); err != nil {
			s.log.Errorf("load %s: %v", req.Name, err)
		}
	}
}
