// Package viewer assembles the interactive scene viewer: window, camera, shading, async
// asset loading, the parameter panel and the console.
package viewer

import (
	"context"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/commands"
	"scene-viewer/internal/config"
	"scene-viewer/internal/debug"
	"scene-viewer/internal/fonts"
	"scene-viewer/internal/graphics"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/render"
	"scene-viewer/internal/scene"
	"scene-viewer/internal/session"
	"scene-viewer/internal/shading"
	"scene-viewer/internal/terminal"
	"scene-viewer/internal/ui"
	"scene-viewer/internal/watch"
)

// App owns every resource of a viewer run. All fields are created in init (after the window
// exists) and released in close; nothing outlives Run.
type App struct {
	cfg      config.Config
	log      *logger.Logger
	manifest assets.Manifest
	fetcher  assets.Fetcher

	ctx    context.Context
	cancel context.CancelFunc

	phong   *render.Phong
	camera  *render.Camera
	scene   *scene.Scene
	loader  *assets.Loader
	session *session.Session

	ui       *ui.Engine
	controls *ui.Controls
	console  *terminal.Terminal
	overlay  *debug.Debug
	styles   *watch.Files // nil when the stylesheet file is not in use
	fetched  chan string  // font path downloaded in the background
}

// New returns an app that loads manifest through fetcher once the window is open.
func New(cfg config.Config, log *logger.Logger, manifest assets.Manifest, fetcher assets.Fetcher) *App {
	return &App{cfg: cfg, log: log, manifest: manifest, fetcher: fetcher}
}

// Run opens the window and blocks until it is closed. Cancelling ctx abandons in-flight fetches
// and ends the frame loop, after which the usual teardown runs.
func (a *App) Run(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()
	w := a.cfg.Window
	return graphics.Run(a.ctx, graphics.Window{Width: w.Width, Height: w.Height, Title: w.Title}, graphics.Hooks{
		Init:   a.init,
		Resize: a.resize,
		Update: a.update,
		Draw:   a.draw,
		Close:  a.close,
	})
}

func (a *App) init() error {
	phong, err := render.LoadPhong()
	if err != nil {
		return err
	}
	a.phong = phong

	width, height := graphics.ScreenSize()
	state := a.cfg.OrbitState(float32(width) / float32(height))
	a.camera = render.NewCamera(&state)
	a.scene = scene.New()
	a.loader = assets.NewLoader(a.fetcher, render.NewBackend(phong), a.scene, shading.NewAssigner(a.cfg.TintMaterialColor), a.log)

	deps := session.Deps{Camera: a.camera, Scene: a.scene, Loader: a.loader, Log: a.log}
	if a.cfg.Control == config.ControlOrbit {
		deps.Helper = render.NewOrbitHelper(state.Position())
	}
	a.session, err = session.New(a.ctx, &state, a.cfg, deps)
	if err != nil {
		return err
	}

	a.initUI()
	a.session.Panel.SetView(a.controls)

	reg := commands.NewRegistry()
	a.session.Register(reg)
	a.registerOverlay(reg)
	a.console = terminal.New(a.log, reg)
	a.console.SetFont(a.ui.Font())

	a.overlay = debug.New()
	a.overlay.ShowFPS = a.cfg.ShowFPS
	a.overlay.SetFont(a.ui.Font())

	a.log.Logf("viewer started (%s control, tint %t), loading %d models", a.cfg.Control, a.cfg.TintMaterialColor, len(a.manifest.Models))
	a.session.LoadAll(a.manifest)
	return nil
}

func (a *App) initUI() {
	a.ui = ui.New()
	if err := a.ui.LoadCSS(a.cfg.Stylesheet); err != nil {
		a.log.Logf("stylesheet %s unavailable (%v), using built-in layout", a.cfg.Stylesheet, err)
		a.ui.SetStylesheet(ui.DefaultStylesheet())
	} else if w, err := watch.New(a.cfg.Stylesheet); err != nil {
		a.log.Logf("not watching %s: %v", a.cfg.Stylesheet, err)
	} else {
		a.styles = w
	}
	if a.cfg.Font != "" {
		if path, err := fonts.Find(a.cfg.Font); err != nil {
			a.fetchFont(a.cfg.Font)
		} else if err := a.ui.LoadFont(path); err != nil {
			a.log.Errorf("font %s: %v", path, err)
		}
	}
	a.controls = ui.NewControls(a.ui)
	a.log.Logf("step buttons: %d of 8", len(a.controls.Buttons()))
}

// fetchFont downloads family from Google Fonts into the first font directory. The font is
// loaded by update, on the window thread.
func (a *App) fetchFont(family string) {
	a.log.Logf("font %q not found locally, fetching from Google Fonts", family)
	a.fetched = make(chan string, 1)
	go func() {
		path, err := fonts.NewGoogle().Fetch(a.ctx, family, fonts.BaseDirs()[0])
		if err != nil {
			a.log.Errorf("font %q: %v", family, err)
			return
		}
		a.fetched <- path
	}()
}

func (a *App) useFetchedFont() {
	select {
	case path := <-a.fetched:
		if err := a.ui.LoadFont(path); err != nil {
			a.log.Errorf("font %s: %v", path, err)
			return
		}
		a.console.SetFont(a.ui.Font())
		a.overlay.SetFont(a.ui.Font())
		a.log.Logf("font %s loaded", path)
	default:
	}
}

func (a *App) registerOverlay(reg *commands.Registry) {
	fs := commands.NewFlagSet("overlay")
	fps := fs.Bool("fps", false, "show frames per second")
	mem := fs.Bool("mem", false, "show heap usage")
	reg.Register("overlay", "cmd overlay -fps=true -mem=false", fs, func() error {
		a.overlay.ShowFPS, a.overlay.ShowMemAlloc = *fps, *mem
		return nil
	})
}

func (a *App) resize(width, height int32) {
	a.session.Resize(width, height)
}

func (a *App) update() {
	a.console.Update()

	for _, ev := range graphics.PollInput() {
		actions, consumed := a.ui.Handle(ev)
		steps, err := ui.Actions(actions, a.session.Panel)
		if err != nil {
			a.log.Errorf("%v", err)
		}
		for _, step := range steps {
			a.session.Handle(step)
		}
		if !consumed {
			a.session.Handle(ev)
		}
	}

	a.loader.Poll()
	a.controls.ShowZ(a.session.Controller.Z())
	a.reloadStyles()
	a.useFetchedFont()
}

// reloadStyles re-reads an edited stylesheet. Widgets keep their set: a step button added to
// the file only appears after a restart.
func (a *App) reloadStyles() {
	if a.styles == nil {
		return
	}
	for _, err := range a.styles.Errors() {
		a.log.Errorf("watch: %v", err)
	}
	for _, path := range a.styles.Changed() {
		if err := a.ui.LoadCSS(path); err != nil {
			a.log.Errorf("stylesheet: %v", err)
			continue
		}
		a.log.Logf("stylesheet reloaded")
	}
}

func (a *App) draw() {
	a.camera.Begin()
	if a.scene.GridVisible {
		render.DrawGrid()
	}
	a.scene.Draw()
	a.camera.End()

	a.controls.Layout(graphics.ScreenSize())
	a.ui.Draw()
	a.overlay.Draw(a.loader.Progress())
	a.console.Draw()
}

// close releases resources in reverse order of creation. Fetch goroutines are cancelled and
// drained before any model is unloaded.
func (a *App) close() {
	a.cancel()
	if a.styles != nil {
		a.styles.Close()
	}
	if a.loader != nil {
		a.loader.Close()
	}
	if a.scene != nil {
		a.log.Logf("unloading %d objects", a.scene.Len())
		a.scene.Close()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.phong != nil {
		a.phong.Unload()
	}
}
