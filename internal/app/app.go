// Package app wires the window, renderer, GUI and editor together and runs
// the main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/trefoil/internal/config"
	"github.com/Faultbox/trefoil/internal/editor"
	"github.com/Faultbox/trefoil/internal/engine/camera"
	"github.com/Faultbox/trefoil/internal/engine/debug"
	"github.com/Faultbox/trefoil/internal/engine/gui"
	"github.com/Faultbox/trefoil/internal/engine/input"
	"github.com/Faultbox/trefoil/internal/engine/renderer"
	"github.com/Faultbox/trefoil/internal/engine/window"
	"github.com/Faultbox/trefoil/internal/logger"
)

// Title is the window title.
const Title = "Trefoil"

// StartupError reports which startup stage failed. Err also carries any
// error from releasing what was already created.
type StartupError struct {
	Stage string
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// panelOverlay draws the brush panel through the renderer's overlay pass.
type panelOverlay struct {
	*gui.Panel
	renderer *renderer.Renderer
}

func (p panelOverlay) Draw(shapes []gui.Shape) {
	p.renderer.DrawOverlay(shapes)
}

// App is the running editor application.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window      *window.Window
	renderer    *renderer.Renderer
	translator  *input.Translator
	editor      *editor.Editor
	screenshots *debug.Screenshots
	title       string
}

// New creates the window, renderer, panel, terrain, camera and editor in
// that order. On failure everything already created is released and a
// *StartupError is returned.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	fail := func(stage string, err error) (*App, error) {
		return nil, &StartupError{Stage: stage, Err: multierr.Append(err, a.Close())}
	}

	mode, err := editor.ParseMode(cfg.Editor.StartMode)
	if err != nil {
		return fail("config", err)
	}

	a.log.Info("initializing editor",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Stringer("mode", mode),
	)

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return fail("window", err)
	}
	lw, lh := a.window.Size()
	dw, dh := a.window.DrawableSize()

	ter, err := newTerrain(cfg)
	if err != nil {
		return fail("terrain", err)
	}
	sun := sunFor(cfg.Sun, ter)

	a.renderer, err = renderer.New(renderer.Config{
		Width:         dw,
		Height:        dh,
		LogicalWidth:  lw,
		LogicalHeight: lh,
		SunDirection:  sun.Direction(),
	})
	if err != nil {
		return fail("renderer", err)
	}
	if err := a.renderer.LoadTerrain(ter); err != nil {
		return fail("renderer", err)
	}

	panel := gui.NewPanel(10, 10)
	cam := camera.New(cameraParams(cfg.Camera, lw, lh))

	a.editor, err = editor.New(editor.Params{
		Camera:   cam,
		Terrain:  ter,
		SunVP:    sun.Matrix(),
		Scene:    a.renderer,
		GUI:      panelOverlay{Panel: panel, renderer: a.renderer},
		Platform: a.window,
		Mode:     mode,
		Logger:   logger.Named("editor"),
	})
	if err != nil {
		return fail("editor", err)
	}

	a.translator = input.NewTranslator(time.Now(), dw, dh, a.window.ScaleFactor())
	a.screenshots = debug.NewScreenshots(cfg.Editor.ScreenshotDir, "trefoil")

	a.log.Info("editor initialized")
	return a, nil
}

// Run polls events and runs editor frames until the editor asks to exit.
func (a *App) Run() error {
	a.log.Info("starting editor loop")

	frames := 0
	fpsStart := time.Now()

	for {
		resized := false
		a.window.PollEvents(func(ev input.Event) {
			if ev.Type == input.EventResized || ev.Type == input.EventScaleFactor {
				resized = true
			}
			a.translator.Handle(ev)
		})
		if resized {
			a.resize()
		}

		now := time.Now()
		snap := a.translator.Renew(now)
		if a.editor.Frame(&snap) {
			a.log.Info("exit requested")
			return nil
		}
		a.translator.SetFreeCamera(a.editor.FreeCamera())
		if keyPressed(&snap, input.KeyF12) {
			a.screenshot()
		}
		if m, ok := modeForKeys(&snap, a.editor.Mode()); ok {
			a.editor.SetMode(m)
		}
		a.updateTitle()
		a.window.SwapBuffers()

		frames++
		report := a.cfg.Editor.FPSReportSeconds
		if elapsed := now.Sub(fpsStart).Seconds(); report > 0 && elapsed >= report {
			a.log.Debug("fps",
				zap.Float64("fps", float64(frames)/elapsed),
				zap.Float32("dt_ms", snap.DeltaTime*1000),
			)
			frames = 0
			fpsStart = now
		}
	}
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.Save(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// keyPressed reports whether s carries a press of k.
func keyPressed(s *input.Snapshot, k input.Key) bool {
	for _, ev := range s.Events {
		if ev.Type == input.EventKey && ev.Key == k && ev.Pressed {
			return true
		}
	}
	return false
}

// modeForKeys maps F1, F2 and F3 to editor, game and menu mode. Returning
// to editor mode keeps the current sub-mode.
func modeForKeys(s *input.Snapshot, current editor.Mode) (editor.Mode, bool) {
	switch {
	case keyPressed(s, input.KeyF1):
		if _, ok := current.(editor.EditorMode); ok {
			return nil, false
		}
		return editor.DefaultMode(), true
	case keyPressed(s, input.KeyF2):
		if _, ok := current.(editor.GameMode); ok {
			return nil, false
		}
		return editor.GameMode{}, true
	case keyPressed(s, input.KeyF3):
		if _, ok := current.(editor.MenuMode); ok {
			return nil, false
		}
		return editor.MenuMode{}, true
	}
	return nil, false
}

// windowTitle shows the mode, and the brush size in terrain modes.
func windowTitle(m editor.Mode, brush float32) string {
	if em, ok := m.(editor.EditorMode); ok {
		if _, ok := em.Sub.(editor.TerrainMode); ok {
			return fmt.Sprintf("%s - %s - brush %.1f", Title, m, brush)
		}
	}
	return fmt.Sprintf("%s - %s", Title, m)
}

func (a *App) updateTitle() {
	title := windowTitle(a.editor.Mode(), a.editor.Terrain().Brush.Size)
	if title != a.title {
		a.window.SetTitle(title)
		a.title = title
	}
}

func (a *App) resize() {
	lw, lh := a.window.Size()
	dw, dh := a.window.DrawableSize()
	a.editor.Resize(float32(lw), float32(lh))
	a.renderer.Resize(dw, dh, lw, lh)
}

// Close releases resources in reverse creation order.
func (a *App) Close() error {
	a.log.Info("closing editor")

	var err error
	if a.renderer != nil {
		err = multierr.Append(err, a.renderer.Close())
		a.renderer = nil
	}
	if a.window != nil {
		err = multierr.Append(err, a.window.Close())
		a.window = nil
	}
	return err
}
