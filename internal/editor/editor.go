// Package editor runs one frame of the terrain editor: GUI interaction,
// camera control, cursor picking and sculpting.
package editor

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/trefoil/internal/engine/camera"
	"github.com/Faultbox/trefoil/internal/engine/gui"
	"github.com/Faultbox/trefoil/internal/engine/input"
	"github.com/Faultbox/trefoil/internal/engine/terrain"
	"github.com/Faultbox/trefoil/internal/engine/uniform"
)

// Scene receives transforms and terrain changes and draws the 3D view.
type Scene interface {
	UploadTransforms(t *uniform.Transforms)
	SyncTerrain(t *terrain.Terrain)
	Draw()
}

// GUI lays out the overlay for one frame and draws it.
type GUI interface {
	LayoutAndInteract(p gui.Packet, c *gui.Controls) gui.Output
	// WantsInput reports whether the last layout captured the pointer.
	WantsInput() bool
	Draw(shapes []gui.Shape)
}

// Platform controls the OS cursor.
type Platform interface {
	SetCursorVisible(visible bool)
}

// Params holds everything an Editor is built from.
type Params struct {
	Camera  *camera.FlyCamera
	Terrain *terrain.Terrain
	// SunVP is the sun's view-projection matrix.
	SunVP mgl32.Mat4

	Scene    Scene
	GUI      GUI
	Platform Platform

	// Mode defaults to DefaultMode.
	Mode   Mode
	Logger *zap.Logger
}

var movement = [...]struct {
	in  input.Direction
	cam camera.Direction
}{
	{input.DirectionForward, camera.Forward},
	{input.DirectionBackward, camera.Backward},
	{input.DirectionLeft, camera.Left},
	{input.DirectionRight, camera.Right},
}

// Editor owns the camera, the terrain and the current mode. It holds no
// platform state beyond the collaborators passed in Params.
type Editor struct {
	mode Mode

	camera     *camera.FlyCamera
	terrain    *terrain.Terrain
	sunVP      mgl32.Mat4
	transforms uniform.Transforms
	controls   gui.Controls

	scene    Scene
	gui      GUI
	platform Platform
	log      *zap.Logger

	cursorVisible bool
	sculpting     bool
}

// New creates an editor. Camera, Terrain and all collaborators are required.
func New(p Params) (*Editor, error) {
	switch {
	case p.Camera == nil:
		return nil, errors.New("editor: camera is required")
	case p.Terrain == nil:
		return nil, errors.New("editor: terrain is required")
	case p.Scene == nil || p.GUI == nil || p.Platform == nil:
		return nil, errors.New("editor: scene, gui and platform are required")
	}

	e := &Editor{
		mode:          p.Mode,
		camera:        p.Camera,
		terrain:       p.Terrain,
		sunVP:         p.SunVP,
		transforms:    uniform.NewTransforms(),
		scene:         p.Scene,
		gui:           p.GUI,
		platform:      p.Platform,
		log:           p.Logger,
		cursorVisible: true,
	}
	if e.mode == nil {
		e.mode = DefaultMode()
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	e.updateTransforms()
	return e, nil
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches modes. Leaving the editor releases the free camera.
func (e *Editor) SetMode(m Mode) {
	if m == nil {
		return
	}
	if _, ok := m.(EditorMode); !ok {
		e.terrain.HideCursor()
		e.setCursorVisible(true)
		e.setSculpting(false, false)
	}
	e.log.Info("mode changed", zap.Stringer("from", e.mode), zap.Stringer("to", m))
	e.mode = m
}

// FreeCamera reports whether pointer motion currently drives the camera.
func (e *Editor) FreeCamera() bool {
	m, ok := e.mode.(EditorMode)
	return ok && m.State.FreeCamera
}

// Camera returns the editor camera.
func (e *Editor) Camera() *camera.FlyCamera { return e.camera }

// Terrain returns the edited terrain.
func (e *Editor) Terrain() *terrain.Terrain { return e.terrain }

// Transforms returns the transform block last computed.
func (e *Editor) Transforms() *uniform.Transforms { return &e.transforms }

// Resize sets the viewport size in logical pixels.
func (e *Editor) Resize(width, height float32) {
	e.camera.SetViewport(width, height)
	e.log.Debug("viewport resized", zap.Float32("width", width), zap.Float32("height", height))
}

// Frame runs one frame against s and reports whether the application
// should exit. Camera movement made during the frame sets s.CameraMoved.
func (e *Editor) Frame(s *input.Snapshot) bool {
	if s.CloseRequested {
		return true
	}

	e.controls = gui.Controls{
		BrushSize: e.terrain.Brush.Size,
		BrushMin:  e.terrain.Brush.MinSize,
		BrushMax:  e.terrain.Brush.MaxSize,
		Lowering:  s.Modifiers.Ctrl,
	}
	out := e.gui.LayoutAndInteract(gui.BuildPacket(s), &e.controls)
	if e.controls.BrushSize != e.terrain.Brush.Size {
		e.terrain.Brush.SetSize(e.controls.BrushSize)
	}

	if m, ok := e.mode.(EditorMode); ok {
		e.editorFrame(s, m)
	} else if s.CameraMoved {
		e.uploadTransforms()
	}

	e.scene.SyncTerrain(e.terrain)
	e.scene.Draw()
	e.gui.Draw(out.Shapes)

	return out.WantsExit
}

func (e *Editor) editorFrame(s *input.Snapshot, m EditorMode) {
	if e.gui.WantsInput() {
		e.terrain.HideCursor()
		e.setSculpting(false, false)
		e.setFreeCamera(m, false)
		if s.CameraMoved {
			e.uploadTransforms()
		}
		return
	}

	free := s.Buttons.Secondary
	m = e.setFreeCamera(m, free)

	e.camera.SetSpeedBoost(s.Modifiers.Shift)
	for _, mv := range movement {
		if s.Moving(mv.in) {
			e.camera.Go(mv.cam, s.DeltaTime)
			s.CameraMoved = true
		}
	}
	if free && s.PointerDelta != (mgl32.Vec2{}) {
		e.camera.Rotate(s.PointerDelta.X(), s.PointerDelta.Y())
		s.CameraMoved = true
	}

	if s.CameraMoved {
		e.uploadTransforms()
	}
	if s.PointerMoved || s.CameraMoved {
		e.terrain.UpdateCursor(e.camera.RayThroughPixel(s.Pointer))
	}
	if s.Scrolled {
		e.terrain.ResizeBrush(s.ScrollDelta.Y())
		e.log.Debug("brush resized", zap.Float32("size", e.terrain.Brush.Size))
	}

	sculpt := false
	if tm, ok := m.Sub.(TerrainMode); ok && tm.Tool == ToolSculpt &&
		s.Buttons.Primary && e.terrain.Cursor().Valid() {
		sculpt = e.terrain.Sculpt(s.DeltaTime, !s.Modifiers.Ctrl)
	}
	e.setSculpting(sculpt, !s.Modifiers.Ctrl)
}

func (e *Editor) setSculpting(on, raise bool) {
	if on == e.sculpting {
		return
	}
	e.sculpting = on
	if on {
		e.log.Debug("sculpt stroke started", zap.Bool("raise", raise))
	} else {
		e.log.Debug("sculpt stroke finished")
	}
}

// setFreeCamera records the free camera flag in the mode and hides the OS
// cursor while it is on.
func (e *Editor) setFreeCamera(m EditorMode, free bool) EditorMode {
	if m.State.FreeCamera != free {
		e.log.Debug("free camera", zap.Bool("enabled", free))
	}
	m.State.FreeCamera = free
	e.mode = m
	e.setCursorVisible(!free)
	return m
}

func (e *Editor) setCursorVisible(visible bool) {
	if e.cursorVisible == visible {
		return
	}
	e.cursorVisible = visible
	e.platform.SetCursorVisible(visible)
}

func (e *Editor) updateTransforms() {
	e.transforms.Update(e.camera.ViewMatrix(), e.camera.ProjectionMatrix(), mgl32.Ident4(), e.sunVP)
}

func (e *Editor) uploadTransforms() {
	e.updateTransforms()
	e.scene.UploadTransforms(&e.transforms)
}
