// Package renderer draws the terrain and the GUI overlay with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/trefoil/internal/engine/gui"
	"github.com/Faultbox/trefoil/internal/engine/terrain"
	"github.com/Faultbox/trefoil/internal/engine/uniform"
	"github.com/Faultbox/trefoil/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	// Drawable size in physical pixels.
	Width  int
	Height int
	// Logical size used by the overlay.
	LogicalWidth  int
	LogicalHeight int

	ClearColor mgl32.Vec4
	// SunDirection points towards the sun.
	SunDirection mgl32.Vec3
}

// DefaultClearColor is the sky color the frame is cleared to.
var DefaultClearColor = mgl32.Vec4{0.53, 0.68, 0.85, 1}

// Renderer owns the GL state, the transform uniform buffer and the terrain
// and overlay passes.
type Renderer struct {
	config Config
	log    *zap.Logger

	transformsUBO uint32

	terrain *TerrainRenderer
	overlay *OverlayRenderer
}

// New initializes OpenGL and creates the shared resources.
// It must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}
	if r.config.ClearColor == (mgl32.Vec4{}) {
		r.config.ClearColor = DefaultClearColor
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	gl.GenBuffers(1, &r.transformsUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.transformsUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, uniform.TransformsSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, uniform.TransformsBinding, r.transformsUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	overlay, err := NewOverlayRenderer(cfg.LogicalWidth, cfg.LogicalHeight)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("create overlay renderer: %w", err)
	}
	r.overlay = overlay

	return r, nil
}

// LoadTerrain uploads the full terrain mesh. Any previous terrain is released.
func (r *Renderer) LoadTerrain(t *terrain.Terrain) error {
	tr, err := NewTerrainRenderer(t.Field)
	if err != nil {
		return fmt.Errorf("create terrain renderer: %w", err)
	}
	if r.terrain != nil {
		r.terrain.Close()
	}
	r.terrain = tr

	w, d := t.Field.Size()
	r.log.Info("terrain uploaded",
		zap.Int("samples_x", w),
		zap.Int("samples_z", d),
		zap.Int32("indices", tr.indexCount),
	)
	return nil
}

// Close releases GPU resources.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")
	var err error
	if r.terrain != nil {
		err = multierr.Append(err, r.terrain.Close())
		r.terrain = nil
	}
	if r.overlay != nil {
		err = multierr.Append(err, r.overlay.Close())
		r.overlay = nil
	}
	if r.transformsUBO != 0 {
		gl.DeleteBuffers(1, &r.transformsUBO)
		r.transformsUBO = 0
	}
	return err
}

// Resize updates the viewport. Width and height are physical; the logical
// size is used by the overlay projection.
func (r *Renderer) Resize(width, height, logicalWidth, logicalHeight int) {
	r.config.Width = width
	r.config.Height = height
	r.config.LogicalWidth = logicalWidth
	r.config.LogicalHeight = logicalHeight
	gl.Viewport(0, 0, int32(width), int32(height))
	if r.overlay != nil {
		r.overlay.Resize(logicalWidth, logicalHeight)
	}
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("logical_width", logicalWidth),
		zap.Int("logical_height", logicalHeight),
	)
}

// UploadTransforms writes the transform block to its uniform buffer.
func (r *Renderer) UploadTransforms(t *uniform.Transforms) {
	floats := t.Floats()
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.transformsUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, uniform.TransformsSize, gl.Ptr(&floats[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// SyncTerrain uploads the terrain rows changed since the last sync and
// takes the cursor for the ring highlight.
func (r *Renderer) SyncTerrain(t *terrain.Terrain) {
	if r.terrain == nil {
		return
	}
	if n := r.terrain.Sync(t); n > 0 {
		r.log.Debug("terrain rows uploaded", zap.Int("vertices", n))
	}
}

// Draw clears the frame and draws the terrain.
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.terrain != nil {
		r.terrain.Draw(r.config.SunDirection)
	}
}

// DrawOverlay draws GUI shapes on top of the frame.
func (r *Renderer) DrawOverlay(shapes []gui.Shape) {
	if r.overlay != nil {
		r.overlay.Draw(shapes)
	}
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}
