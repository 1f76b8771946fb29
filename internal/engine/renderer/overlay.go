package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/trefoil/internal/engine/gui"
	"github.com/Faultbox/trefoil/internal/engine/shader"
)

// OverlayRenderer draws batched solid quads in screen space.
type OverlayRenderer struct {
	width  int
	height int

	program       uint32
	locProjection int32

	vao uint32
	vbo uint32

	vertices []float32
}

// NewOverlayRenderer creates the overlay pass for a logical screen size.
func NewOverlayRenderer(width, height int) (*OverlayRenderer, error) {
	program, err := shader.CompileProgram(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	o := &OverlayRenderer{
		width:         width,
		height:        height,
		program:       program,
		locProjection: shader.GetUniform(program, "uProjection"),
		vertices:      make([]float32, 0, 1024),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	stride := int32(gui.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return o, nil
}

// Resize updates the logical screen size.
func (o *OverlayRenderer) Resize(width, height int) {
	o.width = width
	o.height = height
}

// Draw renders shapes over the current frame, restoring blend, depth and
// cull state afterwards.
func (o *OverlayRenderer) Draw(shapes []gui.Shape) {
	o.vertices = gui.AppendVertices(o.vertices[:0], shapes)
	if len(o.vertices) == 0 {
		return
	}

	prevBlend := gl.IsEnabled(gl.BLEND)
	prevDepth := gl.IsEnabled(gl.DEPTH_TEST)
	prevCull := gl.IsEnabled(gl.CULL_FACE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := gui.ScreenProjection(float32(o.width), float32(o.height))
	gl.UseProgram(o.program)
	gl.UniformMatrix4fv(o.locProjection, 1, false, &proj[0])

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(o.vertices)*4, unsafe.Pointer(&o.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(o.vertices)/gui.FloatsPerVertex))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)

	if !prevBlend {
		gl.Disable(gl.BLEND)
	}
	if prevDepth {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases the GPU buffers and program.
func (o *OverlayRenderer) Close() error {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.program != 0 {
		gl.DeleteProgram(o.program)
	}
	return nil
}
