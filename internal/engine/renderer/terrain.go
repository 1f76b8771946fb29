package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/shader"
	"github.com/Faultbox/trefoil/internal/engine/terrain"
	"github.com/Faultbox/trefoil/internal/engine/uniform"
)

var (
	terrainAlbedo  = mgl32.Vec3{0.45, 0.55, 0.3}
	terrainAmbient = mgl32.Vec3{0.3, 0.3, 0.35}
	ringColor      = mgl32.Vec3{1, 0.85, 0.2}
)

// TerrainRenderer keeps a CPU copy of the terrain vertices so that edited
// rows can be refreshed and re-uploaded without rebuilding the mesh.
type TerrainRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	vertices   []terrain.Vertex
	indexCount int32

	cursor      mgl32.Vec2
	brushRadius float32

	locSunDir      int32
	locAmbient     int32
	locAlbedo      int32
	locCursor      int32
	locBrushRadius int32
	locRingColor   int32
}

// NewTerrainRenderer compiles the terrain program and uploads the whole mesh.
func NewTerrainRenderer(f *terrain.HeightField) (*TerrainRenderer, error) {
	program, err := shader.CompileProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	if err := shader.BindUniformBlock(program, "Transforms", uniform.TransformsBinding); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	tr := &TerrainRenderer{
		program:        program,
		locSunDir:      shader.GetUniform(program, "uSunDir"),
		locAmbient:     shader.GetUniform(program, "uAmbient"),
		locAlbedo:      shader.GetUniform(program, "uAlbedo"),
		locCursor:      shader.GetUniform(program, "uCursor"),
		locBrushRadius: shader.GetUniform(program, "uBrushRadius"),
		locRingColor:   shader.GetUniform(program, "uRingColor"),
		cursor:         terrain.NoCursor.Point,
	}

	mesh := terrain.BuildMesh(f)
	tr.vertices = mesh.Vertices
	tr.indexCount = int32(len(mesh.Indices))

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tr.vertices)*terrain.VertexSize, unsafe.Pointer(&tr.vertices[0]), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, terrain.VertexSize, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, terrain.VertexSize, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return tr, nil
}

// Sync re-uploads the rows changed since the last call and records the
// cursor and brush radius. It returns the number of vertices uploaded.
func (tr *TerrainRenderer) Sync(t *terrain.Terrain) int {
	tr.cursor = t.Cursor().Point
	tr.brushRadius = t.Brush.Size

	region, ok := t.TakeDirty()
	if !ok {
		return 0
	}
	terrain.WriteVertices(t.Field, tr.vertices, region)
	first, count := terrain.RowSpan(t.Field, region)
	if count == 0 {
		return 0
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER,
		first*terrain.VertexSize,
		count*terrain.VertexSize,
		unsafe.Pointer(&tr.vertices[first]),
	)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return count
}

// Draw renders the terrain lit by a sun in direction sunDir.
func (tr *TerrainRenderer) Draw(sunDir mgl32.Vec3) {
	gl.UseProgram(tr.program)
	gl.Uniform3fv(tr.locSunDir, 1, &sunDir[0])
	gl.Uniform3fv(tr.locAmbient, 1, &terrainAmbient[0])
	gl.Uniform3fv(tr.locAlbedo, 1, &terrainAlbedo[0])
	gl.Uniform3fv(tr.locRingColor, 1, &ringColor[0])
	gl.Uniform2f(tr.locCursor, tr.cursor[0], tr.cursor[1])
	gl.Uniform1f(tr.locBrushRadius, tr.brushRadius)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close releases the GPU buffers and program.
func (tr *TerrainRenderer) Close() error {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
	}
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
	}
	return nil
}
