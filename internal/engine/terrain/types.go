// Package terrain provides the editable height-field, ray picking against it,
// brush sculpting and GPU mesh building.
package terrain

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexSize is the size of Vertex in bytes.
const VertexSize = 6 * 4

// Mesh holds the complete terrain mesh data ready for GPU upload.
// Vertices are laid out row by row along X, one row per Z sample.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Region is an inclusive rectangle of grid samples.
type Region struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// EmptyRegion returns a region containing no samples.
func EmptyRegion() Region {
	return Region{MinX: 0, MinZ: 0, MaxX: -1, MaxZ: -1}
}

// Empty reports whether the region contains no samples.
func (r Region) Empty() bool {
	return r.MinX > r.MaxX || r.MinZ > r.MaxZ
}

// Union returns the smallest region containing both r and o.
func (r Region) Union(o Region) Region {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Region{
		MinX: min(r.MinX, o.MinX),
		MinZ: min(r.MinZ, o.MinZ),
		MaxX: max(r.MaxX, o.MaxX),
		MaxZ: max(r.MaxZ, o.MaxZ),
	}
}

// Grow expands the region by n samples on every side.
func (r Region) Grow(n int) Region {
	if r.Empty() {
		return r
	}
	return Region{MinX: r.MinX - n, MinZ: r.MinZ - n, MaxX: r.MaxX + n, MaxZ: r.MaxZ + n}
}

// Clip restricts the region to a grid of width x depth samples.
func (r Region) Clip(width, depth int) Region {
	c := Region{
		MinX: max(r.MinX, 0),
		MinZ: max(r.MinZ, 0),
		MaxX: min(r.MaxX, width-1),
		MaxZ: min(r.MaxZ, depth-1),
	}
	if c.Empty() {
		return EmptyRegion()
	}
	return c
}
