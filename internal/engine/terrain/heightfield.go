package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
	"github.com/Faultbox/trefoil/pkg/math"
)

// HeightField is a regular grid of height samples.
//
// Sample (x, z) sits at world position origin + (x, z) * spacing.
// The grid size never changes after construction.
type HeightField struct {
	width   int // samples along X
	depth   int // samples along Z
	spacing float32
	origin  mgl32.Vec2 // world XZ of sample (0, 0)

	heights []float32
	normals []mgl32.Vec3

	// Conservative height range. Only ever grows.
	minHeight float32
	maxHeight float32
}

// NewHeightField creates a flat height-field at height 0.
func NewHeightField(width, depth int, spacing float32, origin mgl32.Vec2) (*HeightField, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("height-field needs at least 2x2 samples, got %dx%d", width, depth)
	}
	if spacing <= 0 || !math.IsFinite(spacing) {
		return nil, fmt.Errorf("invalid sample spacing %v", spacing)
	}

	f := &HeightField{
		width:   width,
		depth:   depth,
		spacing: spacing,
		origin:  origin,
		heights: make([]float32, width*depth),
		normals: make([]mgl32.Vec3, width*depth),
	}
	for i := range f.normals {
		f.normals[i] = mgl32.Vec3{0, 1, 0}
	}
	return f, nil
}

// Size returns the number of samples along X and Z.
func (f *HeightField) Size() (width, depth int) {
	return f.width, f.depth
}

// Spacing returns the distance between neighboring samples.
func (f *HeightField) Spacing() float32 {
	return f.spacing
}

// Origin returns the world XZ position of sample (0, 0).
func (f *HeightField) Origin() mgl32.Vec2 {
	return f.origin
}

// Region returns the region covering the whole grid.
func (f *HeightField) Region() Region {
	return Region{MinX: 0, MinZ: 0, MaxX: f.width - 1, MaxZ: f.depth - 1}
}

func (f *HeightField) index(x, z int) int {
	return z*f.width + x
}

// At returns the height of sample (x, z). Indices are clamped to the grid.
func (f *HeightField) At(x, z int) float32 {
	x = min(max(x, 0), f.width-1)
	z = min(max(z, 0), f.depth-1)
	return f.heights[f.index(x, z)]
}

// Set stores the height of sample (x, z). Out of range indices are ignored.
// Normals are not updated; call RecomputeNormals for the touched region.
func (f *HeightField) Set(x, z int, h float32) {
	if x < 0 || z < 0 || x >= f.width || z >= f.depth {
		return
	}
	f.heights[f.index(x, z)] = h
	f.minHeight = math32.Min(f.minHeight, h)
	f.maxHeight = math32.Max(f.maxHeight, h)
}

// Normal returns the shading normal of sample (x, z).
func (f *HeightField) Normal(x, z int) mgl32.Vec3 {
	x = min(max(x, 0), f.width-1)
	z = min(max(z, 0), f.depth-1)
	return f.normals[f.index(x, z)]
}

// WorldPos returns the world position of sample (x, z).
func (f *HeightField) WorldPos(x, z int) mgl32.Vec3 {
	return mgl32.Vec3{
		f.origin.X() + float32(x)*f.spacing,
		f.At(x, z),
		f.origin.Y() + float32(z)*f.spacing,
	}
}

// Height returns the bilinearly interpolated height at world (x, z).
// Positions outside the footprint are clamped to the nearest edge.
func (f *HeightField) Height(x, z float32) float32 {
	fx := math.Clamp((x-f.origin.X())/f.spacing, 0, float32(f.width-1))
	fz := math.Clamp((z-f.origin.Y())/f.spacing, 0, float32(f.depth-1))

	ix := min(int(fx), f.width-2)
	iz := min(int(fz), f.depth-2)
	tx := fx - float32(ix)
	tz := fz - float32(iz)

	h00 := f.heights[f.index(ix, iz)]
	h10 := f.heights[f.index(ix+1, iz)]
	h01 := f.heights[f.index(ix, iz+1)]
	h11 := f.heights[f.index(ix+1, iz+1)]

	near := math.Lerp(h00, h10, tx)
	far := math.Lerp(h01, h11, tx)
	return math.Lerp(near, far, tz)
}

// Bounds returns a box enclosing the whole surface.
func (f *HeightField) Bounds() picking.AABB {
	return picking.NewAABB(
		mgl32.Vec3{f.origin.X(), f.minHeight, f.origin.Y()},
		mgl32.Vec3{
			f.origin.X() + float32(f.width-1)*f.spacing,
			f.maxHeight,
			f.origin.Y() + float32(f.depth-1)*f.spacing,
		},
	)
}

// RecomputeNormals refreshes the normals of every sample in r using central
// differences. Edge samples fall back to one-sided differences.
func (f *HeightField) RecomputeNormals(r Region) {
	r = r.Clip(f.width, f.depth)
	for z := r.MinZ; z <= r.MaxZ; z++ {
		z0, z1 := max(z-1, 0), min(z+1, f.depth-1)
		for x := r.MinX; x <= r.MaxX; x++ {
			x0, x1 := max(x-1, 0), min(x+1, f.width-1)

			dhdx := (f.At(x1, z) - f.At(x0, z)) / (float32(x1-x0) * f.spacing)
			dhdz := (f.At(x, z1) - f.At(x, z0)) / (float32(z1-z0) * f.spacing)
			f.normals[f.index(x, z)] = normalize(mgl32.Vec3{-dhdx, 1, -dhdz})
		}
	}
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 0.0001 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Mul(1 / l)
}
