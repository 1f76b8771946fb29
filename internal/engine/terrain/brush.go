package terrain

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/pkg/math"
)

// Brush describes the sculpting tool.
type Brush struct {
	Size       float32 // Radius in world units
	MinSize    float32
	MaxSize    float32
	Rate       float32 // Height change per second at the center
	ScrollStep float32 // Size change per scroll unit
}

// NewBrush creates a brush with size clamped into [minSize, maxSize].
func NewBrush(size, minSize, maxSize, rate, scrollStep float32) Brush {
	b := Brush{
		MinSize:    minSize,
		MaxSize:    maxSize,
		Rate:       rate,
		ScrollStep: scrollStep,
	}
	b.SetSize(size)
	return b
}

// SetSize sets the radius, clamped into [MinSize, MaxSize].
func (b *Brush) SetSize(size float32) {
	b.Size = math.Clamp(size, b.MinSize, b.MaxSize)
}

// Resize adjusts the radius by a scroll amount. Scrolling up shrinks the brush.
func (b *Brush) Resize(scrollY float32) {
	b.SetSize(b.Size - scrollY*b.ScrollStep)
}

// Weight returns the falloff at distance d from the center: 1 at the
// center, easing to 0 at the radius, 0 beyond it.
func (b Brush) Weight(d float32) float32 {
	if d >= b.Size {
		return 0
	}
	return 1 - math.Smoothstep(0, b.Size, d)
}

// Cursor is the terrain point under the pointer.
type Cursor struct {
	Point mgl32.Vec2 // World XZ
}

// NoCursor marks that the pointer is not over the terrain.
var NoCursor = Cursor{Point: math.Vec2Inf()}

// Valid reports whether the cursor points at the terrain.
func (c Cursor) Valid() bool {
	return math.IsFinite(c.Point.X()) && math.IsFinite(c.Point.Y())
}

// Sculpt raises or lowers the samples within the brush radius of center.
//
// Only samples inside the bounding square of the brush are visited. The
// returned region covers that square grown by one sample, clipped to the
// grid; its normals have been recomputed.
func (f *HeightField) Sculpt(center mgl32.Vec2, b Brush, dt float32, raise bool) Region {
	r := b.Size
	if r <= 0 || !math.IsFinite(center.X()) || !math.IsFinite(center.Y()) {
		return EmptyRegion()
	}

	box := Region{
		MinX: int(math32.Ceil((center.X() - r - f.origin.X()) / f.spacing)),
		MinZ: int(math32.Ceil((center.Y() - r - f.origin.Y()) / f.spacing)),
		MaxX: int(math32.Floor((center.X() + r - f.origin.X()) / f.spacing)),
		MaxZ: int(math32.Floor((center.Y() + r - f.origin.Y()) / f.spacing)),
	}.Clip(f.width, f.depth)
	if box.Empty() {
		return box
	}

	amount := b.Rate * dt
	if !raise {
		amount = -amount
	}

	c := mgl32.Vec3{center.X(), 0, center.Y()}
	for z := box.MinZ; z <= box.MaxZ; z++ {
		for x := box.MinX; x <= box.MaxX; x++ {
			w := b.Weight(math.HorizontalDistance(f.WorldPos(x, z), c))
			if w == 0 {
				continue
			}
			f.Set(x, z, f.heights[f.index(x, z)]+amount*w)
		}
	}

	touched := box.Grow(1).Clip(f.width, f.depth)
	f.RecomputeNormals(touched)
	return touched
}
