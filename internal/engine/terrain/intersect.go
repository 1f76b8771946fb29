package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
)

// MarchConfig controls ray marching against the height-field.
type MarchConfig struct {
	// Step is the marching distance along the ray. Zero means half a cell.
	Step float32
	// Tolerance is the bracket width at which refinement stops.
	Tolerance float32
	// MaxSteps bounds the number of samples taken while marching. The step
	// is widened when the ray span would need more.
	MaxSteps int
	// RefineIterations bounds the bisection steps.
	RefineIterations int
}

// DefaultMarchConfig returns marching settings suited to the given cell spacing.
func DefaultMarchConfig(spacing float32) MarchConfig {
	return MarchConfig{
		Step:             spacing / 2,
		Tolerance:        1e-3,
		MaxSteps:         4096,
		RefineIterations: 32,
	}
}

// boxPadding keeps the bounding box from collapsing on flat terrain.
const boxPadding = 0.01

// Intersect finds the first point where ray crosses the surface.
//
// The ray is clipped to the bounding box, marched until it first drops
// below the surface and the bracketing interval is refined by bisection
// followed by a linear interpolation step. A ray that enters the box
// through a side below the surface hits at the entry point. A ray that
// starts below the surface, or enters the box through its bottom face,
// misses.
func (f *HeightField) Intersect(ray picking.Ray, cfg MarchConfig) (mgl32.Vec3, bool) {
	box := f.Bounds()
	box.Min[1] -= boxPadding
	box.Max[1] += boxPadding

	tNear, tFar, hit := ray.IntersectAABB(box)
	if !hit {
		return mgl32.Vec3{}, false
	}

	step := cfg.Step
	if step <= 0 {
		step = f.spacing / 2
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 4096
	}
	if span := tFar - tNear; span/step > float32(maxSteps) {
		step = span / float32(maxSteps)
	}

	tPrev := tNear
	hPrev := f.clearance(ray, tPrev)
	if hPrev <= 0 {
		// Only a side wall counts. Entering through the bottom face means
		// the ray started underground.
		if entry := ray.At(tNear); !box.Contains(ray.Origin) && entry.Y() > box.Min[1]+boxPadding/2 {
			return entry, true
		}
		return mgl32.Vec3{}, false
	}

	for i := 0; i <= maxSteps && tPrev < tFar; i++ {
		t := min(tPrev+step, tFar)
		h := f.clearance(ray, t)
		if h <= 0 {
			return ray.At(f.refine(ray, tPrev, hPrev, t, h, cfg)), true
		}
		tPrev, hPrev = t, h
	}
	return mgl32.Vec3{}, false
}

// clearance returns how far the ray point at t lies above the surface.
func (f *HeightField) clearance(ray picking.Ray, t float32) float32 {
	p := ray.At(t)
	return p.Y() - f.Height(p.X(), p.Z())
}

// refine narrows [lo, hi] where the ray is above the surface at lo and at
// or below it at hi.
func (f *HeightField) refine(ray picking.Ray, lo, hLo, hi, hHi float32, cfg MarchConfig) float32 {
	for i := 0; i < cfg.RefineIterations && hi-lo > cfg.Tolerance; i++ {
		mid := (lo + hi) / 2
		h := f.clearance(ray, mid)
		if h > 0 {
			lo, hLo = mid, h
		} else {
			hi, hHi = mid, h
		}
	}
	if hLo == hHi {
		return hi
	}
	return lo + (hi-lo)*hLo/(hLo-hHi)
}
