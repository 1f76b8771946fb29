// Package picking provides ray construction and ray/box tests.
package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing dir. A zero direction is kept as is.
func NewRay(origin, dir mgl32.Vec3) Ray {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: dir}
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		box.Min[i] = math32.Min(a[i], b[i])
		box.Max[i] = math32.Max(a[i], b[i])
	}
	return box
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// IntersectAABB runs a slab test against box.
// tNear and tFar bound the part of the ray inside the box; tNear is 0 when
// the origin is already inside. Axes with a zero direction component only
// pass if the origin lies within that slab.
func (r Ray) IntersectAABB(box AABB) (tNear, tFar float32, hit bool) {
	tNear = math32.Inf(-1)
	tFar = math32.Inf(1)

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if d == 0 {
			if o < box.Min[i] || o > box.Max[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (box.Min[i] - o) / d
		t2 := (box.Max[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
	}

	if tFar < tNear || tFar < 0 {
		return 0, 0, false
	}
	if tNear < 0 {
		tNear = 0
	}
	return tNear, tFar, true
}
