// Package math provides float32 scalar helpers shared by the camera, terrain and GUI code.
// Vector and matrix types come from mgl32.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep returns the Hermite interpolation of x between edge0 and edge1.
// The result is 0 at or below edge0 and 1 at or above edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge1 == edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// Vec2Inf returns a vector with both components set to +Inf.
func Vec2Inf() mgl32.Vec2 {
	return mgl32.Vec2{math32.Inf(1), math32.Inf(1)}
}

// HorizontalDistance returns the distance between a and b in the XZ plane.
func HorizontalDistance(a, b mgl32.Vec3) float32 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math32.Sqrt(dx*dx + dz*dz)
}

// Wrap returns angle wrapped into (-Pi, Pi].
func Wrap(angle float32) float32 {
	for angle > math32.Pi {
		angle -= 2 * math32.Pi
	}
	for angle <= -math32.Pi {
		angle += 2 * math32.Pi
	}
	return angle
}
