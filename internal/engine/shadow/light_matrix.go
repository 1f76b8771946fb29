// Package shadow computes the sun's light-space transform.
package shadow

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
)

// Sun describes an orthographic sun camera.
type Sun struct {
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	HalfExtent float32 // Half width and height of the ortho box
	Near       float32
	Far        float32
}

// DefaultSun returns the sun used by the editor scene.
func DefaultSun() Sun {
	return Sun{
		Position:   mgl32.Vec3{0, 200, 500},
		Target:     mgl32.Vec3{0, 0, 0},
		HalfExtent: 600,
		Near:       1,
		Far:        1200,
	}
}

// Direction returns the normalized direction towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	d := s.Position.Sub(s.Target)
	if d.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}

// Matrix returns the sun's view-projection matrix.
func (s Sun) Matrix() mgl32.Mat4 {
	e := s.HalfExtent
	proj := mgl32.Ortho(-e, e, -e, e, s.Near, s.Far)
	view := mgl32.LookAtV(s.Position, s.Target, upFor(s.Direction()))
	return proj.Mul4(view)
}

// FitToBounds returns a sun that views the whole of bounds from lightDir.
// lightDir is the normalized direction TO the light.
func FitToBounds(lightDir mgl32.Vec3, bounds picking.AABB) Sun {
	center := bounds.Min.Add(bounds.Max).Mul(0.5)
	radius := bounds.Max.Sub(bounds.Min).Len() / 2

	// Position light far enough to encompass entire scene
	lightDistance := radius * 2.0
	padding := radius * 0.1

	return Sun{
		Position:   center.Add(lightDir.Mul(lightDistance)),
		Target:     center,
		HalfExtent: radius + padding,
		Near:       0.1,
		Far:        lightDistance + radius + padding,
	}
}

// upFor picks an up vector that is not parallel to dir.
func upFor(dir mgl32.Vec3) mgl32.Vec3 {
	if math32.Abs(dir.Y()) > 0.99 {
		return mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{0, 1, 0}
}
