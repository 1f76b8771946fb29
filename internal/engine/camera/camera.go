// Package camera provides the first-person editor camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
	"github.com/Faultbox/trefoil/pkg/math"
)

// Direction is a movement direction relative to the camera heading.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Params configures a new FlyCamera.
type Params struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	FovY float32 // Vertical field of view (radians)
	Near float32
	Far  float32

	Speed           float32 // World units per second
	BoostMultiplier float32
	Sensitivity     float32 // Radians per pointer unit
	PitchMargin     float32 // Distance of the pitch limit from vertical (radians)

	// Viewport size in logical pixels
	Width, Height float32
}

// FlyCamera is a free-flying camera driven by yaw and pitch.
//
// Yaw is measured in the XZ plane from +X towards +Z, so a yaw of -Pi/2
// looks down -Z. Pitch is positive upwards and kept strictly inside
// (-Pi/2, Pi/2).
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FovY   float32
	Aspect float32
	Near   float32
	Far    float32

	Speed           float32
	BoostMultiplier float32
	Sensitivity     float32
	SpeedBoost      bool

	pitchLimit    float32
	width, height float32
}

// New creates a camera at p.Position looking at p.Target.
func New(p Params) *FlyCamera {
	margin := p.PitchMargin
	if margin <= 0 {
		margin = 0.01
	}
	c := &FlyCamera{
		Position:        p.Position,
		FovY:            p.FovY,
		Near:            p.Near,
		Far:             p.Far,
		Speed:           p.Speed,
		BoostMultiplier: p.BoostMultiplier,
		Sensitivity:     p.Sensitivity,
		pitchLimit:      math32.Pi/2 - margin,
		Aspect:          1,
	}
	c.SetViewport(p.Width, p.Height)
	c.LookAt(p.Target)
	return c
}

// LookAt orients the camera towards target without moving it.
func (c *FlyCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Yaw = math32.Atan2(dir.Z(), dir.X())
	c.Pitch = math.Clamp(math32.Asin(dir.Y()), -c.pitchLimit, c.pitchLimit)
}

// PitchLimit returns the largest allowed absolute pitch.
func (c *FlyCamera) PitchLimit() float32 {
	return c.pitchLimit
}

// SetViewport updates the viewport size used for the aspect ratio and pixel rays.
// Non-positive sizes are ignored.
func (c *FlyCamera) SetViewport(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.Aspect = width / height
}

// SetSpeedBoost toggles the movement speed multiplier.
func (c *FlyCamera) SetSpeedBoost(on bool) {
	c.SpeedBoost = on
}

// Rotate applies pointer motion to the orientation.
func (c *FlyCamera) Rotate(deltaX, deltaY float32) {
	c.Yaw = math.Wrap(c.Yaw + deltaX*c.Sensitivity)
	c.Pitch = math.Clamp(c.Pitch-deltaY*c.Sensitivity, -c.pitchLimit, c.pitchLimit)
}

// Go moves the camera in the horizontal plane. Pitch does not affect the
// movement axes.
func (c *FlyCamera) Go(dir Direction, dt float32) {
	dist := c.Speed * dt
	if c.SpeedBoost {
		dist *= c.BoostMultiplier
	}

	sin, cos := math32.Sincos(c.Yaw)
	forward := mgl32.Vec3{cos, 0, sin}
	right := mgl32.Vec3{-sin, 0, cos}

	switch dir {
	case Forward:
		c.Position = c.Position.Add(forward.Mul(dist))
	case Backward:
		c.Position = c.Position.Sub(forward.Mul(dist))
	case Left:
		c.Position = c.Position.Sub(right.Mul(dist))
	case Right:
		c.Position = c.Position.Add(right.Mul(dist))
	}
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return mgl32.Vec3{cy * cp, sp, sy * cp}
}

// Right returns the unit right vector. It is always horizontal.
func (c *FlyCamera) Right() mgl32.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	return mgl32.Vec3{-sy, 0, cy}
}

// Up returns the unit up vector of the view.
func (c *FlyCamera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), worldUp)
}

// ProjectionMatrix returns the perspective projection for the current aspect ratio.
func (c *FlyCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// RayThroughPixel returns the ray from the camera through a viewport point.
//
// px is in logical pixels with (0, 0) at the top-left corner of the
// viewport. The center of pixel (i, j) is (i+0.5, j+0.5), so the viewport
// center (w/2, h/2) maps exactly to Forward().
func (c *FlyCamera) RayThroughPixel(px mgl32.Vec2) picking.Ray {
	ndcX := 2*px.X()/c.width - 1
	ndcY := 1 - 2*px.Y()/c.height

	tanHalf := math32.Tan(c.FovY / 2)
	dir := c.Forward().
		Add(c.Right().Mul(ndcX * tanHalf * c.Aspect)).
		Add(c.Up().Mul(ndcY * tanHalf))

	return picking.NewRay(c.Position, dir)
}
