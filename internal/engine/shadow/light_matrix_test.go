package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
)

func TestDefaultSunMapsTargetToCenter(t *testing.T) {
	s := DefaultSun()
	m := s.Matrix()

	p := m.Mul4x1(s.Target.Vec4(1))
	if abs(p.X()) > 1e-4 || abs(p.Y()) > 1e-4 {
		t.Errorf("target in light space = %v, want centered", p)
	}
	// target is inside the depth range
	if p.Z() < -1 || p.Z() > 1 {
		t.Errorf("target depth = %v, want within [-1, 1]", p.Z())
	}
}

func TestSunMatrixMatchesOrthoLookAt(t *testing.T) {
	s := DefaultSun()
	want := mgl32.Ortho(-600, 600, -600, 600, 1, 1200).
		Mul4(mgl32.LookAtV(mgl32.Vec3{0, 200, 500}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	got := s.Matrix()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFitToBoundsCoversCorners(t *testing.T) {
	bounds := picking.AABB{Min: mgl32.Vec3{-100, -5, -100}, Max: mgl32.Vec3{100, 40, 100}}
	dirs := []mgl32.Vec3{
		mgl32.Vec3{0, 200, 500}.Normalize(),
		{0, 1, 0},
		mgl32.Vec3{1, 1, -1}.Normalize(),
	}
	for _, dir := range dirs {
		m := FitToBounds(dir, bounds).Matrix()
		for i := 0; i < 8; i++ {
			corner := mgl32.Vec3{
				pick(i&1 != 0, bounds.Min.X(), bounds.Max.X()),
				pick(i&2 != 0, bounds.Min.Y(), bounds.Max.Y()),
				pick(i&4 != 0, bounds.Min.Z(), bounds.Max.Z()),
			}
			p := m.Mul4x1(corner.Vec4(1))
			for axis := 0; axis < 3; axis++ {
				if p[axis] < -1 || p[axis] > 1 {
					t.Errorf("dir %v: corner %v maps outside clip space: %v", dir, corner, p)
					break
				}
			}
		}
	}
}

func pick(hi bool, lo, hiV float32) float32 {
	if hi {
		return hiV
	}
	return lo
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
