package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0.05, 0.1, 200, 0.1},
		{250, 0.1, 200, 200},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("below edge0 = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("above edge1 = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); abs(got-0.5) > 1e-6 {
		t.Errorf("midpoint = %v, want 0.5", got)
	}

	// Monotonic on the interval
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := Smoothstep(0, 10, float32(i)/10)
		if v < prev {
			t.Fatalf("not monotonic at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestSmoothstepDegenerate(t *testing.T) {
	if got := Smoothstep(1, 1, 0.5); got != 0 {
		t.Errorf("Smoothstep(1,1,0.5) = %v, want 0", got)
	}
	if got := Smoothstep(1, 1, 1); got != 1 {
		t.Errorf("Smoothstep(1,1,1) = %v, want 1", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp = %v, want 3", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Error("1 should be finite")
	}
	if IsFinite(math32.Inf(1)) || IsFinite(math32.Inf(-1)) || IsFinite(math32.NaN()) {
		t.Error("inf/nan should not be finite")
	}
	inf := Vec2Inf()
	if IsFinite(inf.X()) || IsFinite(inf.Y()) {
		t.Errorf("Vec2Inf() = %v, want infinite components", inf)
	}
}

func TestHorizontalDistance(t *testing.T) {
	got := HorizontalDistance(mgl32.Vec3{0, 100, 0}, mgl32.Vec3{3, -7, 4})
	if abs(got-5) > 1e-6 {
		t.Errorf("HorizontalDistance = %v, want 5", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{math32.Pi, math32.Pi},
		{-math32.Pi, math32.Pi},
		{3 * math32.Pi / 2, -math32.Pi / 2},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in); abs(got-tt.want) > 1e-5 {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
