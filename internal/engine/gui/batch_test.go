package gui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAppendVertices(t *testing.T) {
	shapes := []Shape{
		{RectXYWH(10, 20, 30, 40), Color{1, 0, 0, 1}},
		{RectXYWH(0, 0, 1, 1), Color{0, 0, 1, 0.5}},
	}

	v := AppendVertices(nil, shapes)
	if len(v) != 2*6*FloatsPerVertex {
		t.Fatalf("len = %d, want %d", len(v), 2*6*FloatsPerVertex)
	}

	// third vertex of the first quad is the bottom-right corner
	br := v[2*FloatsPerVertex : 3*FloatsPerVertex]
	if br[0] != 40 || br[1] != 60 {
		t.Errorf("bottom-right = (%v, %v), want (40, 60)", br[0], br[1])
	}
	if br[3] != 1 || br[5] != 0 {
		t.Errorf("color = %v, want red", br[3:7])
	}

	second := v[6*FloatsPerVertex:]
	if second[6] != 0.5 {
		t.Errorf("alpha = %v, want 0.5", second[6])
	}
}

func TestScreenProjectionCorners(t *testing.T) {
	proj := ScreenProjection(800, 600)

	tests := []struct {
		screen mgl32.Vec2
		clip   mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
		{mgl32.Vec2{800, 600}, mgl32.Vec2{1, -1}},
		{mgl32.Vec2{400, 300}, mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		p := proj.Mul4x1(mgl32.Vec4{tt.screen[0], tt.screen[1], 0, 1})
		if abs(p[0]-tt.clip[0]) > 1e-5 || abs(p[1]-tt.clip[1]) > 1e-5 {
			t.Errorf("%v -> (%v, %v), want %v", tt.screen, p[0], p[1], tt.clip)
		}
	}
}
