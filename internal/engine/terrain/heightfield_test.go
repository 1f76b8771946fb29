package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newField(t *testing.T, w, d int, spacing float32, origin mgl32.Vec2) *HeightField {
	t.Helper()
	f, err := NewHeightField(w, d, spacing, origin)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	return f
}

func fill(f *HeightField, height func(x, z float32) float32) {
	w, d := f.Size()
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			p := f.WorldPos(x, z)
			f.Set(x, z, height(p.X(), p.Z()))
		}
	}
	f.RecomputeNormals(f.Region())
}

func TestNewHeightFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, d    int
		spacing float32
		wantErr bool
	}{
		{"valid", 4, 4, 1, false},
		{"minimum", 2, 2, 0.5, false},
		{"too narrow", 1, 4, 1, true},
		{"too shallow", 4, 1, 1, true},
		{"zero spacing", 4, 4, 0, true},
		{"negative spacing", 4, 4, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeightField(tt.w, tt.d, tt.spacing, mgl32.Vec2{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHeightBilinear(t *testing.T) {
	f := newField(t, 11, 11, 2, mgl32.Vec2{-10, -10})
	plane := func(x, z float32) float32 { return 0.5*x - 0.25*z + 3 }
	fill(f, plane)

	points := [][2]float32{{0, 0}, {1.3, -4.7}, {-9.9, 9.9}, {7.77, 2.01}}
	for _, p := range points {
		got := f.Height(p[0], p[1])
		if abs(got-plane(p[0], p[1])) > 1e-4 {
			t.Errorf("Height(%v, %v) = %v, want %v", p[0], p[1], got, plane(p[0], p[1]))
		}
	}
}

func TestHeightClampsOutside(t *testing.T) {
	f := newField(t, 3, 3, 1, mgl32.Vec2{})
	f.Set(2, 2, 7)
	if got := f.Height(50, 50); got != 7 {
		t.Errorf("Height outside corner = %v, want 7", got)
	}
	if got := f.Height(-50, -50); got != 0 {
		t.Errorf("Height outside origin = %v, want 0", got)
	}
}

func TestBoundsTrackHeights(t *testing.T) {
	f := newField(t, 5, 3, 2, mgl32.Vec2{1, -1})
	b := f.Bounds()
	if b.Min != (mgl32.Vec3{1, 0, -1}) || b.Max != (mgl32.Vec3{9, 0, 3}) {
		t.Fatalf("Bounds = %+v", b)
	}
	f.Set(1, 1, 12)
	f.Set(2, 1, -4)
	f.Set(1, 1, 0)
	b = f.Bounds()
	if b.Min.Y() != -4 || b.Max.Y() != 12 {
		t.Errorf("height range = [%v, %v], want [-4, 12]", b.Min.Y(), b.Max.Y())
	}
}

func TestNormals(t *testing.T) {
	f := newField(t, 5, 5, 1, mgl32.Vec2{})
	if n := f.Normal(2, 2); n != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("flat normal = %v", n)
	}

	// h = x gives a 45 degree slope rising towards +X
	fill(f, func(x, z float32) float32 { return x })
	want := mgl32.Vec3{-1, 1, 0}.Normalize()
	for _, p := range [][2]int{{0, 0}, {2, 2}, {4, 3}} {
		n := f.Normal(p[0], p[1])
		if !vecNear(n, want, 1e-5) {
			t.Errorf("Normal(%v) = %v, want %v", p, n, want)
		}
	}
}

func TestSetOutOfRangeIgnored(t *testing.T) {
	f := newField(t, 3, 3, 1, mgl32.Vec2{})
	f.Set(-1, 0, 5)
	f.Set(3, 0, 5)
	if b := f.Bounds(); b.Max.Y() != 0 {
		t.Errorf("out of range Set changed bounds: %+v", b)
	}
}

func TestRegion(t *testing.T) {
	a := Region{MinX: 1, MinZ: 1, MaxX: 3, MaxZ: 2}
	b := Region{MinX: 5, MinZ: 0, MaxX: 6, MaxZ: 1}

	if u := a.Union(b); u != (Region{MinX: 1, MinZ: 0, MaxX: 6, MaxZ: 2}) {
		t.Errorf("Union = %+v", u)
	}
	if u := EmptyRegion().Union(a); u != a {
		t.Errorf("empty Union = %+v", u)
	}
	if g := a.Grow(1).Clip(4, 4); g != (Region{MinX: 0, MinZ: 0, MaxX: 3, MaxZ: 3}) {
		t.Errorf("Grow/Clip = %+v", g)
	}
	if c := (Region{MinX: 10, MinZ: 10, MaxX: 12, MaxZ: 12}).Clip(4, 4); !c.Empty() {
		t.Errorf("Clip outside grid = %+v, want empty", c)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := 0; i < 3; i++ {
		if abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
