package terrain

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBrushSizeClamp(t *testing.T) {
	tests := []struct {
		name   string
		start  float32
		scroll float32
		want   float32
	}{
		{"shrink below min", 1, 100, 0.1},
		{"grow above max", 190, -100, 200},
		{"within range", 20, 2, 17},
		{"exactly max", 200, -0.0001, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBrush(tt.start, 0.1, 200, 10, 1.5)
			b.Resize(tt.scroll)
			if b.Size != tt.want {
				t.Errorf("Size = %v, want %v", b.Size, tt.want)
			}
		})
	}
}

func TestNewBrushClampsInitialSize(t *testing.T) {
	if b := NewBrush(500, 0.1, 200, 10, 1.5); b.Size != 200 {
		t.Errorf("Size = %v, want 200", b.Size)
	}
}

func TestBrushWeight(t *testing.T) {
	b := NewBrush(4, 0.1, 200, 10, 1.5)
	if w := b.Weight(0); w != 1 {
		t.Errorf("Weight(0) = %v, want 1", w)
	}
	if w := b.Weight(4); w != 0 {
		t.Errorf("Weight(r) = %v, want 0", w)
	}
	if w := b.Weight(10); w != 0 {
		t.Errorf("Weight(beyond) = %v, want 0", w)
	}

	// continuous and non-increasing
	prev := b.Weight(0)
	for i := 1; i <= 400; i++ {
		w := b.Weight(float32(i) / 100)
		if w > prev {
			t.Fatalf("weight increased at d=%v", float32(i)/100)
		}
		if prev-w > 0.02 {
			t.Fatalf("weight jumps by %v at d=%v", prev-w, float32(i)/100)
		}
		prev = w
	}
}

func TestSculptLocality(t *testing.T) {
	for _, raise := range []bool{true, false} {
		f := newField(t, 41, 41, 1, mgl32.Vec2{-20, -20})
		b := NewBrush(5, 0.1, 200, 10, 1.5)
		center := mgl32.Vec2{0.25, 0.5}

		region := f.Sculpt(center, b, 0.1, raise)

		w, d := f.Size()
		for z := 0; z < d; z++ {
			for x := 0; x < w; x++ {
				p := f.WorldPos(x, z)
				dx, dz := p.X()-center.X(), p.Z()-center.Y()
				dist := math32.Sqrt(dx*dx + dz*dz)
				h := f.At(x, z)

				switch {
				case dist > b.Size && h != 0:
					t.Fatalf("raise=%v: cell (%d,%d) at distance %v changed to %v", raise, x, z, dist, h)
				case dist < b.Size && raise && h <= 0:
					t.Fatalf("cell (%d,%d) at distance %v not raised: %v", x, z, dist, h)
				case dist < b.Size && !raise && h >= 0:
					t.Fatalf("cell (%d,%d) at distance %v not lowered: %v", x, z, dist, h)
				}
				if h != 0 && !inRegion(region, x, z) {
					t.Fatalf("changed cell (%d,%d) outside returned region %+v", x, z, region)
				}
			}
		}
	}
}

func TestSculptRegionAndNormals(t *testing.T) {
	f := newField(t, 41, 41, 1, mgl32.Vec2{-20, -20})
	b := NewBrush(3, 0.1, 200, 10, 1.5)

	region := f.Sculpt(mgl32.Vec2{0, 0}, b, 1, true)
	// brush square is samples 17..23, grown by one
	want := Region{MinX: 16, MinZ: 16, MaxX: 24, MaxZ: 24}
	if region != want {
		t.Errorf("region = %+v, want %+v", region, want)
	}

	// normals tilt away from the raised center
	n := f.Normal(21, 20) // one sample towards +X from the center
	if n.X() <= 0 {
		t.Errorf("normal on +X flank = %v, want positive X", n)
	}
	// untouched normals stay flat
	if n := f.Normal(5, 5); n != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("far normal = %v, want up", n)
	}
}

func TestSculptAtEdgeClips(t *testing.T) {
	f := newField(t, 10, 10, 1, mgl32.Vec2{})
	b := NewBrush(3, 0.1, 200, 10, 1.5)
	region := f.Sculpt(mgl32.Vec2{0, 0}, b, 1, true)
	if region.MinX != 0 || region.MinZ != 0 || region.MaxX != 4 || region.MaxZ != 4 {
		t.Errorf("region = %+v", region)
	}
	if f.At(0, 0) <= 0 {
		t.Error("corner sample not raised")
	}
}

func TestSculptZeroDtNoChange(t *testing.T) {
	f := newField(t, 10, 10, 1, mgl32.Vec2{})
	f.Sculpt(mgl32.Vec2{5, 5}, NewBrush(3, 0.1, 200, 10, 1.5), 0, true)
	if b := f.Bounds(); b.Max.Y() != 0 || b.Min.Y() != 0 {
		t.Errorf("zero dt changed heights: %+v", b)
	}
}

func TestSculptOffGrid(t *testing.T) {
	f := newField(t, 10, 10, 1, mgl32.Vec2{})
	if r := f.Sculpt(mgl32.Vec2{100, 100}, NewBrush(3, 0.1, 200, 10, 1.5), 1, true); !r.Empty() {
		t.Errorf("region = %+v, want empty", r)
	}
	if r := f.Sculpt(NoCursor.Point, NewBrush(3, 0.1, 200, 10, 1.5), 1, true); !r.Empty() {
		t.Errorf("infinite center region = %+v, want empty", r)
	}
}

func TestCursorValid(t *testing.T) {
	if NoCursor.Valid() {
		t.Error("NoCursor should be invalid")
	}
	if !(Cursor{Point: mgl32.Vec2{1, 2}}).Valid() {
		t.Error("finite cursor should be valid")
	}
}

func inRegion(r Region, x, z int) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}
