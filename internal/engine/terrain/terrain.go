package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/picking"
)

// Terrain bundles the height-field with the brush and cursor state the
// editor works with. Changes are collected in a dirty region until the
// renderer takes them.
type Terrain struct {
	Field *HeightField
	Brush Brush
	March MarchConfig

	cursor Cursor
	dirty  Region
}

// New creates a terrain around an existing height-field.
func New(field *HeightField, brush Brush, march MarchConfig) *Terrain {
	return &Terrain{
		Field:  field,
		Brush:  brush,
		March:  march,
		cursor: NoCursor,
		dirty:  EmptyRegion(),
	}
}

// Cursor returns the current cursor.
func (t *Terrain) Cursor() Cursor {
	return t.cursor
}

// HideCursor clears the cursor.
func (t *Terrain) HideCursor() {
	t.cursor = NoCursor
}

// IntersectWithRay returns the first surface point hit by ray.
func (t *Terrain) IntersectWithRay(ray picking.Ray) (mgl32.Vec3, bool) {
	return t.Field.Intersect(ray, t.March)
}

// UpdateCursor moves the cursor to where ray hits the surface, or clears it.
func (t *Terrain) UpdateCursor(ray picking.Ray) Cursor {
	if p, ok := t.IntersectWithRay(ray); ok {
		t.cursor = Cursor{Point: mgl32.Vec2{p.X(), p.Z()}}
	} else {
		t.cursor = NoCursor
	}
	return t.cursor
}

// ResizeBrush applies a scroll amount to the brush size.
func (t *Terrain) ResizeBrush(scrollY float32) {
	t.Brush.Resize(scrollY)
}

// Sculpt applies the brush at the cursor. It reports false when there is
// no cursor.
func (t *Terrain) Sculpt(dt float32, raise bool) bool {
	if !t.cursor.Valid() {
		return false
	}
	r := t.Field.Sculpt(t.cursor.Point, t.Brush, dt, raise)
	t.dirty = t.dirty.Union(r)
	return true
}

// TakeDirty returns and clears the region changed since the last call.
func (t *Terrain) TakeDirty() (Region, bool) {
	r := t.dirty
	t.dirty = EmptyRegion()
	return r, !r.Empty()
}
