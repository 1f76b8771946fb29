// Package uniform defines the transform block shared with the shaders.
package uniform

import "github.com/go-gl/mathgl/mgl32"

// TransformsBinding is the uniform buffer binding point of the block.
const TransformsBinding = 0

// TransformsSize is the size of the block in bytes.
const TransformsSize = 5 * 16 * 4

// Transforms mirrors the std140 block
//
//	layout(std140) uniform Transforms {
//	    mat4 mvp;
//	    mat4 proj;
//	    mat4 view;
//	    mat4 model;
//	    mat4 sun_vp;
//	};
//
// Every member is a column-major mat4, so the block has no padding.
type Transforms struct {
	MVP   mgl32.Mat4
	Proj  mgl32.Mat4
	View  mgl32.Mat4
	Model mgl32.Mat4
	SunVP mgl32.Mat4
}

// NewTransforms returns a block with every matrix set to identity.
func NewTransforms() Transforms {
	id := mgl32.Ident4()
	return Transforms{MVP: id, Proj: id, View: id, Model: id, SunVP: id}
}

// Update stores the matrices and recomputes MVP.
func (t *Transforms) Update(view, proj, model, sunVP mgl32.Mat4) {
	t.View = view
	t.Proj = proj
	t.Model = model
	t.SunVP = sunVP
	t.MVP = proj.Mul4(view).Mul4(model)
}

// Floats returns the block in upload order.
func (t *Transforms) Floats() [80]float32 {
	var out [80]float32
	for i, m := range [...]*mgl32.Mat4{&t.MVP, &t.Proj, &t.View, &t.Model, &t.SunVP} {
		copy(out[i*16:], m[:])
	}
	return out
}
