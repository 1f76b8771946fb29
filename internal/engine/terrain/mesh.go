package terrain

// BuildMesh creates a triangle mesh covering the whole height-field.
// Each grid cell becomes two counter-clockwise triangles facing +Y.
func BuildMesh(f *HeightField) *Mesh {
	w, d := f.Size()
	mesh := &Mesh{
		Vertices: make([]Vertex, w*d),
		Indices:  make([]uint32, 0, (w-1)*(d-1)*6),
	}
	WriteVertices(f, mesh.Vertices, f.Region())

	for z := 0; z < d-1; z++ {
		for x := 0; x < w-1; x++ {
			i0 := uint32(z*w + x)
			i1 := i0 + 1
			i2 := i0 + uint32(w)
			i3 := i2 + 1
			mesh.Indices = append(mesh.Indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}
	return mesh
}

// RowSpan returns the contiguous vertex range covering every row touched by r.
// Whole rows are returned so the range can be uploaded in a single call.
func RowSpan(f *HeightField, r Region) (first, count int) {
	w, d := f.Size()
	r = r.Clip(w, d)
	if r.Empty() {
		return 0, 0
	}
	return r.MinZ * w, (r.MaxZ - r.MinZ + 1) * w
}

// WriteVertices refreshes the vertices of every row touched by r.
// dst must hold the full grid.
func WriteVertices(f *HeightField, dst []Vertex, r Region) {
	first, count := RowSpan(f, r)
	w, _ := f.Size()
	for i := first; i < first+count && i < len(dst); i++ {
		x, z := i%w, i/w
		p := f.WorldPos(x, z)
		n := f.Normal(x, z)
		dst[i] = Vertex{
			Position: [3]float32{p.X(), p.Y(), p.Z()},
			Normal:   [3]float32{n.X(), n.Y(), n.Z()},
		}
	}
}
