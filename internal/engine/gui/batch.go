package gui

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the overlay vertex layout: position xyz then color rgba.
const FloatsPerVertex = 7

// AppendVertices appends two triangles per shape to dst in screen space.
func AppendVertices(dst []float32, shapes []Shape) []float32 {
	for _, s := range shapes {
		x0, y0 := s.Rect.Min[0], s.Rect.Min[1]
		x1, y1 := s.Rect.Max[0], s.Rect.Max[1]
		c := s.Color
		dst = append(dst,
			x0, y0, 0, c.R, c.G, c.B, c.A,
			x1, y0, 0, c.R, c.G, c.B, c.A,
			x1, y1, 0, c.R, c.G, c.B, c.A,

			x0, y0, 0, c.R, c.G, c.B, c.A,
			x1, y1, 0, c.R, c.G, c.B, c.A,
			x0, y1, 0, c.R, c.G, c.B, c.A,
		)
	}
	return dst
}

// ScreenProjection maps logical pixels with a top-left origin to clip space.
func ScreenProjection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}
