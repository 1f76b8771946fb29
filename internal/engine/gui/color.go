package gui

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Panel theme.
var (
	ColorPanelBg      = RGB(20, 20, 31).WithAlpha(0.9)
	ColorPanelBorder  = RGB(77, 77, 102)
	ColorTrack        = RGB(13, 13, 20)
	ColorHandle       = RGB(64, 64, 89)
	ColorHandleActive = RGB(51, 153, 230)
	ColorRaise        = RGB(77, 191, 89)
	ColorLower        = RGB(204, 89, 64)
	ColorButtonQuit   = RGB(140, 31, 31)
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken scales the color components towards black.
func (c Color) Darken(factor float32) Color {
	return Color{c.R * (1 - factor), c.G * (1 - factor), c.B * (1 - factor), c.A}
}

// Lighten moves the color components towards white.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
