package gui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/pkg/math"
)

// Controls are the editor values the panel displays and edits.
type Controls struct {
	BrushSize float32
	BrushMin  float32
	BrushMax  float32
	// Lowering selects the lower indicator color.
	Lowering bool
}

// Shape is a solid rectangle to draw in screen space.
type Shape struct {
	Rect  Rect
	Color Color
}

// Output is the result of one panel frame.
type Output struct {
	WantsExit bool
	Shapes    []Shape
}

type widgetID uint8

const (
	widgetNone widgetID = iota
	widgetSlider
	widgetQuit
)

// Layout in logical pixels, relative to the panel origin.
const (
	panelWidth   = 220
	panelHeight  = 96
	panelPadding = 10
	borderWidth  = 1
	trackHeight  = 12
	handleWidth  = 10
	rowGap       = 12
	swatchSize   = 24
	quitWidth    = 70
)

// Panel is an immediate-mode brush panel. It owns only interaction state;
// values live in the Controls passed to each frame.
type Panel struct {
	origin mgl32.Vec2

	hot    widgetID
	active widgetID

	wantsInput bool
}

// NewPanel creates a panel with its top-left corner at (x, y).
func NewPanel(x, y float32) *Panel {
	return &Panel{origin: mgl32.Vec2{x, y}}
}

// Bounds is the screen rectangle covered by the panel.
func (p *Panel) Bounds() Rect {
	return RectXYWH(p.origin[0], p.origin[1], panelWidth, panelHeight)
}

func (p *Panel) trackRect() Rect {
	return RectXYWH(
		p.origin[0]+panelPadding,
		p.origin[1]+panelPadding+rowGap,
		panelWidth-2*panelPadding,
		trackHeight,
	)
}

func (p *Panel) swatchRect() Rect {
	return RectXYWH(
		p.origin[0]+panelPadding,
		p.origin[1]+panelPadding+2*rowGap+trackHeight,
		swatchSize,
		swatchSize,
	)
}

func (p *Panel) quitRect() Rect {
	return RectXYWH(
		p.origin[0]+panelWidth-panelPadding-quitWidth,
		p.origin[1]+panelPadding+2*rowGap+trackHeight,
		quitWidth,
		swatchSize,
	)
}

// WantsInput reports whether the last frame captured the pointer, either
// because it hovers the panel or because a slider drag is in progress.
func (p *Panel) WantsInput() bool {
	return p.wantsInput
}

// Dragging reports whether the brush-size slider is being dragged.
func (p *Panel) Dragging() bool {
	return p.active == widgetSlider
}

// LayoutAndInteract processes the packet against the panel widgets, updates
// c in place and returns the shapes to draw.
func (p *Panel) LayoutAndInteract(pkt Packet, c *Controls) Output {
	out := Output{WantsExit: pkt.HasKey(KeyEscape)}
	track := p.trackRect()
	quit := p.quitRect()

	for _, ev := range pkt.Events {
		switch ev.Kind {
		case EventPointerButton:
			if ev.Button != ButtonPrimary {
				continue
			}
			if !ev.Pressed {
				if p.active == widgetQuit && quit.Contains(ev.Pos) {
					out.WantsExit = true
				}
				p.active = widgetNone
				continue
			}
			switch {
			case track.Contains(ev.Pos):
				p.active = widgetSlider
				c.BrushSize = sliderValue(track, ev.Pos[0], c)
			case quit.Contains(ev.Pos):
				p.active = widgetQuit
			}

		case EventPointerMoved:
			if p.Dragging() {
				c.BrushSize = sliderValue(track, ev.Pos[0], c)
			}
		}
	}

	p.hot = widgetNone
	switch {
	case track.Contains(pkt.Pointer):
		p.hot = widgetSlider
	case quit.Contains(pkt.Pointer):
		p.hot = widgetQuit
	}

	p.wantsInput = p.active != widgetNone || p.Bounds().Contains(pkt.Pointer)
	out.Shapes = p.layout(c)
	return out
}

// sliderValue maps a pointer x coordinate on the track to a brush size.
func sliderValue(track Rect, x float32, c *Controls) float32 {
	usable := track.Width() - handleWidth
	if usable <= 0 || c.BrushMax <= c.BrushMin {
		return math.Clamp(c.BrushSize, c.BrushMin, c.BrushMax)
	}
	t := math.Clamp((x-track.Min[0]-handleWidth/2)/usable, 0, 1)
	return math.Lerp(c.BrushMin, c.BrushMax, t)
}

// sliderFraction is the handle position of the current size in [0, 1].
func sliderFraction(c *Controls) float32 {
	if c.BrushMax <= c.BrushMin {
		return 0
	}
	return math.Clamp((c.BrushSize-c.BrushMin)/(c.BrushMax-c.BrushMin), 0, 1)
}

func (p *Panel) layout(c *Controls) []Shape {
	shapes := make([]Shape, 0, 16)

	bounds := p.Bounds()
	shapes = append(shapes, Shape{bounds, ColorPanelBg})
	shapes = appendOutline(shapes, bounds, borderWidth, ColorPanelBorder)

	track := p.trackRect()
	shapes = append(shapes, Shape{track, ColorTrack})

	hx := track.Min[0] + sliderFraction(c)*(track.Width()-handleWidth)
	handle := ColorHandle
	if p.hot == widgetSlider {
		handle = handle.Lighten(0.2)
	}
	if p.Dragging() {
		handle = ColorHandleActive
	}
	shapes = append(shapes, Shape{RectXYWH(hx, track.Min[1]-2, handleWidth, trackHeight+4), handle})

	swatch := ColorRaise
	if c.Lowering {
		swatch = ColorLower
	}
	shapes = append(shapes, Shape{p.swatchRect(), swatch})

	quit := ColorButtonQuit
	if p.hot == widgetQuit {
		quit = quit.Lighten(0.2)
	}
	if p.active == widgetQuit {
		quit = quit.Darken(0.3)
	}
	shapes = append(shapes, Shape{p.quitRect(), quit})
	shapes = appendOutline(shapes, p.quitRect(), borderWidth, ColorPanelBorder)

	return shapes
}

func appendOutline(shapes []Shape, r Rect, w float32, c Color) []Shape {
	x, y := r.Min[0], r.Min[1]
	rw, rh := r.Width(), r.Height()
	return append(shapes,
		Shape{RectXYWH(x, y, rw, w), c},
		Shape{RectXYWH(x, y+rh-w, rw, w), c},
		Shape{RectXYWH(x, y, w, rh), c},
		Shape{RectXYWH(x+rw-w, y, w, rh), c},
	)
}
