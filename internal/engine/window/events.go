package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trefoil/internal/engine/input"
)

// PollEvents drains the SDL queue and forwards each event to sink as an
// input.Event. Positions and sizes are reported in physical pixels.
func (w *Window) PollEvents(sink func(input.Event)) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			sink(input.Event{Type: input.EventCloseRequested})

		case *sdl.WindowEvent:
			w.handleWindowEvent(e, sink)

		case *sdl.KeyboardEvent:
			sink(input.Event{
				Type:      input.EventModifiers,
				Modifiers: ModifiersFromSDL(sdl.Keymod(e.Keysym.Mod)),
			})
			if e.Repeat != 0 {
				continue
			}
			sink(input.KeyEvent(KeyFromSDL(e.Keysym.Sym), e.Type == sdl.KEYDOWN))

		case *sdl.TextInputEvent:
			sink(input.Event{Type: input.EventText, Text: e.GetText()})

		case *sdl.MouseMotionEvent:
			// in relative mode the absolute position is frozen
			if w.cursorVisible {
				sink(input.PointerMovedEvent(float32(e.X)*w.scale, float32(e.Y)*w.scale))
			}
			sink(input.MotionEvent(float32(e.XRel)*w.scale, float32(e.YRel)*w.scale))

		case *sdl.MouseButtonEvent:
			sink(input.ButtonEvent(ButtonFromSDL(e.Button), e.Type == sdl.MOUSEBUTTONDOWN))

		case *sdl.MouseWheelEvent:
			dx, dy := float32(e.X), float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dx, dy = -dx, -dy
			}
			// the translator divides by the scale factor
			sink(input.ScrollEvent(dx*w.scale, dy*w.scale))
		}
	}
}

func (w *Window) handleWindowEvent(e *sdl.WindowEvent, sink func(input.Event)) {
	switch e.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		if s := w.ScaleFactor(); s != w.scale {
			w.scale = s
			sink(input.Event{Type: input.EventScaleFactor, ScaleFactor: s})
		}
		width, height := w.DrawableSize()
		sink(input.Event{Type: input.EventResized, Width: width, Height: height})
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		sink(input.Event{Type: input.EventFocus, Focused: true})
	case sdl.WINDOWEVENT_FOCUS_LOST:
		sink(input.Event{Type: input.EventFocus, Focused: false})
	case sdl.WINDOWEVENT_CLOSE:
		sink(input.Event{Type: input.EventCloseRequested})
	}
}
