package input

import (
	"sync"
	"time"
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
)

// Translator folds platform events into the current Snapshot.
//
// Handle may be called from the event pump while the frame loop calls Renew;
// both take the same lock, so every event lands in exactly one snapshot.
type Translator struct {
	mu sync.Mutex

	start      time.Time
	frameStart time.Time

	current    Snapshot
	freeCamera bool

	// physical window size
	width, height int
}

// NewTranslator creates a translator for a window of the given physical size.
func NewTranslator(now time.Time, width, height int, scale float32) *Translator {
	if scale <= 0 {
		scale = 1
	}
	t := &Translator{
		start:      now,
		frameStart: now,
		width:      width,
		height:     height,
	}
	t.current.ScaleFactor = scale
	t.current.Focused = true
	// transforms must be uploaded on the first frame
	t.current.CameraMoved = true
	t.updateScreenSize()
	return t
}

// SetFreeCamera enables or disables accumulation of raw pointer motion.
func (t *Translator) SetFreeCamera(on bool) {
	t.mu.Lock()
	t.freeCamera = on
	t.mu.Unlock()
}

// Handle applies one platform event to the current snapshot.
func (t *Translator) Handle(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := &t.current
	switch ev.Type {
	case EventKey:
		if ev.Key != KeyUnknown && ev.Key < KeyCount {
			s.held[ev.Key] = ev.Pressed
			s.updateMovement()
		}
		ev.Modifiers = s.Modifiers
		s.Events = append(s.Events, ev)

	case EventPointerMoved:
		s.Pointer = ev.Position.Mul(1 / s.ScaleFactor)
		s.PointerMoved = true
		ev.Position = s.Pointer
		s.Events = append(s.Events, ev)

	case EventPointerMotion:
		if t.freeCamera && s.Focused {
			s.PointerDelta = s.PointerDelta.Add(ev.Delta.Mul(1 / s.ScaleFactor))
			s.PointerMoved = true
		}

	case EventButton:
		switch ev.Button {
		case MousePrimary:
			s.Buttons.Primary = ev.Pressed
		case MouseSecondary:
			s.Buttons.Secondary = ev.Pressed
		case MouseMiddle:
			s.Buttons.Middle = ev.Pressed
		default:
			return
		}
		ev.Position = s.Pointer
		ev.Modifiers = s.Modifiers
		s.Events = append(s.Events, ev)

	case EventScroll:
		ev.Delta = ev.Delta.Mul(1 / s.ScaleFactor)
		s.ScrollDelta = s.ScrollDelta.Add(ev.Delta)
		s.Scrolled = true
		s.Events = append(s.Events, ev)

	case EventModifiers:
		s.Modifiers = ev.Modifiers

	case EventFocus:
		s.Focused = ev.Focused
		if !ev.Focused {
			s.Modifiers = Modifiers{}
		}

	case EventScaleFactor:
		if ev.ScaleFactor > 0 {
			s.ScaleFactor = ev.ScaleFactor
			t.updateScreenSize()
			s.CameraMoved = true
		}

	case EventResized:
		if ev.Width > 0 && ev.Height > 0 {
			t.width, t.height = ev.Width, ev.Height
			t.updateScreenSize()
			s.CameraMoved = true
		}

	case EventCloseRequested:
		s.CloseRequested = true

	case EventText:
		for _, r := range ev.Text {
			if !IsPrintable(r) {
				return
			}
		}
		if ev.Text != "" {
			s.Events = append(s.Events, ev)
		}
	}
}

// Renew returns the state accumulated since the previous call and starts a
// new frame. Deltas, dirty flags and events are reset; held keys, buttons,
// modifiers and the pointer position carry over.
func (t *Translator) Renew(now time.Time) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.current
	snap.Time = now.Sub(t.start).Seconds()
	snap.DeltaTime = float32(now.Sub(t.frameStart).Seconds())
	t.frameStart = now

	t.current.resetFrame()
	return snap
}

func (t *Translator) updateScreenSize() {
	s := &t.current
	s.ScreenSize = mgl32.Vec2{float32(t.width), float32(t.height)}.Mul(1 / s.ScaleFactor)
}

// IsPrintable reports whether r should be delivered as text input.
// Control characters and the Unicode private use areas are rejected.
func IsPrintable(r rune) bool {
	isPrivateUse := (r >= 0xe000 && r <= 0xf8ff) ||
		(r >= 0xf0000 && r <= 0xffffd) ||
		(r >= 0x100000 && r <= 0x10fffd)
	return !isPrivateUse && !unicode.IsControl(r)
}
