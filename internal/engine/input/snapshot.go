package input

import "github.com/go-gl/mathgl/mgl32"

// Buttons holds the pressed state of the tracked pointer buttons.
type Buttons struct {
	Primary   bool
	Secondary bool
	Middle    bool
}

// Snapshot is the semantic input state for one frame.
type Snapshot struct {
	// Movement keys currently held.
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	Buttons   Buttons
	Modifiers Modifiers

	// Pointer is the cursor position in logical pixels.
	Pointer mgl32.Vec2
	// PointerDelta is device motion accumulated while the free camera was
	// active, in logical units.
	PointerDelta mgl32.Vec2
	// ScrollDelta is scroll accumulated this frame, in logical units.
	ScrollDelta mgl32.Vec2

	// Time is seconds since the translator was created.
	Time float64
	// DeltaTime is seconds since the previous Renew.
	DeltaTime float32

	PointerMoved   bool
	CameraMoved    bool
	Scrolled       bool
	CloseRequested bool

	Focused     bool
	ScaleFactor float32
	// ScreenSize is the window size in logical pixels.
	ScreenSize mgl32.Vec2

	// Events holds key, button, pointer, scroll and text events in arrival order.
	Events []Event

	held [KeyCount]bool
}

// Moving reports whether the key bound to d is held.
func (s *Snapshot) Moving(d Direction) bool {
	switch d {
	case DirectionForward:
		return s.Forward
	case DirectionBackward:
		return s.Backward
	case DirectionLeft:
		return s.Left
	case DirectionRight:
		return s.Right
	}
	return false
}

func (s *Snapshot) updateMovement() {
	s.Forward, s.Backward, s.Left, s.Right = false, false, false, false
	for k, down := range s.held {
		if !down {
			continue
		}
		switch MovementDirection(Key(k)) {
		case DirectionForward:
			s.Forward = true
		case DirectionBackward:
			s.Backward = true
		case DirectionLeft:
			s.Left = true
		case DirectionRight:
			s.Right = true
		}
	}
}

// resetFrame clears everything that only lives for one frame.
func (s *Snapshot) resetFrame() {
	s.PointerDelta = mgl32.Vec2{}
	s.ScrollDelta = mgl32.Vec2{}
	s.PointerMoved = false
	s.CameraMoved = false
	s.Scrolled = false
	s.CloseRequested = false
	s.Events = nil
}
