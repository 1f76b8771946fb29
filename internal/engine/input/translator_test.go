package input

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestTranslator() *Translator {
	return NewTranslator(epoch, 800, 600, 1)
}

func TestRenewRoundTrip(t *testing.T) {
	tr := newTestTranslator()

	tr.Handle(KeyEvent(KeyW, true))
	first := tr.Renew(epoch.Add(16 * time.Millisecond))
	if !first.Forward {
		t.Fatal("Forward should be held in first snapshot")
	}
	if len(first.Events) != 1 {
		t.Fatalf("first snapshot has %d events, want 1", len(first.Events))
	}

	tr.Handle(ButtonEvent(MousePrimary, true))
	tr.Handle(ScrollEvent(0, 2))
	second := tr.Renew(epoch.Add(32 * time.Millisecond))

	if len(second.Events) != 2 {
		t.Fatalf("second snapshot has %d events, want 2", len(second.Events))
	}
	if second.Events[0].Type != EventButton || second.Events[1].Type != EventScroll {
		t.Errorf("events out of order: %v, %v", second.Events[0].Type, second.Events[1].Type)
	}
	if !second.Forward {
		t.Error("held key should persist across Renew")
	}
	if !second.held[KeyW] {
		t.Error("KeyW should stay held across Renew")
	}
	if !second.Buttons.Primary {
		t.Error("primary button should be held")
	}

	third := tr.Renew(epoch.Add(48 * time.Millisecond))
	if len(third.Events) != 0 {
		t.Errorf("third snapshot has %d events, want 0", len(third.Events))
	}
	if third.Scrolled || third.ScrollDelta != (mgl32.Vec2{}) {
		t.Error("scroll should reset after Renew")
	}
	if !third.Buttons.Primary || !third.Forward {
		t.Error("held state lost after second Renew")
	}
}

func TestRenewTiming(t *testing.T) {
	tr := newTestTranslator()
	s := tr.Renew(epoch.Add(500 * time.Millisecond))
	if abs(s.DeltaTime-0.5) > 1e-6 {
		t.Errorf("DeltaTime = %v, want 0.5", s.DeltaTime)
	}
	s = tr.Renew(epoch.Add(750 * time.Millisecond))
	if abs(s.DeltaTime-0.25) > 1e-6 {
		t.Errorf("DeltaTime = %v, want 0.25", s.DeltaTime)
	}
	if s.Time != 0.75 {
		t.Errorf("Time = %v, want 0.75", s.Time)
	}
}

func TestFirstSnapshotMarksCameraMoved(t *testing.T) {
	tr := newTestTranslator()
	if s := tr.Renew(epoch); !s.CameraMoved {
		t.Error("first snapshot should report CameraMoved")
	}
	if s := tr.Renew(epoch); s.CameraMoved {
		t.Error("second snapshot should not report CameraMoved")
	}
	tr.Handle(Event{Type: EventResized, Width: 1024, Height: 768})
	if s := tr.Renew(epoch); !s.CameraMoved {
		t.Error("resize should report CameraMoved")
	}
}

func TestPointerScaling(t *testing.T) {
	tr := NewTranslator(epoch, 1600, 1200, 2)
	tr.Handle(PointerMovedEvent(400, 300))
	s := tr.Renew(epoch)

	if s.Pointer != (mgl32.Vec2{200, 150}) {
		t.Errorf("Pointer = %v, want [200 150]", s.Pointer)
	}
	if !s.PointerMoved {
		t.Error("PointerMoved should be set")
	}
	if s.ScreenSize != (mgl32.Vec2{800, 600}) {
		t.Errorf("ScreenSize = %v, want [800 600]", s.ScreenSize)
	}
	if s.Events[0].Position != s.Pointer {
		t.Errorf("event position = %v, want logical %v", s.Events[0].Position, s.Pointer)
	}
}

func TestScrollScaling(t *testing.T) {
	tr := NewTranslator(epoch, 800, 600, 2)
	tr.Handle(ScrollEvent(0, 4))
	tr.Handle(ScrollEvent(0, 2))
	s := tr.Renew(epoch)
	if s.ScrollDelta.Y() != 3 {
		t.Errorf("ScrollDelta.Y = %v, want 3", s.ScrollDelta.Y())
	}
	if !s.Scrolled {
		t.Error("Scrolled should be set")
	}
}

func TestPointerDeltaGating(t *testing.T) {
	tests := []struct {
		name       string
		freeCamera bool
		focused    bool
		want       mgl32.Vec2
	}{
		{"free and focused", true, true, mgl32.Vec2{5, -3}},
		{"not free", false, true, mgl32.Vec2{}},
		{"free but unfocused", true, false, mgl32.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTranslator()
			tr.SetFreeCamera(tt.freeCamera)
			tr.Handle(Event{Type: EventFocus, Focused: tt.focused})
			tr.Handle(MotionEvent(2, -1))
			tr.Handle(MotionEvent(3, -2))
			s := tr.Renew(epoch)
			if s.PointerDelta != tt.want {
				t.Errorf("PointerDelta = %v, want %v", s.PointerDelta, tt.want)
			}
		})
	}
}

func TestPointerDeltaScaling(t *testing.T) {
	for _, scale := range []float32{1, 1.5, 2} {
		tr := NewTranslator(epoch, 800, 600, scale)
		tr.SetFreeCamera(true)
		tr.Handle(MotionEvent(6*scale, -3*scale))
		if s := tr.Renew(epoch); s.PointerDelta != (mgl32.Vec2{6, -3}) {
			t.Errorf("scale %v: PointerDelta = %v, want [6 -3]", scale, s.PointerDelta)
		}
	}
}

func TestPointerDeltaZeroedOnRenew(t *testing.T) {
	tr := newTestTranslator()
	tr.SetFreeCamera(true)
	tr.Handle(MotionEvent(4, 4))
	tr.Renew(epoch)
	if s := tr.Renew(epoch); s.PointerDelta != (mgl32.Vec2{}) {
		t.Errorf("PointerDelta = %v after renew, want zero", s.PointerDelta)
	}
}

func TestFocusLostClearsModifiers(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(Event{Type: EventModifiers, Modifiers: Modifiers{Ctrl: true, Shift: true}})
	if s := tr.Renew(epoch); !s.Modifiers.Ctrl || !s.Modifiers.Shift {
		t.Fatal("modifiers not applied")
	}
	tr.Handle(Event{Type: EventFocus, Focused: false})
	s := tr.Renew(epoch)
	if s.Modifiers != (Modifiers{}) {
		t.Errorf("modifiers = %+v after focus loss, want none", s.Modifiers)
	}
	if s.Focused {
		t.Error("Focused should be false")
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		key Key
		dir Direction
	}{
		{KeyW, DirectionForward},
		{KeyArrowUp, DirectionForward},
		{KeyS, DirectionBackward},
		{KeyA, DirectionLeft},
		{KeyD, DirectionRight},
		{KeyArrowRight, DirectionRight},
	}
	for _, tt := range tests {
		tr := newTestTranslator()
		tr.Handle(KeyEvent(tt.key, true))
		if s := tr.Renew(epoch); !s.Moving(tt.dir) {
			t.Errorf("%v: Moving(%v) = false, want true", tt.key, tt.dir)
		}
		tr.Handle(KeyEvent(tt.key, false))
		if s := tr.Renew(epoch); s.Moving(tt.dir) {
			t.Errorf("%v: still moving after release", tt.key)
		}
	}
}

func TestMovementKeysShareDirection(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(KeyEvent(KeyW, true))
	tr.Handle(KeyEvent(KeyArrowUp, true))
	tr.Handle(KeyEvent(KeyW, false))
	if s := tr.Renew(epoch); !s.Forward {
		t.Error("Forward released while ArrowUp still held")
	}
}

func TestUnknownKeyKeptButNotHeld(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(KeyEvent(KeyUnknown, true))
	s := tr.Renew(epoch)
	if len(s.Events) != 1 || s.Events[0].Key != KeyUnknown {
		t.Fatalf("unknown key event dropped: %+v", s.Events)
	}
	if s.held[KeyUnknown] || s.Forward || s.Backward || s.Left || s.Right {
		t.Error("unknown key should not be held")
	}
}

func TestUnknownButtonIgnored(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(ButtonEvent(MouseUnknown, true))
	s := tr.Renew(epoch)
	if len(s.Events) != 0 {
		t.Errorf("unknown button produced %d events", len(s.Events))
	}
	if s.Buttons != (Buttons{}) {
		t.Errorf("Buttons = %+v, want none", s.Buttons)
	}
}

func TestResizeUpdatesScreenSize(t *testing.T) {
	tr := newTestTranslator()
	tr.Renew(epoch)
	tr.Handle(Event{Type: EventResized, Width: 1024, Height: 768})
	s := tr.Renew(epoch)
	if s.ScreenSize != (mgl32.Vec2{1024, 768}) {
		t.Errorf("ScreenSize = %v", s.ScreenSize)
	}
	if !s.CameraMoved {
		t.Error("resize should mark camera moved")
	}
}

func TestCloseRequested(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(Event{Type: EventCloseRequested})
	if s := tr.Renew(epoch); !s.CloseRequested {
		t.Error("CloseRequested not set")
	}
}

func TestTextFiltering(t *testing.T) {
	tr := newTestTranslator()
	tr.Handle(Event{Type: EventText, Text: "a"})
	tr.Handle(Event{Type: EventText, Text: "\x08"})
	tr.Handle(Event{Type: EventText, Text: string(rune(0xf700))})
	s := tr.Renew(epoch)
	if len(s.Events) != 1 || s.Events[0].Text != "a" {
		t.Errorf("Events = %+v, want only \"a\"", s.Events)
	}
}

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Ж', true},
		{' ', true},
		{'\n', false},
		{0x7f, false},
		{0xe000, false},
		{0xf8ff, false},
		{0xf0000, false},
		{0x10fffd, false},
	}
	for _, tt := range tests {
		if got := IsPrintable(tt.r); got != tt.want {
			t.Errorf("IsPrintable(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUnknown, "Unknown"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key7, "Key7"},
		{KeyNum3, "Num3"},
		{KeyF1, "F1"},
		{KeyF24, "F24"},
		{KeyPageDown, "PageDown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCommandModifier(t *testing.T) {
	m := Modifiers{Ctrl: true}
	if isMac {
		if m.Command() {
			t.Error("Ctrl is not Command on macOS")
		}
	} else if !m.Command() {
		t.Error("Ctrl should be Command")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
