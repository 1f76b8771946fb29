package input

import "github.com/go-gl/mathgl/mgl32"

// EventType identifies the kind of platform event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventPointerMoved
	EventPointerMotion
	EventButton
	EventScroll
	EventModifiers
	EventFocus
	EventScaleFactor
	EventResized
	EventCloseRequested
	EventText
)

var eventTypeNames = [...]string{
	EventNone:           "None",
	EventKey:            "Key",
	EventPointerMoved:   "PointerMoved",
	EventPointerMotion:  "PointerMotion",
	EventButton:         "Button",
	EventScroll:         "Scroll",
	EventModifiers:      "Modifiers",
	EventFocus:          "Focus",
	EventScaleFactor:    "ScaleFactor",
	EventResized:        "Resized",
	EventCloseRequested: "CloseRequested",
	EventText:           "Text",
}

func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Invalid"
}

// Event is a platform event after key and button codes have been mapped.
//
// Positions arrive in physical pixels and are stored in logical pixels
// once the Translator has handled them. Width and Height are physical.
type Event struct {
	Type        EventType
	Key         Key
	Pressed     bool
	Button      MouseButton
	Position    mgl32.Vec2
	Delta       mgl32.Vec2
	Modifiers   Modifiers
	Focused     bool
	ScaleFactor float32
	Width       int
	Height      int
	Text        string
}

// KeyEvent builds a key press or release event.
// Modifiers are filled in from the translator state.
func KeyEvent(k Key, pressed bool) Event {
	return Event{Type: EventKey, Key: k, Pressed: pressed}
}

// ButtonEvent builds a pointer button event.
func ButtonEvent(b MouseButton, pressed bool) Event {
	return Event{Type: EventButton, Button: b, Pressed: pressed}
}

// PointerMovedEvent builds a cursor position event in physical pixels.
func PointerMovedEvent(x, y float32) Event {
	return Event{Type: EventPointerMoved, Position: mgl32.Vec2{x, y}}
}

// MotionEvent builds a raw device motion event.
func MotionEvent(dx, dy float32) Event {
	return Event{Type: EventPointerMotion, Delta: mgl32.Vec2{dx, dy}}
}

// ScrollEvent builds a scroll event.
func ScrollEvent(dx, dy float32) Event {
	return Event{Type: EventScroll, Delta: mgl32.Vec2{dx, dy}}
}
