// Package gui is the immediate-mode brush panel drawn over the terrain view.
package gui

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/trefoil/internal/engine/input"
)

// Modifiers is the modifier state as seen by the GUI.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// MacCmd is the Command key on macOS and always false elsewhere.
	MacCmd bool
	// Command is the platform shortcut modifier: MacCmd on macOS, Ctrl elsewhere.
	Command bool
}

// EventKind identifies a GUI event.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventPointerButton
	EventPointerMoved
	EventScroll
	EventText
)

// Button is a pointer button as seen by the GUI.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one GUI input event.
type Event struct {
	Kind      EventKind
	Key       Key
	Button    Button
	Pressed   bool
	Pos       mgl32.Vec2
	Delta     mgl32.Vec2
	Modifiers Modifiers
	Text      string
}

// Rect is an axis-aligned screen rectangle in logical pixels.
type Rect struct {
	Min, Max mgl32.Vec2
}

// RectXYWH builds a rectangle from its top-left corner and size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Min: mgl32.Vec2{x, y}, Max: mgl32.Vec2{x + w, y + h}}
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] < r.Max[0] && p[1] >= r.Min[1] && p[1] < r.Max[1]
}

// Width of the rectangle.
func (r Rect) Width() float32 { return r.Max[0] - r.Min[0] }

// Height of the rectangle.
func (r Rect) Height() float32 { return r.Max[1] - r.Min[1] }

// Packet is the per-frame input consumed by the GUI.
type Packet struct {
	Pointer      mgl32.Vec2
	PointerDelta mgl32.Vec2
	Events       []Event
	Modifiers    Modifiers
	ScrollDelta  mgl32.Vec2
	Time         float64
	ScreenRect   Rect
	ScaleFactor  float32
}

// HasKey reports whether the packet carries a press of k.
func (p *Packet) HasKey(k Key) bool {
	for _, ev := range p.Events {
		if ev.Kind == EventKey && ev.Key == k && ev.Pressed {
			return true
		}
	}
	return false
}

// ConvertModifiers maps semantic modifiers to the GUI form.
func ConvertModifiers(m input.Modifiers) Modifiers {
	return Modifiers{
		Alt:     m.Alt,
		Ctrl:    m.Ctrl,
		Shift:   m.Shift,
		MacCmd:  m.MacCmd(),
		Command: m.Command(),
	}
}

// BuildPacket converts a snapshot into a GUI packet. Events the GUI cannot
// represent, such as keys without a GUI name, are dropped.
func BuildPacket(s *input.Snapshot) Packet {
	p := Packet{
		Pointer:      s.Pointer,
		PointerDelta: s.PointerDelta,
		Modifiers:    ConvertModifiers(s.Modifiers),
		ScrollDelta:  s.ScrollDelta,
		Time:         s.Time,
		ScreenRect:   Rect{Max: s.ScreenSize},
		ScaleFactor:  s.ScaleFactor,
		Events:       make([]Event, 0, len(s.Events)),
	}

	for _, ev := range s.Events {
		switch ev.Type {
		case input.EventKey:
			k, ok := KeyFromInput(ev.Key)
			if !ok {
				continue
			}
			p.Events = append(p.Events, Event{
				Kind:      EventKey,
				Key:       k,
				Pressed:   ev.Pressed,
				Modifiers: ConvertModifiers(ev.Modifiers),
			})
		case input.EventButton:
			b, ok := convertButton(ev.Button)
			if !ok {
				continue
			}
			p.Events = append(p.Events, Event{
				Kind:      EventPointerButton,
				Button:    b,
				Pressed:   ev.Pressed,
				Pos:       ev.Position,
				Modifiers: ConvertModifiers(ev.Modifiers),
			})
		case input.EventPointerMoved:
			p.Events = append(p.Events, Event{Kind: EventPointerMoved, Pos: ev.Position})
		case input.EventScroll:
			p.Events = append(p.Events, Event{Kind: EventScroll, Delta: ev.Delta})
		case input.EventText:
			p.Events = append(p.Events, Event{Kind: EventText, Text: ev.Text})
		}
	}
	return p
}

func convertButton(b input.MouseButton) (Button, bool) {
	switch b {
	case input.MousePrimary:
		return ButtonPrimary, true
	case input.MouseSecondary:
		return ButtonSecondary, true
	case input.MouseMiddle:
		return ButtonMiddle, true
	}
	return 0, false
}
