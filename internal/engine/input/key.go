// Package input translates platform events into a per-frame input snapshot.
package input

import "fmt"

// Key is a platform-independent key identifier.
type Key uint8

const (
	KeyUnknown Key = iota

	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Numpad digits
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Top row digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// KeyCount is the number of defined keys.
	KeyCount
)

var keyNames = map[Key]string{
	KeyUnknown:    "Unknown",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
}

// String returns a readable key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyNum0 && k <= KeyNum9:
		return fmt.Sprintf("Num%d", k-KeyNum0)
	case k >= Key0 && k <= Key9:
		return fmt.Sprintf("Key%d", k-Key0)
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsFunction reports whether k is one of F1..F24.
func (k Key) IsFunction() bool {
	return k >= KeyF1 && k <= KeyF24
}

// Direction is a camera-relative movement direction.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
	DirectionLeft
	DirectionRight
)

// MovementDirection returns the movement direction bound to k.
// WASD and the arrow keys are bound.
func MovementDirection(k Key) Direction {
	switch k {
	case KeyW, KeyArrowUp:
		return DirectionForward
	case KeyS, KeyArrowDown:
		return DirectionBackward
	case KeyA, KeyArrowLeft:
		return DirectionLeft
	case KeyD, KeyArrowRight:
		return DirectionRight
	}
	return DirectionNone
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseUnknown MouseButton = iota
	MousePrimary
	MouseSecondary
	MouseMiddle
)

// String returns a readable button name.
func (b MouseButton) String() string {
	switch b {
	case MousePrimary:
		return "Primary"
	case MouseSecondary:
		return "Secondary"
	case MouseMiddle:
		return "Middle"
	}
	return "Unknown"
}

// Modifiers is the state of the modifier keys.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// Logo is the Windows key or Command on macOS.
	Logo bool
}

// Command reports the platform command modifier: Logo on macOS, Ctrl elsewhere.
func (m Modifiers) Command() bool {
	if isMac {
		return m.Logo
	}
	return m.Ctrl
}

// MacCmd reports whether the macOS Command key is held.
func (m Modifiers) MacCmd() bool {
	return isMac && m.Logo
}
