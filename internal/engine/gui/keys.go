package gui

import "github.com/Faultbox/trefoil/internal/engine/input"

// Key is the key set understood by the GUI layer. It is narrower than
// input.Key: top row and numpad digits collapse into one range and
// function keys have no GUI meaning.
type Key uint8

const (
	KeyArrowDown Key = iota
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
)

var namedKeys = map[input.Key]Key{
	input.KeyArrowDown:  KeyArrowDown,
	input.KeyArrowLeft:  KeyArrowLeft,
	input.KeyArrowRight: KeyArrowRight,
	input.KeyArrowUp:    KeyArrowUp,
	input.KeyEscape:     KeyEscape,
	input.KeyTab:        KeyTab,
	input.KeyBackspace:  KeyBackspace,
	input.KeyEnter:      KeyEnter,
	input.KeySpace:      KeySpace,
	input.KeyInsert:     KeyInsert,
	input.KeyDelete:     KeyDelete,
	input.KeyHome:       KeyHome,
	input.KeyEnd:        KeyEnd,
	input.KeyPageUp:     KeyPageUp,
	input.KeyPageDown:   KeyPageDown,
}

// KeyFromInput maps a semantic key to its GUI equivalent. The second
// result is false for keys the GUI has no name for.
func KeyFromInput(k input.Key) (Key, bool) {
	switch {
	case k.IsFunction():
		return 0, false
	case k >= input.KeyNum0 && k <= input.KeyNum9:
		return KeyNum0 + Key(k-input.KeyNum0), true
	case k >= input.Key0 && k <= input.Key9:
		return KeyNum0 + Key(k-input.Key0), true
	case k >= input.KeyA && k <= input.KeyZ:
		return KeyA + Key(k-input.KeyA), true
	}
	g, ok := namedKeys[k]
	return g, ok
}
