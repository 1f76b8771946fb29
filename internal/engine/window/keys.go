package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trefoil/internal/engine/input"
)

var keycodes = map[sdl.Keycode]input.Key{
	sdl.K_DOWN:      input.KeyArrowDown,
	sdl.K_LEFT:      input.KeyArrowLeft,
	sdl.K_RIGHT:     input.KeyArrowRight,
	sdl.K_UP:        input.KeyArrowUp,
	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_KP_ENTER:  input.KeyEnter,
	sdl.K_SPACE:     input.KeySpace,
	sdl.K_INSERT:    input.KeyInsert,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
	sdl.K_PAGEUP:    input.KeyPageUp,
	sdl.K_PAGEDOWN:  input.KeyPageDown,

	// SDL orders the keypad 1..9 then 0
	sdl.K_KP_0: input.KeyNum0,
	sdl.K_KP_1: input.KeyNum1,
	sdl.K_KP_2: input.KeyNum2,
	sdl.K_KP_3: input.KeyNum3,
	sdl.K_KP_4: input.KeyNum4,
	sdl.K_KP_5: input.KeyNum5,
	sdl.K_KP_6: input.KeyNum6,
	sdl.K_KP_7: input.KeyNum7,
	sdl.K_KP_8: input.KeyNum8,
	sdl.K_KP_9: input.KeyNum9,

	sdl.K_F1:  input.KeyF1,
	sdl.K_F2:  input.KeyF2,
	sdl.K_F3:  input.KeyF3,
	sdl.K_F4:  input.KeyF4,
	sdl.K_F5:  input.KeyF5,
	sdl.K_F6:  input.KeyF6,
	sdl.K_F7:  input.KeyF7,
	sdl.K_F8:  input.KeyF8,
	sdl.K_F9:  input.KeyF9,
	sdl.K_F10: input.KeyF10,
	sdl.K_F11: input.KeyF11,
	sdl.K_F12: input.KeyF12,
	sdl.K_F13: input.KeyF13,
	sdl.K_F14: input.KeyF14,
	sdl.K_F15: input.KeyF15,
	sdl.K_F16: input.KeyF16,
	sdl.K_F17: input.KeyF17,
	sdl.K_F18: input.KeyF18,
	sdl.K_F19: input.KeyF19,
	sdl.K_F20: input.KeyF20,
	sdl.K_F21: input.KeyF21,
	sdl.K_F22: input.KeyF22,
	sdl.K_F23: input.KeyF23,
	sdl.K_F24: input.KeyF24,
}

// KeyFromSDL maps an SDL keycode to a semantic key. Keycodes without an
// entry map to input.KeyUnknown.
func KeyFromSDL(code sdl.Keycode) input.Key {
	// letters and top row digits are their ASCII values
	switch {
	case code >= sdl.K_a && code <= sdl.K_z:
		return input.KeyA + input.Key(code-sdl.K_a)
	case code >= sdl.K_0 && code <= sdl.K_9:
		return input.Key0 + input.Key(code-sdl.K_0)
	}
	if k, ok := keycodes[code]; ok {
		return k
	}
	return input.KeyUnknown
}

// ModifiersFromSDL converts an SDL modifier mask.
func ModifiersFromSDL(mod sdl.Keymod) input.Modifiers {
	return input.Modifiers{
		Alt:   mod&sdl.KMOD_ALT != 0,
		Ctrl:  mod&sdl.KMOD_CTRL != 0,
		Shift: mod&sdl.KMOD_SHIFT != 0,
		Logo:  mod&sdl.KMOD_GUI != 0,
	}
}

// ButtonFromSDL maps an SDL mouse button index.
func ButtonFromSDL(b uint8) input.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.MousePrimary
	case sdl.BUTTON_RIGHT:
		return input.MouseSecondary
	case sdl.BUTTON_MIDDLE:
		return input.MouseMiddle
	}
	return input.MouseUnknown
}
