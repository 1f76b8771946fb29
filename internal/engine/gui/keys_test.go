package gui

import (
	"testing"

	"github.com/Faultbox/trefoil/internal/engine/input"
)

func TestKeyFromInput(t *testing.T) {
	tests := []struct {
		in   input.Key
		want Key
		ok   bool
	}{
		{input.KeyA, KeyA, true},
		{input.KeyZ, KeyZ, true},
		{input.Key0, KeyNum0, true},
		{input.Key7, KeyNum7, true},
		{input.KeyNum0, KeyNum0, true},
		{input.KeyNum9, KeyNum9, true},
		{input.KeyEscape, KeyEscape, true},
		{input.KeyArrowUp, KeyArrowUp, true},
		{input.KeyPageDown, KeyPageDown, true},
		{input.KeyF1, 0, false},
		{input.KeyF24, 0, false},
		{input.KeyUnknown, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := KeyFromInput(tt.in)
			if ok != tt.ok {
				t.Fatalf("KeyFromInput(%v) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("KeyFromInput(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyFromInputCoversEveryNonFunctionKey(t *testing.T) {
	for k := input.Key(1); k < input.KeyCount; k++ {
		_, ok := KeyFromInput(k)
		if k.IsFunction() && ok {
			t.Errorf("%v should not map", k)
		}
		if !k.IsFunction() && !ok {
			t.Errorf("%v should map", k)
		}
	}
}
