package main

import "github.com/retrospec-go/spectrum48/internal/keyboard"

// hostKeyToSpectrum maps a single ASCII byte read from a raw-mode
// terminal to the Spectrum key it should press. Lower-case letters,
// digits, space and newline (ENTER) map directly; no other bytes are
// mapped, so SHIFT and SYMBOL SHIFT combinations cannot be typed.
var hostKeyToSpectrum = map[byte]keyboard.Key{
	'0': keyboard.Key0, '1': keyboard.Key1, '2': keyboard.Key2, '3': keyboard.Key3, '4': keyboard.Key4,
	'5': keyboard.Key5, '6': keyboard.Key6, '7': keyboard.Key7, '8': keyboard.Key8, '9': keyboard.Key9,
	'a': keyboard.KeyA, 'b': keyboard.KeyB, 'c': keyboard.KeyC, 'd': keyboard.KeyD, 'e': keyboard.KeyE,
	'f': keyboard.KeyF, 'g': keyboard.KeyG, 'h': keyboard.KeyH, 'i': keyboard.KeyI, 'j': keyboard.KeyJ,
	'k': keyboard.KeyK, 'l': keyboard.KeyL, 'm': keyboard.KeyM, 'n': keyboard.KeyN, 'o': keyboard.KeyO,
	'p': keyboard.KeyP, 'q': keyboard.KeyQ, 'r': keyboard.KeyR, 's': keyboard.KeyS, 't': keyboard.KeyT,
	'u': keyboard.KeyU, 'v': keyboard.KeyV, 'w': keyboard.KeyW, 'x': keyboard.KeyX, 'y': keyboard.KeyY,
	'z': keyboard.KeyZ,
	' ': keyboard.KeySpace, '\n': keyboard.KeyEnter,
}
