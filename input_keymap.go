// input_keymap.go - Keypad mapping for IntuitionChip

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionChip
License: GPLv3 or later
*/

package main

import "github.com/hajimehoshi/ebiten/v2"

// Keymap identifiers accepted on the command line.
const (
	KEYMAP_COSMAC_ELF = "cosmac"
	KEYMAP_DREAM_6800 = "dream"
)

type KeyMapper struct {
	/*
		KeyMapper owns the physical-key-to-logical-key mapping for the
		16-key input matrix. The interpreter core only ever sees the
		logical [16]bool snapshot; which host keys produce it is
		entirely a backend concern.
	*/

	keys [NUM_KEYS]ebiten.Key
}

// cosmacElfKeys maps the keypad in COSMAC ELF order: logical key 0 on
// X, 1-3 on the number row, and so on down the left of a QWERTY board.
var cosmacElfKeys = [NUM_KEYS]ebiten.Key{
	ebiten.KeyX,
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// dream6800Keys maps the keypad as a plain 4x4 grid over 1234/QWER/
// ASDF/ZXCV.
var dream6800Keys = [NUM_KEYS]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// NewKeyMapper returns the named layout, defaulting to COSMAC ELF for
// unknown names.
func NewKeyMapper(name string) *KeyMapper {
	km := &KeyMapper{keys: cosmacElfKeys}
	if name == KEYMAP_DREAM_6800 {
		km.keys = dream6800Keys
	}
	return km
}

// Key returns the physical key bound to logical keypad index i.
func (km *KeyMapper) Key(i int) ebiten.Key {
	return km.keys[i%NUM_KEYS]
}

// terminalKeyBytes maps raw stdin bytes to logical keypad indices for
// the terminal backend, mirroring the COSMAC ELF layout. -1 marks
// bytes with no binding.
var terminalKeyBytes [256]int

func init() {
	for i := range terminalKeyBytes {
		terminalKeyBytes[i] = -1
	}
	layout := []byte{'x', '1', '2', '3', 'q', 'w', 'e', 'a', 's', 'd', 'z', 'c', '4', 'r', 'f', 'v'}
	for logical, b := range layout {
		terminalKeyBytes[b] = logical
		// Accept the shifted/upper-case form too.
		if b >= 'a' && b <= 'z' {
			terminalKeyBytes[b-'a'+'A'] = logical
		}
	}
}
