// video_chip.go - Video chip for IntuitionChip

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

const (
	DISPLAY_WIDTH  = 64
	DISPLAY_HEIGHT = 32
	SPRITE_WIDTH   = 8

	// Default presentation colours, 0xRRGGBBAA. The row bitmasks are
	// the chip's real output; colours only exist for the backends.
	COLOUR_ON_DEFAULT  = 0xFFFFFFFF
	COLOUR_OFF_DEFAULT = 0x000000FF
)

type VideoChip struct {
	/*
		VideoChip implements the monochrome bitmap display: 32 rows of
		64 pixels, one uint64 bitmask per row with bit 63 as the
		leftmost pixel. Sprites composite by XOR; a draw that clears a
		previously-set pixel reports a collision.

		Sprite rows clip at the screen edges rather than wrapping. The
		CPU wraps the sprite origin (VX mod 64, VY mod 32) before
		drawing; the chip itself never wraps.
	*/

	rows      [DISPLAY_HEIGHT]uint64
	colourOn  uint32
	colourOff uint32
}

func NewVideoChip() *VideoChip {
	return &VideoChip{
		colourOn:  COLOUR_ON_DEFAULT,
		colourOff: COLOUR_OFF_DEFAULT,
	}
}

// Clear zeroes all 32 rows.
func (vc *VideoChip) Clear() {
	for i := range vc.rows {
		vc.rows[i] = 0
	}
}

// DrawSpriteRow XORs one 8-pixel sprite row into the display at column
// x, row y. Rows at y >= 32 are dropped entirely. Horizontally the
// pattern is shifted into position within the 64-bit row; pixels that
// would pass column 63 are clipped, not wrapped. Returns true iff the
// draw cleared at least one previously-set pixel.
func (vc *VideoChip) DrawSpriteRow(x, y byte, pattern byte) bool {
	if y >= DISPLAY_HEIGHT {
		return false
	}

	var mask uint64
	if x <= DISPLAY_WIDTH-SPRITE_WIDTH {
		mask = uint64(pattern) << (DISPLAY_WIDTH - SPRITE_WIDTH - x)
	} else {
		// Right-edge clip: the overhanging pixels are dropped.
		mask = uint64(pattern) >> (x - (DISPLAY_WIDTH - SPRITE_WIDTH))
	}

	collided := vc.rows[y]&mask != 0
	vc.rows[y] ^= mask
	return collided
}

// Rows returns a copy of the row bitmasks for presentation code.
func (vc *VideoChip) Rows() [DISPLAY_HEIGHT]uint64 {
	return vc.rows
}

// SetColours configures the two presentation colours (0xRRGGBBAA).
func (vc *VideoChip) SetColours(on, off uint32) {
	vc.colourOn = on
	vc.colourOff = off
}

// RenderRGBA expands the row bitmasks into a 64x32 RGBA pixel buffer
// for a VideoOutput backend. The buffer must hold
// DISPLAY_WIDTH*DISPLAY_HEIGHT*4 bytes.
func (vc *VideoChip) RenderRGBA(buf []byte) {
	i := 0
	for y := 0; y < DISPLAY_HEIGHT; y++ {
		row := vc.rows[y]
		for bit := DISPLAY_WIDTH - 1; bit >= 0; bit-- {
			colour := vc.colourOff
			if row&(1<<uint(bit)) != 0 {
				colour = vc.colourOn
			}
			buf[i] = byte(colour >> 24)
			buf[i+1] = byte(colour >> 16)
			buf[i+2] = byte(colour >> 8)
			buf[i+3] = byte(colour)
			i += 4
		}
	}
}
