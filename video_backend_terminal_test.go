// video_backend_terminal_test.go - Terminal video backend test suite for IntuitionChip

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

import (
	"strings"
	"testing"
	"time"
)

func renderTestFrame(draw func(vc *VideoChip)) []byte {
	vc := NewVideoChip()
	draw(vc)
	buf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	vc.RenderRGBA(buf)
	return buf
}

func TestDecodeFrameBitsRoundTrip(t *testing.T) {
	vc := NewVideoChip()
	vc.DrawSpriteRow(0, 0, 0xF0)
	vc.DrawSpriteRow(56, 31, 0x0F)
	buf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	vc.RenderRGBA(buf)

	rows := decodeFrameBits(buf)
	want := vc.Rows()
	for y := 0; y < DISPLAY_HEIGHT; y++ {
		if rows[y] != want[y] {
			t.Fatalf("row %d decoded as %016X, expected %016X", y, rows[y], want[y])
		}
	}
}

func TestDecodeFrameBitsCustomColours(t *testing.T) {
	// Decoding keys off the most frequent pixel value, not a fixed
	// palette, so any colour pair round-trips.
	vc := NewVideoChip()
	vc.SetColours(0xFFCC00FF, 0x102030FF)
	vc.DrawSpriteRow(4, 7, 0xA5)
	buf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	vc.RenderRGBA(buf)

	rows := decodeFrameBits(buf)
	if rows[7] != vc.Rows()[7] {
		t.Fatalf("row 7 decoded as %016X, expected %016X", rows[7], vc.Rows()[7])
	}
}

func TestRenderHalfBlocksGlyphs(t *testing.T) {
	// Row 0 on / row 1 off -> upper half-block; row 2 off / row 3 on ->
	// lower; rows 4 and 5 both on -> full block.
	buf := renderTestFrame(func(vc *VideoChip) {
		vc.DrawSpriteRow(0, 0, 0x80)
		vc.DrawSpriteRow(0, 3, 0x80)
		vc.DrawSpriteRow(0, 4, 0x80)
		vc.DrawSpriteRow(0, 5, 0x80)
	})

	lines := strings.Split(strings.TrimRight(renderHalfBlocks(buf), "\r\n"), "\r\n")
	if len(lines) != DISPLAY_HEIGHT/2 {
		t.Fatalf("rendered %d lines, expected %d", len(lines), DISPLAY_HEIGHT/2)
	}
	checks := []struct {
		line int
		want rune
	}{
		{0, '▀'},
		{1, '▄'},
		{2, '█'},
		{3, ' '},
	}
	for _, c := range checks {
		if r := []rune(lines[c.line])[0]; r != c.want {
			t.Fatalf("line %d column 0 = %q, expected %q", c.line, r, c.want)
		}
	}
}

func TestTerminalKeypadHoldDecay(t *testing.T) {
	out, err := NewTerminalOutput(nil)
	if err != nil {
		t.Fatalf("NewTerminalOutput failed: %v", err)
	}
	to := out.(*TerminalOutput)

	to.handleInputByte('x') // logical key 0
	snap := to.KeypadSnapshot()
	if !snap[0] {
		t.Fatalf("key 0 not held right after its byte")
	}
	for i := 1; i < NUM_KEYS; i++ {
		if snap[i] {
			t.Fatalf("key %X held without input", i)
		}
	}

	to.mutex.Lock()
	to.keyTimes[0] = time.Now().Add(-2 * TERMINAL_KEY_HOLD)
	to.mutex.Unlock()
	if to.KeypadSnapshot()[0] {
		t.Fatalf("key 0 still held after the hold window")
	}
}

func TestTerminalShellControlBytes(t *testing.T) {
	out, _ := NewTerminalOutput(nil)
	to := out.(*TerminalOutput)

	to.handleInputByte(' ')
	if !to.Paused() {
		t.Fatalf("space did not pause")
	}
	to.handleInputByte(' ')
	if to.Paused() {
		t.Fatalf("second space did not resume")
	}

	to.handleInputByte('+')
	to.handleInputByte('+')
	to.handleInputByte('-')
	if delta := to.TakeSpeedDelta(); delta != 1 {
		t.Fatalf("speed delta = %d, expected 1", delta)
	}
	if delta := to.TakeSpeedDelta(); delta != 0 {
		t.Fatalf("speed delta not consumed, second read = %d", delta)
	}
}
