// video_chip_test.go - Video chip test suite for IntuitionChip

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

import "testing"

func TestDrawSpriteRowPlacement(t *testing.T) {
	vc := NewVideoChip()
	if collided := vc.DrawSpriteRow(0, 0, 0xFF); collided {
		t.Fatalf("draw on blank row reported collision")
	}
	rows := vc.Rows()
	if rows[0] != 0xFF<<56 {
		t.Fatalf("row 0 = %016X, expected FF00000000000000", rows[0])
	}

	vc.Clear()
	vc.DrawSpriteRow(56, 3, 0xFF)
	rows = vc.Rows()
	if rows[3] != 0xFF {
		t.Fatalf("row 3 = %016X, expected 00000000000000FF", rows[3])
	}
}

func TestDrawSpriteRowXORAndCollision(t *testing.T) {
	vc := NewVideoChip()
	if vc.DrawSpriteRow(8, 5, 0xA5) {
		t.Fatalf("first draw: collided = true, expected false")
	}
	if !vc.DrawSpriteRow(8, 5, 0xA5) {
		t.Fatalf("second identical draw: collided = false, expected true")
	}
	if rows := vc.Rows(); rows[5] != 0 {
		t.Fatalf("row 5 = %016X after XOR erase, expected 0", rows[5])
	}

	// Overlap on a single pixel is still a collision.
	vc.Clear()
	vc.DrawSpriteRow(0, 1, 0x01)
	if !vc.DrawSpriteRow(7, 1, 0x80) {
		t.Fatalf("single-pixel overlap not reported as collision")
	}
}

func TestDrawSpriteRowClipsRight(t *testing.T) {
	// At x=60 only the leftmost 4 sprite pixels stay on screen; no
	// wraparound to the left edge.
	vc := NewVideoChip()
	vc.DrawSpriteRow(60, 0, 0xFF)
	rows := vc.Rows()
	if rows[0] != 0x0F {
		t.Fatalf("row 0 = %016X, expected 000000000000000F (clipped)", rows[0])
	}

	vc.Clear()
	vc.DrawSpriteRow(63, 2, 0xFF)
	rows = vc.Rows()
	if rows[2] != 0x01 {
		t.Fatalf("row 2 = %016X, expected 1 (one pixel survives at x=63)", rows[2])
	}
}

func TestDrawSpriteRowBelowScreenIsNoOp(t *testing.T) {
	vc := NewVideoChip()
	if vc.DrawSpriteRow(0, DISPLAY_HEIGHT, 0xFF) {
		t.Fatalf("off-screen draw reported collision")
	}
	for y, row := range vc.Rows() {
		if row != 0 {
			t.Fatalf("row %d = %016X after off-screen draw, expected 0", y, row)
		}
	}
}

func TestClearZeroesAllRows(t *testing.T) {
	vc := NewVideoChip()
	for y := byte(0); y < DISPLAY_HEIGHT; y++ {
		vc.DrawSpriteRow(0, y, 0xFF)
	}
	vc.Clear()
	for y, row := range vc.Rows() {
		if row != 0 {
			t.Fatalf("row %d = %016X after Clear, expected 0", y, row)
		}
	}
}

func TestRenderRGBAMapsColours(t *testing.T) {
	vc := NewVideoChip()
	vc.SetColours(0x11223344, 0x55667788)
	vc.DrawSpriteRow(0, 0, 0x80) // top-left pixel on

	buf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	vc.RenderRGBA(buf)

	if buf[0] != 0x11 || buf[1] != 0x22 || buf[2] != 0x33 || buf[3] != 0x44 {
		t.Fatalf("on pixel = %02X%02X%02X%02X, expected 11223344",
			buf[0], buf[1], buf[2], buf[3])
	}
	if buf[4] != 0x55 || buf[5] != 0x66 || buf[6] != 0x77 || buf[7] != 0x88 {
		t.Fatalf("off pixel = %02X%02X%02X%02X, expected 55667788",
			buf[4], buf[5], buf[6], buf[7])
	}
}
