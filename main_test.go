// main_test.go - Shell helper test suite for IntuitionChip

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
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"FFCC00", 0xFFCC00FF},
		{"#FFCC00", 0xFFCC00FF},
		{"000000", 0x000000FF},
		{"ffffff", 0xFFFFFFFF},
		{"", 0x12345678},      // fallback
		{"FFCC0", 0x12345678}, // too short
		{"GGGGGG", 0x12345678},
	}
	for _, tt := range tests {
		if got := parseColour(tt.in, 0x12345678); got != tt.want {
			t.Errorf("parseColour(%q) = %08X, expected %08X", tt.in, got, tt.want)
		}
	}
}

func TestClampTicks(t *testing.T) {
	if got := clampTicks(0); got != MIN_TICKS_PER_FRAME {
		t.Fatalf("clampTicks(0) = %d, expected %d", got, MIN_TICKS_PER_FRAME)
	}
	if got := clampTicks(MAX_TICKS_PER_FRAME + 1); got != MAX_TICKS_PER_FRAME {
		t.Fatalf("clampTicks over max = %d, expected %d", got, MAX_TICKS_PER_FRAME)
	}
	if got := clampTicks(DEFAULT_TICKS_PER_FRAME); got != DEFAULT_TICKS_PER_FRAME {
		t.Fatalf("clampTicks(default) = %d, changed a valid value", got)
	}
}

func TestScreenTextDump(t *testing.T) {
	vc := NewVideoChip()
	vc.DrawSpriteRow(0, 0, 0xC0)
	buf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	vc.RenderRGBA(buf)

	dump := screenTextDump(buf)
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != DISPLAY_HEIGHT {
		t.Fatalf("dump has %d lines, expected %d", len(lines), DISPLAY_HEIGHT)
	}
	first := []rune(lines[0])
	if len(first) != DISPLAY_WIDTH {
		t.Fatalf("line width = %d runes, expected %d", len(first), DISPLAY_WIDTH)
	}
	if first[0] != '█' || first[1] != '█' || first[2] != ' ' {
		t.Fatalf("line 0 starts %q, expected two blocks then space", string(first[:3]))
	}
	for _, line := range lines[1:] {
		if strings.ContainsRune(line, '█') {
			t.Fatalf("lit pixel outside row 0")
		}
	}
}
