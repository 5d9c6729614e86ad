// machine_test.go - Machine test suite for IntuitionChip

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

func TestNewMachinePowerOnState(t *testing.T) {
	m := NewMachine()
	if m.CPU.PC != PROGRAM_BASE {
		t.Fatalf("PC = %04X, expected %04X", m.CPU.PC, PROGRAM_BASE)
	}
	if m.Bus.ReadByte(FONT_BASE) != 0xF0 {
		t.Fatalf("font not loaded at power-on")
	}
	for y, row := range m.Video.Rows() {
		if row != 0 {
			t.Fatalf("display row %d not clear at power-on", y)
		}
	}
}

func TestLoadProgramYieldsFreshMachine(t *testing.T) {
	m := NewMachine()
	m.LoadProgram([]byte{0x60, 0x42}) // V0 = 42
	if err := m.CPU.ExecuteBatch(1); err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	m.CPU.delayTimer = 7
	m.Video.DrawSpriteRow(0, 0, 0xFF)

	m.LoadProgram([]byte{0x61, 0x07})
	if m.CPU.V[0] != 0 {
		t.Fatalf("registers survived reload: V0 = %02X", m.CPU.V[0])
	}
	if m.CPU.PC != PROGRAM_BASE {
		t.Fatalf("PC = %04X after reload, expected %04X", m.CPU.PC, PROGRAM_BASE)
	}
	if m.CPU.DelayTimer() != 0 {
		t.Fatalf("timers survived reload")
	}
	if rows := m.Video.Rows(); rows[0] != 0 {
		t.Fatalf("display survived reload")
	}
	if m.Bus.ReadByte(PROGRAM_BASE) != 0x61 {
		t.Fatalf("new image not loaded")
	}
}

// TestFontDrawProgram runs a small program end to end: point I at
// glyph 0, draw it, and check the glyph's shape on the display.
func TestFontDrawProgram(t *testing.T) {
	m := newTestMachine(t,
		0x6000, // V0 = 0
		0xF029, // I = glyph address for V0
		0xD005, // draw 5 rows at (0,0)
	)
	if err := m.CPU.ExecuteBatch(3); err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	rows := m.Video.Rows()
	wantTop := uint64(0xF0) << 56
	wantSide := uint64(0x90) << 56
	if rows[0] != wantTop || rows[4] != wantTop {
		t.Fatalf("glyph 0 bars: rows 0/4 = %016X/%016X, expected %016X", rows[0], rows[4], wantTop)
	}
	for y := 1; y <= 3; y++ {
		if rows[y] != wantSide {
			t.Fatalf("glyph 0 sides: row %d = %016X, expected %016X", y, rows[y], wantSide)
		}
	}
	if m.CPU.V[FLAG_REGISTER] != 0 {
		t.Fatalf("draw on blank screen set VF")
	}
}
