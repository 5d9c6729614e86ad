// debug_disasm_chip8.go - CHIP-8 disassembler for IntuitionChip

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

import "fmt"

// disassembleChip8 renders one opcode as diagnostic text. The format
// carries no schema guarantees; it exists for trace output only.
func disassembleChip8(opcode uint16) string {
	x := opcode >> 8 & 0xF
	y := opcode >> 4 & 0xF
	n := opcode & 0xF
	nn := opcode & 0xFF
	nnn := opcode & 0xFFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode & 0x0FFF {
		case 0x0E0:
			return "00E0 CLS"
		case 0x0EE:
			return "00EE RET"
		}
		return fmt.Sprintf("0%03X SYS (ignored)", nnn)
	case 0x1000:
		return fmt.Sprintf("1NNN JP %03X", nnn)
	case 0x2000:
		return fmt.Sprintf("2NNN CALL %03X", nnn)
	case 0x3000:
		return fmt.Sprintf("3XNN SE V%X, %02X", x, nn)
	case 0x4000:
		return fmt.Sprintf("4XNN SNE V%X, %02X", x, nn)
	case 0x5000:
		if n == 0 {
			return fmt.Sprintf("5XY0 SE V%X, V%X", x, y)
		}
	case 0x6000:
		return fmt.Sprintf("6XNN LD V%X, %02X", x, nn)
	case 0x7000:
		return fmt.Sprintf("7XNN ADD V%X, %02X", x, nn)
	case 0x8000:
		switch n {
		case 0x0:
			return fmt.Sprintf("8XY0 LD V%X, V%X", x, y)
		case 0x1:
			return fmt.Sprintf("8XY1 OR V%X, V%X", x, y)
		case 0x2:
			return fmt.Sprintf("8XY2 AND V%X, V%X", x, y)
		case 0x3:
			return fmt.Sprintf("8XY3 XOR V%X, V%X", x, y)
		case 0x4:
			return fmt.Sprintf("8XY4 ADD V%X, V%X", x, y)
		case 0x5:
			return fmt.Sprintf("8XY5 SUB V%X, V%X", x, y)
		case 0x6:
			return fmt.Sprintf("8XY6 SHR V%X, V%X", x, y)
		case 0x7:
			return fmt.Sprintf("8XY7 SUBN V%X, V%X", x, y)
		case 0xE:
			return fmt.Sprintf("8XYE SHL V%X, V%X", x, y)
		}
	case 0x9000:
		if n == 0 {
			return fmt.Sprintf("9XY0 SNE V%X, V%X", x, y)
		}
	case 0xA000:
		return fmt.Sprintf("ANNN LD I, %03X", nnn)
	case 0xB000:
		return fmt.Sprintf("BNNN JP V%X, %03X", x, nnn)
	case 0xC000:
		return fmt.Sprintf("CXNN RND V%X, %02X", x, nn)
	case 0xD000:
		return fmt.Sprintf("DXYN DRW V%X, V%X, %X", x, y, n)
	case 0xE000:
		switch nn {
		case 0x9E:
			return fmt.Sprintf("EX9E SKP V%X", x)
		case 0xA1:
			return fmt.Sprintf("EXA1 SKNP V%X", x)
		}
	case 0xF000:
		switch nn {
		case 0x07:
			return fmt.Sprintf("FX07 LD V%X, DT", x)
		case 0x0A:
			return fmt.Sprintf("FX0A LD V%X, K", x)
		case 0x15:
			return fmt.Sprintf("FX15 LD DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("FX18 LD ST, V%X", x)
		case 0x1E:
			return fmt.Sprintf("FX1E ADD I, V%X", x)
		case 0x29:
			return fmt.Sprintf("FX29 LD F, V%X", x)
		case 0x33:
			return fmt.Sprintf("FX33 LD B, V%X", x)
		case 0x55:
			return fmt.Sprintf("FX55 LD [I], V0..V%X", x)
		case 0x65:
			return fmt.Sprintf("FX65 LD V0..V%X, [I]", x)
		}
	}
	return fmt.Sprintf("%04X ???", opcode)
}

// DisassembleAt formats the opcode currently at the CPU's programme
// counter.
func (cpu *CPU_Chip8) DisassembleAt() string {
	return fmt.Sprintf("%04X: %s", cpu.PC, disassembleChip8(cpu.fetch()))
}
