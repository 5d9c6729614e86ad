// memory_bus.go - Memory bus for IntuitionChip

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
	MEMORY_SIZE  = 0x1000 // 4KB, the full CHIP-8 address space
	FONT_BASE    = 0x50   // Conventional font table location; FX29 relies on this
	FONT_GLYPHS  = 16
	FONT_HEIGHT  = 5 // Bytes (rows) per glyph
	PROGRAM_BASE = 0x200
)

// fontBytes holds the 16 hexadecimal digit glyphs, 5 bytes each,
// written to FONT_BASE on every reset.
var fontBytes = [FONT_GLYPHS * FONT_HEIGHT]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

type MemoryBus interface {
	/*
		MemoryBus defines the interface for memory operations within
		the machine. Every address is reduced modulo MEMORY_SIZE before
		access, so reads and writes are total and never fail.
	*/

	ReadByte(addr uint16) byte
	WriteByte(addr uint16, value byte)
	LoadFont()
	LoadProgram(image []byte)
	Reset()
}

type Chip8Bus struct {
	/*
		Chip8Bus implements the MemoryBus interface and serves as the
		machine's only memory. It holds a contiguous 4KB block with the
		font table resident at FONT_BASE and program code at
		PROGRAM_BASE onward.

		The bus is owned and mutated by a single call sequence; it
		carries no locking of its own.
	*/

	memory [MEMORY_SIZE]byte
}

func NewChip8Bus() *Chip8Bus {
	bus := &Chip8Bus{}
	bus.LoadFont()
	return bus
}

// ReadByte returns the byte at addr. Out-of-range addresses wrap
// around rather than erroring.
func (bus *Chip8Bus) ReadByte(addr uint16) byte {
	return bus.memory[addr%MEMORY_SIZE]
}

// WriteByte stores value at addr, wrapping out-of-range addresses.
func (bus *Chip8Bus) WriteByte(addr uint16, value byte) {
	bus.memory[addr%MEMORY_SIZE] = value
}

// LoadFont writes the 80-byte glyph table at FONT_BASE. Idempotent.
func (bus *Chip8Bus) LoadFont() {
	copy(bus.memory[FONT_BASE:], fontBytes[:])
}

// LoadProgram copies a raw program image into memory starting at
// PROGRAM_BASE. The caller guarantees the image fits within the
// remaining address space; behaviour for oversized images is undefined
// by this design.
func (bus *Chip8Bus) LoadProgram(image []byte) {
	copy(bus.memory[PROGRAM_BASE:], image)
}

// Reset returns the bus to its power-on state: memory zeroed, font
// table reloaded.
func (bus *Chip8Bus) Reset() {
	for i := range bus.memory {
		bus.memory[i] = 0
	}
	bus.LoadFont()
}
