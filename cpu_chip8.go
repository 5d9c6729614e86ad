// cpu_chip8.go - CHIP-8 CPU core for IntuitionChip

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
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"
)

const (
	// CPU Configuration Constants

	STACK_DEPTH   = 16 // Call stack entries, matching common hardware limits
	NUM_REGISTERS = 16
	NUM_KEYS      = 16
	FLAG_REGISTER = 0xF

	// Sound timer value asserted while FX0A holds a latched key,
	// giving audible key-press feedback.
	KEY_WAIT_TONE = 4
)

// Fatal CPU faults. Both indicate a malformed program or caller bug,
// never a state a valid program can reach.
var (
	ErrStackUnderflow = errors.New("chip8: return with empty call stack")
	ErrStackOverflow  = errors.New("chip8: call stack exhausted")
)

type QuirkProfile struct {
	/*
		QuirkProfile selects between the two documented historical
		behaviours of the shift and indexed-jump opcodes. The zero
		value is this machine's fixed default: load-then-shift (8XY6
		and 8XYE take their value from VY) and the X-indexed jump
		(BNNN jumps to NNN + VX).
	*/

	ShiftSourceVX bool // 8XY6/8XYE shift VX in place instead of loading from VY
	JumpIndexedV0 bool // BNNN jumps to NNN + V0 instead of NNN + VX
}

type CPU_Chip8 struct {
	/*
		CPU_Chip8 implements the CHIP-8 interpreter core.

		Core Registers:
		- V: sixteen 8-bit general registers; VF doubles as the
		  carry/borrow/collision flag and is overwritten by any opcode
		  documented to set one.
		- I: 16-bit index register.
		- PC: 16-bit programme counter, starts at PROGRAM_BASE.
		- stack/sp: fixed 16-entry call stack of return addresses.

		Timers:
		- delayTimer/soundTimer decrement once per ExecuteBatch call,
		  never per instruction, and saturate at zero.

		Input:
		- keys holds the host's per-tick keypad snapshot; awaited is
		  the FX0A latch (-1 when no key is latched).

		The CPU is exclusively owned by a single call sequence; no
		opcode execution may be interleaved with another for the same
		instance.
	*/

	V  [NUM_REGISTERS]byte
	I  uint16
	PC uint16

	stack [STACK_DEPTH]uint16
	sp    int

	delayTimer byte
	soundTimer byte

	keys    [NUM_KEYS]bool
	awaited int

	Quirks QuirkProfile
	Debug  bool

	bus   MemoryBus
	video *VideoChip
	rng   *rand.Rand
}

func NewCPUChip8(bus MemoryBus, video *VideoChip) *CPU_Chip8 {
	cpu := &CPU_Chip8{
		bus:   bus,
		video: video,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	cpu.Reset()
	return cpu
}

// Reset returns the CPU to its power-on state. Bus and display are
// reset separately; see Machine.Reset.
func (cpu *CPU_Chip8) Reset() {
	for i := range cpu.V {
		cpu.V[i] = 0
	}
	cpu.I = 0
	cpu.PC = PROGRAM_BASE
	cpu.sp = 0
	cpu.delayTimer = 0
	cpu.soundTimer = 0
	for i := range cpu.keys {
		cpu.keys[i] = false
	}
	cpu.awaited = -1
}

// SetKeys installs the host's keypad snapshot for the coming batch.
// The CPU never reads live input mid-batch.
func (cpu *CPU_Chip8) SetKeys(keys [NUM_KEYS]bool) {
	cpu.keys = keys
}

func (cpu *CPU_Chip8) DelayTimer() byte { return cpu.delayTimer }
func (cpu *CPU_Chip8) SoundTimer() byte { return cpu.soundTimer }

// fetch reads the big-endian opcode at PC.
func (cpu *CPU_Chip8) fetch() uint16 {
	return uint16(cpu.bus.ReadByte(cpu.PC))<<8 | uint16(cpu.bus.ReadByte(cpu.PC+1))
}

// tickTimers decrements both timers by one, floored at zero. Called
// exactly once per batch so emulation speed stays decoupled from the
// timer rate.
func (cpu *CPU_Chip8) tickTimers() {
	if cpu.delayTimer > 0 {
		cpu.delayTimer--
	}
	if cpu.soundTimer > 0 {
		cpu.soundTimer--
	}
}

// ExecuteBatch performs n fetch-decode-execute cycles, then ticks the
// timers once. A fatal fault aborts the batch.
func (cpu *CPU_Chip8) ExecuteBatch(n int) error {
	for i := 0; i < n; i++ {
		if err := cpu.ExecuteOne(); err != nil {
			return err
		}
	}
	cpu.tickTimers()
	return nil
}

// ExecuteOne performs exactly one fetch-decode-execute cycle. PC is
// advanced past the opcode before dispatch, so jumps overwrite it and
// skips add two more. Opcodes outside the table are recoverable
// no-ops; only call-stack misuse is fatal.
func (cpu *CPU_Chip8) ExecuteOne() error {
	opcode := cpu.fetch()
	cpu.PC += 2

	x := int(opcode >> 8 & 0xF)
	y := int(opcode >> 4 & 0xF)
	n := byte(opcode & 0xF)
	nn := byte(opcode)
	nnn := opcode & 0xFFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode & 0x0FFF {
		case 0x0E0:
			cpu.video.Clear()
		case 0x0EE:
			if cpu.sp == 0 {
				return ErrStackUnderflow
			}
			cpu.sp--
			cpu.PC = cpu.stack[cpu.sp]
		default:
			// 0NNN machine-language routines are not implemented.
			cpu.unhandled(opcode)
		}
	case 0x1000:
		cpu.PC = nnn
	case 0x2000:
		if cpu.sp == STACK_DEPTH {
			return ErrStackOverflow
		}
		cpu.stack[cpu.sp] = cpu.PC
		cpu.sp++
		cpu.PC = nnn
	case 0x3000:
		if cpu.V[x] == nn {
			cpu.PC += 2
		}
	case 0x4000:
		if cpu.V[x] != nn {
			cpu.PC += 2
		}
	case 0x5000:
		if n != 0 {
			cpu.unhandled(opcode)
			break
		}
		if cpu.V[x] == cpu.V[y] {
			cpu.PC += 2
		}
	case 0x6000:
		cpu.V[x] = nn
	case 0x7000:
		cpu.V[x] += nn // wraps, no flag
	case 0x8000:
		cpu.executeALU(opcode, x, y)
	case 0x9000:
		if n != 0 {
			cpu.unhandled(opcode)
			break
		}
		if cpu.V[x] != cpu.V[y] {
			cpu.PC += 2
		}
	case 0xA000:
		cpu.I = nnn
	case 0xB000:
		if cpu.Quirks.JumpIndexedV0 {
			cpu.PC = nnn + uint16(cpu.V[0])
		} else {
			cpu.PC = nnn + uint16(cpu.V[x])
		}
	case 0xC000:
		cpu.V[x] = byte(cpu.rng.Intn(256)) & nn
	case 0xD000:
		cpu.opDraw(x, y, n)
	case 0xE000:
		switch nn {
		case 0x9E:
			if cpu.keys[cpu.V[x]%NUM_KEYS] {
				cpu.PC += 2
			}
		case 0xA1:
			if !cpu.keys[cpu.V[x]%NUM_KEYS] {
				cpu.PC += 2
			}
		default:
			cpu.unhandled(opcode)
		}
	case 0xF000:
		switch nn {
		case 0x07:
			cpu.V[x] = cpu.delayTimer
		case 0x0A:
			cpu.opWaitKey(x)
		case 0x15:
			cpu.delayTimer = cpu.V[x]
		case 0x18:
			cpu.soundTimer = cpu.V[x]
		case 0x1E:
			cpu.I += uint16(cpu.V[x]) // no overflow flag
		case 0x29:
			// Glyphs are FONT_HEIGHT bytes each; the address must
			// scale, not just offset.
			cpu.I = FONT_BASE + uint16(cpu.V[x]&0xF)*FONT_HEIGHT
		case 0x33:
			vx := cpu.V[x]
			cpu.bus.WriteByte(cpu.I, vx/100)
			cpu.bus.WriteByte(cpu.I+1, vx/10%10)
			cpu.bus.WriteByte(cpu.I+2, vx%10)
		case 0x55:
			for r := 0; r <= x; r++ {
				cpu.bus.WriteByte(cpu.I, cpu.V[r])
				cpu.I++
			}
		case 0x65:
			for r := 0; r <= x; r++ {
				cpu.V[r] = cpu.bus.ReadByte(cpu.I)
				cpu.I++
			}
		default:
			cpu.unhandled(opcode)
		}
	}
	return nil
}

// executeALU handles the 8XY_ register-to-register family. The OR,
// AND and XOR forms force VF to zero rather than leaving it stale;
// conformance suites depend on that.
func (cpu *CPU_Chip8) executeALU(opcode uint16, x, y int) {
	switch opcode & 0x000F {
	case 0x0:
		cpu.V[x] = cpu.V[y]
	case 0x1:
		cpu.V[x] |= cpu.V[y]
		cpu.V[FLAG_REGISTER] = 0
	case 0x2:
		cpu.V[x] &= cpu.V[y]
		cpu.V[FLAG_REGISTER] = 0
	case 0x3:
		cpu.V[x] ^= cpu.V[y]
		cpu.V[FLAG_REGISTER] = 0
	case 0x4:
		sum := uint16(cpu.V[x]) + uint16(cpu.V[y])
		cpu.V[x] = byte(sum)
		if sum > 0xFF {
			cpu.V[FLAG_REGISTER] = 1
		} else {
			cpu.V[FLAG_REGISTER] = 0
		}
	case 0x5:
		flag := byte(0)
		if cpu.V[x] >= cpu.V[y] {
			flag = 1
		}
		cpu.V[x] -= cpu.V[y]
		cpu.V[FLAG_REGISTER] = flag
	case 0x6:
		if !cpu.Quirks.ShiftSourceVX {
			cpu.V[x] = cpu.V[y]
		}
		flag := cpu.V[x] & 0x1
		cpu.V[x] >>= 1
		cpu.V[FLAG_REGISTER] = flag
	case 0x7:
		flag := byte(0)
		if cpu.V[y] >= cpu.V[x] {
			flag = 1
		}
		cpu.V[x] = cpu.V[y] - cpu.V[x]
		cpu.V[FLAG_REGISTER] = flag
	case 0xE:
		if !cpu.Quirks.ShiftSourceVX {
			cpu.V[x] = cpu.V[y]
		}
		flag := cpu.V[x] >> 7
		cpu.V[x] <<= 1
		cpu.V[FLAG_REGISTER] = flag
	default:
		cpu.unhandled(opcode)
	}
}

// opDraw implements DXYN: n sprite rows from memory at I, drawn at
// (VX mod 64, VY mod 32). VF reports whether any row collided.
func (cpu *CPU_Chip8) opDraw(x, y int, n byte) {
	xCoord := cpu.V[x] % DISPLAY_WIDTH
	yCoord := cpu.V[y] % DISPLAY_HEIGHT
	cpu.V[FLAG_REGISTER] = 0
	for row := byte(0); row < n; row++ {
		pattern := cpu.bus.ReadByte(cpu.I + uint16(row))
		if cpu.video.DrawSpriteRow(xCoord, yCoord+row, pattern) {
			cpu.V[FLAG_REGISTER] = 1
		}
	}
}

// opWaitKey implements the FX0A blocking key read as a state machine
// polled once per cycle. PC is rewound so the instruction re-executes
// until a key has been seen going down and then released; the key
// index lands in VX on the release cycle.
func (cpu *CPU_Chip8) opWaitKey(x int) {
	cpu.PC -= 2

	if cpu.awaited < 0 {
		for i, down := range cpu.keys {
			if down {
				cpu.awaited = i
				break
			}
		}
		return
	}

	if cpu.keys[cpu.awaited] {
		// Latched key still held: assert the debounce tone.
		cpu.soundTimer = KEY_WAIT_TONE
		return
	}

	cpu.PC += 2
	cpu.V[x] = byte(cpu.awaited)
	cpu.awaited = -1
}

// unhandled records an opcode outside the dispatch table. Execution
// continues at the next instruction.
func (cpu *CPU_Chip8) unhandled(opcode uint16) {
	if cpu.Debug {
		fmt.Fprintf(os.Stderr, "chip8: unhandled opcode %04X at %04X\n", opcode, cpu.PC-2)
	}
}
