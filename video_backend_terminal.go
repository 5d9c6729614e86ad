// video_backend_terminal.go - ANSI terminal video backend for IntuitionChip

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
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

const (
	// Terminals deliver no key-up events, so a key counts as held for
	// this long after its byte arrives.
	TERMINAL_KEY_HOLD = 120 * time.Millisecond

	termClearScreen = "\x1b[2J"
	termCursorHome  = "\x1b[H"
	termHideCursor  = "\x1b[?25l"
	termShowCursor  = "\x1b[?25h"
)

type TerminalOutput struct {
	/*
		TerminalOutput renders the display into an ANSI terminal using
		Unicode half-blocks, two pixel rows per text line. Keypad input
		is read byte-wise from raw-mode stdin with a hold decay, since
		a terminal cannot report key releases.
	*/

	started    bool
	config     DisplayConfig
	frameCount uint64

	mutex       sync.RWMutex
	frameBuffer []byte
	statusText  string
	keyTimes    [NUM_KEYS]time.Time
	paused      bool
	speedDelta  int

	done     chan struct{}
	stopOnce sync.Once

	fd           int
	oldTermState *term.State
	out          *bufio.Writer
}

func NewTerminalOutput(keymap *KeyMapper) (VideoOutput, error) {
	// The keymap parameter is ebiten-specific; the terminal backend
	// uses its own byte table.
	_ = keymap
	return &TerminalOutput{
		frameBuffer: make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4),
		done:        make(chan struct{}),
		out:         bufio.NewWriter(os.Stdout),
	}, nil
}

// Start puts stdin into raw mode and begins the input goroutine. Raw
// mode is restored on Close.
func (to *TerminalOutput) Start() error {
	if to.started {
		return nil
	}
	to.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(to.fd)
	if err != nil {
		return &VideoError{Operation: "start", Details: "failed to set raw mode", Err: err}
	}
	to.oldTermState = oldState
	to.started = true

	fmt.Fprint(to.out, termHideCursor+termClearScreen)
	to.out.Flush()

	go to.readInput()
	return nil
}

func (to *TerminalOutput) readInput() {
	buf := make([]byte, 1)
	for {
		select {
		case <-to.done:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		to.handleInputByte(buf[0])
	}
}

func (to *TerminalOutput) handleInputByte(b byte) {
	switch b {
	case 0x03, 0x11, 0x1B: // Ctrl-C, Ctrl-Q, Escape
		to.Close()
		return
	case ' ':
		to.mutex.Lock()
		to.paused = !to.paused
		to.mutex.Unlock()
		return
	case '+', '=':
		to.mutex.Lock()
		to.speedDelta++
		to.mutex.Unlock()
		return
	case '-', '_':
		to.mutex.Lock()
		to.speedDelta--
		to.mutex.Unlock()
		return
	}
	if logical := terminalKeyBytes[b]; logical >= 0 {
		to.mutex.Lock()
		to.keyTimes[logical] = time.Now()
		to.mutex.Unlock()
	}
}

func (to *TerminalOutput) Stop() error {
	to.started = false
	return nil
}

func (to *TerminalOutput) Close() error {
	to.started = false
	to.stopOnce.Do(func() {
		close(to.done)
		if to.oldTermState != nil {
			_ = term.Restore(to.fd, to.oldTermState)
			to.oldTermState = nil
		}
		fmt.Fprint(to.out, termShowCursor+"\n")
		to.out.Flush()
	})
	return nil
}

func (to *TerminalOutput) IsStarted() bool {
	return to.started
}

func (to *TerminalOutput) Done() <-chan struct{} {
	return to.done
}

func (to *TerminalOutput) SetDisplayConfig(config DisplayConfig) error {
	to.mutex.Lock()
	to.config = config
	to.mutex.Unlock()
	return nil
}

func (to *TerminalOutput) GetDisplayConfig() DisplayConfig {
	to.mutex.RLock()
	defer to.mutex.RUnlock()
	return to.config
}

func (to *TerminalOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&to.frameCount)
}

func (to *TerminalOutput) UpdateFrame(buffer []byte) error {
	to.mutex.Lock()
	copy(to.frameBuffer, buffer)
	frame := renderHalfBlocks(to.frameBuffer)
	status := to.statusText
	if to.paused {
		status += " [PAUSED]"
	}
	showBar := to.config.ShowStatusBar
	to.mutex.Unlock()

	fmt.Fprint(to.out, termCursorHome)
	fmt.Fprint(to.out, frame)
	if showBar {
		fmt.Fprintf(to.out, "\x1b[K%s\r\n", status)
	}
	to.out.Flush()

	atomic.AddUint64(&to.frameCount, 1)
	return nil
}

func (to *TerminalOutput) SetStatusText(s string) {
	to.mutex.Lock()
	to.statusText = s
	to.mutex.Unlock()
}

func (to *TerminalOutput) KeypadSnapshot() [NUM_KEYS]bool {
	now := time.Now()
	var keys [NUM_KEYS]bool
	to.mutex.RLock()
	for i, t := range to.keyTimes {
		keys[i] = !t.IsZero() && now.Sub(t) < TERMINAL_KEY_HOLD
	}
	to.mutex.RUnlock()
	return keys
}

func (to *TerminalOutput) Paused() bool {
	to.mutex.RLock()
	defer to.mutex.RUnlock()
	return to.paused
}

func (to *TerminalOutput) TakeSpeedDelta() int {
	to.mutex.Lock()
	defer to.mutex.Unlock()
	delta := to.speedDelta
	to.speedDelta = 0
	return delta
}

// decodeFrameBits recovers the on/off bitmask rows from an RGBA frame.
// The off colour is taken as the most frequent pixel value, which
// holds for any sane colour pair on a 64x32 playfield.
func decodeFrameBits(buf []byte) [DISPLAY_HEIGHT]uint64 {
	pixel := func(i int) uint32 {
		return uint32(buf[i])<<24 | uint32(buf[i+1])<<16 | uint32(buf[i+2])<<8 | uint32(buf[i+3])
	}
	counts := make(map[uint32]int)
	for i := 0; i+3 < len(buf); i += 4 {
		counts[pixel(i)]++
	}
	background := uint32(0)
	best := -1
	for colour, n := range counts {
		if n > best {
			background, best = colour, n
		}
	}

	var rows [DISPLAY_HEIGHT]uint64
	for y := 0; y < DISPLAY_HEIGHT; y++ {
		for x := 0; x < DISPLAY_WIDTH; x++ {
			i := (y*DISPLAY_WIDTH + x) * 4
			if pixel(i) != background {
				rows[y] |= 1 << uint(DISPLAY_WIDTH-1-x)
			}
		}
	}
	return rows
}

// renderHalfBlocks packs two pixel rows into each text line using the
// upper/lower half-block runes.
func renderHalfBlocks(buf []byte) string {
	rows := decodeFrameBits(buf)
	var sb strings.Builder
	for y := 0; y < DISPLAY_HEIGHT; y += 2 {
		upper, lower := rows[y], rows[y+1]
		for x := 0; x < DISPLAY_WIDTH; x++ {
			bit := uint64(1) << uint(DISPLAY_WIDTH-1-x)
			switch {
			case upper&bit != 0 && lower&bit != 0:
				sb.WriteRune('█')
			case upper&bit != 0:
				sb.WriteRune('▀')
			case lower&bit != 0:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
