// video_backend_ebiten.go - Ebiten video backend for IntuitionChip

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
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	EBITEN_DEFAULT_SCALE = 8
	EBITEN_MIN_SCALE     = 1
	EBITEN_MAX_SCALE     = 20
)

var statusBarColour = color.RGBA{R: 0x80, G: 0xFF, B: 0x80, A: 0xFF}

type EbitenOutput struct {
	running     bool
	window      *ebiten.Image
	scale       int
	title       string
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  uint64
	vsyncChan   chan struct{}
	done        chan struct{}

	keymap   *KeyMapper
	keysDown [NUM_KEYS]bool

	paused     bool
	speedDelta int
	statusText string

	showStatusBar bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenOutput(keymap *KeyMapper) (VideoOutput, error) {
	if keymap == nil {
		keymap = NewKeyMapper(KEYMAP_COSMAC_ELF)
	}
	return &EbitenOutput{
		scale:         EBITEN_DEFAULT_SCALE,
		title:         "IntuitionChip",
		frameBuffer:   make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4),
		vsyncChan:     make(chan struct{}, 1),
		done:          make(chan struct{}),
		keymap:        keymap,
		showStatusBar: true,
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.bufferMutex.Lock()
	eo.done = make(chan struct{})
	eo.bufferMutex.Unlock()
	eo.running = true
	ebiten.SetWindowSize(DISPLAY_WIDTH*eo.scale, DISPLAY_HEIGHT*eo.scale)
	ebiten.SetWindowTitle(eo.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer func() {
			eo.running = false
			eo.bufferMutex.RLock()
			done := eo.done
			eo.bufferMutex.RUnlock()
			select {
			case <-done:
			default:
				close(done)
			}
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	<-eo.vsyncChan
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	eo.bufferMutex.RLock()
	done := eo.done
	eo.bufferMutex.RUnlock()
	return done
}

func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	copy(eo.frameBuffer, data)
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	scale := config.Scale
	if scale < EBITEN_MIN_SCALE {
		scale = EBITEN_DEFAULT_SCALE
	}
	if scale > EBITEN_MAX_SCALE {
		scale = EBITEN_MAX_SCALE
	}
	eo.scale = scale
	if config.Title != "" {
		eo.title = config.Title
	}
	eo.showStatusBar = config.ShowStatusBar

	if eo.running {
		ebiten.SetWindowSize(DISPLAY_WIDTH*eo.scale, DISPLAY_HEIGHT*eo.scale)
		ebiten.SetWindowTitle(eo.title)
	}
	return nil
}

func (eo *EbitenOutput) GetDisplayConfig() DisplayConfig {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return DisplayConfig{
		Scale:         eo.scale,
		Title:         eo.title,
		ShowStatusBar: eo.showStatusBar,
	}
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.frameCount
}

// KeypadSnapshot returns the keypad state polled during the last
// Update. The host reads it once per tick before executing a batch.
func (eo *EbitenOutput) KeypadSnapshot() [NUM_KEYS]bool {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.keysDown
}

func (eo *EbitenOutput) Paused() bool {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.paused
}

func (eo *EbitenOutput) TakeSpeedDelta() int {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()
	delta := eo.speedDelta
	eo.speedDelta = 0
	return delta
}

func (eo *EbitenOutput) SetStatusText(s string) {
	eo.bufferMutex.Lock()
	eo.statusText = s
	eo.bufferMutex.Unlock()
}

// Update polls the keypad matrix and the shell control keys. It runs
// on Ebiten's tick, decoupled from the host's batch loop.
func (eo *EbitenOutput) Update() error {
	var keys [NUM_KEYS]bool
	for i := 0; i < NUM_KEYS; i++ {
		keys[i] = ebiten.IsKeyPressed(eo.keymap.Key(i))
	}

	pauseToggled := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		delta++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		delta--
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	// Clipboard screen dump: Ctrl+Shift+C
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		eo.handleClipboardCopy()
	}

	eo.bufferMutex.Lock()
	eo.keysDown = keys
	if pauseToggled {
		eo.paused = !eo.paused
	}
	eo.speedDelta += delta
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenOutput) handleClipboardCopy() {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK {
		return
	}
	eo.bufferMutex.RLock()
	dump := screenTextDump(eo.frameBuffer)
	eo.bufferMutex.RUnlock()
	clipboard.Write(clipboard.FmtText, []byte(dump))
}

// screenTextDump renders an RGBA frame as ASCII art, one rune per
// pixel. The background colour is taken to be the most frequent pixel
// value, so the dump works for any on/off colour pair.
func screenTextDump(buf []byte) string {
	counts := make(map[uint32]int)
	pixel := func(i int) uint32 {
		return uint32(buf[i])<<24 | uint32(buf[i+1])<<16 | uint32(buf[i+2])<<8 | uint32(buf[i+3])
	}
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

	out := make([]rune, 0, DISPLAY_HEIGHT*(DISPLAY_WIDTH+1))
	for y := 0; y < DISPLAY_HEIGHT; y++ {
		for x := 0; x < DISPLAY_WIDTH; x++ {
			i := (y*DISPLAY_WIDTH + x) * 4
			if pixel(i) == background {
				out = append(out, ' ')
			} else {
				out = append(out, '█')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(DISPLAY_WIDTH, DISPLAY_HEIGHT)
	}

	eo.bufferMutex.RLock()
	eo.window.WritePixels(eo.frameBuffer)
	showStatusBar := eo.showStatusBar
	statusText := eo.statusText
	paused := eo.paused
	scale := eo.scale
	eo.bufferMutex.RUnlock()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(eo.window, op)

	if showStatusBar {
		line := statusText
		if paused {
			line += " [PAUSED]"
		}
		text.Draw(screen, line, basicfont.Face7x13, 4, DISPLAY_HEIGHT*scale-4, statusBarColour)
	}

	eo.bufferMutex.Lock()
	eo.frameCount++
	eo.bufferMutex.Unlock()
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	eo.bufferMutex.RLock()
	scale := eo.scale
	eo.bufferMutex.RUnlock()
	return DISPLAY_WIDTH * scale, DISPLAY_HEIGHT * scale
}
