// main.go - IntuitionChip shell and host loop

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
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const (
	FRAME_RATE              = 60
	DEFAULT_TICKS_PER_FRAME = 10
	MIN_TICKS_PER_FRAME     = 1
	MAX_TICKS_PER_FRAME     = 1000
)

func boilerPlate() {
	fmt.Println("\nIntuitionChip - a CHIP-8 interpreter engine from the Intuition Engine family.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionChip")
	fmt.Println("Buy me a coffee: https://ko-fi.com/intuition/tip")
	fmt.Println("License: GPLv3 or later")
}

// parseColour accepts RRGGBB or #RRGGBB and returns 0xRRGGBBAA.
func parseColour(s string, fallback uint32) uint32 {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return uint32(v)<<8 | 0xFF
}

func clampTicks(n int) int {
	if n < MIN_TICKS_PER_FRAME {
		return MIN_TICKS_PER_FRAME
	}
	if n > MAX_TICKS_PER_FRAME {
		return MAX_TICKS_PER_FRAME
	}
	return n
}

func main() {
	boilerPlate()

	var (
		terminalMode bool
		headlessMode bool
		scale        int
		speed        int
		frames       int
		keymapName   string
		mute         bool
		noStatusBar  bool
		debug        bool
		shiftVX      bool
		jumpV0       bool
		fgColour     string
		bgColour     string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&terminalMode, "terminal", false, "Render into the terminal instead of a window")
	flagSet.BoolVar(&headlessMode, "headless", false, "Run without video or audio output")
	flagSet.IntVar(&scale, "scale", EBITEN_DEFAULT_SCALE, "Window magnification factor")
	flagSet.IntVar(&speed, "speed", 0, "Instructions per frame (0 = catalog tickrate or default)")
	flagSet.IntVar(&frames, "frames", 600, "Frames to run in headless mode before exiting")
	flagSet.StringVar(&keymapName, "keymap", KEYMAP_COSMAC_ELF, "Keypad layout: cosmac or dream")
	flagSet.BoolVar(&mute, "mute", false, "Disable the beeper")
	flagSet.BoolVar(&noStatusBar, "no-status", false, "Hide the status bar")
	flagSet.BoolVar(&debug, "debug", false, "Print diagnostics for unhandled opcodes")
	flagSet.BoolVar(&shiftVX, "quirk-shift-vx", false, "8XY6/8XYE shift VX in place instead of loading from VY")
	flagSet.BoolVar(&jumpV0, "quirk-jump-v0", false, "BNNN jumps to NNN+V0 instead of NNN+VX")
	flagSet.StringVar(&fgColour, "fg", "FFFFFF", "Pixel-on colour (RRGGBB)")
	flagSet.StringVar(&bgColour, "bg", "000000", "Pixel-off colour (RRGGBB)")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./intuition_chip [-terminal|-headless] [options] program.ch8")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	filename := flagSet.Arg(0)
	if filename == "" {
		flagSet.Usage()
		os.Exit(1)
	}

	image, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error loading program: %v\n", err)
		os.Exit(1)
	}

	machine := NewMachine()
	machine.LoadProgram(image)
	machine.CPU.Debug = debug
	machine.CPU.Quirks = QuirkProfile{ShiftSourceVX: shiftVX, JumpIndexedV0: jumpV0}
	machine.Video.SetColours(parseColour(fgColour, COLOUR_ON_DEFAULT), parseColour(bgColour, COLOUR_OFF_DEFAULT))

	// Resolve the image against the embedded catalog for title and
	// suggested tickrate.
	title := filename
	program, rom, known := EmbeddedCatalog().Lookup(image)
	if known {
		title = program.Title
		fmt.Printf("Program: %s", program.Title)
		if authors := program.AuthorLine(); authors != "" {
			fmt.Printf(" by %s", authors)
		}
		fmt.Println()
		if rom != nil && speed == 0 && rom.Tickrate > 0 {
			speed = rom.Tickrate
		}
	}
	if speed == 0 {
		speed = DEFAULT_TICKS_PER_FRAME
	}
	speed = clampTicks(speed)

	videoBackend := VIDEO_BACKEND_EBITEN
	if terminalMode {
		videoBackend = VIDEO_BACKEND_TERMINAL
	}
	if headlessMode {
		videoBackend = VIDEO_BACKEND_HEADLESS
	}

	vid, err := NewVideoOutput(videoBackend, NewKeyMapper(keymapName))
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	_ = vid.SetDisplayConfig(DisplayConfig{
		Scale:         scale,
		Title:         "IntuitionChip - " + title,
		ShowStatusBar: !noStatusBar,
	})
	if err := vid.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}

	audioBackend := AUDIO_BACKEND_OTO
	if mute || headlessMode {
		audioBackend = AUDIO_BACKEND_HEADLESS
	}
	beeper, err := NewBeeper(audioBackend)
	if err != nil {
		// No audio device is not fatal; fall back to silence.
		fmt.Printf("Audio unavailable, running silent: %v\n", err)
		beeper, _ = NewBeeper(AUDIO_BACKEND_HEADLESS)
	}
	_ = beeper.Start()

	runLoop(machine, vid, beeper, title, speed, headlessMode, frames)

	_ = beeper.Stop()
	_ = vid.Close()
}

// runLoop drives the machine at FRAME_RATE host ticks per second:
// snapshot the keypad, execute one batch, present the frame, gate the
// beeper from the sound timer.
func runLoop(machine *Machine, vid VideoOutput, beeper Beeper, title string, speed int, headless bool, maxFrames int) {
	keypad, _ := vid.(KeypadSource)
	controls, _ := vid.(ShellControls)
	status, _ := vid.(StatusCapable)

	frameBuf := make([]byte, DISPLAY_WIDTH*DISPLAY_HEIGHT*4)
	ticker := time.NewTicker(time.Second / FRAME_RATE)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-vid.Done():
			return
		case <-ticker.C:
		}

		paused := false
		if controls != nil {
			speed = clampTicks(speed + controls.TakeSpeedDelta())
			paused = controls.Paused()
		}

		if !paused {
			if keypad != nil {
				machine.CPU.SetKeys(keypad.KeypadSnapshot())
			}
			if err := machine.CPU.ExecuteBatch(speed); err != nil {
				fmt.Fprintf(os.Stderr, "Fatal: %v\n  at %s\n", err, machine.CPU.DisassembleAt())
				return
			}
		}

		machine.Video.RenderRGBA(frameBuf)
		_ = vid.UpdateFrame(frameBuf)
		beeper.SetLevel(machine.CPU.SoundTimer())

		if status != nil {
			sound := "off"
			if machine.CPU.SoundTimer() > 0 {
				sound = "on"
			}
			status.SetStatusText(fmt.Sprintf("%s | %d ipf | sound %s", title, speed, sound))
		}

		frame++
		if headless && frame >= maxFrames {
			// Leave a screen dump behind for CI logs.
			fmt.Print(screenTextDump(frameBuf))
			return
		}
	}
}
