// audio_beeper.go - Beeper interface for IntuitionChip

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
	"sync/atomic"
)

// Predefined audio backend types
const (
	AUDIO_BACKEND_OTO      = iota // Oto square-wave beeper
	AUDIO_BACKEND_HEADLESS        // Silent backend for tests and CI
)

const (
	BEEP_SAMPLE_RATE = 44100
	BEEP_FREQUENCY   = 440.0
)

type Beeper interface {
	/*
		Beeper presents the sound timer. The core exposes only a timer
		byte; the beeper maps nonzero-to-zero onto audible-to-silent
		and animates intensity from the value. This is presentation,
		not synthesis: one fixed square wave, gated.
	*/

	Start() error
	Stop() error
	SetLevel(level byte)
}

func NewBeeper(backend int) (Beeper, error) {
	switch backend {
	case AUDIO_BACKEND_OTO:
		return NewOtoBeeper(BEEP_SAMPLE_RATE)
	case AUDIO_BACKEND_HEADLESS:
		return &HeadlessBeeper{}, nil
	default:
		return nil, fmt.Errorf("audio: unknown backend type %d", backend)
	}
}

type HeadlessBeeper struct {
	started bool
	level   atomic.Uint32
	updates atomic.Uint64
}

func (hb *HeadlessBeeper) Start() error {
	hb.started = true
	return nil
}

func (hb *HeadlessBeeper) Stop() error {
	hb.started = false
	return nil
}

func (hb *HeadlessBeeper) SetLevel(level byte) {
	hb.level.Store(uint32(level))
	hb.updates.Add(1)
}

// Level reports the last value the host gated with.
func (hb *HeadlessBeeper) Level() byte {
	return byte(hb.level.Load())
}

// Updates reports how many times SetLevel has been called.
func (hb *HeadlessBeeper) Updates() uint64 {
	return hb.updates.Load()
}
