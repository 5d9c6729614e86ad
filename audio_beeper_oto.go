// audio_beeper_oto.go - Oto beeper backend for IntuitionChip

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
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

type OtoBeeper struct {
	/*
		OtoBeeper generates a gated square wave through an Oto player.
		The player pulls samples on its own goroutine via Read; the
		host only ever stores the current sound-timer level, so the
		hot path is lock-free.
	*/

	ctx        *oto.Context
	player     *oto.Player
	sampleRate int
	level      atomic.Uint32
	phase      float64
	sampleBuf  []float32
	started    bool
	mutex      sync.Mutex // Only for setup/control operations
}

func NewOtoBeeper(sampleRate int) (*OtoBeeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	ob := &OtoBeeper{
		ctx:        ctx,
		sampleRate: sampleRate,
		sampleBuf:  make([]float32, 4096),
	}
	ob.player = ctx.NewPlayer(ob)
	return ob, nil
}

// Read generates square-wave samples. Amplitude follows the last
// sound-timer level; level zero produces silence.
func (ob *OtoBeeper) Read(p []byte) (n int, err error) {
	numSamples := len(p) / 4
	if numSamples == 0 {
		return 0, nil
	}
	if len(ob.sampleBuf) < numSamples {
		ob.sampleBuf = make([]float32, numSamples)
	}
	samples := ob.sampleBuf[:numSamples]

	level := byte(ob.level.Load())
	amplitude := float32(0)
	if level > 0 {
		// Quiet for small timer values, capped well below clipping.
		amplitude = float32(math.Min(0.05+float64(level)/255.0*0.20, 0.25))
	}

	step := BEEP_FREQUENCY / float64(ob.sampleRate)
	for i := 0; i < numSamples; i++ {
		if ob.phase < 0.5 {
			samples[i] = amplitude
		} else {
			samples[i] = -amplitude
		}
		ob.phase += step
		if ob.phase >= 1.0 {
			ob.phase -= 1.0
		}
	}

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (ob *OtoBeeper) Start() error {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	if !ob.started && ob.player != nil {
		ob.player.Play()
		ob.started = true
	}
	return nil
}

func (ob *OtoBeeper) Stop() error {
	ob.mutex.Lock()
	defer ob.mutex.Unlock()
	if ob.started && ob.player != nil {
		ob.player.Pause()
		ob.started = false
	}
	return nil
}

// SetLevel installs the current sound-timer value for the generator.
func (ob *OtoBeeper) SetLevel(level byte) {
	ob.level.Store(uint32(level))
}
