package main

import (
	"fmt"
	"time"

	"github.com/automoto/tabletennis/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// beepPlayer plays the configured tones through the system speaker.
type beepPlayer struct {
	sampleRate beep.SampleRate
}

func newBeepPlayer() (*beepPlayer, error) {
	sampleRate := beep.SampleRate(config.Audio.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &beepPlayer{sampleRate: sampleRate}, nil
}

func (p *beepPlayer) Play(id config.SoundID) {
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return
	}
	sine, err := generators.SineTone(p.sampleRate, tone.Frequency)
	if err != nil {
		return
	}

	// Volume is in octaves; scale the tone's linear gain onto it
	vol := &effects.Volume{
		Streamer: beep.Take(p.sampleRate.N(tone.Duration), sine),
		Base:     2,
		Volume:   toOctaves(tone.Volume * config.Audio.DefaultSFXVol),
	}
	speaker.Play(vol)
}

// toOctaves converts a linear gain in (0, 1] to beep's base-2 volume.
func toOctaves(gain float64) float64 {
	if gain <= 0 {
		return -10
	}
	o := 0.0
	for gain < 1 {
		gain *= 2
		o--
	}
	return o
}
