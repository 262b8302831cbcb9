package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/tabletennis/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects for an audio context
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache synthesized PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %s", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio context consumes. The frequency sweeps linearly and the
// amplitude decays linearly to zero so the sound ends without a click.
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.Frequency + (tone.EndFrequency-tone.Frequency)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := tone.Volume * (1 - t)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
