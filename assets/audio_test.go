package assets

import (
	"encoding/binary"
	"testing"
	"time"

	cfg "github.com/automoto/tabletennis/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tone := cfg.Tone{Frequency: 440, EndFrequency: 440, Duration: 100 * time.Millisecond, Volume: 1}
	pcm := SynthesizeTone(tone, 44100)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeToneChannelsMatchAndStayInRange(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundPoint]
	pcm := SynthesizeTone(tone, 44100)
	limit := int16(tone.Volume*32767) + 1
	for i := 0; i+4 <= len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		if l > limit || l < -limit {
			t.Fatalf("frame %d: sample %d exceeds volume", i/4, l)
		}
	}
}

func TestSynthesizeToneEmpty(t *testing.T) {
	if pcm := SynthesizeTone(cfg.Tone{Frequency: 440}, 44100); pcm != nil {
		t.Fatalf("zero duration should yield no samples, got %d bytes", len(pcm))
	}
}

func TestEverySoundHasATone(t *testing.T) {
	for _, id := range []cfg.SoundID{cfg.SoundPaddle, cfg.SoundWall, cfg.SoundPoint, cfg.SoundWin} {
		if _, ok := cfg.Sound.Tones[id]; !ok {
			t.Errorf("missing tone for %s", id)
		}
	}
}
