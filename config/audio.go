package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPaddle
	SoundWall
	SoundPoint
	SoundWin
)

func (s SoundID) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundPoint:
		return "point"
	case SoundWin:
		return "win"
	}
	return "none"
}

// Tone is a synthesized sound: a sine sweep from Frequency to EndFrequency.
type Tone struct {
	Frequency    float64
	EndFrequency float64
	Duration     time.Duration
	Volume       float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPaddle: {Frequency: 660, EndFrequency: 660, Duration: 40 * time.Millisecond, Volume: 0.8},
			SoundWall:   {Frequency: 440, EndFrequency: 440, Duration: 30 * time.Millisecond, Volume: 0.5},
			SoundPoint:  {Frequency: 520, EndFrequency: 260, Duration: 220 * time.Millisecond, Volume: 0.7},
			SoundWin:    {Frequency: 440, EndFrequency: 880, Duration: 500 * time.Millisecond, Volume: 0.8},
		},
	}
}
