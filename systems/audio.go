package systems

import (
	"sync"

	"github.com/automoto/tabletennis/assets"
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays one sound effect without blocking.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// NewAudioSystem returns the system that drains the sound queue into p once
// per tick. A nil player only clears the queue.
func NewAudioSystem(p SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		audioData := GetOrCreateAudio(e)
		if p != nil && !audioData.Muted {
			for _, id := range audioData.PendingSFX {
				p.Play(id)
			}
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	enqueueSFX(e.World, sound)
}

func enqueueSFX(w donburi.World, sound cfg.SoundID) {
	audioData := firstOrCreate(w, components.Audio)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMuted turns all sound effects on or off.
func SetMuted(e *ecs.ECS, muted bool) {
	GetOrCreateAudio(e).Muted = muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return firstOrCreate(e.World, components.Audio)
}

func onPaddleHitAudio(w donburi.World, _ PaddleHit) {
	enqueueSFX(w, cfg.SoundPaddle)
}

func onWallBounceAudio(w donburi.World, _ WallBounce) {
	enqueueSFX(w, cfg.SoundWall)
}

func onPointScoredAudio(w donburi.World, ev PointScored) {
	if ev.GameOver {
		enqueueSFX(w, cfg.SoundWin)
		return
	}
	enqueueSFX(w, cfg.SoundPoint)
}

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// EbitenSoundPlayer plays synthesized tones through ebiten's audio context.
type EbitenSoundPlayer struct {
	volume float64
}

// NewEbitenSoundPlayer creates the process-wide audio context on first use
// and synthesizes every tone up front.
func NewEbitenSoundPlayer() *EbitenSoundPlayer {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		for id := range cfg.Sound.Tones {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				log.WithError(err).Warn("could not synthesize sound")
			}
		}
	})
	return &EbitenSoundPlayer{volume: cfg.Audio.DefaultSFXVol}
}

func (p *EbitenSoundPlayer) Play(id cfg.SoundID) {
	if p.volume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		log.WithError(err).WithField("sound", id).Debug("sound unavailable")
		return
	}

	player.SetVolume(p.volume)
	player.Play()
}
