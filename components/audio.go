package components

import (
	cfg "github.com/automoto/tabletennis/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound effects (singleton component). The queue is
// drained once per tick by the audio system.
type AudioData struct {
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
