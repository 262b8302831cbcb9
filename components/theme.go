package components

import (
	cfg "github.com/automoto/tabletennis/config"
	"github.com/yohamta/donburi"
)

// ThemeData stores the display preferences (singleton component).
// Neither field affects the simulation.
type ThemeData struct {
	Theme       cfg.ThemeID
	PaddleColor string
}

var Theme = donburi.NewComponentType[ThemeData]()
