package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData stores the score pulse animation, indexed player then AI.
type HUDData struct {
	Pulse [2]*gween.Tween
	Scale [2]float32
}

var HUD = donburi.NewComponentType[HUDData]()
