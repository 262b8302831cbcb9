package components

import (
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BallData is the single ball in play. Pos is the center in table units.
type BallData struct {
	gamemath.Ball
}

var Ball = donburi.NewComponentType[BallData]()
