package components

import (
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PaddleData is one paddle. X and Height never change after creation.
type PaddleData struct {
	Side gamemath.Side
	gamemath.Paddle
}

var Paddle = donburi.NewComponentType[PaddleData]()
