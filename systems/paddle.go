package systems

import (
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/automoto/tabletennis/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerPaddle eases the player paddle toward the latest pointer sample.
func UpdatePlayerPaddle(e *ecs.ECS) {
	target := PointerY(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		paddle.Y = gamemath.FollowPointer(paddle.Paddle, target, cfg.Player.Smoothing, cfg.Table.Height)
		syncPaddle(entry, paddle)
	})
}

// UpdateAI moves the AI paddle one fixed step toward the ball.
func UpdateAI(e *ecs.ECS) {
	_, ball, ok := getBall(e)
	if !ok {
		return
	}
	tracker := gamemath.Tracker{Speed: cfg.AI.Speed, DeadZone: cfg.AI.DeadZone}
	tags.AI.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		paddle.Y = tracker.Next(paddle.Paddle, ball.Pos[1], cfg.Table.Height)
		syncPaddle(entry, paddle)
	})
}

func syncPaddle(entry *donburi.Entry, paddle *components.PaddleData) {
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.Y = paddle.Y
	obj.Update()
}
