package systems

import (
	"sort"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/automoto/tabletennis/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall runs the physics step: move the ball, reflect it off the top and
// bottom edges and bounce it off the paddles. Scoring runs after it.
func UpdateBall(e *ecs.ECS) {
	round, ok := getRound(e)
	if !ok {
		return
	}
	entry, ball, ok := getBall(e)
	if !ok {
		return
	}
	if round.State == components.RoundServing {
		round.State = components.RoundInPlay
	}

	ball.Integrate()
	if ball.ReflectWalls(cfg.Table.Height) {
		WallBounceEvent.Publish(e.World, WallBounce{Y: ball.Pos[1]})
	}
	syncObject(entry, ball.Ball)

	k := gamemath.Bounce{SpeedUp: cfg.Ball.SpeedUp, Spin: cfg.Ball.Spin}
	for _, paddle := range paddleCandidates(entry) {
		if !ball.Hits(paddle.Paddle, paddle.Side) {
			continue
		}
		impact := ball.BounceOff(paddle.Paddle, paddle.Side, k)
		syncObject(entry, ball.Ball)
		PaddleHitEvent.Publish(e.World, PaddleHit{
			Side:   paddle.Side,
			Impact: impact,
			Speed:  abs(ball.Vel[0]),
		})
	}
}

// paddleCandidates returns the paddles whose proxies share a space cell with
// the ball proxy, player side first.
func paddleCandidates(ballEntry *donburi.Entry) []*components.PaddleData {
	obj := components.Object.Get(ballEntry)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return nil
	}

	var paddles []*components.PaddleData
	for _, o := range check.ObjectsByTags(tags.ResolvPaddle) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		paddles = append(paddles, components.Paddle.Get(entry))
	}
	sort.Slice(paddles, func(i, j int) bool {
		return paddles[i].Side < paddles[j].Side
	})
	return paddles
}

// UpdateScoring awards a point once the ball has fully left the table.
func UpdateScoring(e *ecs.ECS) {
	_, ball, ok := getBall(e)
	if !ok {
		return
	}
	if exited := ball.Exited(cfg.Table.Width); exited != gamemath.SideNone {
		scorePoint(e, exited.Opposite())
	}
}

// syncObject moves the ball's collision proxy to the ball's bounding box.
func syncObject(entry *donburi.Entry, ball gamemath.Ball) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X = ball.Left() - cfg.Ball.ProxyMargin
	obj.Y = ball.Top() - cfg.Ball.ProxyMargin
	obj.Update()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
