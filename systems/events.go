package systems

import (
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PointScored is published once per scoring event.
type PointScored struct {
	Scorer   gamemath.Side
	Player   int
	AI       int
	GameOver bool
}

// PaddleHit is published when the ball bounces off a paddle.
type PaddleHit struct {
	Side   gamemath.Side
	Impact float64
	Speed  float64 // |vx| after the bounce
}

// WallBounce is published when the ball reflects off the top or bottom edge.
type WallBounce struct {
	Y float64
}

var (
	PointScoredEvent = events.NewEventType[PointScored]()
	PaddleHitEvent   = events.NewEventType[PaddleHit]()
	WallBounceEvent  = events.NewEventType[WallBounce]()
)

// RegisterEvents subscribes the HUD, stats, audio and log handlers to w.
// Call it once per world before the first tick.
func RegisterEvents(w donburi.World) {
	PointScoredEvent.Subscribe(w, onPointScoredLog)
	PointScoredEvent.Subscribe(w, onPointScoredHUD)
	PointScoredEvent.Subscribe(w, onPointScoredStats)
	PointScoredEvent.Subscribe(w, onPointScoredAudio)
	PaddleHitEvent.Subscribe(w, onPaddleHitStats)
	PaddleHitEvent.Subscribe(w, onPaddleHitAudio)
	WallBounceEvent.Subscribe(w, onWallBounceAudio)
}

// UpdateEvents delivers the events published during this tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
