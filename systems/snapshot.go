package systems

import (
	"image/color"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/automoto/tabletennis/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PaddleView is the render model of one paddle.
type PaddleView struct {
	gamemath.Paddle
	Color color.RGBA
}

// TableSnapshot is a read-only copy of everything a renderer needs.
type TableSnapshot struct {
	Ball        gamemath.Ball
	Player      PaddleView
	AI          PaddleView
	PlayerScore int
	AIScore     int
	Theme       cfg.ThemeID
	PaddleColor string
	Colors      cfg.ThemeColors
	Paused      bool
	State       components.RoundState
	Tick        int
	Stats       components.StatsData
}

// Snapshot copies the current table state out of the world. Mutating the
// result has no effect on the simulation.
func Snapshot(e *ecs.ECS) TableSnapshot {
	colors, prefs := Colors(e)
	score := GetOrCreateScore(e)

	snap := TableSnapshot{
		PlayerScore: score.Player,
		AIScore:     score.AI,
		Theme:       prefs.Theme,
		PaddleColor: prefs.PaddleColor,
		Colors:      colors,
		Paused:      IsPaused(e),
		Stats:       *GetOrCreateStats(e),
	}
	if round, ok := getRound(e); ok {
		snap.State = round.State
		snap.Tick = round.Tick
	}
	if _, ball, ok := getBall(e); ok {
		snap.Ball = ball.Ball
	}

	playerColor, ok := cfg.PaddleColor(prefs.PaddleColor)
	if !ok {
		playerColor, _ = cfg.PaddleColor(cfg.Player.DefaultColor)
	}
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		switch p.Side {
		case gamemath.SideLeft:
			snap.Player = PaddleView{Paddle: p.Paddle, Color: playerColor}
		case gamemath.SideRight:
			snap.AI = PaddleView{Paddle: p.Paddle, Color: colors.AIPaddle}
		}
	})
	return snap
}
