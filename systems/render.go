package systems

import (
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawTable renders the table surface and its border.
func DrawTable(e *ecs.ECS, screen *ebiten.Image) {
	theme, _ := Colors(e)
	w, h := float32(cfg.Table.Width), float32(cfg.Table.Height)

	vector.FillRect(screen, 0, 0, w, h, theme.Table, false)
	bw := float32(cfg.Table.BorderWidth)
	vector.StrokeRect(screen, bw/2, bw/2, w-bw, h-bw, bw, theme.Border, false)
}

// DrawNet renders the dashed center line.
func DrawNet(e *ecs.ECS, screen *ebiten.Image) {
	theme, _ := Colors(e)
	x := float32(cfg.Table.Width/2 - cfg.Table.NetWidth/2)
	step := cfg.Table.NetSegment + cfg.Table.NetGap

	for y := 0.0; y < cfg.Table.Height; y += step {
		vector.FillRect(screen, x, float32(y), float32(cfg.Table.NetWidth), float32(cfg.Table.NetSegment), theme.Net, false)
	}
}

// DrawPaddles renders both paddles; the player's in its palette color.
func DrawPaddles(e *ecs.ECS, screen *ebiten.Image) {
	theme, prefs := Colors(e)
	playerColor, ok := cfg.PaddleColor(prefs.PaddleColor)
	if !ok {
		playerColor, _ = cfg.PaddleColor(cfg.Player.DefaultColor)
	}

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		clr := theme.AIPaddle
		if entry.HasComponent(tags.Player) {
			clr = playerColor
		}
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), clr, true)
	})
}

// DrawBall renders the ball with a soft offset shadow.
func DrawBall(e *ecs.ECS, screen *ebiten.Image) {
	_, ball, ok := getBall(e)
	if !ok {
		return
	}
	theme, _ := Colors(e)
	x, y, r := float32(ball.Pos[0]), float32(ball.Pos[1]), float32(ball.Radius)

	vector.FillCircle(screen, x+2, y+3, r, theme.BallShadow, true)
	vector.FillCircle(screen, x, y, r, theme.Ball, true)
}
