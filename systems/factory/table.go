package factory

import (
	"math/rand"

	"github.com/automoto/tabletennis/archetypes"
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/automoto/tabletennis/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/atomic"
)

// Options are the display preferences a table starts with.
type Options struct {
	Theme       cfg.ThemeID
	PaddleColor string
	Muted       bool
}

// CreateTable builds the whole simulation: collision space, ball, both
// paddles and the match and settings singletons. The ball starts at the
// center with the opening serve drawn from rng.
func CreateTable(ecs *ecs.ECS, rng *rand.Rand, opts Options) {
	spaceEntry := CreateSpace(ecs,
		int(cfg.Table.Width), int(cfg.Table.Height),
		cfg.Table.CellSize, cfg.Table.CellSize,
	)
	space := components.Space.Get(spaceEntry)

	createSettings(ecs, opts)

	match := archetypes.Match.Spawn(ecs)
	components.Round.SetValue(match, components.RoundData{
		State: components.RoundServing,
		Rng:   rng,
	})
	components.HUD.SetValue(match, components.HUDData{Scale: [2]float32{1, 1}})

	inset := cfg.Table.PaddleInset
	CreatePaddle(ecs, space, gamemath.SideLeft, inset, cfg.Table.PaddleHeight)
	CreatePaddle(ecs, space, gamemath.SideRight, cfg.Table.Width-inset-cfg.Table.PaddleWidth, cfg.Table.AIPaddleHeight)

	opening := gamemath.Serve{Speed: cfg.Ball.Speed, Spread: cfg.Round.OpeningSpread}
	CreateBall(ecs, space, opening.Opening(rng))
}

func createSettings(ecs *ecs.ECS, opts Options) *donburi.Entry {
	color := opts.PaddleColor
	if _, ok := cfg.PaddleColor(color); !ok {
		color = cfg.Player.DefaultColor
	}

	settings := archetypes.Settings.Spawn(ecs)
	components.Theme.SetValue(settings, components.ThemeData{
		Theme:       opts.Theme,
		PaddleColor: color,
	})
	components.Pointer.SetValue(settings, components.PointerData{
		Y: atomic.NewFloat64(cfg.Table.Height / 2),
	})
	components.Audio.SetValue(settings, components.AudioData{
		Muted:      opts.Muted,
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return settings
}

// CreatePaddle spawns a vertically centered paddle guarding side at x.
func CreatePaddle(ecs *ecs.ECS, space *resolv.Space, side gamemath.Side, x, height float64) *donburi.Entry {
	arch := archetypes.PlayerPaddle
	sideTag := tags.ResolvPlayer
	if side == gamemath.SideRight {
		arch = archetypes.AIPaddle
		sideTag = tags.ResolvAI
	}

	paddle := arch.Spawn(ecs)
	data := components.PaddleData{
		Side: side,
		Paddle: gamemath.Paddle{
			X:      x,
			Y:      cfg.Table.Height/2 - height/2,
			Width:  cfg.Table.PaddleWidth,
			Height: height,
		},
	}
	components.Paddle.SetValue(paddle, data)

	obj := resolv.NewObject(data.X, data.Y, data.Width, data.Height, tags.ResolvPaddle, sideTag)
	obj.SetShape(resolv.NewRectangle(0, 0, data.Width, data.Height))
	obj.Data = paddle
	space.Add(obj)
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})

	return paddle
}

// CreateBall spawns the ball at the table center moving at vel.
func CreateBall(ecs *ecs.ECS, space *resolv.Space, vel mgl64.Vec2) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	data := components.BallData{Ball: gamemath.Ball{Radius: cfg.Ball.Radius}}
	data.Center(cfg.Table.Width, cfg.Table.Height, vel)
	components.Ball.SetValue(ball, data)

	size := 2*data.Radius + 2*cfg.Ball.ProxyMargin
	obj := resolv.NewObject(data.Left()-cfg.Ball.ProxyMargin, data.Top()-cfg.Ball.ProxyMargin, size, size, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = ball
	space.Add(obj)
	components.Object.SetValue(ball, components.ObjectData{Object: obj})

	return ball
}
