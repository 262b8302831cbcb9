package tags

import "github.com/yohamta/donburi"

var (
	Ball     = donburi.NewTag().SetName("Ball")
	Paddle   = donburi.NewTag().SetName("Paddle")
	Player   = donburi.NewTag().SetName("Player")
	AI       = donburi.NewTag().SetName("AI")
	Settings = donburi.NewTag().SetName("Settings")
)

// Resolv tags for collision
const (
	ResolvBall   = "ball"
	ResolvPaddle = "paddle"
	ResolvPlayer = "player"
	ResolvAI     = "ai"
)
