package config

import (
	"image/color"
	"math"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// TableConfig describes the fixed table geometry in logical units.
type TableConfig struct {
	Width  float64
	Height float64

	// Paddles
	PaddleWidth    float64
	PaddleHeight   float64
	AIPaddleHeight float64
	PaddleInset    float64 // gap between a table end and its paddle

	// Decoration
	NetWidth    float64
	NetSegment  float64
	NetGap      float64
	BorderWidth float64

	// Space partitioning cell size for the collision broadphase
	CellSize int
}

// BallConfig contains ball configuration values
type BallConfig struct {
	Radius  float64
	Speed   float64 // serve speed
	SpeedUp float64 // |vx| multiplier on every paddle hit, uncapped
	Spin    float64 // vy added per unit of impact

	// Padding around the ball's collision proxy so that every contact the
	// exact paddle rule accepts shares a space cell with the paddle proxy.
	ProxyMargin float64
}

// PlayerConfig contains the pointer-driven paddle configuration
type PlayerConfig struct {
	Smoothing    float64 // fraction of the remaining distance covered per tick
	DefaultColor string
}

// AIConfig contains the opponent policy constants
type AIConfig struct {
	Speed    float64 // fixed step per tick
	DeadZone float64 // tolerance around the paddle center
}

// RoundConfig contains scoring and round timing values
type RoundConfig struct {
	TPS            int
	WinScore       int
	FreezeDuration time.Duration // post-score cooldown
	GameOverDelay  time.Duration // delay before the winner notification
	ServeBias      float64       // chance a serve heads to the side that did not score
	ServeSpread    float64       // vertical serve range as a fraction of ball speed
	OpeningSpread  float64       // same, for the first serve of the session
}

// Ticks converts a duration to simulation ticks, never less than one.
func (r RoundConfig) Ticks(d time.Duration) int {
	n := int(math.Round(d.Seconds() * float64(r.TPS)))
	if n < 1 {
		return 1
	}
	return n
}

// HUDConfig contains score display and overlay values
type HUDConfig struct {
	ScoreY         float64
	ScoreOffsetX   float64 // distance of each score from the net
	PulseScale     float32 // peak scale of the score pulse
	PulseDuration  float32 // seconds
	OverlayColor   color.RGBA
	HintColor      color.RGBA
	ControlBarFill color.RGBA
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled bool // draw debug overlay and log at debug level
}

// Global configuration instances
var C *Config
var Table TableConfig
var Ball BallConfig
var Player PlayerConfig
var AI AIConfig
var Round RoundConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	LightGray    = color.RGBA{R: 187, G: 187, B: 187, A: 255}
)

func init() {
	Table = TableConfig{
		Width:  700,
		Height: 400,

		PaddleWidth:    12,
		PaddleHeight:   80,
		AIPaddleHeight: 80,
		PaddleInset:    12,

		NetWidth:    4,
		NetSegment:  20,
		NetGap:      12,
		BorderWidth: 5,

		CellSize: 16,
	}

	// The window is the table plus the control bar underneath it.
	C = &Config{
		Width:  int(Table.Width),
		Height: int(Table.Height) + 40,
	}

	Ball = BallConfig{
		Radius:  11,
		Speed:   6,
		SpeedUp: 1.13,
		Spin:    3,

		ProxyMargin: 2,
	}

	Player = PlayerConfig{
		Smoothing:    0.2,
		DefaultColor: "red",
	}

	AI = AIConfig{
		Speed:    6,
		DeadZone: 12,
	}

	Round = RoundConfig{
		TPS:            60,
		WinScore:       10,
		FreezeDuration: 1200 * time.Millisecond,
		GameOverDelay:  10 * time.Millisecond,
		ServeBias:      0.7,
		ServeSpread:    1.2,
		OpeningSpread:  1.1,
	}

	HUD = HUDConfig{
		ScoreY:         48,
		ScoreOffsetX:   60,
		PulseScale:     1.6,
		PulseDuration:  0.4,
		OverlayColor:   BlackOverlay,
		HintColor:      LightGray,
		ControlBarFill: color.RGBA{R: 30, G: 30, B: 38, A: 255},
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
