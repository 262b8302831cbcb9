package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	tableW = 700.0
	tableH = 400.0
	radius = 11.0
)

var bounce = Bounce{SpeedUp: 1.13, Spin: 3}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		vel     mgl64.Vec2
		wantY   float64
		wantVY  float64
		reflect bool
	}{
		{"top", mgl64.Vec2{300, 13}, mgl64.Vec2{4, -5}, radius, 5, true},
		{"bottom", mgl64.Vec2{300, 387}, mgl64.Vec2{4, 5}, tableH - radius, -5, true},
		{"open table", mgl64.Vec2{300, 200}, mgl64.Vec2{4, 5}, 205, 5, false},
		{"touching top is not crossing", mgl64.Vec2{300, 16}, mgl64.Vec2{0, -5}, 11, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: tt.pos, Vel: tt.vel, Radius: radius}
			b.Integrate()
			got := b.ReflectWalls(tableH)
			if got != tt.reflect {
				t.Fatalf("reflect = %v, want %v", got, tt.reflect)
			}
			if !nearly(b.Pos[1], tt.wantY) || !nearly(b.Vel[1], tt.wantVY) {
				t.Fatalf("got y=%v vy=%v, want y=%v vy=%v", b.Pos[1], b.Vel[1], tt.wantY, tt.wantVY)
			}
		})
	}
}

func TestReflectWallsSingleReflectionPerTick(t *testing.T) {
	// A ball taller than the table exceeds both bounds at once.
	b := Ball{Pos: mgl64.Vec2{100, 5}, Vel: mgl64.Vec2{0, 3}, Radius: 30}
	b.ReflectWalls(20)
	if b.Vel[1] != -3 {
		t.Fatalf("expected exactly one reflection, vy = %v", b.Vel[1])
	}
}

func TestLeftPaddleHit(t *testing.T) {
	player := Paddle{X: 12, Y: 160, Width: 12, Height: 80}
	b := Ball{Pos: mgl64.Vec2{23, 200}, Vel: mgl64.Vec2{-6, 0}, Radius: radius}

	b.Integrate()
	if !b.Hits(player, SideLeft) {
		t.Fatalf("expected a hit at x=%v", b.Pos[0])
	}
	impact := b.BounceOff(player, SideLeft, bounce)

	if !nearly(b.Vel[0], 6.78) {
		t.Fatalf("vx = %v, want 6.78", b.Vel[0])
	}
	if !nearly(impact, 0) || !nearly(b.Vel[1], 0) {
		t.Fatalf("impact = %v vy = %v, want 0", impact, b.Vel[1])
	}
	if !nearly(b.Pos[0], 35) {
		t.Fatalf("ball x = %v, want 35 (just outside the paddle)", b.Pos[0])
	}
}

func TestRightPaddleHit(t *testing.T) {
	ai := Paddle{X: 676, Y: 100, Width: 12, Height: 80}
	b := Ball{Pos: mgl64.Vec2{660, 170}, Vel: mgl64.Vec2{7, 0}, Radius: radius}

	b.Integrate()
	if !b.Hits(ai, SideRight) {
		t.Fatalf("expected a hit at x=%v", b.Pos[0])
	}
	b.BounceOff(ai, SideRight, bounce)

	if !nearly(b.Vel[0], -7*1.13) {
		t.Fatalf("vx = %v, want %v", b.Vel[0], -7*1.13)
	}
	if !nearly(b.Pos[0], 676-radius) {
		t.Fatalf("ball x = %v, want %v", b.Pos[0], 676-radius)
	}
	// 30 below a center at 140 with half height 40.
	if !nearly(b.Vel[1], 0.75*3) {
		t.Fatalf("vy = %v, want 2.25", b.Vel[1])
	}
}

func TestHitsMisses(t *testing.T) {
	player := Paddle{X: 12, Y: 160, Width: 12, Height: 80}
	tests := []struct {
		name string
		pos  mgl64.Vec2
	}{
		{"above paddle", mgl64.Vec2{20, 150}},
		{"on top edge", mgl64.Vec2{20, 160}},
		{"on bottom edge", mgl64.Vec2{20, 240}},
		{"behind paddle", mgl64.Vec2{10, 200}},
		{"in front of paddle", mgl64.Vec2{36, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: tt.pos, Radius: radius}
			if b.Hits(player, SideLeft) {
				t.Fatalf("unexpected hit at %v", tt.pos)
			}
		})
	}
}

func TestPaddleHitSpeedGrowthAndSpinBounds(t *testing.T) {
	player := Paddle{X: 12, Y: 160, Width: 12, Height: 80}
	for y := 160.5; y < 240; y += 3.5 {
		for _, vx := range []float64{-3, -6, -12.5} {
			b := Ball{Pos: mgl64.Vec2{30, y}, Vel: mgl64.Vec2{vx, 1}, Radius: radius}
			if !b.Hits(player, SideLeft) {
				t.Fatalf("expected hit at y=%v", y)
			}
			impact := b.BounceOff(player, SideLeft, bounce)
			if impact < -1 || impact > 1 {
				t.Fatalf("impact %v out of range", impact)
			}
			if !nearly(math.Abs(b.Vel[0]), 1.13*math.Abs(vx)) || b.Vel[0] <= 0 {
				t.Fatalf("vx after = %v for vx before = %v", b.Vel[0], vx)
			}
			if dv := math.Abs(b.Vel[1] - 1); dv > 3+1e-9 {
				t.Fatalf("spin change %v exceeds 3", dv)
			}
		}
	}
}

func TestExited(t *testing.T) {
	tests := []struct {
		x    float64
		want Side
	}{
		{-12, SideLeft},
		{-11, SideNone},
		{-10, SideNone},
		{350, SideNone},
		{711, SideNone},
		{711.5, SideRight},
	}
	for _, tt := range tests {
		b := Ball{Pos: mgl64.Vec2{tt.x, 200}, Radius: radius}
		if got := b.Exited(tableW); got != tt.want {
			t.Fatalf("Exited at x=%v = %v, want %v", tt.x, got, tt.want)
		}
	}
}
