package gamemath

import "testing"

func TestTrackerNext(t *testing.T) {
	tracker := Tracker{Speed: 6, DeadZone: 12}
	tests := []struct {
		name  string
		y     float64
		ballY float64
		want  float64
	}{
		{"ball above dead-zone", 160, 100, 154},
		{"ball below dead-zone", 160, 300, 166},
		{"inside dead-zone", 160, 210, 160},
		{"dead-zone edge holds", 160, 188, 160},
		{"clamped at top", 3, 0, 0},
		{"clamped at bottom", 318, 400, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paddle{X: 676, Y: tt.y, Width: 12, Height: 80}
			if got := tracker.Next(p, tt.ballY, 400); got != tt.want {
				t.Fatalf("Next = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackerContainment(t *testing.T) {
	tracker := Tracker{Speed: 6, DeadZone: 12}
	p := Paddle{X: 676, Y: 160, Width: 12, Height: 80}
	ballY := -50.0
	for i := 0; i < 500; i++ {
		if i == 250 {
			ballY = 900
		}
		p.Y = tracker.Next(p, ballY, 400)
		if p.Y < 0 || p.Y > 320 {
			t.Fatalf("tick %d: paddle y %v escaped [0, 320]", i, p.Y)
		}
	}
}

func TestFollowPointer(t *testing.T) {
	p := Paddle{X: 12, Y: 160, Width: 12, Height: 80}

	// Center target 300 -> top target 260; one fifth of the way from 160.
	if got := FollowPointer(p, 300, 0.2, 400); !nearly(got, 180) {
		t.Fatalf("FollowPointer = %v, want 180", got)
	}
	// Out of canvas pointer input is tolerated and clamped.
	p.Y = 319
	if got := FollowPointer(p, 5000, 0.2, 400); got != 320 {
		t.Fatalf("FollowPointer = %v, want 320", got)
	}
	p.Y = 1
	if got := FollowPointer(p, -5000, 0.2, 400); got != 0 {
		t.Fatalf("FollowPointer = %v, want 0", got)
	}
}
