package main

import (
	"strings"
	"testing"

	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/automoto/tabletennis/systems"
	"github.com/go-gl/mathgl/mgl64"
)

func testSnapshot() systems.TableSnapshot {
	return systems.TableSnapshot{
		Ball: gamemath.Ball{Pos: mgl64.Vec2{350, 200}, Radius: config.Ball.Radius},
		Player: systems.PaddleView{Paddle: gamemath.Paddle{
			X: config.Table.PaddleInset, Y: 160, Width: config.Table.PaddleWidth, Height: config.Table.PaddleHeight,
		}},
		AI: systems.PaddleView{Paddle: gamemath.Paddle{
			X: config.Table.Width - config.Table.PaddleInset - config.Table.PaddleWidth, Y: 0,
			Width: config.Table.PaddleWidth, Height: config.Table.PaddleHeight,
		}},
		PlayerScore: 3,
		AIScore:     7,
		Theme:       config.ThemeLight,
		PaddleColor: "red",
		Colors:      config.Themes[config.ThemeLight],
	}
}

// screenOf resolves overlapping cells into the final visible runes.
func screenOf(cells []cell, cols, rows int) [][]rune {
	out := make([][]rune, rows)
	for r := range out {
		out[r] = []rune(strings.Repeat(" ", cols))
	}
	for _, c := range cells {
		out[c.Row][c.Col] = c.Rune
	}
	return out
}

func TestRenderCellsPlacesBallAtCenter(t *testing.T) {
	cols, rows := 70, 42
	screen := screenOf(renderCells(testSnapshot(), cols, rows), cols, rows)

	if got := screen[21][35]; got != runeBall {
		t.Errorf("center cell = %q, want ball", got)
	}
}

func TestRenderCellsDrawsPaddles(t *testing.T) {
	cols, rows := 70, 42
	screen := screenOf(renderCells(testSnapshot(), cols, rows), cols, rows)

	// Player paddle spans y 160..240, rows 1+16 .. 1+23
	for r := 17; r <= 24; r++ {
		if screen[r][1] != runePaddle {
			t.Errorf("row %d col 1 = %q, want player paddle", r, screen[r][1])
		}
	}
	if screen[16][1] == runePaddle || screen[25][1] == runePaddle {
		t.Error("player paddle drawn outside its span")
	}
	if screen[1][67] != runePaddle {
		t.Errorf("ai paddle missing at top, got %q", screen[1][67])
	}
}

func TestRenderCellsScoreAndStatusLines(t *testing.T) {
	cols, rows := 70, 42
	snap := testSnapshot()
	screen := screenOf(renderCells(snap, cols, rows), cols, rows)

	if top := strings.TrimSpace(string(screen[0])); top != "You 3 : 7 AI" {
		t.Errorf("score line = %q", top)
	}
	if bottom := string(screen[rows-1]); !strings.Contains(bottom, "first to 10") {
		t.Errorf("status line = %q", bottom)
	}

	snap.Paused = true
	screen = screenOf(renderCells(snap, cols, rows), cols, rows)
	if bottom := string(screen[rows-1]); !strings.Contains(bottom, "paused") {
		t.Errorf("paused status line = %q", bottom)
	}
}

func TestRenderCellsHidesBallOffTable(t *testing.T) {
	snap := testSnapshot()
	snap.Ball.Pos = mgl64.Vec2{-10, 200}
	for _, c := range renderCells(snap, 70, 42) {
		if c.Rune == runeBall {
			t.Fatalf("ball drawn at %d,%d while off the table", c.Col, c.Row)
		}
	}
}

func TestRenderCellsTooSmall(t *testing.T) {
	if cells := renderCells(testSnapshot(), 10, 2); cells != nil {
		t.Errorf("expected no cells for a terminal without a field, got %d", len(cells))
	}
}

func TestTableYMapsRowsToTable(t *testing.T) {
	rows := 42
	if got, ok := tableY(1, rows); !ok || got != 5 {
		t.Errorf("tableY(1) = %v, %v, want 5", got, ok)
	}
	if got, ok := tableY(40, rows); !ok || got != 395 {
		t.Errorf("tableY(40) = %v, %v, want 395", got, ok)
	}
	if _, ok := tableY(0, rows); ok {
		t.Error("score line should not map onto the table")
	}
	if _, ok := tableY(rows-1, rows); ok {
		t.Error("status line should not map onto the table")
	}
}

func TestToOctaves(t *testing.T) {
	cases := map[float64]float64{1: 0, 0.5: -1, 0.25: -2, 0.3: -2, 0: -10}
	for gain, want := range cases {
		if got := toOctaves(gain); got != want {
			t.Errorf("toOctaves(%v) = %v, want %v", gain, got, want)
		}
	}
}
