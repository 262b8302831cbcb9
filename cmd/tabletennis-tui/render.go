package main

import (
	"fmt"
	"math"

	"github.com/automoto/tabletennis/components"
	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/systems"
	"github.com/gdamore/tcell/v2"
)

const (
	runeNet    = '┆'
	runePaddle = '█'
	runeBall   = '●'
)

// cell is one terminal character to draw.
type cell struct {
	Col, Row int
	Rune     rune
	Style    tcell.Style
}

// grid maps table units onto the terminal rows between the score line and
// the status line.
type grid struct {
	cols, field int
}

func (g grid) col(x float64) int {
	return clampInt(int(math.Floor(x*float64(g.cols)/config.Table.Width)), 0, g.cols-1)
}

func (g grid) row(y float64) int {
	return 1 + clampInt(int(math.Floor(y*float64(g.field)/config.Table.Height)), 0, g.field-1)
}

// renderCells lays out a snapshot on a cols x rows terminal. Later cells
// overwrite earlier ones at the same position.
func renderCells(snap systems.TableSnapshot, cols, rows int) []cell {
	g := grid{cols: cols, field: rows - 2}
	if g.cols <= 0 || g.field <= 0 {
		return nil
	}

	bg := tcell.StyleDefault.Background(rgb(snap.Colors.Table))
	cells := make([]cell, 0, cols*rows)

	for r := 1; r <= g.field; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, cell{Col: c, Row: r, Rune: ' ', Style: bg})
		}
	}

	// Dashed net: a row shows a dash when its center falls on a segment
	netCol := g.col(config.Table.Width / 2)
	period := config.Table.NetSegment + config.Table.NetGap
	for r := 1; r <= g.field; r++ {
		y := (float64(r-1) + 0.5) * config.Table.Height / float64(g.field)
		if math.Mod(y, period) < config.Table.NetSegment {
			cells = append(cells, cell{Col: netCol, Row: r, Rune: runeNet, Style: bg.Foreground(rgb(snap.Colors.Net))})
		}
	}

	for _, p := range []systems.PaddleView{snap.Player, snap.AI} {
		if p.Height == 0 {
			continue
		}
		style := bg.Foreground(rgb(p.Color))
		for c := g.col(p.X); c <= g.col(p.Right()-1e-9); c++ {
			for r := g.row(p.Y); r <= g.row(p.Bottom()-1e-9); r++ {
				cells = append(cells, cell{Col: c, Row: r, Rune: runePaddle, Style: style})
			}
		}
	}

	if ball := snap.Ball; ball.Pos[0] >= 0 && ball.Pos[0] < config.Table.Width {
		cells = append(cells, cell{
			Col:   g.col(ball.Pos[0]),
			Row:   g.row(ball.Pos[1]),
			Rune:  runeBall,
			Style: bg.Foreground(rgb(snap.Colors.Ball)),
		})
	}

	cells = appendText(cells, 0, cols, scoreLine(snap), tcell.StyleDefault.Bold(true))
	cells = appendText(cells, rows-1, cols, statusLine(snap), tcell.StyleDefault.Dim(true))
	return cells
}

func scoreLine(snap systems.TableSnapshot) string {
	return fmt.Sprintf("You %d : %d AI", snap.PlayerScore, snap.AIScore)
}

func statusLine(snap systems.TableSnapshot) string {
	switch {
	case snap.Paused:
		return fmt.Sprintf("paused  rally %d  longest %d  (p resume, q quit)", snap.Stats.Rally, snap.Stats.LongestRally)
	case snap.State == components.RoundGameOver:
		return "game over"
	}
	return fmt.Sprintf("first to %d  %s  paddle %s  (p pause, t theme, c color, q quit)",
		config.Round.WinScore, snap.Theme, snap.PaddleColor)
}

// appendText centers s on row, truncating it to the terminal width.
func appendText(cells []cell, row, cols int, s string, style tcell.Style) []cell {
	runes := []rune(s)
	if len(runes) > cols {
		runes = runes[:cols]
	}
	start := (cols - len(runes)) / 2
	for i, r := range runes {
		cells = append(cells, cell{Col: start + i, Row: row, Rune: r, Style: style})
	}
	return cells
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
