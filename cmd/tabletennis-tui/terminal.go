package main

import (
	"context"
	"image/color"

	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/atomic"
)

// terminal adapts a tcell screen to the simulation: it feeds the pointer
// cell from mouse events, queues key commands for the next tick and blocks
// the loop for the game-over message.
type terminal struct {
	screen tcell.Screen
	cmds   chan func(*ecs.ECS)
	done   <-chan struct{}

	notifying *atomic.Bool
	ack       chan struct{}
}

func newTerminal(ctx context.Context, screen tcell.Screen) *terminal {
	return &terminal{
		screen:    screen,
		cmds:      make(chan func(*ecs.ECS), 16),
		done:      ctx.Done(),
		notifying: atomic.NewBool(false),
		ack:       make(chan struct{}),
	}
}

// pollEvents runs on its own goroutine until the screen is finalized.
func (t *terminal) pollEvents(ctx context.Context, cancel context.CancelFunc, e *ecs.ECS) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventMouse:
			_, row := ev.Position()
			_, rows := t.screen.Size()
			if y, ok := tableY(row, rows); ok {
				systems.SetPointerY(e, y)
			}
		case *tcell.EventKey:
			if t.notifying.Load() {
				select {
				case t.ack <- struct{}{}:
				case <-ctx.Done():
				}
				continue
			}
			if quit := t.handleKey(ev); quit {
				cancel()
				return
			}
		}
	}
}

// handleKey queues the command bound to a key and reports whether to quit.
func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	var cmd func(*ecs.ECS)
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		cmd = systems.TogglePause
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'p', 'P', ' ':
			cmd = systems.TogglePause
		case 't', 'T':
			cmd = systems.ToggleTheme
		case 'c', 'C':
			cmd = systems.CyclePaddleColor
		}
	}
	if cmd != nil {
		select {
		case t.cmds <- cmd:
		default:
		}
	}
	return false
}

// drainCommands applies queued key commands at the start of a tick.
func (t *terminal) drainCommands(e *ecs.ECS) {
	for {
		select {
		case cmd := <-t.cmds:
			cmd(e)
		default:
			return
		}
	}
}

// Notify draws the message over the table and waits for any key.
func (t *terminal) Notify(title, message string) {
	t.notifying.Store(true)
	defer t.notifying.Store(false)

	cols, rows := t.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	lines := []string{title, message, "press any key"}
	for i, line := range lines {
		drawText(t.screen, (cols-len(line))/2, rows/2-1+i, line, style)
	}
	t.screen.Show()

	select {
	case <-t.ack:
	case <-t.done:
	}
}

// draw renders one snapshot.
func (t *terminal) draw(snap systems.TableSnapshot) {
	if t.notifying.Load() {
		return
	}
	cols, rows := t.screen.Size()
	t.screen.Clear()
	for _, c := range renderCells(snap, cols, rows) {
		t.screen.SetContent(c.Col, c.Row, c.Rune, nil, c.Style)
	}
	t.screen.Show()
}

func drawText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(col+i, row, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tableY maps a terminal row to a table ordinate. The first row holds the
// score line and the last the status line.
func tableY(row, rows int) (float64, bool) {
	field := rows - 2
	if field <= 0 || row < 1 || row > field {
		return 0, false
	}
	return (float64(row-1) + 0.5) * config.Table.Height / float64(field), true
}
