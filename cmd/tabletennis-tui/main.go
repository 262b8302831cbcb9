// Command tabletennis-tui plays table tennis in a terminal. The mouse moves
// the paddle; p/space/esc pause, t toggles the theme, c cycles the paddle
// color and q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/host"
	"github.com/automoto/tabletennis/scenes"
	"github.com/automoto/tabletennis/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/time/rate"
)

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file; the terminal is in use")
	flag.Parse()

	host.SetupLogging(flags.Debug)
	if err := redirectLog(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(flags); err != nil {
		log.WithError(err).Error("table tennis exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// redirectLog keeps log output off the terminal screen.
func redirectLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func run(flags *host.Flags) error {
	flush, err := host.InitSentry(flags.SentryDSN)
	if err != nil {
		log.WithError(err).Warn("crash reporting disabled")
	}
	defer flush()
	defer sentry.Recover()

	host.StartStatsView(flags.StatsView)

	display := host.LoadDisplay(flags.ConfigPath)
	prefs := host.Preferences(flags, display, host.SystemDarkMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	t := newTerminal(ctx, screen)
	var sound systems.SoundPlayer
	if !prefs.Muted {
		if s, err := newBeepPlayer(); err != nil {
			// Non-fatal, game can run without sound
			log.WithError(err).Warn("audio initialization failed")
		} else {
			sound = s
		}
	}

	var notifier systems.Notifier = t
	if flags.NoDialog {
		notifier = host.LogNotifier{}
	}

	e := scenes.NewSimulation(scenes.SimulationOptions{
		Notifier: notifier,
		Sound:    sound,
		Table:    prefs,
		Input:    []ecs.System{t.drainCommands},
	})

	go t.pollEvents(ctx, cancel, e)

	limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(config.Round.TPS)), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
		e.Update()
		t.draw(systems.Snapshot(e))
	}
}
