package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/fonts"
	"github.com/automoto/tabletennis/host"
	"github.com/automoto/tabletennis/scenes"
	"github.com/automoto/tabletennis/systems"
	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sqweek/dialog"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.SimulationOptions) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTableScene(g, opts)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// dialogNotifier shows a native message box and blocks until it is closed,
// which holds the game loop like a browser alert would.
type dialogNotifier struct{}

func (dialogNotifier) Notify(title, message string) {
	dialog.Message("%s", message).Title(title).Info()
}

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	flag.Parse()

	host.SetupLogging(flags.Debug)
	if err := run(flags); err != nil {
		log.WithError(err).Error("table tennis exited")
		os.Exit(1)
	}
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

	var notifier systems.Notifier = dialogNotifier{}
	if flags.NoDialog {
		notifier = host.LogNotifier{}
	}
	var sound systems.SoundPlayer
	if !prefs.Muted {
		sound = systems.NewEbitenSoundPlayer()
	}

	scale := display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle("Table Tennis")
	ebiten.SetWindowSize(int(float64(config.C.Width)*scale), int(float64(config.C.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Round.TPS)
	if display.VSync != nil {
		ebiten.SetVsyncEnabled(*display.VSync)
	}

	game, err := NewGame(scenes.SimulationOptions{
		Notifier: notifier,
		Sound:    sound,
		Table:    prefs,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	log.WithFields(log.Fields{
		"theme":  prefs.Theme,
		"paddle": prefs.PaddleColor,
		"muted":  prefs.Muted,
	}).Info("starting table tennis")

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
