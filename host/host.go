// Package host holds the process plumbing shared by the window and terminal
// front ends: flags, logging, crash reporting and display preferences.
package host

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/systems/factory"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	log "github.com/sirupsen/logrus"
	dark "github.com/thiagokokada/dark-mode-go"
)

// Flags are the command line options common to every front end.
type Flags struct {
	ConfigPath string
	Debug      bool
	Theme      string
	Paddle     string
	Mute       bool
	NoDialog   bool
	StatsView  string
	SentryDSN  string
}

// RegisterFlags binds the common options to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", config.DefaultDisplayPath(), "display preferences file (TOML, read only)")
	fs.BoolVar(&f.Debug, "debug", false, "debug logging and collision overlay")
	fs.StringVar(&f.Theme, "theme", "", "light or dark; empty follows the file, then the system")
	fs.StringVar(&f.Paddle, "paddle", "", "paddle color: red, blue, green, yellow or purple")
	fs.BoolVar(&f.Mute, "mute", false, "disable sound effects")
	fs.BoolVar(&f.NoDialog, "no-dialog", false, "log the winner instead of showing a dialog")
	fs.StringVar(&f.StatsView, "statsview", "", "serve the runtime stats dashboard on this address")
	fs.StringVar(&f.SentryDSN, "sentry-dsn", os.Getenv("SENTRY_DSN"), "report crashes to this Sentry DSN")
	return f
}

// SetupLogging configures the standard logrus logger.
func SetupLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	config.Debug.Enabled = debug
}

// InitSentry enables crash reporting when dsn is set. The returned function
// flushes pending events and must be deferred by main.
func InitSentry(dsn string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		return func() {}, fmt.Errorf("init sentry: %w", err)
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// StartStatsView serves the runtime dashboard on addr in the background.
func StartStatsView(addr string) {
	if addr == "" {
		return
	}
	// set configurations before calling `statsview.New()` method
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))

	mgr := statsview.New()
	go mgr.Start()
	log.WithField("addr", addr).Info("statsview dashboard started")
}

// DarkModeDetector reports whether the desktop prefers a dark theme.
type DarkModeDetector func() (bool, error)

// SystemDarkMode asks the operating system.
var SystemDarkMode DarkModeDetector = dark.IsDarkMode

// Preferences resolves the display options. Each field takes the first value
// set among the flags, the display file and the system; invalid values are
// logged and skipped.
func Preferences(f *Flags, file *config.DisplayFile, detect DarkModeDetector) factory.Options {
	opts := factory.Options{
		Theme:       resolveTheme(f.Theme, file.Theme, detect),
		PaddleColor: config.Player.DefaultColor,
		Muted:       f.Mute || file.Muted,
	}

	for _, id := range []string{f.Paddle, file.PaddleColor} {
		if id == "" {
			continue
		}
		if _, ok := config.PaddleColor(id); !ok {
			log.Warnf("unknown paddle color %q, keeping %s", id, opts.PaddleColor)
			continue
		}
		opts.PaddleColor = id
		break
	}
	return opts
}

func resolveTheme(flagTheme, fileTheme string, detect DarkModeDetector) config.ThemeID {
	for _, s := range []string{flagTheme, fileTheme} {
		if s == "" {
			continue
		}
		if t, ok := config.ParseTheme(s); ok {
			return t
		}
		log.Warnf("unknown theme %q", s)
	}

	if detect == nil {
		return config.ThemeLight
	}
	isDark, err := detect()
	if err != nil {
		log.WithError(err).Warn("could not detect system theme")
		return config.ThemeLight
	}
	if isDark {
		return config.ThemeDark
	}
	return config.ThemeLight
}

// LoadDisplay reads the display file, logging and ignoring a broken one.
func LoadDisplay(path string) *config.DisplayFile {
	file, err := config.LoadDisplay(path)
	if err != nil {
		log.WithError(err).Warn("ignoring display file")
		return &config.DisplayFile{}
	}
	return file
}
