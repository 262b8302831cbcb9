package host

import (
	"errors"
	"flag"
	"testing"

	"github.com/automoto/tabletennis/config"
)

func detector(dark bool, err error) DarkModeDetector {
	return func() (bool, error) { return dark, err }
}

func TestPreferencesTheme(t *testing.T) {
	tests := []struct {
		name   string
		flag   string
		file   string
		detect DarkModeDetector
		want   config.ThemeID
	}{
		{"flag wins", "dark", "light", detector(false, nil), config.ThemeDark},
		{"file next", "", "dark", detector(false, nil), config.ThemeDark},
		{"bad flag falls through", "sepia", "dark", detector(false, nil), config.ThemeDark},
		{"system dark", "", "", detector(true, nil), config.ThemeDark},
		{"system light", "", "", detector(false, nil), config.ThemeLight},
		{"detection error", "", "", detector(true, errors.New("no bus")), config.ThemeLight},
		{"no detector", "", "", nil, config.ThemeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preferences(&Flags{Theme: tt.flag}, &config.DisplayFile{Theme: tt.file}, tt.detect)
			if got.Theme != tt.want {
				t.Fatalf("theme = %v, want %v", got.Theme, tt.want)
			}
		})
	}
}

func TestPreferencesPaddleColor(t *testing.T) {
	tests := []struct {
		flag, file, want string
	}{
		{"", "", "red"},
		{"blue", "green", "blue"},
		{"", "green", "green"},
		{"orange", "yellow", "yellow"},
		{"orange", "", "red"},
	}
	for _, tt := range tests {
		got := Preferences(&Flags{Paddle: tt.flag}, &config.DisplayFile{PaddleColor: tt.file}, nil)
		if got.PaddleColor != tt.want {
			t.Errorf("flag %q file %q: got %s, want %s", tt.flag, tt.file, got.PaddleColor, tt.want)
		}
	}
}

func TestPreferencesMute(t *testing.T) {
	if !Preferences(&Flags{Mute: true}, &config.DisplayFile{}, nil).Muted {
		t.Fatal("flag should mute")
	}
	if !Preferences(&Flags{}, &config.DisplayFile{Muted: true}, nil).Muted {
		t.Fatal("file should mute")
	}
}

func TestRegisterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-theme", "dark", "-paddle", "green", "-mute", "-no-dialog", "-config", "x.toml"}); err != nil {
		t.Fatal(err)
	}
	if f.Theme != "dark" || f.Paddle != "green" || !f.Mute || !f.NoDialog || f.ConfigPath != "x.toml" {
		t.Fatalf("unexpected flags %+v", f)
	}
}

func TestInitSentryWithoutDSN(t *testing.T) {
	flush, err := InitSentry("")
	if err != nil {
		t.Fatal(err)
	}
	flush()
}
