package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDisplayMissingFile(t *testing.T) {
	df, err := LoadDisplay(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if df.Theme != "" || df.PaddleColor != "" || df.VSync != nil {
		t.Fatalf("expected empty display file, got %+v", df)
	}
}

func TestLoadDisplay(t *testing.T) {
	path := writeFile(t, `
theme = "dark"
paddle_color = "purple"
scale = 1.5
muted = true
vsync = false
`)
	df, err := LoadDisplay(path)
	if err != nil {
		t.Fatal(err)
	}
	if df.Theme != "dark" || df.PaddleColor != "purple" || df.Scale != 1.5 || !df.Muted {
		t.Fatalf("unexpected values %+v", df)
	}
	if df.VSync == nil || *df.VSync {
		t.Fatalf("vsync not decoded: %v", df.VSync)
	}
}

func TestLoadDisplayRejectsUnknownValues(t *testing.T) {
	for name, body := range map[string]string{
		"theme":  `theme = "sepia"`,
		"color":  `paddle_color = "orange"`,
		"scale":  `scale = -1.0`,
		"syntax": `theme = `,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadDisplay(writeFile(t, body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestNextPaddleColorCycles(t *testing.T) {
	want := []string{"blue", "green", "yellow", "purple", "red"}
	id := "red"
	for _, w := range want {
		id = NextPaddleColor(id)
		if id != w {
			t.Fatalf("got %s, want %s", id, w)
		}
	}
	if got := NextPaddleColor("orange"); got != "red" {
		t.Fatalf("unknown color should restart the cycle, got %s", got)
	}
}

func TestThemeParseAndToggle(t *testing.T) {
	if th, ok := ParseTheme(" Dark "); !ok || th != ThemeDark {
		t.Fatalf("ParseTheme dark: %v %v", th, ok)
	}
	if _, ok := ParseTheme("sepia"); ok {
		t.Fatal("sepia should not parse")
	}
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Fatal("toggle is not an involution")
	}
}

func TestRoundTicks(t *testing.T) {
	r := RoundConfig{TPS: 60}
	if got := r.Ticks(1200 * time.Millisecond); got != 72 {
		t.Fatalf("freeze ticks = %d, want 72", got)
	}
	if got := r.Ticks(10 * time.Millisecond); got != 1 {
		t.Fatalf("short delays round up to one tick, got %d", got)
	}
}
