package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// DisplayFile is the optional, read-only display preferences file.
// Empty fields leave the built-in defaults in place.
type DisplayFile struct {
	Theme       string  `toml:"theme"`
	PaddleColor string  `toml:"paddle_color"`
	Scale       float64 `toml:"scale"`
	Muted       bool    `toml:"muted"`
	VSync       *bool   `toml:"vsync"`
}

// DefaultDisplayPath returns $XDG_CONFIG_HOME/tabletennis/config.toml or the
// platform equivalent.
func DefaultDisplayPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tabletennis", "config.toml")
}

// LoadDisplay reads the display file at path. A missing file is not an
// error and yields an empty DisplayFile.
func LoadDisplay(path string) (*DisplayFile, error) {
	df := &DisplayFile{}
	if path == "" {
		return df, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return df, nil
	}

	meta, err := toml.DecodeFile(path, df)
	if err != nil {
		return nil, fmt.Errorf("decode display file %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		log.WithField("key", key.String()).Warn("unknown key in display file")
	}
	return df, df.Validate()
}

// Validate checks enumerated fields against the known themes and palette.
func (d *DisplayFile) Validate() error {
	if d.Theme != "" {
		if _, ok := ParseTheme(d.Theme); !ok {
			return fmt.Errorf("unknown theme %q", d.Theme)
		}
	}
	if d.PaddleColor != "" {
		if _, ok := PaddleColor(d.PaddleColor); !ok {
			return fmt.Errorf("unknown paddle color %q", d.PaddleColor)
		}
	}
	if d.Scale < 0 {
		return fmt.Errorf("scale must not be negative, got %v", d.Scale)
	}
	return nil
}
