package config

import (
	"image/color"
	"strings"
)

// ThemeID selects the rendering palette. It has no effect on the simulation.
type ThemeID int

const (
	ThemeLight ThemeID = iota
	ThemeDark
)

func (t ThemeID) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t ThemeID) Toggle() ThemeID {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme accepts "light" or "dark", case-insensitively.
func ParseTheme(s string) (ThemeID, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	}
	return ThemeLight, false
}

// ThemeColors contains the colors used to draw the table in one theme
type ThemeColors struct {
	Table      color.RGBA
	Border     color.RGBA
	Net        color.RGBA
	AIPaddle   color.RGBA
	Ball       color.RGBA
	BallShadow color.RGBA
	Score      color.RGBA
}

// Themes maps every theme to its colors
var Themes map[ThemeID]ThemeColors

func init() {
	Themes = map[ThemeID]ThemeColors{
		ThemeLight: {
			Table:      color.RGBA{R: 0x2e, G: 0x7d, B: 0x5b, A: 0xff},
			Border:     color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
			Net:        White,
			AIPaddle:   color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
			Ball:       White,
			BallShadow: color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0x60},
			Score:      White,
		},
		ThemeDark: {
			Table:      color.RGBA{R: 0x15, G: 0x1b, B: 0x26, A: 0xff},
			Border:     White,
			Net:        LightGray,
			AIPaddle:   color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
			Ball:       White,
			BallShadow: color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0x60},
			Score:      color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		},
	}
}
