package systems

import (
	"fmt"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTheme applies the theme and paddle color keys. Both only affect
// rendering, so it runs regardless of pause.
func UpdateTheme(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleTheme).JustPressed {
		ToggleTheme(ecs)
	}
	if GetAction(input, cfg.ActionCyclePaddleColor).JustPressed {
		CyclePaddleColor(ecs)
	}
}

// ToggleTheme switches between light and dark.
func ToggleTheme(ecs *ecs.ECS) {
	theme := GetOrCreateTheme(ecs)
	theme.Theme = theme.Theme.Toggle()
	log.WithField("theme", theme.Theme).Debug("theme toggled")
}

// CyclePaddleColor selects the next palette color for the player paddle.
func CyclePaddleColor(ecs *ecs.ECS) {
	theme := GetOrCreateTheme(ecs)
	theme.PaddleColor = cfg.NextPaddleColor(theme.PaddleColor)
	log.WithField("color", theme.PaddleColor).Debug("paddle color changed")
}

// SetPaddleColor selects a palette color by identifier. Unknown identifiers
// leave the current color in place.
func SetPaddleColor(ecs *ecs.ECS, id string) error {
	if _, ok := cfg.PaddleColor(id); !ok {
		return fmt.Errorf("unknown paddle color %q", id)
	}
	GetOrCreateTheme(ecs).PaddleColor = id
	return nil
}

// SetTheme selects a theme directly.
func SetTheme(ecs *ecs.ECS, theme cfg.ThemeID) {
	GetOrCreateTheme(ecs).Theme = theme
}

// Colors returns the active theme's colors and the player paddle color.
func Colors(ecs *ecs.ECS) (cfg.ThemeColors, components.ThemeData) {
	theme := GetOrCreateTheme(ecs)
	return cfg.Themes[theme.Theme], *theme
}

// GetOrCreateTheme returns the singleton Theme component, creating if needed.
func GetOrCreateTheme(ecs *ecs.ECS) *components.ThemeData {
	entry, ok := components.Theme.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Theme))
		components.Theme.SetValue(entry, components.ThemeData{
			Theme:       cfg.ThemeLight,
			PaddleColor: cfg.Player.DefaultColor,
		})
	}
	return components.Theme.Get(entry)
}
