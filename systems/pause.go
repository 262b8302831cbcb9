package systems

import (
	"fmt"
	"time"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/fonts"
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(ecs)
	}
}

// TogglePause flips the user pause. It never touches the round's own freeze.
func TogglePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.UserPaused = !pause.UserPaused
	log.WithField("paused", pause.UserPaused).Debug("pause toggled")
}

// IsPaused reports whether the user paused the game.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).UserPaused
}

// DrawPause renders the pause overlay with the session statistics.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float32(cfg.Table.Width)
	height := float32(cfg.Table.Height)

	// Draw semi-transparent overlay over the table only
	vector.FillRect(screen, 0, 0, width, height, cfg.HUD.OverlayColor, false)

	title := fonts.Title.Get()
	drawCentered(screen, "Paused", title, int(height)/2-40, cfg.White)

	small := fonts.Regular.Get()
	for i, line := range pauseLines(ecs) {
		drawCentered(screen, line, small, int(height)/2+i*20, cfg.White)
	}

	input := getOrCreateInput(ecs)
	drawCentered(screen, getPauseHint(input.LastInputMethod), fonts.Small.Get(), int(height)-16, cfg.HUD.HintColor)
}

// pauseLines formats the statistics shown while paused.
func pauseLines(ecs *ecs.ECS) []string {
	stats := GetOrCreateStats(ecs)
	played := time.Duration(stats.PlayTicks) * time.Second / time.Duration(cfg.Round.TPS)

	return []string{
		fmt.Sprintf("%s game", humanize.Ordinal(stats.GamesPlayed+1)),
		fmt.Sprintf("Won %s, lost %s", humanize.Comma(int64(stats.PlayerWins)), humanize.Comma(int64(stats.AIWins))),
		fmt.Sprintf("Rally %d, longest %s", stats.Rally, humanize.Comma(int64(stats.LongestRally))),
		fmt.Sprintf("Played %s", durafmt.Parse(played).LimitFirstN(2).Format(shortUnits)),
	}
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputGamepad:
		return "Start: Resume   Y: Theme   X: Color"
	case components.InputTouch:
		return "Tap Play to resume"
	}
	return "P/Space/Esc: Resume   T: Theme   C: Color"
}

// WithPauseCheck wraps a system to skip execution while the user paused or
// the round is frozen after a point.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		if round, ok := getRound(e); ok && round.Frozen() {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
