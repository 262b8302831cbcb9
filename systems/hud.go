package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/fonts"
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// hudSlot maps a side to its index in HUDData.
func hudSlot(side gamemath.Side) int {
	if side == gamemath.SideRight {
		return 1
	}
	return 0
}

// UpdateHUD advances the score pulse tweens. It runs every tick so that the
// pulse plays out during the freeze.
func UpdateHUD(e *ecs.ECS) {
	hud := GetOrCreateHUD(e)
	dt := float32(1) / float32(cfg.Round.TPS)
	for i, tw := range hud.Pulse {
		if tw == nil {
			hud.Scale[i] = 1
			continue
		}
		scale, done := tw.Update(dt)
		hud.Scale[i] = scale
		if done {
			hud.Pulse[i] = nil
			hud.Scale[i] = 1
		}
	}
}

func onPointScoredHUD(w donburi.World, ev PointScored) {
	hud := firstOrCreate(w, components.HUD)
	hud.Pulse[hudSlot(ev.Scorer)] = gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseDuration, ease.OutCubic)
}

func onPointScoredLog(_ donburi.World, ev PointScored) {
	entry := log.WithFields(log.Fields{
		"scorer": ev.Scorer,
		"player": ev.Player,
		"ai":     ev.AI,
	})
	if ev.GameOver {
		entry.WithField("winner", ev.Scorer).Info("game over")
		return
	}
	entry.Debug("point scored")
}

// DrawHUD renders both scores above the table, pulsing the one that changed.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	score := GetOrCreateScore(e)
	hud := GetOrCreateHUD(e)
	theme, _ := Colors(e)

	center := cfg.Table.Width / 2
	drawScore(screen, score.Player, center-cfg.HUD.ScoreOffsetX, hud.Scale[0], theme.Score)
	drawScore(screen, score.AI, center+cfg.HUD.ScoreOffsetX, hud.Scale[1], theme.Score)
}

// drawScore draws a number centered on x, scaled around its center.
func drawScore(screen *ebiten.Image, value int, x float64, scale float32, clr color.Color) {
	if scale <= 0 {
		scale = 1
	}
	face := fonts.Score.Get()
	s := fmt.Sprint(value)
	bounds, _ := font.BoundString(face, s)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	h := float64((bounds.Max.Y - bounds.Min.Y).Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, h/2)
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, cfg.HUD.ScoreY)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, op)
}

// drawCentered draws s horizontally centered on the table at baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	x := (int(cfg.Table.Width) - w) / 2
	text.Draw(screen, s, face, x, y, clr)
}
