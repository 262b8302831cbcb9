package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugProxyColor = color.RGBA{R: 255, G: 0, B: 255, A: 180}

// DrawDebug outlines collision proxies and prints the loop and round state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if o.Object == nil {
			return
		}
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, debugProxyColor, false)
	})

	snap := Snapshot(e)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"TPS %.0f FPS %.0f\nround %s tick %d\nball (%.1f, %.1f) v (%.2f, %.2f)",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		snap.State, snap.Tick,
		snap.Ball.Pos[0], snap.Ball.Pos[1], snap.Ball.Vel[0], snap.Ball.Vel[1],
	), 10, 60)
}
