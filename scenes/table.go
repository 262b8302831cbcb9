package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/systems"
	"github.com/automoto/tabletennis/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TableScene is the single playing scene: the table, its control bar and the
// per-frame simulation tick.
type TableScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      SimulationOptions
	controls     *ui.ControlsUI
	once         sync.Once
}

// NewTableScene creates the table scene. The simulation is built on the
// first Update.
func NewTableScene(sc SceneChanger, opts SimulationOptions) *TableScene {
	return &TableScene{sceneChanger: sc, options: opts}
}

func (ts *TableScene) Update() {
	ts.once.Do(ts.configure)

	// One simulation tick per frame
	ts.ecs.Update()
	ts.controls.Update()
}

func (ts *TableScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.controls.UI.Draw(screen)
}

// ECS exposes the simulation for host integrations.
func (ts *TableScene) ECS() *ecs.ECS {
	ts.once.Do(ts.configure)
	return ts.ecs
}

func (ts *TableScene) configure() {
	opts := ts.options
	opts.Input = append([]ecs.System{
		systems.UpdateInput,
		systems.UpdatePause,
		systems.UpdateTheme,
	}, opts.Input...)

	ts.ecs = NewSimulation(opts)

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTable)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawNet)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawPaddles)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	controls, err := ui.NewControlsUI(ts.ecs)
	if err != nil {
		panic("failed to build control bar: " + err.Error())
	}
	ts.controls = controls
}
