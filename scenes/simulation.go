package scenes

import (
	"math/rand"
	"time"

	"github.com/automoto/tabletennis/systems"
	"github.com/automoto/tabletennis/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationOptions configures a headless table simulation.
type SimulationOptions struct {
	Notifier systems.Notifier
	Sound    systems.SoundPlayer // nil for silence
	Rng      *rand.Rand          // nil seeds from the clock
	Table    factory.Options

	// Input systems run first every tick, before the round advances.
	Input []ecs.System
}

// NewSimulation builds the world that owns the whole table state and
// registers the per-tick systems in order: input, round timers, then the
// gated gameplay steps (player paddle, AI, ball, scoring), then events, HUD
// and audio. Each ecs.Update call is one tick.
func NewSimulation(opts SimulationOptions) *ecs.ECS {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := ecs.NewECS(donburi.NewWorld())

	for _, s := range opts.Input {
		e.AddSystem(s)
	}

	// Round timers run even while paused
	e.AddSystem(systems.NewRoundSystem(opts.Notifier))

	// Gameplay systems wrapped with pause and freeze checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerPaddle))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAI))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBall))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateScoring))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStats))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateEvents)
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.NewAudioSystem(opts.Sound))

	systems.RegisterEvents(e.World)
	factory.CreateTable(e, rng, opts.Table)

	return e
}
