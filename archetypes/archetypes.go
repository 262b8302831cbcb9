package archetypes

import (
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	PlayerPaddle = newArchetype(
		tags.Paddle,
		tags.Player,
		components.Paddle,
		components.Object,
	)
	AIPaddle = newArchetype(
		tags.Paddle,
		tags.AI,
		components.Paddle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Round,
		components.Score,
		components.Stats,
		components.HUD,
	)
	Settings = newArchetype(
		tags.Settings,
		components.Pause,
		components.Theme,
		components.Pointer,
		components.Audio,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
