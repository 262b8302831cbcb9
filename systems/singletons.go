package systems

import (
	"github.com/automoto/tabletennis/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// firstOrCreate returns the first instance of a singleton component in w,
// creating an entity for it when none exists yet.
func firstOrCreate[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	entry, ok := c.First(w)
	if !ok {
		entry = w.Entry(w.Create(c))
	}
	return c.Get(entry)
}

// GetOrCreateScore returns the singleton Score component, creating if needed.
func GetOrCreateScore(ecs *ecs.ECS) *components.ScoreData {
	return firstOrCreate(ecs.World, components.Score)
}

// GetOrCreateStats returns the singleton Stats component, creating if needed.
func GetOrCreateStats(ecs *ecs.ECS) *components.StatsData {
	return firstOrCreate(ecs.World, components.Stats)
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	return firstOrCreate(ecs.World, components.HUD)
}

// getRound returns the round state created by the table factory.
func getRound(ecs *ecs.ECS) (*components.RoundData, bool) {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Round.Get(entry), true
}

// getBall returns the ball entity and its data.
func getBall(ecs *ecs.ECS) (*donburi.Entry, *components.BallData, bool) {
	entry, ok := components.Ball.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Ball.Get(entry), true
}
