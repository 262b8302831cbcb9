package systems

import (
	"github.com/automoto/tabletennis/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStats counts ticks of actual play. It runs behind the gameplay checks.
func UpdateStats(e *ecs.ECS) {
	GetOrCreateStats(e).PlayTicks++
}

func onPaddleHitStats(w donburi.World, _ PaddleHit) {
	stats := firstOrCreate(w, components.Stats)
	stats.Rally++
	if stats.Rally > stats.LongestRally {
		stats.LongestRally = stats.Rally
	}
}

func onPointScoredStats(w donburi.World, _ PointScored) {
	firstOrCreate(w, components.Stats).Rally = 0
}
