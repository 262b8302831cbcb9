package systems

import (
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/atomic"
)

// SetPointerY stores the latest pointer ordinate in table units. It is the
// only write path for input adapters and is safe to call from any goroutine
// once the pointer singleton exists.
func SetPointerY(ecs *ecs.ECS, y float64) {
	GetOrCreatePointer(ecs).Y.Store(y)
}

// PointerY returns the latest pointer sample. The sample may be stale.
func PointerY(ecs *ecs.ECS) float64 {
	return GetOrCreatePointer(ecs).Y.Load()
}

// GetOrCreatePointer returns the singleton Pointer component, creating if
// needed. A new cell starts at the table's vertical center so the paddle
// holds still until the pointer moves.
func GetOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	p := components.Pointer.Get(entry)
	if p.Y == nil {
		p.Y = atomic.NewFloat64(cfg.Table.Height / 2)
	}
	return p
}

func clampPointer(y float64) float64 {
	return mgl64.Clamp(y, 0, cfg.Table.Height)
}
