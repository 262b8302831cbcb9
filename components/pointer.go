package components

import (
	"github.com/yohamta/donburi"
	"go.uber.org/atomic"
)

// PointerData holds the latest pointer ordinate in table units. Hosts may
// write Y from an input goroutine; the simulation reads it once per tick.
type PointerData struct {
	Y *atomic.Float64
}

var Pointer = donburi.NewComponentType[PointerData]()
