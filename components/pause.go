package components

import "github.com/yohamta/donburi"

// PauseData stores the user pause toggle. It is independent of the round's
// own freeze so that a pause pressed during a cooldown survives it.
type PauseData struct {
	UserPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
