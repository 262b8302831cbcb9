package components

import (
	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ScoreData stores the points of the current game (singleton component).
type ScoreData struct {
	Player int
	AI     int
}

var Score = donburi.NewComponentType[ScoreData]()

// Add awards one point to side and returns its new total.
func (s *ScoreData) Add(side gamemath.Side) int {
	switch side {
	case gamemath.SideLeft:
		s.Player++
		return s.Player
	case gamemath.SideRight:
		s.AI++
		return s.AI
	}
	return 0
}

// Of returns the points of side.
func (s *ScoreData) Of(side gamemath.Side) int {
	switch side {
	case gamemath.SideLeft:
		return s.Player
	case gamemath.SideRight:
		return s.AI
	}
	return 0
}

// Reset clears both scores
func (s *ScoreData) Reset() {
	s.Player = 0
	s.AI = 0
}
