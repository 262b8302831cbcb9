package components

import (
	"math/rand"

	"github.com/automoto/tabletennis/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RoundState is the phase of the rally state machine.
type RoundState int

const (
	RoundServing  RoundState = iota // ball placed, moves on the next tick
	RoundInPlay                     // rally in progress
	RoundFreeze                     // post-score cooldown
	RoundGameOver                   // winner decided, waiting to notify
)

func (s RoundState) String() string {
	switch s {
	case RoundServing:
		return "serving"
	case RoundInPlay:
		return "in_play"
	case RoundFreeze:
		return "freeze"
	case RoundGameOver:
		return "game_over"
	}
	return "unknown"
}

// RoundData stores the round state machine (singleton component).
// Tick counts every simulation step, including paused ones.
type RoundData struct {
	State      RoundState
	Tick       int
	ResumeAt   int // tick at which Freeze ends or GameOver notifies
	Winner     gamemath.Side
	LastScorer gamemath.Side
	Rng        *rand.Rand
}

var Round = donburi.NewComponentType[RoundData]()

// Frozen reports whether the round itself suspends movement.
func (r *RoundData) Frozen() bool {
	return r.State == RoundFreeze || r.State == RoundGameOver
}
