package systems

import (
	"github.com/automoto/tabletennis/components"
	cfg "github.com/automoto/tabletennis/config"
	"github.com/automoto/tabletennis/shared/gamemath"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// Notifier shows a message to the user and returns once it is acknowledged.
type Notifier interface {
	Notify(title, message string)
}

// NewRoundSystem returns the system that advances the round state machine.
// It must run every tick, before the gameplay systems and regardless of pause.
func NewRoundSystem(n Notifier) ecs.System {
	return func(e *ecs.ECS) {
		updateRound(e, n)
	}
}

func updateRound(e *ecs.ECS, n Notifier) {
	round, ok := getRound(e)
	if !ok {
		return
	}
	round.Tick++

	switch round.State {
	case components.RoundFreeze:
		// The user pause flag is left alone, so a pause taken during the
		// cooldown is still in effect when it ends.
		if round.Tick >= round.ResumeAt {
			round.State = components.RoundServing
		}
	case components.RoundGameOver:
		if round.Tick >= round.ResumeAt {
			title, message := winnerMessage(round.Winner)
			n.Notify(title, message)
			ResetGame(e)
		}
	}
}

func winnerMessage(winner gamemath.Side) (string, string) {
	if winner == gamemath.SideLeft {
		return "Game Over", "You Win!"
	}
	return "Game Over", "AI Wins!"
}

// scorePoint applies a scoring event: one point for scorer, then either a
// re-serve followed by the freeze or the game-over countdown.
func scorePoint(e *ecs.ECS, scorer gamemath.Side) {
	round, ok := getRound(e)
	if !ok {
		return
	}
	score := GetOrCreateScore(e)
	points := score.Add(scorer)
	round.LastScorer = scorer

	serveBall(e, round, scorer)

	gameOver := points == cfg.Round.WinScore
	if gameOver {
		round.State = components.RoundGameOver
		round.Winner = scorer
		round.ResumeAt = round.Tick + 1 + cfg.Round.Ticks(cfg.Round.GameOverDelay)
	} else {
		round.State = components.RoundFreeze
		round.ResumeAt = round.Tick + 1 + cfg.Round.Ticks(cfg.Round.FreezeDuration)
	}

	PointScoredEvent.Publish(e.World, PointScored{
		Scorer:   scorer,
		Player:   score.Player,
		AI:       score.AI,
		GameOver: gameOver,
	})
}

// ResetGame starts a new game: scores return to zero and the ball is served
// as if nobody had scored.
func ResetGame(e *ecs.ECS) {
	round, ok := getRound(e)
	if !ok {
		return
	}

	GetOrCreateScore(e).Reset()
	stats := GetOrCreateStats(e)
	stats.GamesPlayed++
	switch round.Winner {
	case gamemath.SideLeft:
		stats.PlayerWins++
	case gamemath.SideRight:
		stats.AIWins++
	}
	stats.Rally = 0

	serveBall(e, round, gamemath.SideNone)
	round.State = components.RoundServing
	round.Winner = gamemath.SideNone
	round.LastScorer = gamemath.SideNone

	log.WithFields(log.Fields{
		"games": stats.GamesPlayed,
		"wins":  stats.PlayerWins,
	}).Info("game reset")
}

// serveBall centers the ball with a serve velocity biased by scorer.
func serveBall(e *ecs.ECS, round *components.RoundData, scorer gamemath.Side) {
	entry, ball, ok := getBall(e)
	if !ok {
		return
	}
	ball.Center(cfg.Table.Width, cfg.Table.Height, serve().Velocity(round.Rng, scorer))
	syncObject(entry, ball.Ball)
}

// serve returns the serve parameters from configuration.
func serve() gamemath.Serve {
	return gamemath.Serve{
		Speed:  cfg.Ball.Speed,
		Bias:   cfg.Round.ServeBias,
		Spread: cfg.Round.ServeSpread,
	}
}

// RoundState returns the current round phase.
func RoundState(e *ecs.ECS) components.RoundState {
	if round, ok := getRound(e); ok {
		return round.State
	}
	return components.RoundServing
}
