package components

import "github.com/yohamta/donburi"

// StatsData stores session statistics shown on the pause overlay.
type StatsData struct {
	GamesPlayed  int
	PlayerWins   int
	AIWins       int
	Rally        int // paddle hits in the current rally
	LongestRally int
	PlayTicks    int // ticks spent in play, excluding pauses
}

var Stats = donburi.NewComponentType[StatsData]()
