package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Rand is the subset of *rand.Rand used for serving.
type Rand interface {
	Float64() float64
}

// Serve describes how the ball is put back into play.
type Serve struct {
	Speed  float64 // horizontal speed
	Bias   float64 // probability the serve heads to the side that did not score
	Spread float64 // vertical speed range as a fraction of Speed
}

// Velocity returns the serve velocity after scorer won the point. The ball
// heads toward the side that did not score with probability Bias. With no
// scorer it heads toward the left (player) side under the same bias.
func (s Serve) Velocity(rng Rand, scorer Side) mgl64.Vec2 {
	dir := -1.0
	if scorer == SideLeft {
		dir = 1
	}
	if rng.Float64() >= s.Bias {
		dir = -dir
	}
	return mgl64.Vec2{s.Speed * dir, s.vertical(rng)}
}

// Opening returns the first serve of a session, with no bias.
func (s Serve) Opening(rng Rand) mgl64.Vec2 {
	dir := 1.0
	if rng.Float64() >= 0.5 {
		dir = -1
	}
	return mgl64.Vec2{s.Speed * dir, s.vertical(rng)}
}

func (s Serve) vertical(rng Rand) float64 {
	return s.Speed * (rng.Float64() - 0.5) * s.Spread
}
