package gamemath

// Tracker is the AI paddle policy: a fixed step toward the ball's y once it
// leaves a dead-zone around the paddle center. There is no trajectory
// prediction and no randomness.
type Tracker struct {
	Speed    float64
	DeadZone float64
}

// Next returns the paddle's next top edge.
func (t Tracker) Next(p Paddle, ballY, tableHeight float64) float64 {
	center := p.CenterY()
	y := p.Y
	switch {
	case ballY < center-t.DeadZone:
		y -= t.Speed
	case ballY > center+t.DeadZone:
		y += t.Speed
	}
	return ClampPaddle(y, p.Height, tableHeight)
}
