package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Paddle is an axis-aligned paddle. Y is the top edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

func (p Paddle) Right() float64   { return p.X + p.Width }
func (p Paddle) Bottom() float64  { return p.Y + p.Height }
func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Spans reports whether y lies strictly inside the paddle's vertical span.
func (p Paddle) Spans(y float64) bool {
	return y > p.Y && y < p.Bottom()
}

// Impact returns the normalized offset of y from the paddle center, clamped
// to [-1, 1].
func (p Paddle) Impact(y float64) float64 {
	half := p.Height / 2
	if half <= 0 {
		return 0
	}
	return mgl64.Clamp((y-p.CenterY())/half, -1, 1)
}

// ClampPaddle keeps a paddle top edge inside [0, tableHeight - paddleHeight].
func ClampPaddle(y, paddleHeight, tableHeight float64) float64 {
	return mgl64.Clamp(y, 0, tableHeight-paddleHeight)
}

// Approach moves current toward target by factor of the remaining distance.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// FollowPointer returns the next top edge of a pointer-driven paddle whose
// center eases toward pointerY.
func FollowPointer(p Paddle, pointerY, smoothing, tableHeight float64) float64 {
	target := pointerY - p.Height/2
	return ClampPaddle(Approach(p.Y, target, smoothing), p.Height, tableHeight)
}
