package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Side identifies one end of the table. The human player defends the left
// end and the AI the right end.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Opposite returns the other end of the table.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "player"
	case SideRight:
		return "ai"
	}
	return "none"
}

// Ball is the ball state in table space. Pos is the center.
type Ball struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Radius float64
}

func (b Ball) Left() float64   { return b.Pos[0] - b.Radius }
func (b Ball) Right() float64  { return b.Pos[0] + b.Radius }
func (b Ball) Top() float64    { return b.Pos[1] - b.Radius }
func (b Ball) Bottom() float64 { return b.Pos[1] + b.Radius }

// Integrate advances the ball by one tick of velocity. There is no
// sub-stepping, so a fast enough ball can tunnel through a paddle.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// ReflectWalls bounces the ball off the top or bottom edge of a table of the
// given height. At most one reflection is applied per tick.
func (b *Ball) ReflectWalls(height float64) bool {
	if b.Top() < 0 {
		b.Pos[1] = b.Radius
		b.Vel[1] *= -1
		return true
	} else if b.Bottom() > height {
		b.Pos[1] = height - b.Radius
		b.Vel[1] *= -1
		return true
	}
	return false
}

// Exited reports which end the ball has fully left through, if any.
func (b Ball) Exited(width float64) Side {
	if b.Right() < 0 {
		return SideLeft
	}
	if b.Left() > width {
		return SideRight
	}
	return SideNone
}

// Center places the ball at the middle of the table with the given velocity.
func (b *Ball) Center(width, height float64, vel mgl64.Vec2) {
	b.Pos = mgl64.Vec2{width / 2, height / 2}
	b.Vel = vel
}

// Bounce holds the paddle response constants.
type Bounce struct {
	SpeedUp float64 // |vx| multiplier on every paddle hit
	Spin    float64 // vy added per unit of impact
}

// Hits reports whether the ball touches the face of paddle p guarding side.
// The test is one-sided and axis aligned: the ball's extent on x against the
// paddle face, and the ball's center strictly inside the paddle span on y.
func (b Ball) Hits(p Paddle, side Side) bool {
	if !p.Spans(b.Pos[1]) {
		return false
	}
	switch side {
	case SideLeft:
		return b.Left() < p.Right() && b.Pos[0] > p.X
	case SideRight:
		return b.Right() > p.X && b.Pos[0] < p.Right()
	}
	return false
}

// BounceOff moves the ball just outside the paddle face, reverses and speeds
// up its horizontal velocity and adds spin from the contact offset. It
// returns the impact in [-1, 1].
func (b *Ball) BounceOff(p Paddle, side Side, k Bounce) float64 {
	if side == SideLeft {
		b.Pos[0] = p.Right() + b.Radius
	} else {
		b.Pos[0] = p.X - b.Radius
	}
	b.Vel[0] *= -k.SpeedUp
	impact := p.Impact(b.Pos[1])
	b.Vel[1] += impact * k.Spin
	return impact
}
